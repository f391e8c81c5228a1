// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rds

import (
	"encoding/binary"
	"fmt"
)

// Group is one RDS group: four 16-bit data blocks, already error
// corrected by the upstream demodulation chain.
type Group struct {
	B0, B1, B2, B3 uint16
}

// groupBlobSize is the wire size of an inbound message: four 16-bit
// words, little-endian.
const groupBlobSize = 8

// parseGroup decodes an inbound 8-byte blob into a Group. ok is false
// when the blob is not exactly 8 bytes; the caller must not mutate
// any state when ok is false.
func parseGroup(blob []byte) (g Group, ok bool) {
	if len(blob) != groupBlobSize {
		return Group{}, false
	}
	return Group{
		B0: binary.LittleEndian.Uint16(blob[0:2]),
		B1: binary.LittleEndian.Uint16(blob[2:4]),
		B2: binary.LittleEndian.Uint16(blob[4:6]),
		B3: binary.LittleEndian.Uint16(blob[6:8]),
	}, true
}

// groupType returns the 4-bit group-type number from B1[15:12].
func (g Group) groupType() uint8 {
	return uint8(g.B1>>12) & 0xF
}

// versionB reports whether the group's version bit (B1[11]) selects
// version B (true) rather than version A (false).
func (g Group) versionB() bool {
	return (g.B1>>11)&0x1 == 1
}

// pi returns the Programme Identification code, always carried in B0.
func (g Group) pi() uint16 {
	return g.B0
}

// pty returns the 5-bit Programme Type code from B1[9:5].
func (g Group) pty() uint8 {
	return uint8(g.B1>>5) & 0x1F
}

// country returns the 4-bit PI country nibble, B0[15:12]. 1..=15; 0 is
// reserved by the standard.
func (g Group) country() uint8 {
	return uint8(g.B0>>12) & 0xF
}

// area returns the 4-bit PI area-coverage code, B0[11:8].
func (g Group) area() uint8 {
	return uint8(g.B0>>8) & 0xF
}

// prn returns the 8-bit PI programme reference number, B0[7:0].
func (g Group) prn() uint8 {
	return uint8(g.B0 & 0xFF)
}

// hiByte and loByte split a 16-bit block into its constituent bytes,
// used throughout the per-group decoders to place PS/RT fragments.
func hiByte(word uint16) byte { return byte(word >> 8) }
func loByte(word uint16) byte { return byte(word) }

// bit extracts a single bit at position pos (0 = LSB) from word.
func bit(word uint16, pos uint) bool {
	return (word>>pos)&0x1 == 1
}

// field extracts a width-bit unsigned field starting at bit pos
// (0 = LSB) from word.
func field(word uint16, pos, width uint) uint16 {
	mask := uint16(1<<width) - 1
	return (word >> pos) & mask
}

// formatPI renders the PI record text of spec.md §6: 4 uppercase hex
// digits matching B0.
func formatPI(g Group) string {
	return fmt.Sprintf("%04X", g.pi())
}
