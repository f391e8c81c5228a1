// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rds

import "strings"

// blankAF is the AF record text when no alternative frequency is
// decoded: 20 spaces, per spec.md §6's outbound format table.
var blankAF = strings.Repeat(" ", 20)

// decodeType0 implements spec.md §4.3, Basic Tuning and Switching.
// Version A additionally decodes AF method A from B2; version B
// leaves the decoder's block-2 bytes alone (Open Question #4: the
// standard reserves them for PI repetition).
func (d *Decoder) decodeType0(g Group, versionB bool) {
	s := &d.state

	s.flags.TP = bit(g.B1, 10)
	s.flags.TA = bit(g.B1, 4)
	s.flags.MuSp = bit(g.B1, 3)
	di := bit(g.B1, 2)
	segment := uint8(field(g.B1, 0, 2))

	s.psBuf[2*segment] = hiByte(g.B3)
	s.psBuf[2*segment+1] = loByte(g.B3)

	switch segment {
	case 0:
		s.flags.MoSt = di
	case 1:
		s.flags.AH = di
	case 2:
		s.flags.CMP = di
	case 3:
		s.flags.StPTY = di
	}

	afText := blankAF
	if !versionB {
		af1 := hiByte(g.B2)
		af2 := loByte(g.B2)
		if joined := afField(&s.af, af1, af2); joined != "" {
			afText = joined
		}
	}

	d.emit(RecordPS, string(s.psBuf[:]))
	d.emit(RecordFlags, s.flags.String())
	d.emit(RecordAF, afText)
}
