// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rds

import (
	"fmt"

	"github.com/rob-gra/go-rds/tables"
)

// decodeType8A implements spec.md §4.8, Traffic Message Channel. The
// multi-group reassembly is the {Idle, Collecting} state machine of
// Redesign Guidance #3, replacing the original's uninitialised
// expected_groups field (Open Question #2).
func (d *Decoder) decodeType8A(g Group) {
	t := bit(g.B1, 4)
	f := bit(g.B1, 3)
	dirBit := bit(g.B2, 15)

	switch {
	case t:
		variant := uint8(g.B1 & 0xF)
		if variant >= 4 && variant <= 9 {
			d.debug.Debug("type8A tuning info: variant=%d payload=%04X", variant, g.B2)
		} else {
			d.debug.Debug("type8A tuning info: variant=%d invalid", variant)
		}

	case !t && f, !t && !f && dirBit:
		d.emitTMCEvent(g, f)
		if !f && dirBit {
			d.state.tmc.phase = tmcCollecting
			d.state.tmc.expectedGroups = tmcExpectedGroupsUnknown
			for k := range d.state.tmc.slots {
				delete(d.state.tmc.slots, k)
			}
		}

	default: // T=0, F=0, D=0: subsequent of multi-group
		if d.state.tmc.phase != tmcCollecting {
			d.debug.Debug("type8A: continuation group with no burst in progress, dropped")
			return
		}

		ci := uint8(g.B1 & 0x7)
		sg := bit(g.B2, 14)
		gsi := uint8(field(g.B2, 12, 2))
		payload := (uint32(g.B2&0xFFF) << 16) | uint32(g.B3)
		d.state.tmc.slots[gsi] = payload

		if sg {
			d.state.tmc.expectedGroups = gsi
		}
		d.debug.Debug("type8A continuation: ci=%d gsi=%d sg=%v payload=%07X", ci, gsi, sg, payload)

		if gsi == 0 {
			d.decodeTMCOptionalContent()
			d.state.tmc = newTMCAssembly()
		}
	}
}

// emitTMCEvent decodes and emits the common event-record fields shared
// by single-group messages (T=0,F=1) and the first group of a burst
// (T=0,F=0,D=1), per spec.md §4.8. The dp_ci field's meaning depends on
// which case this is: f true means a single-group message, where
// dp_ci indexes the duration-phrase table; f false means the head of a
// multi-group burst, where dp_ci is instead the raw continuity index
// carried by the first group and must be printed as a number, not
// looked up.
func (d *Decoder) emitTMCEvent(g Group, f bool) {
	dpCi := uint8(g.B1 & 0x7)
	sign := bit(g.B2, 14)
	extent := uint8(field(g.B2, 11, 3))
	event := g.B2 & 0x7FF
	location := g.B3

	sign1Based := int(extent) + 1
	if sign {
		sign1Based = -sign1Based
	}

	var durationOrCI string
	if f {
		durationOrCI = tables.TMCDurationText(dpCi)
	} else {
		durationOrCI = fmt.Sprintf("%d", dpCi)
	}

	text := fmt.Sprintf("duration/ci=%s extent=%+d event=%q location=%04X",
		durationOrCI, sign1Based, tables.TMCEventDescription(event), location)
	d.emit(RecordDiagnostic, text)
}

// decodeTMCOptionalContent implements spec.md §4.8.1, correctly this
// time: a bit stream walked MSB-first as (4-bit label, variable-length
// content) pairs, terminated by exhaustion or a zero label. Open
// Question #1 requires the shipped decoder NOT replicate the source's
// dead-loop / logical-AND bugs; this comment is the only place they
// are mentioned, and no code here reproduces them.
func (d *Decoder) decodeTMCOptionalContent() {
	slots := d.state.tmc.slots
	if len(slots) == 0 {
		return
	}

	maxGsi := uint8(0)
	for gsi := range slots {
		if gsi > maxGsi {
			maxGsi = gsi
		}
	}
	totalBits := uint(int(maxGsi)+1) * 28
	bits := make([]byte, totalBits)
	pos := uint(0)
	for gsi := uint8(0); gsi <= maxGsi; gsi++ {
		payload := slots[gsi]
		for b := int(27); b >= 0; b-- {
			if (payload>>uint(b))&1 == 1 {
				bits[pos] = 1
			}
			pos++
		}
	}

	remaining := totalBits
	cursor := uint(0)
	readBits := func(n uint) uint32 {
		var v uint32
		for i := uint(0); i < n; i++ {
			v = (v << 1) | uint32(bits[cursor])
			cursor++
		}
		remaining -= n
		return v
	}

	for remaining >= 4 {
		label := uint8(readBits(4))
		if label == 0 {
			break
		}
		length := tables.OptionalContentLengths[label]
		if remaining < length {
			break
		}
		content := readBits(length)
		d.emit(RecordDiagnostic, fmt.Sprintf("tmc optional content: %s=%d",
			tables.LabelDescriptions[label], content))
	}
}
