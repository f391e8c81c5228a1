// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rds

import (
	"fmt"

	"github.com/rob-gra/go-rds/tables"
)

// decodeType14A implements spec.md §4.9, Enhanced Other Network, using
// the version-A variant layout. The dispatch table also routes 14B
// groups here, and they are decoded with that same layout.
func (d *Decoder) decodeType14A(g Group) {
	tpOn := bit(g.B1, 4)
	variant := uint8(g.B1 & 0xF)
	info := g.B2
	piOn := g.B3

	var body string
	switch {
	case variant <= 3:
		off := 2 * variant
		d.state.eonPS[off] = hiByte(info)
		d.state.eonPS[off+1] = loByte(info)
		body = fmt.Sprintf("EON PS[%d:%d]=%q", off, off+1, string(d.state.eonPS[:8]))

	case variant == 4:
		af1 := (float64(hiByte(info)) + 875) * 100
		af2 := (float64(loByte(info)) + 875) * 100
		body = fmt.Sprintf("EON AF pair: %s, %s", formatAF(af1), formatAF(af2))

	case variant >= 5 && variant <= 8:
		tuned := (float64(hiByte(info)) + 875) * 100
		other := (float64(loByte(info)) + 875) * 100
		body = fmt.Sprintf("EON mapped frequency: tuned=%s other=%s", formatAF(tuned), formatAF(other))

	case variant == 9:
		tuned := (float64(hiByte(info)) + 875) * 100
		other := float64(int32(loByte(info))-16)*9 + 531
		body = fmt.Sprintf("EON mapped frequency: tuned=%s other=%s", formatAF(tuned), formatAF(other))

	case variant == 10 || variant == 11:
		body = "unallocated"

	case variant == 12:
		body = fmt.Sprintf("EON linkage information: %04X", info)

	case variant == 13:
		taOn := bit(info, 0)
		ptyOn := uint8(field(info, 11, 5))
		body = fmt.Sprintf("EON TA(ON)=%v PTY(ON)=%s", taOn, tables.PTYName(ptyOn))

	case variant == 14:
		body = fmt.Sprintf("EON PIN(ON)=%04X", info)

	case variant == 15:
		body = "reserved for broadcasters"
	}

	if piOn != 0 {
		body += fmt.Sprintf(" PI(ON)=%04X", piOn)
		if tpOn {
			body += " TP"
		}
	}

	d.debug.Debug("type14A: %s", body)
}
