// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rds

import "fmt"

// tmcGapGroups maps the 2-bit gap index G to the number of groups in
// a gap, spec.md §4.6.
var tmcGapGroups = [4]uint8{3, 5, 8, 11}

// decodeType3A implements spec.md §4.6, Application Identification
// (version A only). The TMC announcement special case
// (app_group==8, app_ver==A) is unpacked further; all other AIDs are
// logged in raw hex.
func (d *Decoder) decodeType3A(g Group) {
	appGroup := uint8(field(g.B1, 1, 4))
	appVer := uint8(g.B1 & 0x1)
	message := g.B2
	aid := g.B3

	if appGroup == 8 && appVer == 0 {
		variant := uint8(field(message, 14, 2))
		switch variant {
		case 0:
			ltn := uint8(field(message, 6, 6))
			afi := bit(message, 5)
			m := bit(message, 4)
			i := bit(message, 3)
			n := bit(message, 2)
			r := bit(message, 1)
			u := bit(message, 0)
			d.debug.Debug("type3A TMC: location table=%d afi=%v mode-enhanced=%v I=%v N=%v R=%v U=%v aid=%04X",
				ltn, afi, m, i, n, r, u, aid)
		case 1:
			gIdx := uint8(field(message, 12, 2))
			sid := uint8(field(message, 6, 6))
			d.debug.Debug("type3A TMC: gap:%d groups, SID:%02X", tmcGapGroups[gIdx], sid)
		default:
			d.debug.Debug("type3A TMC: unallocated variant %d", variant)
		}
		return
	}

	d.debug.Debug("type3A: message: %s - aid: %04X", fmt.Sprintf("%04X", message), aid)
}
