// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rds

import (
	"fmt"

	"github.com/rob-gra/go-rds/tables"
)

// decodeType1A implements spec.md §4.4, Slow Labelling (version A
// only; version B carries no slow-labelling payload and is ignored
// per the dispatch table in spec.md §4.1).
func (d *Decoder) decodeType1A(g Group) {
	variant := uint8(field(g.B2, 12, 3))
	slowLabel := field(g.B2, 0, 12)

	switch variant {
	case 0:
		paging := uint8(field(slowLabel, 8, 4))
		ecc := uint8(slowLabel & 0xFF)
		country := g.country()
		if ecc >= 224 && ecc <= 228 {
			d.debug.Debug("type1A variant 0: paging=%d ecc=%d country=%s", paging, ecc,
				tables.ExtendedCountryName(country, ecc))
		} else {
			d.debug.Debug("type1A variant 0: paging=%d ecc=%d invalid", paging, ecc)
		}
	case 1:
		d.debug.Debug("type1A variant 1: TMC identification")
	case 2:
		d.debug.Debug("type1A variant 2: Paging identification")
	case 3:
		d.debug.Debug("type1A variant 3: language=%s", tables.LanguageName(slowLabel))
	default:
		// variants 4..7 are not allocated by the standard; ignored.
	}

	// Program-item day/hour/minute, decoded unconditionally regardless
	// of variant (original gr-rds prints this whenever non-zero) —
	// spec.md §4.4 keeps this line; SPEC_FULL.md's Supplemented Features
	// #2 also restores the paging-codes trace the distillation dropped.
	pagingCodes := uint8(g.B1 & 0x1F)
	if pagingCodes != 0 {
		d.debug.Debug("type1A: paging codes=%d", pagingCodes)
	}
	day := field(g.B3, 11, 5)
	hour := field(g.B3, 6, 5)
	minute := field(g.B3, 0, 6)
	if day != 0 || hour != 0 || minute != 0 {
		d.debug.Debug("type1A: programme item %s", fmt.Sprintf("%dd, %d:%d", day, hour, minute))
	}
}
