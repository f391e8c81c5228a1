// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rds

import (
	"fmt"
	"math"
	"time"

	"github.com/lestrrat-go/strftime"
)

// clockTimePattern is the package-level strftime layout, passed to
// strftime.Format (which parses it) on every clock-time group;
// spec.md §4.7's "DD.MM.YYYY, HH:MM" portion of the clock record is
// exactly strftime's "%d.%m.%Y, %H:%M" — the offset suffix is appended separately since
// it carries an explicit sign the standard library/strftime layout
// languages don't express directly.
const clockTimePattern = "%d.%m.%Y, %H:%M"

// decodeType4A implements spec.md §4.7, Clock-Time, including the
// classical MJD -> Gregorian-date reduction.
func (d *Decoder) decodeType4A(g Group) {
	mjd := (uint32(g.B1&0x3) << 15) | (uint32(g.B2>>1) & 0x7FFF)
	hours := (uint32(g.B2&1) << 4) | (uint32(g.B3>>12) & 0xF)
	minutes := uint32(g.B3>>6) & 0x3F
	offsetHalfHours := int32(g.B3 & 0x1F)
	if bit(g.B3, 5) {
		offsetHalfHours = -offsetHalfHours
	}

	year, month, day := mjdToDate(mjd)

	t := time.Date(year, time.Month(month), day, int(hours), int(minutes), 0, 0, time.UTC)
	datePart, err := strftime.Format(clockTimePattern, t)
	if err != nil {
		d.log.Error("clocktime: strftime format failed: %v", err)
		return
	}

	offset := float64(offsetHalfHours) / 2.0
	text := fmt.Sprintf("%s (%+.1fh)", datePart, offset)
	d.emit(RecordClockTime, text)
}

// mjdToDate is the classical Modified Julian Date reduction of
// spec.md §4.7, following the original gr-rds implementation (which in
// turn follows the standard's Annex G): a single floor division
// produces yy, not a truncate-then-divide-then-truncate-again, or the
// reduction is wrong for roughly one day in 350 across the range.
func mjdToDate(mjd uint32) (year, month, day int) {
	yy := int(math.Floor((float64(mjd) - 15078.2) / 365.25))
	mm := int((float64(mjd) - 14956.1 - float64(int(float64(yy)*365.25))) / 30.6001)
	dd := int(mjd) - 14956 - int(float64(yy)*365.25) - int(float64(mm)*30.6001)

	k := 0
	if mm == 14 || mm == 15 {
		k = 1
	}
	year = 1900 + yy + k
	month = mm - 1 - 12*k
	day = dd
	return
}
