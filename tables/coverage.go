// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package tables

// CoverageArea is the 16-entry PI area-coverage name table, IEC 62106
// Annex D.1. Index with the 4-bit area field.
var CoverageArea = [16]string{
	0:  "Local",
	1:  "International",
	2:  "National",
	3:  "Supra-regional",
	4:  "Regional 1",
	5:  "Regional 2",
	6:  "Regional 3",
	7:  "Regional 4",
	8:  "Regional 5",
	9:  "Regional 6",
	10: "Regional 7",
	11: "Regional 8",
	12: "Regional 9",
	13: "Regional 10",
	14: "Regional 11",
	15: "Regional 12",
}

// CoverageAreaName returns the name for area, or "invalid" if area is
// out of the table's 0..15 range (unreachable given the 4-bit field
// width, but the lookup must never panic on adversarial input).
func CoverageAreaName(area uint8) string {
	if int(area) >= len(CoverageArea) {
		return "invalid"
	}
	return CoverageArea[area]
}
