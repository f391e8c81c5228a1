// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package tables

// GroupAcronyms is the 32-entry (16 group types × {A, B}) short-name
// table used for debug tracing, IEC 62106 Table 3.
var GroupAcronyms = [16][2]string{
	0:  {"BASIC", "BASIC"},
	1:  {"PIN/SL", "PIN"},
	2:  {"RT", "RT"},
	3:  {"AID", "AID (unallocated B)"},
	4:  {"CT", "unallocated"},
	5:  {"TDC", "TDC"},
	6:  {"IH", "IH"},
	7:  {"RP", "RP (unallocated B)"},
	8:  {"TMC", "unallocated"},
	9:  {"EWS", "EWS"},
	10: {"PTYN", "unallocated"},
	11: {"unallocated", "unallocated"},
	12: {"unallocated", "unallocated"},
	13: {"unallocated", "unallocated"},
	14: {"EON", "EON"},
	15: {"unallocated", "FAST SWITCHING"},
}

// GroupAcronym returns the acronym for (groupType, versionB), or
// "unknown" if groupType is out of the table's 0..15 range
// (unreachable given the 4-bit field width, but guarded per
// spec.md §7's "internal logic error" case).
func GroupAcronym(groupType uint8, versionB bool) string {
	if int(groupType) >= len(GroupAcronyms) {
		return "unknown"
	}
	if versionB {
		return GroupAcronyms[groupType][1]
	}
	return GroupAcronyms[groupType][0]
}
