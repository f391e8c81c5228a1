// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package tables

// TMCDuration is the 8-entry duration/persistence table, ISO 14819-2
// Annex, indexed by the 3-bit "dp_ci" field of a single-group TMC
// message (spec.md §4.8). Column 0 is the human-readable duration;
// column 1 notes whether the event is expected to persist.
var TMCDuration = [8][2]string{
	0: {"no duration", "short term"},
	1: {"15 minutes", "short term"},
	2: {"30 minutes", "short term"},
	3: {"1 hour", "short term"},
	4: {"2 hours", "long term"},
	5: {"3 hours", "long term"},
	6: {"4 hours", "long term"},
	7: {"rest of day", "long term"},
}

// TMCDurationText returns TMCDuration[dpCi][0], or "invalid" if dpCi
// is out of range (unreachable given the 3-bit field width).
func TMCDurationText(dpCi uint8) string {
	if int(dpCi) >= len(TMCDuration) {
		return "invalid"
	}
	return TMCDuration[dpCi][0]
}
