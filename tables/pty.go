// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package tables holds the static reference data IEC 62106 and
// ISO 14819 prescribe: PTY names, country codes, coverage areas,
// group-type acronyms, language names, and the TMC tables. This is
// data, not logic, and is therefore compiled-in constants rather than
// something loaded or parsed at runtime.
package tables

// PTY is the 32-entry Programme Type name table, IEC 62106 Annex F.
// Index with a 5-bit PTY code (0..31); the caller must not index
// out of range even with adversarial input.
var PTY = [32]string{
	0:  "No programme type",
	1:  "News",
	2:  "Current Affairs",
	3:  "Information",
	4:  "Sport",
	5:  "Education",
	6:  "Drama",
	7:  "Culture",
	8:  "Science",
	9:  "Varied",
	10: "Pop Music",
	11: "Rock Music",
	12: "Easy Listening Music",
	13: "Light Classical",
	14: "Serious Classical",
	15: "Other Music",
	16: "Weather",
	17: "Finance",
	18: "Children's Programmes",
	19: "Social Affairs",
	20: "Religion",
	21: "Phone In",
	22: "Travel",
	23: "Leisure",
	24: "Jazz Music",
	25: "Country Music",
	26: "National Music",
	27: "Oldies Music",
	28: "Folk Music",
	29: "Documentary",
	30: "Alarm Test",
	31: "Alarm",
}

// PTYName returns the name for pty, or "invalid" if pty is out of the
// table's 0..31 range. The 5-bit field width means this can only
// happen with adversarial input, but the lookup must never panic.
func PTYName(pty uint8) string {
	if int(pty) >= len(PTY) {
		return "invalid"
	}
	return PTY[pty]
}
