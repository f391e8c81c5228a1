// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package tables

// Language is the 44-entry language name table, IEC 62106 Annex J
// (the first, 0..43, compatible block; the 128..255 extension block
// is not included, and LanguageName reports any type 1A variant 3
// value of 44 or above as "invalid", per spec.md §4.4).
var Language = [44]string{
	0:  "Unknown",
	1:  "Albanian",
	2:  "Breton",
	3:  "Catalan",
	4:  "Croatian",
	5:  "Welsh",
	6:  "Czech",
	7:  "Danish",
	8:  "German",
	9:  "English",
	10: "Spanish",
	11: "Esperanto",
	12: "Estonian",
	13: "Basque",
	14: "Faroese",
	15: "French",
	16: "Frisian",
	17: "Irish",
	18: "Gaelic",
	19: "Galician",
	20: "Icelandic",
	21: "Italian",
	22: "Lappish",
	23: "Latin",
	24: "Latvian",
	25: "Luxembourgian",
	26: "Lithuanian",
	27: "Hungarian",
	28: "Maltese",
	29: "Dutch",
	30: "Norwegian",
	31: "Occitan",
	32: "Polish",
	33: "Portuguese",
	34: "Romanian",
	35: "Romansh",
	36: "Serbian",
	37: "Slovak",
	38: "Slovene",
	39: "Finnish",
	40: "Swedish",
	41: "Turkish",
	42: "Flemish",
	43: "Walloon",
}

// LanguageName returns the name for code, or "invalid" if code is out
// of the table's 0..43 range.
func LanguageName(code uint16) string {
	if int(code) >= len(Language) {
		return "invalid"
	}
	return Language[code]
}
