// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package tables

// OptionalContentLengths gives the bit width of the content field
// following each of the 16 possible 4-bit optional-content labels, as
// ISO 14819-1 §7's free-format table prescribes. Label 0 is the stream
// terminator and carries no content; labels 1..15 carry the data
// fields.
var OptionalContentLengths = [16]uint{
	0:  0, // end of list
	1:  3, // duration
	2:  3, // control code
	3:  5, // length of the affected section
	4:  5, // speed limit advice
	5:  5, // quantifier: distance
	6:  8, // quantifier: time
	7:  8, // supplementary information
	8:  8, // start time
	9:  8, // stop time
	10: 8, // additional information
	11: 3, // diversion advice
	12: 3, // direction
	13: 5, // duration and persistence
	14: 8, // national/regional reservation
	15: 8, // national/regional reservation
}

// LabelDescriptions names each of the 16 optional-content labels.
var LabelDescriptions = [16]string{
	0:  "end of list",
	1:  "duration",
	2:  "control code",
	3:  "length affected",
	4:  "speed limit advice",
	5:  "quantifier (distance)",
	6:  "quantifier (time)",
	7:  "supplementary information",
	8:  "start time",
	9:  "stop time",
	10: "additional information",
	11: "diversion advice",
	12: "direction",
	13: "duration and persistence",
	14: "reserved for national use",
	15: "reserved for national use",
}
