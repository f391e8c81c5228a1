// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rds

import "fmt"

// decodeAF is RDS AF method A (spec.md §4.2), grounded in decode_af()
// of the original gr-rds implementation. It is a (code, *afState) ->
// frequency function: stateful across calls (it remembers the band
// selected by the most recent preamble code) but pure given that
// state, which is what spec.md §8 property 3 requires.
//
// Returns 0 when no frequency is decoded.
func decodeAF(st *afState, code uint8) float64 {
	switch {
	case code == 0, code == 205, code >= 206 && code <= 223, code == 224, code >= 251:
		st.expectedCount = 0
		return 0

	case code >= 225 && code <= 249:
		st.band = bandVHF
		st.expectedCount = code - 224
		return 0

	case code == 250:
		st.band = bandLFMF
		st.expectedCount = 1
		return 0

	case code >= 1 && code <= 204 && st.band == bandVHF:
		return float64(uint32(code)+875) * 100

	case code >= 1 && code <= 15 && st.band == bandLFMF:
		return float64(int32(code)-1)*9 + 153

	case code >= 16 && code <= 135 && st.band == bandLFMF:
		return float64(int32(code)-16)*9 + 531

	default:
		return 0
	}
}

// formatAF renders a decoded AF frequency as spec.md §4.3 directs:
// "%.2fMHz" above 2000 kHz (VHF), "%dkHz" otherwise. Returns "" when
// freq is 0 (no decode).
func formatAF(freq float64) string {
	if freq == 0 {
		return ""
	}
	if freq > 2000 {
		return fmt.Sprintf("%.2fMHz", freq/1000)
	}
	return fmt.Sprintf("%dkHz", int(freq))
}

// afField renders the joined AF text field from two 8-bit AF codes
// per spec.md §4.3: each slot that decodes is formatted, two decoded
// slots are joined with ", ", and a blank string is returned when
// neither decodes.
func afField(st *afState, code1, code2 uint8) string {
	s1 := formatAF(decodeAF(st, code1))
	s2 := formatAF(decodeAF(st, code2))
	switch {
	case s1 != "" && s2 != "":
		return s1 + ", " + s2
	case s1 != "":
		return s1
	case s2 != "":
		return s2
	default:
		return ""
	}
}
