// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rds

// flags consolidates the seven single-character per-station booleans
// into one named-field record (Redesign Guidance #1) instead of
// scattering them as standalone booleans. The flag-string record is
// derived from these by formatting, never stored pre-formatted.
type flags struct {
	TP    bool // traffic programme
	TA    bool // traffic announcement
	MuSp  bool // music/speech
	MoSt  bool // mono/stereo (DI, segment 0)
	AH    bool // artificial head (DI, segment 1)
	CMP   bool // compressed (DI, segment 2)
	StPTY bool // static PTY (DI, segment 3)
}

// String renders the seven flags in TP,TA,MuSp,MoSt,AH,CMP,stPTY order
// as spec.md §4.3/§6 require: seven characters, each '0' or '1'.
func (f flags) String() string {
	b := [7]byte{}
	put := func(i int, v bool) {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	put(0, f.TP)
	put(1, f.TA)
	put(2, f.MuSp)
	put(3, f.MoSt)
	put(4, f.AH)
	put(5, f.CMP)
	put(6, f.StPTY)
	return string(b[:])
}

// band is the AF decoder's currently selected frequency band.
type band uint8

const (
	bandVHF band = iota
	bandLFMF
)

// afState is method-A AF follow-on state (Redesign Guidance #2): what
// used to be static local variables inside decode_af in the original
// implementation now live as ordinary parser-state fields so reset
// truly resets everything.
type afState struct {
	band          band
	expectedCount uint8 // informational only, per spec.md §3
}

// tmcPhase is the TMC reassembly state machine's phase (Redesign
// Guidance #3): {Idle, Collecting(expectedGroups, slots)}.
type tmcPhase uint8

const (
	tmcIdle tmcPhase = iota
	tmcCollecting
)

// tmcExpectedGroupsUnknown marks expectedGroups as not yet observed
// (Open Question #2: the original never initialises this field before
// the conditional assignment from gsi).
const tmcExpectedGroupsUnknown = 0xFF

// tmcAssembly is the multi-group TMC reassembly buffer.
type tmcAssembly struct {
	phase          tmcPhase
	expectedGroups uint8
	slots          map[uint8]uint32 // gsi (0..3) -> 28-bit payload
}

func newTMCAssembly() tmcAssembly {
	return tmcAssembly{phase: tmcIdle, expectedGroups: tmcExpectedGroupsUnknown, slots: make(map[uint8]uint32, 4)}
}

// parserState is the accumulating decoded view of the current
// station (spec.md §3). It is created once at Decoder construction,
// mutated only by the dispatcher's single-consumer stream of inbound
// groups, and reset atomically by Decoder.Reset.
type parserState struct {
	pi  uint16
	pty uint8

	flags flags

	psBuf [8]byte

	rtBuf [64]byte
	rtAB  uint8 // last observed A/B toggle bit

	af afState

	tmc tmcAssembly

	eonPS [9]byte // 8 chars + NUL terminator
}

// newParserState builds a parser state with every field at its
// spec'd initial value.
func newParserState() parserState {
	var s parserState
	s.reset()
	return s
}

// reset re-initialises every field to its initial value. Observers
// (via Decoder.Reset, which holds the decoder mutex for the duration
// of this call) never see a partially reset state because this
// method does not yield.
func (s *parserState) reset() {
	for i := range s.psBuf {
		s.psBuf[i] = ' '
	}
	for i := range s.rtBuf {
		s.rtBuf[i] = ' '
	}
	s.rtAB = 0
	s.flags = flags{}
	s.pty = 0
	s.pi = 0
	s.af = afState{}
	s.tmc = newTMCAssembly()
	for i := range s.eonPS {
		s.eonPS[i] = ' '
	}
	s.eonPS[8] = 0
}
