package rds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_decodeType8A_singleGroupEvent(t *testing.T) {
	outbound := make(chan Record, 8)
	d := &Decoder{state: newParserState(), outbound: outbound}

	// T=0 (bit4), F=1 (bit3): single-group message. dp_ci=3.
	g := Group{B0: 0, B1: 0x0008 | 0x3, B2: 0x0010, B3: 0x1234}
	d.decodeType8A(g)

	close(outbound)
	var recs []Record
	for r := range outbound {
		recs = append(recs, r)
	}
	assert.Len(t, recs, 1)
	assert.Equal(t, RecordDiagnostic, recs[0].Kind)
	assert.Contains(t, recs[0].Text, "1234")
}

func Test_decodeType8A_multiGroupReassembly_triggersOptionalContent(t *testing.T) {
	outbound := make(chan Record, 16)
	d := &Decoder{state: newParserState(), outbound: outbound}

	// First of multi-group: T=0 (bit4 clear), F=0 (bit3 clear), D=1 (B2 bit15).
	head := Group{B0: 0, B1: 0x0000, B2: 0x8000, B3: 0x0000}
	d.decodeType8A(head)
	assert.Equal(t, tmcCollecting, d.state.tmc.phase)

	// Continuation group gsi=0, sg=0 (single continuation arriving
	// last, so expectedGroups is left unknown). Its 28-bit payload is
	// built MSB-first as label=1 (duration, 3-bit content) with
	// content=5, followed immediately by the label=0 terminator:
	// 0001 101 0000 <17 bits of padding, never read>.
	// The top 12 bits (0001 1010 0000 = 0x1A0) land in B2's low 12
	// bits; the remaining 16 bits are all zero, landing in B3.
	cont := Group{B0: 0, B1: 0x0000, B2: 0x01A0, B3: 0x0000}
	d.decodeType8A(cont)

	// gsi==0 drains and resets the assembly back to idle.
	assert.Equal(t, tmcIdle, d.state.tmc.phase)

	close(outbound)
	var optionalContent []string
	for r := range outbound {
		if r.Kind == RecordDiagnostic && strings.Contains(r.Text, "tmc optional content:") {
			optionalContent = append(optionalContent, r.Text)
		}
	}
	// Exactly one label decoded before the terminator, with the
	// correct description and numeric content.
	assert.Equal(t, []string{"tmc optional content: duration=5"}, optionalContent)
}

func Test_decodeType8A_continuationWithoutHead_dropped(t *testing.T) {
	outbound := make(chan Record, 8)
	d := &Decoder{state: newParserState(), outbound: outbound}

	cont := Group{B0: 0, B1: 0x0000, B2: 0x0000, B3: 0x0000}
	d.decodeType8A(cont)

	assert.Equal(t, tmcIdle, d.state.tmc.phase)
	assert.Empty(t, d.state.tmc.slots)
}
