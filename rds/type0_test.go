package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_decodeType0_emitsAFText(t *testing.T) {
	outbound := make(chan Record, 8)
	d := &Decoder{state: newParserState(), outbound: outbound}

	// AF1=229 (preamble, no decode), AF2=100 decodes to 97.50MHz once
	// band has been set VHF by a preamble code from a prior call.
	d.decodeType0(Group{B0: 0, B1: 0x0000, B2: (229 << 8) | 0, B3: 0x4142}, false)
	recs := drainSome(outbound, 3)
	afRec := recs[2]
	assert.Equal(t, RecordAF, afRec.Kind)
	assert.Equal(t, blankAF, afRec.Text)

	d.decodeType0(Group{B0: 0, B1: 0x0001, B2: (100 << 8) | 0, B3: 0x4344}, false)
	recs = drainSome(outbound, 3)
	afRec = recs[2]
	assert.Equal(t, "97.50MHz", afRec.Text)
}

func Test_decodeType0_versionB_leavesAFBlank(t *testing.T) {
	outbound := make(chan Record, 8)
	d := &Decoder{state: newParserState(), outbound: outbound}

	d.decodeType0(Group{B0: 0, B1: 0x0000, B2: 0xFFFF, B3: 0x4142}, true)
	recs := drainSome(outbound, 3)
	assert.Equal(t, blankAF, recs[2].Text)
}

func drainSome(ch chan Record, n int) []Record {
	recs := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, <-ch)
	}
	return recs
}
