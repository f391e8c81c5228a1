package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_decodeType1A_doesNotPanicAcrossVariants(t *testing.T) {
	d := &Decoder{state: newParserState()}
	for variant := uint16(0); variant < 8; variant++ {
		g := Group{B0: 0xE0F0, B1: 0x0000, B2: variant << 12, B3: 0x0000}
		assert.NotPanics(t, func() { d.decodeType1A(g) })
	}
}

func Test_decodeType3A_TMCVariants(t *testing.T) {
	d := &Decoder{state: newParserState()}

	// app_group=8, app_ver=0 (A): TMC announcement, variant 0.
	g := Group{B0: 0, B1: 0x0010, B2: 0x0000, B3: 0x1234}
	assert.NotPanics(t, func() { d.decodeType3A(g) })

	// variant 1: gap/SID.
	g = Group{B0: 0, B1: 0x0010, B2: 0x4000, B3: 0x1234}
	assert.NotPanics(t, func() { d.decodeType3A(g) })

	// non-TMC AID.
	g = Group{B0: 0, B1: 0x0002, B2: 0x5555, B3: 0xAAAA}
	assert.NotPanics(t, func() { d.decodeType3A(g) })
}
