package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_decodeType14A_EONPS(t *testing.T) {
	outbound := make(chan Record, 8)
	d := &Decoder{state: newParserState(), outbound: outbound}

	g := Group{B0: 0, B1: 0x0000, B2: 0x4142, B3: 0x0000}
	d.decodeType14A(g)

	assert.Equal(t, byte('A'), d.state.eonPS[0])
	assert.Equal(t, byte('B'), d.state.eonPS[1])
	close(outbound)
}

func Test_decodeType14A_PIOnVariant13_doesNotPanic(t *testing.T) {
	outbound := make(chan Record, 8)
	d := &Decoder{state: newParserState(), outbound: outbound}

	g := Group{B0: 0, B1: 0x000D, B2: 0x0000, B3: 0xBEEF}
	assert.NotPanics(t, func() { d.decodeType14A(g) })
	close(outbound)
}
