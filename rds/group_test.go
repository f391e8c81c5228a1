package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_parseGroup_wrongSize(t *testing.T) {
	_, ok := parseGroup([]byte{1, 2, 3})
	assert.False(t, ok)
}

func Test_parseGroup_littleEndian(t *testing.T) {
	g, ok := parseGroup([]byte{0x34, 0x12, 0, 0, 0, 0, 0, 0})
	assert.True(t, ok)
	assert.Equal(t, uint16(0x1234), g.B0)
}

func Test_bit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := uint16(rapid.Uint16().Draw(t, "word"))
		pos := rapid.UintRange(0, 15).Draw(t, "pos")
		got := bit(word, pos)
		want := (word>>pos)&1 == 1
		assert.Equal(t, want, got)
	})
}

func Test_PI_record_is_four_uppercase_hex(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b0 := uint16(rapid.Uint16().Draw(t, "b0"))
		g := Group{B0: b0}
		text := formatPI(g)
		assert.Len(t, text, 4)
		assert.Regexp(t, "^[0-9A-F]{4}$", text)
	})
}
