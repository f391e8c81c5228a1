package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_flags_String_lengthAndAlphabet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := flags{
			TP:    rapid.Bool().Draw(t, "TP"),
			TA:    rapid.Bool().Draw(t, "TA"),
			MuSp:  rapid.Bool().Draw(t, "MuSp"),
			MoSt:  rapid.Bool().Draw(t, "MoSt"),
			AH:    rapid.Bool().Draw(t, "AH"),
			CMP:   rapid.Bool().Draw(t, "CMP"),
			StPTY: rapid.Bool().Draw(t, "StPTY"),
		}
		s := f.String()
		assert.Len(t, s, 7)
		for _, c := range s {
			assert.True(t, c == '0' || c == '1')
		}
	})
}

func Test_parserState_reset_invariants(t *testing.T) {
	s := newParserState()
	s.psBuf[0] = 'X'
	s.rtBuf[0] = 'Y'
	s.rtAB = 1
	s.flags.TP = true
	s.pty = 9
	s.pi = 0xBEEF
	s.af.band = bandLFMF
	s.tmc.phase = tmcCollecting
	s.tmc.slots[0] = 42
	s.eonPS[0] = 'Z'

	s.reset()

	assert.Equal(t, "        ", string(s.psBuf[:]))
	assert.Equal(t, uint8(0), s.rtAB)
	for _, b := range s.rtBuf {
		assert.Equal(t, byte(' '), b)
	}
	assert.Equal(t, flags{}, s.flags)
	assert.Equal(t, uint8(0), s.pty)
	assert.Equal(t, uint16(0), s.pi)
	assert.Equal(t, tmcIdle, s.tmc.phase)
	assert.Empty(t, s.tmc.slots)
	assert.Equal(t, byte(' '), s.eonPS[0])
	assert.Equal(t, byte(0), s.eonPS[8])
}

func Test_psBuf_and_rtBuf_alwaysFixedWidth(t *testing.T) {
	s := newParserState()
	assert.Len(t, s.psBuf, 8)
	assert.Len(t, s.rtBuf, 64)
}
