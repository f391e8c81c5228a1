package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_decodeAF_preambleCodes(t *testing.T) {
	var st afState
	freq := decodeAF(&st, 229)
	assert.Equal(t, 0.0, freq)
	assert.Equal(t, bandVHF, st.band)
	assert.Equal(t, uint8(5), st.expectedCount)

	freq = decodeAF(&st, 100)
	assert.Equal(t, 97500.0, freq)

	decodeAF(&st, 250)
	freq = decodeAF(&st, 10)
	assert.Equal(t, 234.0, freq)
}

func Test_decodeAF_pureGivenState(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := uint8(rapid.IntRange(0, 255).Draw(t, "code"))
		st1 := afState{band: band(rapid.IntRange(0, 1).Draw(t, "band")), expectedCount: 0}
		st2 := st1

		f1 := decodeAF(&st1, code)
		f2 := decodeAF(&st2, code)
		assert.Equal(t, f1, f2)
		assert.Equal(t, st1, st2)
	})
}

func Test_decodeAF_VHFRangeBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := uint8(rapid.IntRange(1, 204).Draw(t, "code"))
		st := afState{band: bandVHF}
		freq := decodeAF(&st, code)
		assert.GreaterOrEqual(t, freq, 87600.0)
		assert.LessOrEqual(t, freq, 107900.0)
	})
}

func Test_formatAF(t *testing.T) {
	assert.Equal(t, "", formatAF(0))
	assert.Equal(t, "97.50MHz", formatAF(97500))
	assert.Equal(t, "234kHz", formatAF(234))
}
