package numeral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHalfDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"０", "0"},
		{"９", "9"},
		{"0", "0"},
		{"9", "9"},
		{"１１", "11"},
		{"1１1１1", "11111"},
		{"２０２２", "2022"},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := ToHalfDigits(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestToHalfDigitsIdempotent(t *testing.T) {
	once, err := ToHalfDigits("００１２３４５６７８９")
	require.NoError(t, err)

	twice, err := ToHalfDigits(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestToHalfDigitsInvalid(t *testing.T) {
	for _, in := range []string{"1 1", " ", "a", "12a", "１２月", "Ⅰ", "-1", "1.5"} {
		_, err := ToHalfDigits(in)
		require.Error(t, err, in)

		var ferr *FormatError
		assert.ErrorAs(t, err, &ferr, in)
	}
}

func TestParseRoman(t *testing.T) {
	tests := []struct {
		in   string
		want uint8
	}{
		{"I", 1},
		{"IV", 4},
		{"V", 5},
		{"IX", 9},
		{"Ⅰ", 1},
		{"Ⅱ", 2},
		{"Ⅲ", 3},
		{"Ⅳ", 4},
		{"Ⅴ", 5},
		{"Ⅵ", 6},
		{"Ⅶ", 7},
		{"Ⅷ", 8},
		{"Ⅸ", 9},
		{"ⅠⅤ", 4},
		{"ⅠⅩ", 9},
		{"II", 2},
		{"III", 3},
	}

	for _, tt := range tests {
		got, err := ParseRoman(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseRomanInvalid(t *testing.T) {
	for _, tt := range []struct {
		in   string
		char rune
	}{
		{"A", 'A'},
		{"1", '1'},
		{"１", '１'},
		{"X", 'X'},
		{"Ⅹ", 'Ⅹ'},
		{"IIA", 'A'},
		{" I", ' '},
	} {
		_, err := ParseRoman(tt.in)
		require.Error(t, err, tt.in)

		var rerr *RomanError
		require.ErrorAs(t, err, &rerr, tt.in)
		assert.Equal(t, tt.char, rerr.Rune, tt.in)
	}
}

func TestSystemOf(t *testing.T) {
	tests := []struct {
		r    rune
		sys  System
		know bool
	}{
		{'0', SystemASCII, true},
		{'9', SystemASCII, true},
		{'０', SystemFullwidth, true},
		{'９', SystemFullwidth, true},
		{'I', SystemRoman, true},
		{'Ⅰ', SystemRoman, true},
		{'Ⅸ', SystemRoman, true},
		{'Ⅹ', SystemRoman, true},
		{'a', 0, false},
		{' ', 0, false},
		{'年', 0, false},
	}

	for _, tt := range tests {
		sys, ok := SystemOf(tt.r)
		assert.Equal(t, tt.know, ok, string(tt.r))
		if tt.know {
			assert.Equal(t, tt.sys, sys, string(tt.r))
		}
	}
}
