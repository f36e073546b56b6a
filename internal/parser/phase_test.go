package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mskmysht/covid-treatment-sickbed/internal/entity"
	"github.com/mskmysht/covid-treatment-sickbed/internal/numeral"
)

func TestParsePhaseNormal(t *testing.T) {
	tests := []struct {
		in       string
		cur, max uint8
	}{
		{"２／２", 2, 2},
		{"1／3", 1, 3},
		{"２／3", 2, 3},
		{" ２ ／ ２ ", 2, 2},
	}

	for _, tt := range tests {
		p, err := ParsePhase(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, entity.PhaseModeNormal, p.Mode, tt.in)
		assert.Equal(t, tt.cur, p.Current, tt.in)
		assert.Equal(t, tt.max, p.Maximum, tt.in)
	}
}

func TestParsePhaseEmergency(t *testing.T) {
	tests := []struct {
		in       string
		cur, max uint8
	}{
		{"Ⅰ／Ⅱ", 1, 2},
		{"I／II", 1, 2},
		{"Ⅳ／Ⅸ", 4, 9},
		{"IV／IX", 4, 9},
	}

	for _, tt := range tests {
		p, err := ParsePhase(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, entity.PhaseModeEmergency, p.Mode, tt.in)
		assert.Equal(t, tt.cur, p.Current, tt.in)
		assert.Equal(t, tt.max, p.Maximum, tt.in)
	}
}

func TestParsePhaseNoSeparator(t *testing.T) {
	_, err := ParsePhase("2/2")
	require.Error(t, err)
}

func TestParsePhaseMixedSystems(t *testing.T) {
	// The numeral system is decided from the current side; a Roman maximum
	// after a digit current is a normalization failure, not a fallback.
	_, err := ParsePhase("２／Ⅱ")
	require.Error(t, err)

	var ferr *numeral.FormatError
	assert.True(t, errors.As(err, &ferr))
}

func TestParsePhaseBadRoman(t *testing.T) {
	_, err := ParsePhase("Ⅰ／A")
	require.Error(t, err)

	var rerr *numeral.RomanError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 'A', rerr.Rune)
}

func TestParsePhaseOverflow(t *testing.T) {
	// 8-bit target width; a longer digit run must fail, not wrap.
	_, err := ParsePhase("２５６／２５６")
	require.Error(t, err)
}
