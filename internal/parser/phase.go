// Package parser turns the report's human-authored strings (phase cells,
// dated titles) into typed values.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mskmysht/covid-treatment-sickbed/internal/entity"
	"github.com/mskmysht/covid-treatment-sickbed/internal/numeral"
)

// The report separates current and maximum phase with a full-width solidus.
const phaseSeparator = "／"

// PhaseCapture holds the two raw sides of a phase cell before their numeral
// system has been resolved.
type PhaseCapture struct {
	Current string
	Maximum string
}

// ParsePhase reads a "current／maximum" phase cell. Plain (ASCII or
// full-width) digits mean the normal phase scale; Roman numerals mean the
// prefecture is on the emergency scale. The numeral system is decided from
// the current side alone — the document always writes both sides in one
// system, and this parser assumes that rather than verifying it.
func ParsePhase(s string) (entity.Phase, error) {
	rawCur, rawMax, found := strings.Cut(s, phaseSeparator)
	if !found {
		return entity.Phase{}, fmt.Errorf("no %s separator in phase cell %q", phaseSeparator, s)
	}

	capture := PhaseCapture{
		Current: strings.TrimSpace(rawCur),
		Maximum: strings.TrimSpace(rawMax),
	}

	if cur, err := numeral.ToHalfDigits(capture.Current); err == nil {
		max, err := numeral.ToHalfDigits(capture.Maximum)
		if err != nil {
			return entity.Phase{}, fmt.Errorf("cannot normalize maximum phase %q: %w", capture.Maximum, err)
		}

		c, err := strconv.ParseUint(cur, 10, 8)
		if err != nil {
			return entity.Phase{}, fmt.Errorf("cannot convert current phase %q: %w", cur, err)
		}

		m, err := strconv.ParseUint(max, 10, 8)
		if err != nil {
			return entity.Phase{}, fmt.Errorf("cannot convert maximum phase %q: %w", max, err)
		}

		return entity.Phase{
			Current: uint8(c),
			Maximum: uint8(m),
			Mode:    entity.PhaseModeNormal,
		}, nil
	}

	c, err := numeral.ParseRoman(capture.Current)
	if err != nil {
		return entity.Phase{}, fmt.Errorf("cannot decode current phase %q: %w", capture.Current, err)
	}

	m, err := numeral.ParseRoman(capture.Maximum)
	if err != nil {
		return entity.Phase{}, fmt.Errorf("cannot decode maximum phase %q: %w", capture.Maximum, err)
	}

	return entity.Phase{
		Current: c,
		Maximum: m,
		Mode:    entity.PhaseModeEmergency,
	}, nil
}
