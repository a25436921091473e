// Package format implements the two textual collaborator formats
// documented alongside the solver core: the puzzle file format (parser
// and printer) and the step transcript format used to narrate a
// SolvingStep stream. Neither format is part of the core's library
// contract; both exist purely so a CLI or test can round-trip a puzzle
// through text.
package format

import (
	"fmt"
	"strings"

	"sudoku-engine/internal/candidateset"
	"sudoku-engine/pkg/constants"
)

// markerOf returns the single uppercase marker character for value v.
func markerOf(v int) (byte, error) {
	if v < 0 || v >= len(constants.MarkerAlphabet) {
		return 0, fmt.Errorf("format: value %d has no marker in the alphabet", v)
	}
	return constants.MarkerAlphabet[v], nil
}

// valueOfMarker returns the value denoted by a single marker character,
// case-insensitively.
func valueOfMarker(m byte) (int, error) {
	upper := strings.ToUpper(string(m))
	idx := strings.IndexByte(constants.MarkerAlphabet, upper[0])
	if idx < 0 {
		return 0, fmt.Errorf("format: %q is not a marker in the alphabet", m)
	}
	return idx, nil
}

// valuesString renders vs as an ascending, comma-free run of markers,
// e.g. "ABC" for {0,1,2}. Used both by the puzzle printer's bracket form
// and by the transcript's "quoted markers" particulars.
func valuesString(vs candidateset.Set) (string, error) {
	var b strings.Builder
	for _, v := range vs.Values() {
		m, err := markerOf(v)
		if err != nil {
			return "", err
		}
		b.WriteByte(m)
	}
	return b.String(), nil
}
