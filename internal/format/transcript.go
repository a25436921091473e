package format

import (
	"fmt"
	"strings"

	"sudoku-engine/internal/evidence"
	"sudoku-engine/internal/grid"
)

// PrintStep renders one SolvingStep in the transcript format: a
// "[rule@level] ..." header with the evidence particulars, followed by
// one "=> cell rXcY remove <values>" line per mutation. A paradox step
// prefixes the header with "[paradox]" and has no mutation lines.
func PrintStep(step evidence.Step) (string, error) {
	ev := step.Evidence
	var b strings.Builder

	if px, ok := ev.(evidence.Paradox); ok {
		b.WriteString("[paradox]")
		ev = px.Inner
	}

	header, err := evidenceHeader(ev)
	if err != nil {
		return "", err
	}
	b.WriteString(header)
	b.WriteByte('\n')

	for _, m := range step.Mutations {
		removed, err := valuesString(m.Removed)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "=> cell %s remove \"%s\"\n", cellNotation(m.Cell), removed)
	}
	return b.String(), nil
}

func evidenceHeader(ev evidence.Evidence) (string, error) {
	switch e := ev.(type) {
	case evidence.NakedEvidence:
		values, err := valuesString(e.Values)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[naked@%d] %s cells %s values %q", e.LevelN, houseNotation(e.House), cellsNotation(e.Cells), values), nil

	case evidence.HiddenEvidence:
		values, err := valuesString(e.Values)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[hidden@%d] %s cells %s values %q", e.LevelN, houseNotation(e.House), cellsNotation(e.Cells), values), nil

	case evidence.LinkedEvidence:
		value, err := markerOf(e.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[linked@%d] %s %s -> %s %s value %q",
			e.LevelN, e.Kind, indicesNotation(e.Indices), e.OrthKind, indicesNotation(e.OrthIndices), string(value)), nil

	case evidence.GuessEvidence:
		candidates, err := valuesString(e.Candidates)
		if err != nil {
			return "", err
		}
		chosen, err := markerOf(e.Chosen)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[guess@%d] cell %s chosen %q candidates %q", e.LevelN, cellNotation(e.Cell), string(chosen), candidates), nil

	default:
		return "", fmt.Errorf("format: unknown evidence type %T", ev)
	}
}

func cellNotation(c grid.Cell) string {
	return fmt.Sprintf("r%dc%d", c.Row+1, c.Col+1)
}

func houseNotation(h grid.House) string {
	return fmt.Sprintf("%s %d", h.Kind, h.Index+1)
}

func cellsNotation(cells []grid.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = cellNotation(c)
	}
	return strings.Join(parts, ",")
}

func indicesNotation(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = fmt.Sprintf("%d", idx+1)
	}
	return strings.Join(parts, ",")
}
