package format

import (
	"strings"

	"sudoku-engine/internal/candidateset"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzle"
)

// PrintPuzzle renders p in the puzzle file format: one line per row, a
// blank line after every BlockHeight rows (except the last band), cells
// space-separated when g.N > 9. Every cell prints as a solved marker, a
// "*" for the full candidate set, or a bracketed ascending marker list —
// never the negated form, which is parse-only.
func PrintPuzzle(p *puzzle.Puzzle) (string, error) {
	g := p.Grid()
	var b strings.Builder

	for row := 0; row < g.N; row++ {
		if row > 0 && row%g.BlockHeight == 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.N; col++ {
			if col > 0 && g.N > 9 {
				b.WriteByte(' ')
			}
			tok, err := printToken(p.Candidates(grid.Cell{Row: row, Col: col}), g.N)
			if err != nil {
				return "", err
			}
			b.WriteString(tok)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func printToken(vs candidateset.Set, n int) (string, error) {
	if v, ok := vs.Only(); ok {
		m, err := markerOf(v)
		if err != nil {
			return "", err
		}
		return string(m), nil
	}
	if vs.Equals(candidateset.Full(n)) {
		return "*", nil
	}

	body, err := valuesString(vs)
	if err != nil {
		return "", err
	}
	if n > 9 {
		parts := make([]string, len(body))
		for i, r := range []byte(body) {
			parts[i] = string(r)
		}
		body = strings.Join(parts, " ")
	}
	return "[" + body + "]", nil
}
