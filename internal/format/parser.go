package format

import (
	"fmt"
	"strings"

	"sudoku-engine/internal/candidateset"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzle"
)

// ParsePuzzle reads the puzzle file format documented in section 6 into a
// Puzzle over g: one non-blank line per row, blank lines (block band
// separators) ignored, each row tokenized into exactly g.N cell tokens.
func ParsePuzzle(g *grid.Grid, text string) (*puzzle.Puzzle, error) {
	p := puzzle.New(g)
	row := 0

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if row >= g.N {
			return nil, fmt.Errorf("format: more than %d non-blank rows", g.N)
		}

		tokens, err := tokenize(line, g.N)
		if err != nil {
			return nil, fmt.Errorf("format: row %d: %w", row, err)
		}
		if len(tokens) != g.N {
			return nil, fmt.Errorf("format: row %d has %d tokens, want %d", row, len(tokens), g.N)
		}

		for col, tok := range tokens {
			set, err := parseToken(tok, g.N)
			if err != nil {
				return nil, fmt.Errorf("format: row %d col %d: %w", row, col, err)
			}
			p.SetCandidates(grid.Cell{Row: row, Col: col}, set)
		}
		row++
	}

	if row != g.N {
		return nil, fmt.Errorf("format: got %d non-blank rows, want %d", row, g.N)
	}
	return p, nil
}

// tokenize splits one row line into its cell tokens. A bracket group
// "[...]" is always read as one token, spaces and all, up to its closing
// bracket. Outside brackets: when n <= 9 every non-space rune is its own
// token (markers are never separated); when n > 9 tokens are whitespace
// delimited, per section 6.
func tokenize(line string, n int) ([]string, error) {
	runes := []rune(line)
	var tokens []string
	i := 0
	for i < len(runes) {
		if runes[i] == ' ' || runes[i] == '\t' {
			i++
			continue
		}
		if runes[i] == '[' {
			j := i + 1
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				return nil, fmt.Errorf("unterminated '[' in %q", line)
			}
			tokens = append(tokens, string(runes[i:j+1]))
			i = j + 1
			continue
		}
		if n <= 9 {
			tokens = append(tokens, string(runes[i]))
			i++
			continue
		}
		j := i
		for j < len(runes) && runes[j] != ' ' && runes[j] != '\t' && runes[j] != '[' {
			j++
		}
		tokens = append(tokens, string(runes[i:j]))
		i = j
	}
	return tokens, nil
}

// parseToken interprets one cell token: "*" (all candidates), a single
// marker (solved cell), "[ABC]"/"[A B C]" (restrict to set), or
// "[^ABC]"/"[^A B C]" (restrict to complement).
func parseToken(tok string, n int) (candidateset.Set, error) {
	if tok == "*" {
		return candidateset.Full(n), nil
	}

	if strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]") {
		inner := tok[1 : len(tok)-1]
		negate := strings.HasPrefix(inner, "^")
		if negate {
			inner = inner[1:]
		}

		markers := splitMarkers(inner, n)
		var set candidateset.Set
		for _, m := range markers {
			if len(m) == 0 {
				continue
			}
			v, err := valueOfMarker(m[0])
			if err != nil {
				return 0, err
			}
			set = set.Union(candidateset.Of(v))
		}
		if negate {
			set = candidateset.Full(n).Subtract(set)
		}
		return set, nil
	}

	if len(tok) != 1 {
		return 0, fmt.Errorf("%q is not a single-character marker", tok)
	}
	v, err := valueOfMarker(tok[0])
	if err != nil {
		return 0, err
	}
	return candidateset.Of(v), nil
}

// splitMarkers splits a bracket body into individual marker strings: by
// rune when n <= 9 (markers run together, e.g. "ABC"), by whitespace
// otherwise (e.g. "A B C").
func splitMarkers(inner string, n int) []string {
	if n <= 9 {
		runes := []rune(inner)
		out := make([]string, 0, len(runes))
		for _, r := range runes {
			if r == ' ' || r == '\t' {
				continue
			}
			out = append(out, string(r))
		}
		return out
	}
	return strings.Fields(inner)
}
