package deducer

import (
	"iter"

	"sudoku-engine/internal/candidateset"
	"sudoku-engine/internal/combinator"
	"sudoku-engine/internal/evidence"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzle"
)

// nakedRound runs NakedDeduce@k (spec 4.6.3) over every house, in house
// iteration order (Row, Column, Block) and lexicographic combination
// order within each house. It yields one Step per house/combination that
// fires, and aborts (yielding a Paradox step with a non-nil error) the
// instant the pigeonhole case is hit.
func nakedRound(g *grid.Grid, p *puzzle.Puzzle, k int) iter.Seq2[evidence.Step, error] {
	return func(yield func(evidence.Step, error) bool) {
		for house := range g.IterHouses(nil) {
			cells := g.CellsOf(house)
			for combo := range combinator.Combinations(cells, k, struct{}{}, nil) {
				var union candidateset.Set
				for _, c := range combo {
					union = union.Union(p.Candidates(c))
				}

				if union.Size() < k {
					ev := evidence.NakedEvidence{LevelN: k, House: house, Cells: combo, Values: union}
					yield(evidence.Step{Evidence: evidence.Paradox{Inner: ev}}, evidence.Paradox{Inner: ev})
					return
				}
				if union.Size() > k {
					continue
				}

				var all []puzzle.Variation
				for _, common := range g.CommonHousesOf(combo, nil) {
					others := exclude(g.CellsOf(common), combo)
					all = append(all, p.RemoveCandidates(union, others)...)
				}
				if len(all) == 0 {
					continue
				}

				ev := evidence.NakedEvidence{LevelN: k, House: house, Cells: combo, Values: union}
				if !yield(evidence.Step{Evidence: ev, Mutations: all}, nil) {
					return
				}
			}
		}
	}
}

// exclude returns the cells in from that are not present in without.
func exclude(from, without []grid.Cell) []grid.Cell {
	if len(without) == 0 {
		return from
	}
	skip := make(map[grid.Cell]bool, len(without))
	for _, c := range without {
		skip[c] = true
	}
	out := make([]grid.Cell, 0, len(from))
	for _, c := range from {
		if !skip[c] {
			out = append(out, c)
		}
	}
	return out
}
