package deducer

import (
	"iter"

	"sudoku-engine/internal/candidateset"
	"sudoku-engine/internal/combinator"
	"sudoku-engine/internal/evidence"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzle"
)

// hiddenRound runs HiddenDeduce@k (spec 4.6.4) over every house and
// every size-k subset of values. The block/line ("pointing", "claiming")
// elimination falls out of commonHousesOf as a side effect of the
// general rule, not as a separate pass — see DESIGN.md.
func hiddenRound(g *grid.Grid, p *puzzle.Puzzle, k int) iter.Seq2[evidence.Step, error] {
	values := make([]int, g.N)
	for v := range values {
		values[v] = v
	}

	return func(yield func(evidence.Step, error) bool) {
		for house := range g.IterHouses(nil) {
			houseCells := g.CellsOf(house)
			kind := house.Kind

			for combo := range combinator.Combinations(values, k, struct{}{}, nil) {
				v := candidateset.Of(combo...)

				var c []grid.Cell
				for _, cell := range houseCells {
					if p.Candidates(cell).ContainsAny(v) {
						c = append(c, cell)
					}
				}

				if len(c) < k {
					ev := evidence.HiddenEvidence{LevelN: k, House: house, Values: v, Cells: c}
					yield(evidence.Step{Evidence: evidence.Paradox{Inner: ev}}, evidence.Paradox{Inner: ev})
					return
				}

				var all []puzzle.Variation
				for _, other := range g.CommonHousesOf(c, &kind) {
					others := exclude(g.CellsOf(other), c)
					all = append(all, p.RemoveCandidates(v, others)...)
				}
				if len(c) == k {
					all = append(all, p.RetainCandidates(v, c)...)
				}
				if len(all) == 0 {
					continue
				}

				ev := evidence.HiddenEvidence{LevelN: k, House: house, Values: v, Cells: c}
				if !yield(evidence.Step{Evidence: ev, Mutations: all}, nil) {
					return
				}
			}
		}
	}
}
