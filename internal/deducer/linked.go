package deducer

import (
	"iter"

	"sudoku-engine/internal/candidateset"
	"sudoku-engine/internal/combinator"
	"sudoku-engine/internal/evidence"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzle"
)

// linkedRound runs LinkedDeduce@k (spec 4.6.5, the "fish" family: X-Wing
// at k=2, Swordfish at k=3, ...) for both orientations (Row/Column and
// Column/Row), every candidate value, and every size-k subset of the
// primary orientation's house indices.
func linkedRound(g *grid.Grid, p *puzzle.Puzzle, k int) iter.Seq2[evidence.Step, error] {
	orientations := [2][2]grid.HouseKind{
		{grid.Row, grid.Column},
		{grid.Column, grid.Row},
	}
	indices := make([]int, g.N)
	for i := range indices {
		indices[i] = i
	}

	return func(yield func(evidence.Step, error) bool) {
		for v := 0; v < g.N; v++ {
			value := candidateset.Of(v)

			for _, orient := range orientations {
				kind, orthKind := orient[0], orient[1]

				for combo := range combinator.Combinations(indices, k, struct{}{}, nil) {
					jSet := make(map[int]bool)
					for _, i := range combo {
						for j := 0; j < g.N; j++ {
							cell, err := g.IntersectCellOf(kind, i, j)
							if err != nil {
								continue
							}
							if p.Candidates(cell).ContainsAny(value) {
								jSet[j] = true
							}
						}
					}

					if len(jSet) < k {
						ev := evidence.LinkedEvidence{LevelN: k, Value: v, Kind: kind, OrthKind: orthKind, Indices: combo, OrthIndices: sortedKeys(jSet)}
						yield(evidence.Step{Evidence: evidence.Paradox{Inner: ev}}, evidence.Paradox{Inner: ev})
						return
					}
					if len(jSet) > k {
						continue
					}

					inCombo := make(map[int]bool, len(combo))
					for _, i := range combo {
						inCombo[i] = true
					}

					var all []puzzle.Variation
					orthIndices := sortedKeys(jSet)
					for _, j := range orthIndices {
						orthHouse := grid.House{Kind: orthKind, Index: j}
						var targets []grid.Cell
						for _, cell := range g.CellsOf(orthHouse) {
							if !inCombo[g.HouseOf(cell, kind).Index] {
								targets = append(targets, cell)
							}
						}
						all = append(all, p.RemoveCandidates(value, targets)...)
					}
					if len(all) == 0 {
						continue
					}

					ev := evidence.LinkedEvidence{LevelN: k, Value: v, Kind: kind, OrthKind: orthKind, Indices: combo, OrthIndices: orthIndices}
					if !yield(evidence.Step{Evidence: ev, Mutations: all}, nil) {
						return
					}
				}
			}
		}
	}
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
