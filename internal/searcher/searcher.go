// Package searcher implements depth-first guessing search: on every
// branch it clones the puzzle, fixes one candidate, and delegates back
// to the Deducer for pruning before recursing. It is the only package
// in the solver core that clones a Puzzle.
package searcher

import (
	"iter"

	"sudoku-engine/internal/candidateset"
	"sudoku-engine/internal/deducer"
	"sudoku-engine/internal/evidence"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzle"
)

// Searcher drives guess/search over a fixed grid, delegating pruning on
// every branch to a Deducer configured by DeduceConfig.
type Searcher struct {
	Grid         *grid.Grid
	DeduceConfig deducer.Config
}

// New builds a Searcher for g that prunes each guess branch with cfg.
func New(g *grid.Grid, cfg deducer.Config) *Searcher {
	return &Searcher{Grid: g, DeduceConfig: cfg}
}

// Search enumerates up to maxCount solutions reachable from p by
// depth-first guessing, appending each one found to *solutions as it is
// discovered. maxCount <= 0 means unbounded. The returned sequence is a
// pre-order traversal of the guess tree: every GuessEvidence step, every
// step the nested Deducer produces on that branch, and every paradox
// step encountered along the way. Reaching maxCount solutions ends the
// sequence cleanly, with no error — this is the StopSearching signal,
// caught here and never surfaced to the caller. p itself is never
// mutated; only clones are.
func (s *Searcher) Search(p *puzzle.Puzzle, solutions *[]*puzzle.Puzzle, maxCount int) iter.Seq2[evidence.Step, error] {
	return func(yield func(evidence.Step, error) bool) {
		s.guessSearch(p, 0, maxCount, solutions, yield)
	}
}

// guessSearch runs one level of the depth-first search over p (not
// mutated), returning true iff the caller should stop driving further
// branches — either because the consumer ended iteration or because
// maxCount solutions have accumulated.
func (s *Searcher) guessSearch(p *puzzle.Puzzle, level, maxCount int, solutions *[]*puzzle.Puzzle, yield func(evidence.Step, error) bool) bool {
	cell, ok := chooseCell(s.Grid, p)
	if !ok {
		return false
	}
	candidates := p.Candidates(cell)

	for _, v := range candidates.Values() {
		clone := p.Clone()
		mutations := clone.RetainCandidates(candidateset.Of(v), []grid.Cell{cell})
		ev := evidence.GuessEvidence{LevelN: level, Cell: cell, Candidates: candidates, Chosen: v}
		if !yield(evidence.Step{Evidence: ev, Mutations: mutations}, nil) {
			return true
		}

		d := deducer.New(s.Grid, s.DeduceConfig)
		paradoxical := false
		for step, err := range d.Deduce(clone) {
			if !yield(step, err) {
				return true
			}
			if err != nil {
				paradoxical = true
				break
			}
		}
		if paradoxical {
			continue
		}

		if clone.Solved() {
			*solutions = append(*solutions, clone)
			if maxCount > 0 && len(*solutions) >= maxCount {
				return true
			}
			continue
		}

		if s.guessSearch(clone, level+1, maxCount, solutions, yield) {
			return true
		}
	}
	return false
}

// chooseCell implements the cell choice heuristic: the first row-major
// cell with exactly 2 candidates is returned immediately; otherwise the
// cell with the fewest candidates among those with more than 1 is
// returned. ok is false if no cell has more than 1 candidate (the puzzle
// is fulfilled or paradoxical, and there is nothing left to branch on).
func chooseCell(g *grid.Grid, p *puzzle.Puzzle) (best grid.Cell, ok bool) {
	bestSize := 0
	for cell := range g.IterCells(nil, nil) {
		size := p.Candidates(cell).Size()
		if size == 2 {
			return cell, true
		}
		if size > 1 && (!ok || size < bestSize) {
			best, bestSize, ok = cell, size, true
		}
	}
	return best, ok
}
