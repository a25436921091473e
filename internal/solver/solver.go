// Package solver is the library's single external entry point: it wires
// a Deducer and a Searcher together behind the small surface documented
// as the "library contract" (maxLevels, lowerLevelFirst, disableAllRules,
// deduce, search). Collaborators (parsing, printing, CLI, HTTP) build on
// this package and never reach into internal/deducer or internal/searcher
// directly.
package solver

import (
	"iter"

	"sudoku-engine/internal/deducer"
	"sudoku-engine/internal/evidence"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzle"
	"sudoku-engine/internal/searcher"
)

// Solver configures and drives deduction and search over puzzles built
// on a fixed Grid. It owns no puzzle state of its own.
type Solver struct {
	grid   *grid.Grid
	config deducer.Config
}

// New builds a Solver over g with the default rule configuration
// (naked/hidden/linked all enabled, unlimited level, lowerLevelFirst on).
func New(g *grid.Grid) *Solver {
	return &Solver{grid: g, config: deducer.DefaultConfig()}
}

// Grid returns the geometry this Solver operates over.
func (s *Solver) Grid() *grid.Grid {
	return s.grid
}

// SetMaxLevel caps the combination size k that rule is tried at; 0
// disables the rule, a negative value means unlimited.
func (s *Solver) SetMaxLevel(rule evidence.Rule, max int) {
	if s.config.MaxLevel == nil {
		s.config.MaxLevel = make(map[evidence.Rule]int)
	}
	s.config.MaxLevel[rule] = max
}

// SetLowerLevelFirst controls whether a fire at level k restarts the
// round at k=1 (true) or whether the round continues climbing k (false).
func (s *Solver) SetLowerLevelFirst(b bool) {
	s.config.LowerLevelFirst = b
}

// DisableAllRules turns off naked, hidden, and linked, leaving only
// guessing search able to make progress.
func (s *Solver) DisableAllRules() {
	s.config.DisableAllRules()
}

// Deduce runs logical elimination over p until a fixpoint, p is
// fulfilled, or a rule proves p paradoxical, mutating p in place and
// lazily yielding one SolvingStep per suspension point.
func (s *Solver) Deduce(p *puzzle.Puzzle) iter.Seq2[evidence.Step, error] {
	return deducer.New(s.grid, s.config).Deduce(p)
}

// Search enumerates up to maxCount solutions reachable from p by
// depth-first guessing, delegating pruning on every branch to a Deducer
// configured the same way as Deduce. Found solutions are appended to
// *solutions as they are discovered; p itself is never mutated. maxCount
// <= 0 means unbounded.
func (s *Solver) Search(p *puzzle.Puzzle, solutions *[]*puzzle.Puzzle, maxCount int) iter.Seq2[evidence.Step, error] {
	return searcher.New(s.grid, s.config).Search(p, solutions, maxCount)
}
