// Package deducer implements the three elimination rule families
// (naked, hidden, linked) as one pattern parameterized by level k, and
// the round/fixpoint loop that drives them to convergence.
package deducer

import (
	"iter"

	"sudoku-engine/internal/evidence"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzle"
)

// Deducer runs the configured rule families over a puzzle until it
// reaches a fixpoint, is fulfilled, or a rule proves the puzzle
// paradoxical.
type Deducer struct {
	Grid   *grid.Grid
	Config Config
}

// New builds a Deducer for g with the given rule configuration.
func New(g *grid.Grid, cfg Config) *Deducer {
	return &Deducer{Grid: g, Config: cfg}
}

// roundFn is the shape shared by nakedRound, hiddenRound, and
// linkedRound: run one rule family at one level over p, yielding Steps.
type roundFn func(g *grid.Grid, p *puzzle.Puzzle, k int) iter.Seq2[evidence.Step, error]

// Deduce lazily runs rounds of naked/hidden/linked elimination over p
// until a full round yields no variations or p is fulfilled. It mutates
// p in place. Each suspension point is one yielded Step; if a rule
// proves p paradoxical, the final yielded Step carries a Paradox and a
// non-nil error, and the sequence ends there.
func (d *Deducer) Deduce(p *puzzle.Puzzle) iter.Seq2[evidence.Step, error] {
	return func(yield func(evidence.Step, error) bool) {
		for {
			if p.Fulfilled() {
				return
			}

			firedThisRound := false

		kloop:
			for k := 1; k <= d.Grid.N-1; k++ {
				type attempt struct {
					rule roundFn
					name evidence.Rule
					min  int
				}
				attempts := []attempt{
					{nakedRound, evidence.RuleNaked, 1},
					{hiddenRound, evidence.RuleHidden, 1},
					{linkedRound, evidence.RuleLinked, 2},
				}

				for _, a := range attempts {
					if k < a.min || !d.Config.enabledAt(a.name, k) {
						continue
					}
					fired, stop := drain(a.rule(d.Grid, p, k), yield)
					if stop {
						return
					}
					if fired {
						firedThisRound = true
						if d.Config.LowerLevelFirst {
							break kloop
						}
					}
				}
			}

			if !firedThisRound {
				return
			}
		}
	}
}

// drain forwards every (Step, error) produced by sub to yield. It
// reports fired=true if at least one Step was produced, and stop=true if
// either the consumer ended iteration (yield returned false) or a
// paradox was encountered — in both cases the caller must not continue
// driving further rounds.
func drain(sub iter.Seq2[evidence.Step, error], yield func(evidence.Step, error) bool) (fired, stop bool) {
	sub(func(s evidence.Step, err error) bool {
		fired = true
		if !yield(s, err) {
			stop = true
			return false
		}
		if err != nil {
			stop = true
			return false
		}
		return true
	})
	return fired, stop
}
