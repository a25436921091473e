// Package evidence is the tagged-variant "why did this fire" taxonomy:
// every deduction, guess, and paradox the solver produces is one of a
// closed set of Evidence implementations. There is no shared base
// behavior beyond Rule/Level, so callers (the transcript printer, tests)
// exhaustively type-switch on the concrete variant rather than relying on
// virtual dispatch.
package evidence

import (
	"sudoku-engine/internal/candidateset"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzle"
)

// Rule names the stable external vocabulary a step's rule family is
// reported under: naked, hidden, linked, guess. These strings are
// normative for transcripts and for Solver's maxLevels configuration.
type Rule string

const (
	RuleNaked  Rule = "naked"
	RuleHidden Rule = "hidden"
	RuleLinked Rule = "linked"
	RuleGuess  Rule = "guess"
)

// Evidence is the sealed interface implemented by the five variants
// below. Level is the combination size k that fired (guess depth for
// GuessEvidence).
type Evidence interface {
	Rule() Rule
	Level() int
}

// NakedEvidence records a naked-k elimination: the k Cells of House hold
// exactly Values.Size()==k candidates between them, so Values was
// removed from the other cells of every house containing all of Cells.
type NakedEvidence struct {
	LevelN int
	House  grid.House
	Cells  []grid.Cell
	Values candidateset.Set
}

func (e NakedEvidence) Rule() Rule { return RuleNaked }
func (e NakedEvidence) Level() int { return e.LevelN }

// HiddenEvidence records a hidden-k elimination: Values are confined to
// Cells within House.
type HiddenEvidence struct {
	LevelN int
	House  grid.House
	Values candidateset.Set
	Cells  []grid.Cell
}

func (e HiddenEvidence) Rule() Rule { return RuleHidden }
func (e HiddenEvidence) Level() int { return e.LevelN }

// LinkedEvidence records a fish of size k: Value is confined, within the
// k parallel houses of Kind at Indices, to the orthogonal lines at
// OrthIndices.
type LinkedEvidence struct {
	LevelN      int
	Value       int
	Kind        grid.HouseKind
	OrthKind    grid.HouseKind
	Indices     []int
	OrthIndices []int
}

func (e LinkedEvidence) Rule() Rule { return RuleLinked }
func (e LinkedEvidence) Level() int { return e.LevelN }

// GuessEvidence records a branch taken by the Searcher: Cell was fixed
// to Chosen out of Candidates. LevelN is the nesting depth of the guess
// (0 for a top-level guess).
type GuessEvidence struct {
	LevelN     int
	Cell       grid.Cell
	Candidates candidateset.Set
	Chosen     int
}

func (e GuessEvidence) Rule() Rule { return RuleGuess }
func (e GuessEvidence) Level() int { return e.LevelN }

// Paradox wraps the Evidence whose inference produced an impossible
// state: k cells holding fewer than k candidate values between them
// (naked; at k=1 an empty candidate set), or fewer qualifying
// cells/lines than the combination size k (hidden/linked).
type Paradox struct {
	Inner Evidence
}

func (e Paradox) Rule() Rule { return e.Inner.Rule() }
func (e Paradox) Level() int { return e.Inner.Level() }

// Error lets a Paradox be raised and recovered as a Go error, matching
// the source's throw/catch-across-rule-calls control flow (spec section
// 7/9) with a single typed error value instead of a panic.
func (e Paradox) Error() string {
	return "sudoku: paradox detected"
}

// Step bundles one fired rule with the mutations it produced. Mutations
// is empty for a Paradox step (a paradox never eliminates anything).
type Step struct {
	Evidence  Evidence
	Mutations []puzzle.Variation
}
