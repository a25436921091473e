// Package puzzle holds the per-cell candidate state of a Sudoku board and
// the mutation primitives that report exactly what they changed. The
// deduction and search layers never touch candidateset.Set directly for
// more than one cell at a time; they always go through these primitives
// so every elimination has a corresponding Variation for the step
// transcript.
package puzzle

import (
	"sudoku-engine/internal/candidateset"
	"sudoku-engine/internal/grid"
)

// Variation is a (cell, removed values) pair emitted by every mutation
// primitive below.
type Variation struct {
	Cell    grid.Cell
	Removed candidateset.Set
}

// Puzzle is the pencil-mark grid: one CandidateSet per cell, addressed
// through the grid's linear index. The zero value is not usable; build
// one with New.
type Puzzle struct {
	grid  *grid.Grid
	cells []candidateset.Set
}

// New constructs a puzzle over g with every cell holding the full
// candidate set {0, ..., N-1}.
func New(g *grid.Grid) *Puzzle {
	cells := make([]candidateset.Set, g.N*g.N)
	full := candidateset.Full(g.N)
	for i := range cells {
		cells[i] = full
	}
	return &Puzzle{grid: g, cells: cells}
}

// Grid returns the geometry this puzzle is defined over.
func (p *Puzzle) Grid() *grid.Grid {
	return p.grid
}

// Candidates returns the current candidate set of cell.
func (p *Puzzle) Candidates(cell grid.Cell) candidateset.Set {
	return p.cells[p.grid.IndexOf(cell)]
}

// SetCandidates overwrites the candidate set of cell directly, with no
// diff reporting. This is for building the initial puzzle state from a
// parsed file (solved cells, restricted candidate lists) — not for use
// by deduction rules, which must go through RetainCandidates/
// RemoveCandidates so every change is logged.
func (p *Puzzle) SetCandidates(cell grid.Cell, s candidateset.Set) {
	p.cells[p.grid.IndexOf(cell)] = s
}

// RetainCandidates keeps only vs in each cell of cells, in the order
// given, and returns one Variation per cell that actually changed.
func (p *Puzzle) RetainCandidates(vs candidateset.Set, cells []grid.Cell) []Variation {
	var out []Variation
	for _, cell := range cells {
		idx := p.grid.IndexOf(cell)
		cur := p.cells[idx]
		removed := cur.Retain(vs)
		if removed != 0 {
			p.cells[idx] = cur
			out = append(out, Variation{Cell: cell, Removed: removed})
		}
	}
	return out
}

// RemoveCandidates subtracts vs from each cell of cells, in the order
// given, and returns one Variation per cell that actually changed.
func (p *Puzzle) RemoveCandidates(vs candidateset.Set, cells []grid.Cell) []Variation {
	var out []Variation
	for _, cell := range cells {
		idx := p.grid.IndexOf(cell)
		cur := p.cells[idx]
		removed := cur.Remove(vs)
		if removed != 0 {
			p.cells[idx] = cur
			out = append(out, Variation{Cell: cell, Removed: removed})
		}
	}
	return out
}

// Fulfilled reports whether every cell is solved (holds exactly one
// value). A fulfilled puzzle may still be paradoxical if two solved
// peers share a value.
func (p *Puzzle) Fulfilled() bool {
	for _, c := range p.cells {
		if c.Size() != 1 {
			return false
		}
	}
	return true
}

// Paradoxical reports whether some cell has no candidates left, or some
// house contains two solved cells with the same value.
func (p *Puzzle) Paradoxical() bool {
	for _, c := range p.cells {
		if c.IsEmpty() {
			return true
		}
	}

	for house := range p.grid.IterHouses(nil) {
		seen := candidateset.Set(0)
		for _, cell := range p.grid.CellsOf(house) {
			cand := p.Candidates(cell)
			if v, ok := cand.Only(); ok {
				vs := candidateset.Of(v)
				if seen.ContainsAny(vs) {
					return true
				}
				seen = seen.Union(vs)
			}
		}
	}
	return false
}

// Solved reports whether the puzzle is fulfilled and not paradoxical.
func (p *Puzzle) Solved() bool {
	return p.Fulfilled() && !p.Paradoxical()
}

// Clone deep-copies the puzzle's candidate state. The grid itself is
// immutable and shared, not copied.
func (p *Puzzle) Clone() *Puzzle {
	cells := make([]candidateset.Set, len(p.cells))
	copy(cells, p.cells)
	return &Puzzle{grid: p.grid, cells: cells}
}

// Values returns the solved value of every solved cell as a map keyed
// by cell — used by callers that only care about
// the final solution, not the full candidate grid.
func (p *Puzzle) Values() map[grid.Cell]int {
	out := make(map[grid.Cell]int)
	for cell := range p.grid.IterCells(nil, nil) {
		if v, ok := p.Candidates(cell).Only(); ok {
			out[cell] = v
		}
	}
	return out
}
