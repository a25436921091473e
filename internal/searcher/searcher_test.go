package searcher

import (
	"reflect"
	"testing"

	"sudoku-engine/internal/candidateset"
	"sudoku-engine/internal/deducer"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzle"
)

// twoWaySplit builds a 2x2 (N=4) puzzle with exactly two completions: the
// four cells where solutionA and solutionB differ (rows 0 and 2, columns
// 0 and 1) are left with two candidates each and every other cell is
// solved, forcing the Searcher to branch once.
func twoWaySplit(t *testing.T) (*grid.Grid, *puzzle.Puzzle) {
	t.Helper()
	g, err := grid.New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	solutionA := [4][4]int{
		{0, 1, 2, 3},
		{2, 3, 0, 1},
		{1, 0, 3, 2},
		{3, 2, 1, 0},
	}
	solutionB := [4][4]int{
		{1, 0, 2, 3},
		{2, 3, 0, 1},
		{0, 1, 3, 2},
		{3, 2, 1, 0},
	}
	p := puzzle.New(g)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			cell := grid.Cell{Row: row, Col: col}
			p.SetCandidates(cell, candidateset.Of(solutionA[row][col], solutionB[row][col]))
		}
	}
	return g, p
}

func TestSearch_FindsBothSolutions(t *testing.T) {
	g, p := twoWaySplit(t)
	s := New(g, deducer.DefaultConfig())

	var solutions []*puzzle.Puzzle
	for range s.Search(p, &solutions, 0) {
	}

	if len(solutions) != 2 {
		t.Fatalf("expected 2 solutions, got %d", len(solutions))
	}
	for _, sol := range solutions {
		if !sol.Solved() {
			t.Error("every returned solution must be Solved()")
		}
	}
	if reflect.DeepEqual(solutions[0].Values(), solutions[1].Values()) {
		t.Error("expected two distinct solutions, got identical value maps")
	}
}

func TestSearch_StopsAtMaxCount(t *testing.T) {
	g, p := twoWaySplit(t)
	s := New(g, deducer.DefaultConfig())

	var solutions []*puzzle.Puzzle
	for range s.Search(p, &solutions, 1) {
	}

	if len(solutions) != 1 {
		t.Fatalf("expected search to stop after 1 solution, got %d", len(solutions))
	}
}

func TestSearch_OriginalPuzzleUnmutated(t *testing.T) {
	g, p := twoWaySplit(t)
	before := p.Candidates(grid.Cell{Row: 0, Col: 0})

	s := New(g, deducer.DefaultConfig())
	var solutions []*puzzle.Puzzle
	for range s.Search(p, &solutions, 0) {
	}

	after := p.Candidates(grid.Cell{Row: 0, Col: 0})
	if !before.Equals(after) {
		t.Error("Search must not mutate the puzzle it is given, only clones")
	}
}

func TestSearch_ConsumerStopEndsIteration(t *testing.T) {
	g, p := twoWaySplit(t)
	s := New(g, deducer.DefaultConfig())

	var solutions []*puzzle.Puzzle
	count := 0
	for range s.Search(p, &solutions, 0) {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("expected exactly one step before the consumer broke, got %d", count)
	}
}
