package format

import (
	"strings"
	"testing"

	"sudoku-engine/internal/candidateset"
	"sudoku-engine/internal/evidence"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzle"
)

func TestParsePuzzle_MixedTokens(t *testing.T) {
	g, err := grid.New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	text := `1*[23][^34]
*2*3
[12]*1*
3*2*
`
	p, err := ParsePuzzle(g, text)
	if err != nil {
		t.Fatal(err)
	}

	if got := p.Candidates(grid.Cell{Row: 0, Col: 0}); got != candidateset.Of(0) {
		t.Errorf("r0c0 = %v, want solved to 0", got)
	}
	if got := p.Candidates(grid.Cell{Row: 0, Col: 1}); !got.Equals(candidateset.Full(4)) {
		t.Errorf("r0c1 = %v, want full", got)
	}
	if got := p.Candidates(grid.Cell{Row: 0, Col: 2}); !got.Equals(candidateset.Of(1, 2)) {
		t.Errorf("r0c2 = %v, want {1,2}", got)
	}
	if got := p.Candidates(grid.Cell{Row: 0, Col: 3}); !got.Equals(candidateset.Full(4).Subtract(candidateset.Of(2, 3))) {
		t.Errorf("r0c3 = %v, want complement of {2,3}", got)
	}
}

func TestParsePuzzle_WrongRowCount(t *testing.T) {
	g, err := grid.New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	_, err = ParsePuzzle(g, "1*23\n*2*3\n")
	if err == nil {
		t.Error("expected an error for too few rows")
	}
}

func TestParsePuzzle_WrongTokenCount(t *testing.T) {
	g, err := grid.New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	_, err = ParsePuzzle(g, "1*2\n*2*3\n1*23\n3*21\n")
	if err == nil {
		t.Error("expected an error for a short row")
	}
}

func TestPuzzleRoundTrip_SmallGrid(t *testing.T) {
	g, err := grid.New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	text := "1234\n3412\n\n2143\n4321\n"

	p, err := ParsePuzzle(g, text)
	if err != nil {
		t.Fatal(err)
	}
	printed, err := PrintPuzzle(p)
	if err != nil {
		t.Fatal(err)
	}

	reparsed, err := ParsePuzzle(g, printed)
	if err != nil {
		t.Fatalf("reparse failed: %v\nprinted:\n%s", err, printed)
	}
	for cell, v := range p.Values() {
		if got, ok := reparsed.Candidates(cell).Only(); !ok || got != v {
			t.Errorf("cell %v: round-trip mismatch, want %d got %v", cell, v, reparsed.Candidates(cell))
		}
	}
}

func TestPuzzleRoundTrip_LargeGridSpaceSeparated(t *testing.T) {
	g, err := grid.New(4, 4) // N=16, multi-char-alphabet territory
	if err != nil {
		t.Fatal(err)
	}
	p := puzzle.New(g)
	// Leave everything at full candidates except one solved cell and one
	// restricted cell, enough to exercise the N>9 space-separated path.
	p.SetCandidates(grid.Cell{Row: 0, Col: 0}, candidateset.Of(9))  // marker "A"
	p.SetCandidates(grid.Cell{Row: 0, Col: 1}, candidateset.Of(0, 1, 15))

	printed, err := PrintPuzzle(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(printed, "A") {
		t.Errorf("expected marker A in output:\n%s", printed)
	}

	reparsed, err := ParsePuzzle(g, printed)
	if err != nil {
		t.Fatalf("reparse failed: %v\nprinted:\n%s", err, printed)
	}
	if got := reparsed.Candidates(grid.Cell{Row: 0, Col: 0}); !got.Equals(candidateset.Of(9)) {
		t.Errorf("r0c0 = %v, want {9}", got)
	}
	if got := reparsed.Candidates(grid.Cell{Row: 0, Col: 1}); !got.Equals(candidateset.Of(0, 1, 15)) {
		t.Errorf("r0c1 = %v, want {0,1,15}", got)
	}
}

func TestPrintStep_NakedEvidence(t *testing.T) {
	house := grid.House{Kind: grid.Row, Index: 2}
	cells := []grid.Cell{{Row: 2, Col: 0}, {Row: 2, Col: 3}}
	step := evidence.Step{
		Evidence: evidence.NakedEvidence{LevelN: 2, House: house, Cells: cells, Values: candidateset.Of(0, 1)},
		Mutations: []puzzle.Variation{
			{Cell: grid.Cell{Row: 2, Col: 1}, Removed: candidateset.Of(0)},
		},
	}
	out, err := PrintStep(step)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "[naked@2] row 3 cells r3c1,r3c4 values \"12\"") {
		t.Errorf("unexpected header line:\n%s", out)
	}
	if !strings.Contains(out, `=> cell r3c2 remove "1"`) {
		t.Errorf("missing mutation line:\n%s", out)
	}
}

func TestPrintStep_Paradox(t *testing.T) {
	house := grid.House{Kind: grid.Column, Index: 0}
	ev := evidence.HiddenEvidence{LevelN: 1, House: house, Values: candidateset.Of(0), Cells: nil}
	step := evidence.Step{Evidence: evidence.Paradox{Inner: ev}}

	out, err := PrintStep(step)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "[paradox][hidden@1]") {
		t.Errorf("expected paradox prefix, got:\n%s", out)
	}
	if strings.Contains(out, "=>") {
		t.Error("paradox step must not print mutation lines")
	}
}

func TestPrintStep_GuessEvidence(t *testing.T) {
	step := evidence.Step{
		Evidence: evidence.GuessEvidence{LevelN: 0, Cell: grid.Cell{Row: 0, Col: 0}, Candidates: candidateset.Of(0, 1), Chosen: 0},
	}
	out, err := PrintStep(step)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "[guess@0] cell r1c1 chosen \"1\" candidates \"12\"") {
		t.Errorf("unexpected guess header:\n%s", out)
	}
}
