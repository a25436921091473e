package grid

import "testing"

func TestNew_NonSquareGeometry(t *testing.T) {
	cases := []struct{ bh, bw, n int }{
		{2, 3, 6},
		{3, 4, 12},
		{3, 3, 9},
	}
	for _, c := range cases {
		g, err := New(c.bh, c.bw)
		if err != nil {
			t.Fatalf("New(%d,%d): %v", c.bh, c.bw, err)
		}
		if g.N != c.n {
			t.Errorf("New(%d,%d).N = %d, want %d", c.bh, c.bw, g.N, c.n)
		}
	}
}

func TestNew_RejectsOversizedGrid(t *testing.T) {
	if _, err := New(6, 6); err == nil {
		t.Error("6x6 block geometry (N=36) should be rejected as exceeding 35")
	}
}

func TestBlockIndexOf_2x3(t *testing.T) {
	g, err := New(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	// N=6, blocks are 2 rows x 3 cols, tiled 2 blocks wide x 3 tall.
	if got := g.BlockIndexOf(Cell{Row: 0, Col: 0}); got != 0 {
		t.Errorf("block of (0,0) = %d, want 0", got)
	}
	if got := g.BlockIndexOf(Cell{Row: 0, Col: 3}); got != 1 {
		t.Errorf("block of (0,3) = %d, want 1", got)
	}
	if got := g.BlockIndexOf(Cell{Row: 1, Col: 5}); got != 1 {
		t.Errorf("block of (1,5) = %d, want 1", got)
	}
	if got := g.BlockIndexOf(Cell{Row: 2, Col: 0}); got != 2 {
		t.Errorf("block of (2,0) = %d, want 2", got)
	}
}

func TestHouseOf_EveryCellHasOneHousePerKind(t *testing.T) {
	g, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < g.N; row++ {
		for col := 0; col < g.N; col++ {
			cell := Cell{Row: row, Col: col}
			rowHouse := g.HouseOf(cell, Row)
			if rowHouse.Index != row {
				t.Errorf("row house of (%d,%d) = %d, want %d", row, col, rowHouse.Index, row)
			}
			colHouse := g.HouseOf(cell, Column)
			if colHouse.Index != col {
				t.Errorf("col house of (%d,%d) = %d, want %d", row, col, colHouse.Index, col)
			}
		}
	}
}

func TestIntersectCellOf(t *testing.T) {
	g, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if c, err := g.IntersectCellOf(Row, 2, 5); err != nil || c != (Cell{Row: 2, Col: 5}) {
		t.Errorf("IntersectCellOf(Row,2,5) = %v, %v", c, err)
	}
	if c, err := g.IntersectCellOf(Column, 2, 5); err != nil || c != (Cell{Row: 5, Col: 2}) {
		t.Errorf("IntersectCellOf(Column,2,5) = %v, %v", c, err)
	}
	if _, err := g.IntersectCellOf(Block, 0, 0); err == nil {
		t.Error("IntersectCellOf(Block, ...) should error")
	}
}

func TestCommonHousesOf(t *testing.T) {
	g, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	// Two cells in the same row and the same block, different columns.
	cells := []Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	common := g.CommonHousesOf(cells, nil)
	foundRow, foundBlock := false, false
	for _, h := range common {
		if h.Kind == Row {
			foundRow = true
		}
		if h.Kind == Block {
			foundBlock = true
		}
		if h.Kind == Column {
			t.Error("cells in different columns should not share a column house")
		}
	}
	if !foundRow || !foundBlock {
		t.Errorf("expected row and block in common houses, got %v", common)
	}
}

func TestCommonHousesOf_ExcludeKind(t *testing.T) {
	g, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	cells := []Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	excludeRow := Row
	common := g.CommonHousesOf(cells, &excludeRow)
	for _, h := range common {
		if h.Kind == Row {
			t.Error("excluded kind should not appear in result")
		}
	}
}

func TestIterCells_RowMajorOrder(t *testing.T) {
	g, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	var seen []Cell
	for c := range g.IterCells(nil, nil) {
		seen = append(seen, c)
	}
	if len(seen) != g.N*g.N {
		t.Fatalf("expected %d cells, got %d", g.N*g.N, len(seen))
	}
	for i := 1; i < len(seen); i++ {
		if !seen[i-1].Less(seen[i]) {
			t.Fatalf("cells not in row-major order at index %d: %v then %v", i, seen[i-1], seen[i])
		}
	}
}

func TestIterCells_Excludes(t *testing.T) {
	g, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	house := House{Kind: Row, Index: 0}
	excluded := Cell{Row: 0, Col: 3}
	count := 0
	for c := range g.IterCells(&house, []Cell{excluded}) {
		if c == excluded {
			t.Error("excluded cell should not be yielded")
		}
		count++
	}
	if count != g.N-1 {
		t.Errorf("expected %d cells, got %d", g.N-1, count)
	}
}

func TestIterHouses_Order(t *testing.T) {
	g, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	var kinds []HouseKind
	for h := range g.IterHouses(nil) {
		kinds = append(kinds, h.Kind)
	}
	if len(kinds) != 3*g.N {
		t.Fatalf("expected %d houses, got %d", 3*g.N, len(kinds))
	}
	for i := 0; i < g.N; i++ {
		if kinds[i] != Row {
			t.Errorf("expected Row houses first, index %d was %v", i, kinds[i])
		}
	}
	for i := g.N; i < 2*g.N; i++ {
		if kinds[i] != Column {
			t.Errorf("expected Column houses second, index %d was %v", i, kinds[i])
		}
	}
}

func TestIterCells_EarlyStop(t *testing.T) {
	g, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for range g.IterCells(nil, nil) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("expected iteration to stop at 3, stopped at %d", n)
	}
}
