// Package grid implements the pure, immutable geometry of a Sudoku board:
// cells, houses (rows, columns, blocks), and the iteration and
// intersection queries the deduction rules are built on. Nothing in this
// package mutates or reads candidate state — that lives in package
// puzzle.
package grid

import (
	"fmt"
	"iter"
	"sort"
)

// Cell is a (row, col) position, 0 <= row,col < N. Cells compare
// lexicographically by (Row, Col).
type Cell struct {
	Row, Col int
}

// Less orders cells lexicographically.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// HouseKind names one of the three families of houses.
type HouseKind int

const (
	Row HouseKind = iota
	Column
	Block
)

func (k HouseKind) String() string {
	switch k {
	case Row:
		return "row"
	case Column:
		return "column"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// House is a (kind, index) pair denoting exactly N cells.
type House struct {
	Kind  HouseKind
	Index int
}

// Grid is the immutable geometry for one (blockHeight, blockWidth) pair.
// N = blockHeight * blockWidth is the side length.
type Grid struct {
	BlockHeight int
	BlockWidth  int
	N           int

	// cellsOf[kind][index] lists the N cells of that house, in row-major
	// order, precomputed once at construction.
	cellsOf [3][][]Cell
	// houseIndexOf[kind][cellIndex] is the index of the house of that
	// kind containing the cell at row-major linear index cellIndex.
	houseIndexOf [3][]int
}

// New builds the Grid for a blockHeight x blockWidth block geometry.
// N = blockHeight*blockWidth must be in [1, 35].
func New(blockHeight, blockWidth int) (*Grid, error) {
	n := blockHeight * blockWidth
	if blockHeight <= 0 || blockWidth <= 0 {
		return nil, fmt.Errorf("grid: block dimensions must be positive, got %dx%d", blockHeight, blockWidth)
	}
	if n > 35 {
		return nil, fmt.Errorf("grid: N=%d exceeds the maximum of 35", n)
	}

	g := &Grid{BlockHeight: blockHeight, BlockWidth: blockWidth, N: n}
	for k := 0; k < 3; k++ {
		g.cellsOf[k] = make([][]Cell, n)
		g.houseIndexOf[k] = make([]int, n*n)
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cell := Cell{Row: row, Col: col}
			idx := g.IndexOf(cell)

			g.cellsOf[Row][row] = append(g.cellsOf[Row][row], cell)
			g.houseIndexOf[Row][idx] = row

			g.cellsOf[Column][col] = append(g.cellsOf[Column][col], cell)
			g.houseIndexOf[Column][idx] = col

			blockIdx := g.BlockIndexOf(cell)
			g.cellsOf[Block][blockIdx] = append(g.cellsOf[Block][blockIdx], cell)
			g.houseIndexOf[Block][idx] = blockIdx
		}
	}

	return g, nil
}

// IndexOf returns the cell's stable linear index row*N + col.
func (g *Grid) IndexOf(cell Cell) int {
	return cell.Row*g.N + cell.Col
}

// CellAt is the inverse of IndexOf.
func (g *Grid) CellAt(index int) Cell {
	return Cell{Row: index / g.N, Col: index % g.N}
}

// BlockIndexOf returns the block index containing cell, per the tiling
// in spec section 3: blocks are BlockHeight x BlockWidth tiles, numbered
// in row-major order across the tiling.
func (g *Grid) BlockIndexOf(cell Cell) int {
	blockRow := cell.Row / g.BlockHeight
	blockCol := cell.Col / g.BlockWidth
	blocksPerRow := g.N / g.BlockWidth
	return blockRow*blocksPerRow + blockCol
}

// HouseOf returns the house of the given kind that contains cell.
func (g *Grid) HouseOf(cell Cell, kind HouseKind) House {
	idx := g.houseIndexOf[kind][g.IndexOf(cell)]
	return House{Kind: kind, Index: idx}
}

// OrthogonalKindOf returns Column for Row and Row for Column. It is
// undefined (returns Block) for Block, which has no orthogonal kind.
func (g *Grid) OrthogonalKindOf(kind HouseKind) HouseKind {
	switch kind {
	case Row:
		return Column
	case Column:
		return Row
	default:
		return Block
	}
}

// IntersectCellOf returns the cell at the intersection of house
// (kind, index) and the orthogonal line orthIndex. For Row it is
// (index, orthIndex); for Column it is (orthIndex, index). Block has no
// well-defined intersection and returns an error.
func (g *Grid) IntersectCellOf(kind HouseKind, index, orthIndex int) (Cell, error) {
	switch kind {
	case Row:
		return Cell{Row: index, Col: orthIndex}, nil
	case Column:
		return Cell{Row: orthIndex, Col: index}, nil
	default:
		return Cell{}, fmt.Errorf("grid: IntersectCellOf undefined for kind %v", kind)
	}
}

// CellsOf returns the N cells of a house, in row-major order. The
// returned slice is shared and must not be mutated by the caller.
func (g *Grid) CellsOf(h House) []Cell {
	return g.cellsOf[h.Kind][h.Index]
}

// IterCells lazily yields the cells of house, in row-major order,
// omitting any cell present in excludes. If house is nil, every cell of
// the grid is yielded in row-major order.
func (g *Grid) IterCells(house *House, excludes []Cell) iter.Seq[Cell] {
	var excludeSet map[Cell]bool
	if len(excludes) > 0 {
		excludeSet = make(map[Cell]bool, len(excludes))
		for _, c := range excludes {
			excludeSet[c] = true
		}
	}

	return func(yield func(Cell) bool) {
		emit := func(c Cell) bool {
			if excludeSet != nil && excludeSet[c] {
				return true
			}
			return yield(c)
		}

		if house != nil {
			for _, c := range g.CellsOf(*house) {
				if !emit(c) {
					return
				}
			}
			return
		}

		for row := 0; row < g.N; row++ {
			for col := 0; col < g.N; col++ {
				if !emit(Cell{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// IterHouses lazily yields houses in the order Row(0..N-1),
// Column(0..N-1), Block(0..N-1), or only the houses of kind if non-nil.
func (g *Grid) IterHouses(kind *HouseKind) iter.Seq[House] {
	kinds := []HouseKind{Row, Column, Block}
	if kind != nil {
		kinds = []HouseKind{*kind}
	}
	return func(yield func(House) bool) {
		for _, k := range kinds {
			for i := 0; i < g.N; i++ {
				if !yield(House{Kind: k, Index: i}) {
					return
				}
			}
		}
	}
}

// CommonHousesOf returns the houses containing every cell in cells, at
// most one per kind, skipping the kind named by exclude if non-nil. The
// result is ordered Row, Column, Block.
func (g *Grid) CommonHousesOf(cells []Cell, exclude *HouseKind) []House {
	if len(cells) == 0 {
		return nil
	}

	var out []House
	for _, kind := range [3]HouseKind{Row, Column, Block} {
		if exclude != nil && kind == *exclude {
			continue
		}
		first := g.HouseOf(cells[0], kind)
		common := true
		for _, c := range cells[1:] {
			if g.HouseOf(c, kind) != first {
				common = false
				break
			}
		}
		if common {
			out = append(out, first)
		}
	}
	return out
}

// SortCells sorts cells in place into row-major (lexicographic) order.
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
}
