// Command sudoku is a CLI collaborator around the solver core: it reads
// a puzzle file, runs deduction (and optionally guess/search), prints
// the step transcript, and renders the final grid.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"sudoku-engine/internal/evidence"
	"sudoku-engine/internal/format"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzle"
	"sudoku-engine/internal/solver"
	"sudoku-engine/pkg/constants"
)

func main() {
	os.Exit(run())
}

func run() int {
	file := flag.String("file", "", "path to a puzzle file")
	bh := flag.Int("bh", 3, "block height")
	bw := flag.Int("bw", 3, "block width")
	mode := flag.String("mode", "deduce", "deduce or search")
	maxCount := flag.Int("max-count", constants.DefaultMaxSolutions, "maximum solutions to enumerate in search mode")
	naked := flag.Int("naked", -1, "max level for naked elimination, 0 disables, -1 unlimited")
	hidden := flag.Int("hidden", -1, "max level for hidden elimination, 0 disables, -1 unlimited")
	linked := flag.Int("linked", -1, "max level for linked elimination, 0 disables, -1 unlimited")
	lowerLevelFirst := flag.Bool("lower-level-first", true, "restart the round at k=1 after any fire")
	quiet := flag.Bool("quiet", false, "suppress the step transcript, printing only the final grid")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "sudoku: -file is required")
		return 2
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sudoku: %v\n", err)
		return 2
	}

	g, err := grid.New(*bh, *bw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sudoku: %v\n", err)
		return 2
	}

	p, err := format.ParsePuzzle(g, string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "sudoku: %v\n", err)
		return 2
	}

	if p.Paradoxical() {
		fmt.Fprintln(os.Stderr, "sudoku: initial puzzle state is paradoxical")
		return 1
	}

	s := solver.New(g)
	s.SetMaxLevel(evidence.RuleNaked, *naked)
	s.SetMaxLevel(evidence.RuleHidden, *hidden)
	s.SetMaxLevel(evidence.RuleLinked, *linked)
	s.SetLowerLevelFirst(*lowerLevelFirst)

	for step, stepErr := range s.Deduce(p) {
		if !*quiet {
			printStep(step)
		}
		if stepErr != nil {
			break
		}
	}

	var solutions []*puzzle.Puzzle
	if strings.EqualFold(*mode, "search") && !p.Solved() {
		for step, stepErr := range s.Search(p, &solutions, *maxCount) {
			if !*quiet {
				printStep(step)
			}
			_ = stepErr
		}
	}

	fmt.Println()
	printGrid(p)

	if len(solutions) > 0 {
		for i, sol := range solutions {
			fmt.Printf("\nsolution %d:\n", i+1)
			printGrid(sol)
		}
	}

	return 0
}

func printStep(step evidence.Step) {
	text, err := format.PrintStep(step)
	if err != nil {
		return
	}
	if _, ok := step.Evidence.(evidence.Paradox); ok {
		color.New(color.FgHiRed).Print(text)
		return
	}
	color.New(color.FgHiBlack).Print(text)
}

const (
	edgeMinor = "│"
	edgeMajor = "║"
)

// printGrid renders p as a bordered grid, with thicker dividers at block
// boundaries, solved cells in bold white and unsolved cells dimmed —
// generalized from a fixed 3x3 layout to any BlockHeight x BlockWidth.
func printGrid(p *puzzle.Puzzle) {
	g := p.Grid()
	solvedColor := color.New(color.Bold, color.FgHiWhite)
	unsolvedColor := color.New(color.FgHiBlack)

	color.HiWhite(border(g.N, g.BlockWidth, "─", "┬", "╥", "┌", "┐"))
	for row := 0; row < g.N; row++ {
		if row > 0 {
			if row%g.BlockHeight == 0 {
				color.HiWhite(border(g.N, g.BlockWidth, "═", "╪", "╬", "╞", "╡"))
			} else {
				color.HiWhite(border(g.N, g.BlockWidth, "─", "┼", "╫", "├", "┤"))
			}
		}
		printRow(p, row, solvedColor, unsolvedColor)
	}
	color.HiWhite(border(g.N, g.BlockWidth, "─", "┴", "╨", "└", "┘"))
}

func printRow(p *puzzle.Puzzle, row int, solvedColor, unsolvedColor *color.Color) {
	g := p.Grid()
	for col := 0; col < g.N; col++ {
		if col != 0 && col%g.BlockWidth == 0 {
			fmt.Print(color.HiWhiteString(edgeMajor))
		} else {
			fmt.Print(color.HiWhiteString(edgeMinor))
		}

		cell := grid.Cell{Row: row, Col: col}
		set := p.Candidates(cell)
		if v, ok := set.Only(); ok {
			solvedColor.Print(cellText(markerString(v)))
		} else {
			unsolvedColor.Print(cellText("."))
		}
	}
	color.HiWhite(edgeMinor)
}

func cellText(s string) string {
	return fmt.Sprintf(" %s ", s)
}

func markerString(v int) string {
	if v < 0 || v >= len(constants.MarkerAlphabet) {
		return "?"
	}
	return string(constants.MarkerAlphabet[v])
}

func border(n, blockWidth int, fill, minorJoin, majorJoin, left, right string) string {
	var b strings.Builder
	b.WriteString(left)
	for col := 0; col < n; col++ {
		b.WriteString(strings.Repeat(fill, 3))
		switch {
		case col == n-1:
			b.WriteString(right)
		case (col+1)%blockWidth == 0:
			b.WriteString(majorJoin)
		default:
			b.WriteString(minorJoin)
		}
	}
	return b.String()
}
