// Package http exposes the solver core over a small JSON API: a health
// check, logical-deduction and guess/search endpoints, and a puzzle file
// validator. It owns no solver state between requests — every call
// builds a fresh Grid, Puzzle, and Solver from the request body.
package http

import (
	"fmt"
	"iter"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sudoku-engine/internal/evidence"
	"sudoku-engine/internal/format"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzle"
	"sudoku-engine/internal/solver"
	"sudoku-engine/pkg/config"
	"sudoku-engine/pkg/constants"
)

var cfg *config.Config

// RegisterRoutes wires the solver API onto r.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c
	r.Use(requestIDMiddleware)

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve/deduce", deduceHandler)
		api.POST("/solve/search", searchHandler)
		api.POST("/puzzle/validate", validateHandler)
	}
}

func requestIDMiddleware(c *gin.Context) {
	c.Header("X-Request-ID", uuid.New().String())
	c.Next()
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// buildGridAndPuzzle constructs a Grid from req and parses body into a
// Puzzle over it, responding with 400 on the first failure. ok reports
// whether the caller should continue.
func buildGridAndPuzzle(c *gin.Context, gr GridRequest, body string) (*grid.Grid, *puzzle.Puzzle, bool) {
	g, err := grid.New(gr.BlockHeight, gr.BlockWidth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	p, err := format.ParsePuzzle(g, body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	if p.Paradoxical() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "puzzle is paradoxical in its initial state"})
		return nil, nil, false
	}
	return g, p, true
}

// applyRuleConfig applies the optional MaxLevels/LowerLevelFirst
// overrides carried on a request to s.
func applyRuleConfig(s *solver.Solver, maxLevels map[string]int, lowerLevelFirst *bool) error {
	for name, level := range maxLevels {
		rule := evidence.Rule(name)
		switch rule {
		case evidence.RuleNaked, evidence.RuleHidden, evidence.RuleLinked:
			s.SetMaxLevel(rule, level)
		default:
			return fmt.Errorf("unknown rule %q", name)
		}
	}
	if lowerLevelFirst != nil {
		s.SetLowerLevelFirst(*lowerLevelFirst)
	}
	return nil
}

func deduceHandler(c *gin.Context) {
	var req DeduceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, p, ok := buildGridAndPuzzle(c, req.Grid, req.Puzzle)
	if !ok {
		return
	}

	s := solver.New(g)
	if err := applyRuleConfig(s, req.MaxLevels, req.LowerLevelFirst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	steps, err := collectSteps(s.Deduce(p))
	resp := SolveResponse{Status: statusOf(p), Steps: steps}
	if err != nil {
		resp.Status = constants.StatusParadox
	}
	printed, printErr := format.PrintPuzzle(p)
	if printErr == nil {
		resp.Puzzle = printed
	}
	c.JSON(http.StatusOK, resp)
}

func searchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, p, ok := buildGridAndPuzzle(c, req.Grid, req.Puzzle)
	if !ok {
		return
	}

	s := solver.New(g)
	if err := applyRuleConfig(s, req.MaxLevels, req.LowerLevelFirst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	maxCount := req.MaxCount
	if maxCount <= 0 {
		maxCount = constants.DefaultMaxSolutions
		if cfg != nil && cfg.MaxSearchSolutions > 0 {
			maxCount = cfg.MaxSearchSolutions
		}
	}

	deduceSteps, err := collectSteps(s.Deduce(p))
	steps := deduceSteps
	status := statusOf(p)

	if err == nil && !p.Solved() {
		var solutions []*puzzle.Puzzle
		searchSteps, _ := collectSteps(s.Search(p, &solutions, maxCount))
		steps = append(steps, searchSteps...)

		resp := SolveResponse{Status: status, Steps: steps}
		if len(solutions) > 0 {
			resp.Status = constants.StatusSolved
		} else {
			resp.Status = constants.StatusUnresolved
		}
		for _, sol := range solutions {
			if text, printErr := format.PrintPuzzle(sol); printErr == nil {
				resp.Solutions = append(resp.Solutions, text)
			}
		}
		printed, printErr := format.PrintPuzzle(p)
		if printErr == nil {
			resp.Puzzle = printed
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	if err != nil {
		status = constants.StatusParadox
	}
	resp := SolveResponse{Status: status, Steps: steps}
	printed, printErr := format.PrintPuzzle(p)
	if printErr == nil {
		resp.Puzzle = printed
	}
	c.JSON(http.StatusOK, resp)
}

func validateHandler(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := grid.New(req.Grid.BlockHeight, req.Grid.BlockWidth)
	if err != nil {
		c.JSON(http.StatusOK, ValidateResponse{Valid: false, Error: err.Error()})
		return
	}

	p, err := format.ParsePuzzle(g, req.Puzzle)
	if err != nil {
		c.JSON(http.StatusOK, ValidateResponse{Valid: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{
		Valid:       true,
		Paradoxical: p.Paradoxical(),
		Solved:      p.Solved(),
	})
}

// collectSteps drains seq into DTOs, stopping (with the carried error) at
// the first paradox, exactly like a transcript printer would.
func collectSteps(seq iter.Seq2[evidence.Step, error]) ([]StepDTO, error) {
	var out []StepDTO
	var stepErr error
	seq(func(step evidence.Step, err error) bool {
		_, isParadox := step.Evidence.(evidence.Paradox)
		transcript, printErr := format.PrintStep(step)
		if printErr != nil {
			transcript = ""
		}
		out = append(out, StepDTO{
			Rule:       string(step.Evidence.Rule()),
			Level:      step.Evidence.Level(),
			Paradox:    isParadox,
			Transcript: transcript,
		})
		if err != nil {
			stepErr = err
			return false
		}
		return true
	})
	return out, stepErr
}

func statusOf(p *puzzle.Puzzle) string {
	switch {
	case p.Solved():
		return constants.StatusSolved
	case p.Paradoxical():
		return constants.StatusParadox
	case p.Fulfilled():
		return constants.StatusParadox
	default:
		return constants.StatusFixpoint
	}
}
