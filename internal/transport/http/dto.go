package http

// GridRequest describes the block geometry a puzzle is defined over. It
// is embedded in every request that needs to build a Grid.
type GridRequest struct {
	BlockHeight int `json:"block_height" binding:"required,min=1"`
	BlockWidth  int `json:"block_width" binding:"required,min=1"`
}

// DeduceRequest asks the solver to run logical elimination only.
type DeduceRequest struct {
	Grid   GridRequest `json:"grid" binding:"required"`
	Puzzle string      `json:"puzzle" binding:"required"`

	MaxLevels       map[string]int `json:"max_levels"`
	LowerLevelFirst *bool          `json:"lower_level_first"`
}

// SearchRequest asks the solver to run logical elimination and, if
// unsolved, guess/search for up to MaxCount solutions.
type SearchRequest struct {
	Grid   GridRequest `json:"grid" binding:"required"`
	Puzzle string      `json:"puzzle" binding:"required"`

	MaxLevels       map[string]int `json:"max_levels"`
	LowerLevelFirst *bool          `json:"lower_level_first"`
	MaxCount        int            `json:"max_count"`
}

// ValidateRequest asks whether a puzzle file is well-formed and, if so,
// whether its current state is paradoxical.
type ValidateRequest struct {
	Grid   GridRequest `json:"grid" binding:"required"`
	Puzzle string      `json:"puzzle" binding:"required"`
}

// StepDTO is the wire rendering of one evidence.Step: the transcript
// line plus a machine-readable rule/level pair, so a client can either
// display the text or branch on the rule programmatically.
type StepDTO struct {
	Rule       string `json:"rule"`
	Level      int    `json:"level"`
	Paradox    bool   `json:"paradox"`
	Transcript string `json:"transcript"`
}

// SolveResponse is returned by both /api/solve/deduce and
// /api/solve/search.
type SolveResponse struct {
	Status    string    `json:"status"`
	Steps     []StepDTO `json:"steps"`
	Puzzle    string    `json:"puzzle"`
	Solutions []string  `json:"solutions,omitempty"`
}

// ValidateResponse is returned by /api/puzzle/validate.
type ValidateResponse struct {
	Valid       bool   `json:"valid"`
	Paradoxical bool   `json:"paradoxical"`
	Solved      bool   `json:"solved"`
	Error       string `json:"error,omitempty"`
}
