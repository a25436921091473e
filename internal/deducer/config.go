package deducer

import "sudoku-engine/internal/evidence"

// Config configures which rule families run and at which levels, and
// whether a low-level fire restarts the round. A MaxLevel of -1 means
// unlimited, 0 disables the rule entirely, and a positive value caps the
// combination size k the rule is tried at.
type Config struct {
	MaxLevel        map[evidence.Rule]int
	LowerLevelFirst bool
}

// DefaultConfig enables naked, hidden, and linked without any level cap
// and restarts the round at k=1 after any fire, matching the spec's
// documented default.
func DefaultConfig() Config {
	return Config{
		MaxLevel: map[evidence.Rule]int{
			evidence.RuleNaked:  -1,
			evidence.RuleHidden: -1,
			evidence.RuleLinked: -1,
		},
		LowerLevelFirst: true,
	}
}

// DisableAllRules zeroes every rule's MaxLevel, turning the Deducer into
// a no-op that immediately reaches a (trivial) fixpoint. Solver's
// DisableAllRules calls this; a Searcher given such a Config then does
// pure backtracking with no logical pruning.
func (c *Config) DisableAllRules() {
	if c.MaxLevel == nil {
		c.MaxLevel = make(map[evidence.Rule]int)
	}
	c.MaxLevel[evidence.RuleNaked] = 0
	c.MaxLevel[evidence.RuleHidden] = 0
	c.MaxLevel[evidence.RuleLinked] = 0
}

// enabledAt reports whether rule is enabled at combination size k. An
// absent entry in MaxLevel defaults to unlimited.
func (c Config) enabledAt(rule evidence.Rule, k int) bool {
	max, ok := c.MaxLevel[rule]
	if !ok {
		return true
	}
	switch {
	case max == 0:
		return false
	case max < 0:
		return true
	default:
		return k <= max
	}
}
