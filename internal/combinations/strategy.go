package combinations

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy names an enumeration algorithm.
type Strategy string

const (
	// StrategyBruteForce walks every position triple. This is the canonical
	// behaviour and the default.
	StrategyBruteForce Strategy = "brute-force"
	// StrategyIndexed resolves the third number through a value index.
	StrategyIndexed Strategy = "indexed"
)

// DefaultStrategy is used when no strategy is configured.
const DefaultStrategy = StrategyBruteForce

// DefaultTarget is the target sum of the classic puzzle.
const DefaultTarget = 12

// Strategies returns all known strategies, default first.
func Strategies() []Strategy {
	return []Strategy{StrategyBruteForce, StrategyIndexed}
}

// ParseStrategy resolves a strategy name. Matching is case-insensitive and
// an empty name selects DefaultStrategy.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return DefaultStrategy, nil
	case StrategyBruteForce:
		return StrategyBruteForce, nil
	case StrategyIndexed:
		return StrategyIndexed, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Finder returns the enumeration function for s. Unknown strategies fall
// back to Find.
func (s Strategy) Finder() Finder {
	if s == StrategyIndexed {
		return FindIndexed
	}
	return Find
}

func (s Strategy) String() string {
	return string(s)
}
