package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/deptnumbers/internal/combinations"
)

// ErrNoValidNumbers is returned when no number in the input survives parsing.
var ErrNoValidNumbers = errors.New("no valid numbers between 1 and 7")

// Service runs solve requests against the combination finder.
type Service struct {
	strategy combinations.Strategy
	log      zerolog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService creates a solver service.
//
// strategy is used for requests that do not name one. A nil rng is
// replaced with a time-seeded source.
func NewService(strategy combinations.Strategy, rng *rand.Rand, log zerolog.Logger) *Service {
	if strategy == "" {
		strategy = combinations.DefaultStrategy
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		strategy: strategy,
		rng:      rng,
		log:      log.With().Str("service", "solver").Logger(),
	}
}

// Strategy returns the default strategy.
func (s *Service) Strategy() combinations.Strategy {
	return s.strategy
}

// Solve parses req and enumerates its combinations.
//
// Returns ErrNoValidNumbers when the input holds no usable number and a
// wrapped combinations.ErrUnknownStrategy for an unknown strategy name.
// An empty combination list is a valid result.
func (s *Service) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	strategy, err := s.resolveStrategy(req.Strategy)
	if err != nil {
		return nil, err
	}

	numbers := ParseNumbers(req.Numbers)
	if len(numbers) == 0 {
		return nil, ErrNoValidNumbers
	}

	return s.run(Puzzle{Numbers: numbers, Target: req.Target}, strategy), nil
}

// Random generates a random puzzle and solves it with the named strategy,
// or the default strategy when strategyName is empty.
func (s *Service) Random(ctx context.Context, strategyName string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	strategy, err := s.resolveStrategy(strategyName)
	if err != nil {
		return nil, err
	}

	s.rngMu.Lock()
	puzzle := NewRandomPuzzle(s.rng)
	s.rngMu.Unlock()

	return s.run(puzzle, strategy), nil
}

func (s *Service) resolveStrategy(name string) (combinations.Strategy, error) {
	if name == "" {
		return s.strategy, nil
	}
	return combinations.ParseStrategy(name)
}

func (s *Service) run(puzzle Puzzle, strategy combinations.Strategy) *Result {
	start := time.Now()
	combos := strategy.Finder()(puzzle.Numbers, puzzle.Target)
	elapsed := time.Since(start)

	result := &Result{
		ID:           uuid.New().String(),
		Numbers:      puzzle.Numbers,
		NumbersText:  puzzle.NumbersText(),
		Target:       puzzle.Target,
		Strategy:     strategy,
		Combinations: combos,
		Cards:        NewCards(combos),
		Stats:        NewStats(len(combos), elapsed),
		Summary:      fmt.Sprintf("%d valid combinations found", len(combos)),
	}

	s.log.Debug().
		Str("id", result.ID).
		Str("strategy", strategy.String()).
		Ints("numbers", puzzle.Numbers).
		Int("target", puzzle.Target).
		Int("combinations", len(combos)).
		Dur("elapsed", elapsed).
		Msg("Puzzle solved")

	return result
}

// NewStats computes display statistics for a run that found total
// combinations in elapsed time.
func NewStats(total int, elapsed time.Duration) Stats {
	ms := float64(elapsed.Nanoseconds()) / float64(time.Millisecond)
	return Stats{
		Total:       total,
		ExecutionMs: round(ms, 2),
		Efficiency:  round(float64(total)/theoreticalMax*100, 1),
	}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
