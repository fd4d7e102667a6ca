// Package solver connects user input to the combination finder.
//
// It owns everything between a raw form submission and a rendered result:
// fail-soft number parsing, the random puzzle generator, result cards and
// statistics, and the code snippet displayed next to the results.
package solver

import (
	"strconv"
	"strings"

	"github.com/aristath/deptnumbers/internal/combinations"
)

const (
	// MinNumber and MaxNumber bound the numbers accepted from user input.
	MinNumber = 1
	MaxNumber = 7

	// DefaultTarget is the target sum used when a request omits one.
	DefaultTarget = combinations.DefaultTarget

	// cardDelayStepMs staggers the card reveal animation.
	cardDelayStepMs = 50
)

// Department labels, in combination order.
const (
	LabelPolice     = "Police"
	LabelSanitation = "Sanitation"
	LabelFire       = "Fire"
)

// Labels lists the department names for the three combination slots.
var Labels = [3]string{LabelPolice, LabelSanitation, LabelFire}

// theoreticalMax is the number of ordered triples over MaxNumber values
// with repetition (7³). Efficiency is measured against it.
const theoreticalMax = MaxNumber * MaxNumber * MaxNumber

// Puzzle is a set of candidate numbers and a target sum.
type Puzzle struct {
	Numbers []int `json:"numbers" msgpack:"numbers"`
	Target  int   `json:"target" msgpack:"target"`
}

// NumbersText renders the numbers as the comma separated text the input
// field expects.
func (p Puzzle) NumbersText() string {
	parts := make([]string, len(p.Numbers))
	for i, n := range p.Numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// Card is the display form of one combination.
type Card struct {
	Index      int `json:"index" msgpack:"index"`
	Police     int `json:"police" msgpack:"police"`
	Sanitation int `json:"sanitation" msgpack:"sanitation"`
	Fire       int `json:"fire" msgpack:"fire"`
	DelayMs    int `json:"delay_ms" msgpack:"delay_ms"` // reveal animation delay
}

// NewCards builds one card per combination, preserving order.
func NewCards(combos []combinations.Combination) []Card {
	cards := make([]Card, len(combos))
	for i, c := range combos {
		cards[i] = Card{
			Index:      i,
			Police:     c.Police(),
			Sanitation: c.Sanitation(),
			Fire:       c.Fire(),
			DelayMs:    i * cardDelayStepMs,
		}
	}
	return cards
}

// Stats summarises a solve run.
type Stats struct {
	Total       int     `json:"total" msgpack:"total"`
	ExecutionMs float64 `json:"execution_ms" msgpack:"execution_ms"`
	Efficiency  float64 `json:"efficiency" msgpack:"efficiency"` // percent of theoreticalMax
}

// Request is a solve request as submitted by the page or the API.
type Request struct {
	Numbers  string `json:"numbers" msgpack:"numbers"`   // comma separated, parsed fail-soft
	Target   int    `json:"target" msgpack:"target"`     // target sum
	Strategy string `json:"strategy" msgpack:"strategy"` // optional, service default when empty
}

// Result is the outcome of a solve request.
type Result struct {
	ID           string                     `json:"id" msgpack:"id"`
	Numbers      []int                      `json:"numbers" msgpack:"numbers"`
	NumbersText  string                     `json:"numbers_text" msgpack:"numbers_text"`
	Target       int                        `json:"target" msgpack:"target"`
	Strategy     combinations.Strategy      `json:"strategy" msgpack:"strategy"`
	Combinations []combinations.Combination `json:"combinations" msgpack:"combinations"`
	Cards        []Card                     `json:"cards" msgpack:"cards"`
	Stats        Stats                      `json:"stats" msgpack:"stats"`
	Summary      string                     `json:"summary" msgpack:"summary"`
}
