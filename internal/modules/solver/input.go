package solver

import (
	"math/rand"
	"strconv"
	"strings"
)

// ParseNumbers parses comma separated user input. Tokens that are not
// integers or fall outside [MinNumber, MaxNumber] are dropped silently.
// The result is never nil.
func ParseNumbers(text string) []int {
	numbers := []int{}
	for _, token := range strings.Split(text, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			continue
		}
		if n < MinNumber || n > MaxNumber {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// NewRandomPuzzle returns a shuffled 1..7 with a target in [10, 19].
func NewRandomPuzzle(rng *rand.Rand) Puzzle {
	perm := rng.Perm(MaxNumber)
	numbers := make([]int, len(perm))
	for i, p := range perm {
		numbers[i] = p + MinNumber
	}

	return Puzzle{
		Numbers: numbers,
		Target:  rng.Intn(10) + 10,
	}
}
