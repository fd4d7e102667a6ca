// Package combinations enumerates department number assignments.
//
// A department assignment is an ordered triple taken from a candidate list:
// the first number goes to the Police department and must be even, the
// second to Sanitation and the third to Fire. All three numbers must come
// from different positions of the candidate list and add up to the target.
//
// The package is pure: no state is shared between calls, inputs are never
// modified, and every function is safe for concurrent use.
package combinations

// Combination is an ordered (Police, Sanitation, Fire) triple.
// It marshals to JSON as a three element array.
type Combination [3]int

// Police returns the first (even) number.
func (c Combination) Police() int { return c[0] }

// Sanitation returns the second number.
func (c Combination) Sanitation() int { return c[1] }

// Fire returns the third number.
func (c Combination) Fire() int { return c[2] }

// Sum returns the total of all three numbers.
func (c Combination) Sum() int { return c[0] + c[1] + c[2] }

// Finder enumerates the combinations of candidates that reach targetSum.
type Finder func(candidates []int, targetSum int) []Combination

// IsValid reports whether c satisfies the value constraints of an
// assignment: an even first number and a sum equal to targetSum.
// Position distinctness cannot be checked from values alone.
func IsValid(c Combination, targetSum int) bool {
	return isEven(c[0]) && c.Sum() == targetSum
}

// Find returns every ordered triple of position-distinct candidates whose
// first element is even and whose elements sum to targetSum.
//
// Positions are walked in index order (i, then j, then k), so the result
// order is stable for identical inputs. Repeated values at different
// positions are treated as independent candidates. Fewer than three
// candidates yield an empty, non-nil slice.
func Find(candidates []int, targetSum int) []Combination {
	result := []Combination{}
	n := len(candidates)
	if n < 3 {
		return result
	}

	for i := 0; i < n; i++ {
		first := candidates[i]
		if !isEven(first) {
			continue
		}

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			second := candidates[j]

			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				third := candidates[k]

				if first+second+third == targetSum {
					result = append(result, Combination{first, second, third})
				}
			}
		}
	}

	return result
}

// FindIndexed is the lookup-based variant of Find. It indexes candidate
// positions by value and, for every (i, j) pair, checks in constant time
// whether the missing third value is available at a position other than
// i and j.
//
// For candidate lists without repeated values the output is identical to
// Find, order included. With repeated values it emits at most one triple
// per (i, j) pair, so a third value present at several free positions is
// reported once instead of once per position. Use Find when duplicates are
// possible.
func FindIndexed(candidates []int, targetSum int) []Combination {
	result := []Combination{}
	n := len(candidates)
	if n < 3 {
		return result
	}

	positions := make(map[int][]int, n)
	for idx, v := range candidates {
		positions[v] = append(positions[v], idx)
	}

	for i := 0; i < n; i++ {
		first := candidates[i]
		if !isEven(first) {
			continue
		}

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			second := candidates[j]
			needed := targetSum - first - second

			for _, k := range positions[needed] {
				if k != i && k != j {
					result = append(result, Combination{first, second, needed})
					break
				}
			}
		}
	}

	return result
}

// isEven compares against zero because v%2 is -1 for negative odd values.
func isEven(v int) bool {
	return v%2 == 0
}
