package solver

import "github.com/aristath/deptnumbers/internal/combinations"

const bruteForceSnippet = `func Find(candidates []int, targetSum int) []Combination {
	result := []Combination{}
	n := len(candidates)

	for i := 0; i < n; i++ {
		first := candidates[i]

		// Police department must be even
		if first%2 != 0 {
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
}`

const indexedSnippet = `func FindIndexed(candidates []int, targetSum int) []Combination {
	result := []Combination{}
	n := len(candidates)

	positions := make(map[int][]int, n)
	for idx, v := range candidates {
		positions[v] = append(positions[v], idx)
	}

	for i := 0; i < n; i++ {
		first := candidates[i]

		// Police department must be even
		if first%2 != 0 {
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
}`

// CodeSnippet returns the source shown in the page's code panel.
func CodeSnippet(strategy combinations.Strategy) string {
	if strategy == combinations.StrategyIndexed {
		return indexedSnippet
	}
	return bruteForceSnippet
}
