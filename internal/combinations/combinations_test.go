package combinations

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var oneToSeven = []int{1, 2, 3, 4, 5, 6, 7}

// positionTriples enumerates qualifying index triples independently of
// the implementation under test.
func positionTriples(candidates []int, target int) [][3]int {
	var out [][3]int
	for i := range candidates {
		for j := range candidates {
			for k := range candidates {
				if i == j || j == k || i == k {
					continue
				}
				a, b, c := candidates[i], candidates[j], candidates[k]
				if a%2 == 0 && a+b+c == target {
					out = append(out, [3]int{i, j, k})
				}
			}
		}
	}
	return out
}

func TestFind_OneToSevenTargetTwelve(t *testing.T) {
	result := Find(oneToSeven, 12)

	expected := []Combination{
		{2, 3, 7}, {2, 4, 6}, {2, 6, 4}, {2, 7, 3},
		{4, 1, 7}, {4, 2, 6}, {4, 3, 5}, {4, 5, 3}, {4, 6, 2}, {4, 7, 1},
		{6, 1, 5}, {6, 2, 4}, {6, 4, 2}, {6, 5, 1},
	}
	assert.Equal(t, expected, result)
	assert.NotContains(t, result, Combination{2, 5, 5}, "5 is only available once")
}

func TestFind_SmallInputs(t *testing.T) {
	testCases := []struct {
		name       string
		candidates []int
	}{
		{"nil", nil},
		{"empty", []int{}},
		{"one element", []int{4}},
		{"two elements", []int{2, 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, target := range []int{-3, 0, 6, 12} {
				result := Find(tc.candidates, target)
				require.NotNil(t, result)
				assert.Empty(t, result)

				indexed := FindIndexed(tc.candidates, target)
				require.NotNil(t, indexed)
				assert.Empty(t, indexed)
			}
		})
	}
}

func TestFind_MatchesPositionEnumeration(t *testing.T) {
	testCases := []struct {
		name       string
		candidates []int
	}{
		{"one to seven", oneToSeven},
		{"shuffled", []int{5, 2, 7, 1, 6, 4, 3}},
		{"duplicates", []int{2, 2, 3, 4, 4, 5}},
		{"negatives", []int{-2, -1, 0, 3, 4}},
		{"all even", []int{2, 4, 6, 8}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for target := -5; target <= 24; target++ {
				triples := positionTriples(tc.candidates, target)
				result := Find(tc.candidates, target)
				require.Len(t, result, len(triples), "target %d", target)

				for idx, pos := range triples {
					want := Combination{tc.candidates[pos[0]], tc.candidates[pos[1]], tc.candidates[pos[2]]}
					assert.Equal(t, want, result[idx], "target %d", target)
					assert.True(t, IsValid(result[idx], target))
				}
			}
		})
	}
}

func TestFind_CountsPerTarget(t *testing.T) {
	expected := map[int]int{
		5: 0, 6: 2, 7: 4, 8: 4, 9: 8, 10: 8, 11: 12, 12: 14,
		13: 12, 14: 8, 15: 8, 16: 4, 17: 4, 18: 2, 19: 0, 100: 0,
	}

	for target, count := range expected {
		assert.Len(t, Find(oneToSeven, target), count, "target %d", target)
	}
}

func TestFind_DuplicateValuesArePositionDistinct(t *testing.T) {
	result := Find([]int{2, 2, 3}, 7)

	// Both 2s can lead, each pairing with the other 2 and the 3 in
	// either order.
	assert.Equal(t, []Combination{
		{2, 2, 3}, {2, 3, 2},
		{2, 2, 3}, {2, 3, 2},
	}, result)
}

func TestFind_DoesNotMutateInput(t *testing.T) {
	candidates := []int{7, 3, 6, 1, 4, 2, 5}
	snapshot := append([]int(nil), candidates...)

	Find(candidates, 12)
	FindIndexed(candidates, 12)

	assert.Equal(t, snapshot, candidates)
}

func TestFind_Deterministic(t *testing.T) {
	candidates := []int{3, 6, 1, 4, 7, 2, 5}
	assert.Equal(t, Find(candidates, 11), Find(candidates, 11))
	assert.Equal(t, FindIndexed(candidates, 11), FindIndexed(candidates, 11))
}

func TestFindIndexed_MatchesFindOnDistinctValues(t *testing.T) {
	inputs := [][]int{
		oneToSeven,
		{7, 6, 5, 4, 3, 2, 1},
		{2, 5, 7},
		{1, 3, 4, 6},
	}

	for _, candidates := range inputs {
		for target := 0; target <= 22; target++ {
			assert.Equal(t, Find(candidates, target), FindIndexed(candidates, target),
				"candidates %v target %d", candidates, target)
		}
	}
}

func TestFindIndexed_CapsDuplicateMultiplicity(t *testing.T) {
	candidates := []int{2, 5, 5, 5}

	// Brute force pairs the leading 2 with every ordered pair of 5s.
	assert.Len(t, Find(candidates, 12), 6)

	// The index variant emits once per (i, j) pair.
	assert.Len(t, FindIndexed(candidates, 12), 3)
}

func TestIsValid(t *testing.T) {
	testCases := []struct {
		name   string
		combo  Combination
		target int
		valid  bool
	}{
		{"even first, matching sum", Combination{2, 3, 7}, 12, true},
		{"odd first", Combination{3, 2, 7}, 12, false},
		{"wrong sum", Combination{2, 3, 6}, 12, false},
		{"negative even first", Combination{-2, 7, 7}, 12, true},
		{"negative odd first", Combination{-3, 8, 7}, 12, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValid(tc.combo, tc.target))
		})
	}
}

func TestCombination_Accessors(t *testing.T) {
	c := Combination{4, 3, 5}
	assert.Equal(t, 4, c.Police())
	assert.Equal(t, 3, c.Sanitation())
	assert.Equal(t, 5, c.Fire())
	assert.Equal(t, 12, c.Sum())
}

func TestCombination_MarshalsAsArray(t *testing.T) {
	data, err := json.Marshal([]Combination{{2, 4, 6}})
	require.NoError(t, err)
	assert.JSONEq(t, `[[2,4,6]]`, string(data))
}
