package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/deptnumbers/internal/combinations"
	"github.com/aristath/deptnumbers/internal/modules/solver"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolve_Defaults(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 15)
	assert.Equal(t, "Found 14 combinations:", lines[0])
	assert.Equal(t, "[2, 3, 7]", lines[1])
	assert.Equal(t, "[6, 5, 1]", lines[14])
}

func TestSolve_Verbose(t *testing.T) {
	out, err := execute(t, "--numbers", "2,4,6", "--target", "12", "--strategy", "indexed", "--verbose")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Found 6 combinations:", lines[0])
	assert.True(t, strings.HasPrefix(lines[7], "Numbers: 2,4,6  Target: 12  Strategy: indexed  Time: "), lines[7])
}

func TestSolve_Flags(t *testing.T) {
	out, err := execute(t, "--numbers", "2,2,3", "--target", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 4 combinations:")

	out, err = execute(t, "-n", "2,5,5,5", "-t", "12", "-s", "indexed")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 3 combinations:")
}

func TestSolve_JSON(t *testing.T) {
	out, err := execute(t, "--numbers", "2,4,6", "--target", "12", "--json")
	require.NoError(t, err)

	var result solver.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []combinations.Combination{{2, 4, 6}, {2, 6, 4}, {4, 2, 6}, {4, 6, 2}, {6, 2, 4}, {6, 4, 2}}, result.Combinations)
}

func TestSolve_Random(t *testing.T) {
	out, err := execute(t, "--random", "--strategy", "indexed", "--json")
	require.NoError(t, err)

	var result solver.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Numbers, 7)
	assert.Equal(t, combinations.StrategyIndexed, result.Strategy)
	assert.Equal(t, combinations.Find(result.Numbers, result.Target), result.Combinations)
}

func TestSolve_Errors(t *testing.T) {
	_, err := execute(t, "--numbers", "9,x")
	assert.True(t, errors.Is(err, solver.ErrNoValidNumbers))

	_, err = execute(t, "--strategy", "bogus")
	assert.True(t, errors.Is(err, combinations.ErrUnknownStrategy))

	_, err = execute(t, "extra-arg")
	assert.Error(t, err)
}
