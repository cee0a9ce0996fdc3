package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runBST(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(append([]string{"bst"}, args...), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestPrint_Keys(t *testing.T) {
	out, _, err := runBST(t, "print", "5", "3", "8", "1", "4", "7", "9", "3")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"│       ┌── 9",
		"│   ┌── 8",
		"│   │   └── 7",
		"└── 5",
		"    │   ┌── 4",
		"    └── 3",
		"        └── 1",
	}, "\n")+"\n", out)
}

func TestPrint_TreePrint(t *testing.T) {
	out, _, err := runBST(t, "print", "--style", "treeprint", "2", "1", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2", lines[0])
	assert.Regexp(t, `\[L\]\s+1$`, lines[1])
	assert.Regexp(t, `\[R\]\s+3$`, lines[2])
}

func TestPrint_Random(t *testing.T) {
	a, _, err := runBST(t, "print", "--seed", "11", "--count", "20", "--max", "50")
	require.NoError(t, err)
	b, _, err := runBST(t, "print", "--seed", "11", "--count", "20", "--max", "50")
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed draws the same tree")
	assert.NotEmpty(t, a)

	out, _, err := runBST(t, "print", "--count", "0")
	require.NoError(t, err)
	assert.Equal(t, "(empty)\n", out)
}

func TestPrint_Errors(t *testing.T) {
	_, _, err := runBST(t, "print", "1", "x")
	assert.ErrorContains(t, err, `parsing key "x"`)
	_, _, err = runBST(t, "print", "--style", "sideways", "1")
	assert.ErrorContains(t, err, "unknown style")
	_, _, err = runBST(t, "print", "--max", "0")
	assert.Error(t, err)
	_, _, err = runBST(t, "--log-level", "loud", "print", "1")
	assert.ErrorContains(t, err, "log level")
}

func TestDemo(t *testing.T) {
	out, logs, err := runBST(t, "demo", "--seed", "3")
	require.NoError(t, err)
	var balanced []string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "Balanced: ") {
			balanced = append(balanced, strings.TrimPrefix(l, "Balanced: "))
		}
	}
	assert.Equal(t, []string{"true", "false", "true"}, balanced)
	assert.Contains(t, out, "Random Array: [")
	assert.Equal(t, 2, strings.Count(out, "In Order: ["))
	assert.Contains(t, out, "104")
	assert.Contains(t, logs, "msg=rebalanced")
}

func TestOps(t *testing.T) {
	out, _, err := runBST(t, "ops", "--order", "pre", "5", "3", "8", "add:9", "add:10", "add:11", "del:3", "del:42", "find:10", "find:3", "rebalance")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"build: [5 3 8]",
		"add 9: [5 3 8 9]",
		"add 10: [5 3 8 9 10]",
		"add 11: [5 3 8 9 10 11]",
		"del 3: [5 8 9 10 11]",
		"del 42: [5 8 9 10 11]",
		"find 10: height=1 depth=3",
		"find 3: not found",
		"rebalance: [9 5 8 10 11] balanced=true",
		"size=5 height=2 balanced=true",
	}, "\n")+"\n", out)
}

func TestOps_Errors(t *testing.T) {
	_, _, err := runBST(t, "ops", "1", "mul:2")
	assert.ErrorContains(t, err, "unknown operation")
	_, _, err = runBST(t, "ops", "1", "add:two")
	assert.ErrorContains(t, err, `parsing operation "add:two"`)
	_, _, err = runBST(t, "ops", "--order", "zigzag", "1")
	assert.Error(t, err)

	out, _, err := runBST(t, "ops")
	require.NoError(t, err)
	assert.Equal(t, "build: []\nsize=0 height=none balanced=true\n", out)
}
