package corpus

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePairs(n int) []Pair {
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{
			Input:  fmt.Sprintf("input %d", i),
			Output: fmt.Sprintf("output %d", i),
		})
	}
	return pairs
}

func TestAssemble_SplitSizes(t *testing.T) {
	for _, total := range []int{10, 100, 15600, 7, 1, 0} {
		a := NewAssembler(rand.New(rand.NewSource(1)))
		split := a.Assemble(makePairs(total))

		wantValid := total / 10
		assert.Len(t, split.Valid, wantValid, "total %d", total)
		assert.Len(t, split.Train, total-wantValid, "total %d", total)
	}
}

func TestAssemble_NoPairLostOrDuplicated(t *testing.T) {
	pairs := makePairs(97)
	a := NewAssembler(rand.New(rand.NewSource(2)))
	split := a.Assemble(pairs)

	seen := make(map[string]int)
	for _, rec := range append(split.Train, split.Valid...) {
		seen[rec.Messages[1].Content]++
	}
	require.Len(t, seen, len(pairs))
	for _, p := range pairs {
		assert.Equal(t, 1, seen[p.Input], p.Input)
	}
}

func TestAssemble_DeterministicWithSeed(t *testing.T) {
	pairs := makePairs(200)

	first := NewAssembler(rand.New(rand.NewSource(9))).Assemble(pairs)
	second := NewAssembler(rand.New(rand.NewSource(9))).Assemble(pairs)
	assert.Equal(t, first, second)
}

func TestAssemble_DoesNotMutateInput(t *testing.T) {
	pairs := makePairs(50)
	original := make([]Pair, len(pairs))
	copy(original, pairs)

	NewAssembler(rand.New(rand.NewSource(3))).Assemble(pairs)
	assert.Equal(t, original, pairs)
}

func TestWrap_EnvelopeShape(t *testing.T) {
	rec := Wrap(Pair{Input: "Go to inbox", Output: "<call>"})

	require.Len(t, rec.Messages, 3)
	assert.Equal(t, RoleDeveloper, rec.Messages[0].Role)
	assert.Equal(t, SystemPrompt, rec.Messages[0].Content)
	assert.Equal(t, RoleUser, rec.Messages[1].Role)
	assert.Equal(t, "Go to inbox", rec.Messages[1].Content)
	assert.Equal(t, RoleModel, rec.Messages[2].Role)
	assert.Equal(t, "<call>", rec.Messages[2].Content)
}
