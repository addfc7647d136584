package bank

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBank(seed int64) *Bank {
	return New(rand.New(rand.NewSource(seed)))
}

func TestTaskSample_Distinct(t *testing.T) {
	b := newTestBank(1)
	for i := 0; i < 50; i++ {
		sample := b.TaskSample(3)
		require.Len(t, sample, 3)
		assert.NotEqual(t, sample[0], sample[1])
		assert.NotEqual(t, sample[0], sample[2])
		assert.NotEqual(t, sample[1], sample[2])
	}
}

func TestTaskSample_ClampsToVocabulary(t *testing.T) {
	b := newTestBank(2)
	sample := b.TaskSample(len(tasks) + 10)
	assert.Len(t, sample, len(tasks))
}

func TestDurationMinutes(t *testing.T) {
	for _, d := range durations {
		minutes, ok := DurationMinutes(d.Phrase)
		require.True(t, ok, d.Phrase)
		assert.Equal(t, d.Minutes, minutes, d.Phrase)
	}

	_, ok := DurationMinutes("a fortnight")
	assert.False(t, ok)
}

func TestDraw_SameSeedSameSequence(t *testing.T) {
	a, b := newTestBank(7), newTestBank(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Topic(), b.Topic())
		assert.Equal(t, a.Task(), b.Task())
		assert.Equal(t, a.ProjectRef(), b.ProjectRef())
	}
}

func TestSearchQueries_NonEmptyAndDeduped(t *testing.T) {
	b := newTestBank(3)
	seen := make(map[string]int)
	for _, q := range b.searchQueries {
		require.NotEmpty(t, q)
		seen[q]++
	}
	for q, n := range seen {
		assert.Equal(t, 1, n, q)
	}
}

func TestProjectRefs_CoverAllKinds(t *testing.T) {
	b := newTestBank(4)
	kinds := make(map[RefKind]bool)
	for _, ref := range b.projectRefs {
		kinds[ref.Kind] = true
	}
	assert.True(t, kinds[RefPerson])
	assert.True(t, kinds[RefCompany])
	assert.True(t, kinds[RefProject])
}
