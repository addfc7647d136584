package gen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
	"github.com/cosmoos/voicegen/internal/encode"
)

func newTestBank(seed int64) (*bank.Bank, *rand.Rand) {
	rng := rand.New(rand.NewSource(seed))
	return bank.New(rng), rng
}

func TestRegistry_TargetsSum(t *testing.T) {
	total := 0
	for _, cat := range Registry() {
		assert.Positive(t, cat.Target, cat.Name)
		require.NotNil(t, cat.Generate, cat.Name)
		total += cat.Target
	}
	assert.Equal(t, 15600, total)
}

func TestCategories_ProduceExactCounts(t *testing.T) {
	b, rng := newTestBank(42)
	for _, cat := range Registry() {
		examples, err := cat.Generate(b, rng, 25)
		require.NoError(t, err, cat.Name)
		assert.Len(t, examples, 25, cat.Name)
		for _, ex := range examples {
			assert.NotEmpty(t, ex.Input, cat.Name)
			out, err := encode.Encode(ex)
			require.NoError(t, err, cat.Name)
			assert.Contains(t, out, encode.StartMarker, cat.Name)
		}
	}
}

func TestCategories_NoUnexpandedPlaceholders(t *testing.T) {
	b, rng := newTestBank(7)
	for _, cat := range Registry() {
		examples, err := cat.Generate(b, rng, 50)
		require.NoError(t, err, cat.Name)
		for _, ex := range examples {
			assert.NotContains(t, ex.Input, "{", "%s: %q", cat.Name, ex.Input)
		}
	}
}

func TestCategories_DeterministicWithSeed(t *testing.T) {
	run := func() []string {
		b, rng := newTestBank(99)
		var inputs []string
		for _, cat := range Registry() {
			examples, err := cat.Generate(b, rng, 10)
			require.NoError(t, err)
			for _, ex := range examples {
				inputs = append(inputs, ex.Input)
			}
		}
		return inputs
	}
	assert.Equal(t, run(), run())
}

func TestGenerateBatch_DistinctSiblingTitles(t *testing.T) {
	b, rng := newTestBank(3)
	examples, err := GenerateBatch(b, rng, 200)
	require.NoError(t, err)

	for _, ex := range examples {
		require.NotNil(t, ex.Raw)
		require.GreaterOrEqual(t, len(ex.Raw.Items), 2)
		require.LessOrEqual(t, len(ex.Raw.Items), 3)

		seen := make(map[string]bool)
		for _, item := range ex.Raw.Items {
			assert.False(t, seen[item.Title], "duplicate title %q in %q", item.Title, ex.Input)
			seen[item.Title] = true
		}
	}
}

func TestGenerateLevelSystem_DimensionMatchesInput(t *testing.T) {
	b, rng := newTestBank(11)
	examples, err := GenerateLevelSystem(b, rng, 500)
	require.NoError(t, err)

	for _, ex := range examples {
		require.NotNil(t, ex.Call)
		assert.Equal(t, "query_level_system", ex.Call.Name)
		for _, p := range ex.Call.Params {
			if p.Key == "dimension" {
				dim, ok := p.Value.(string)
				require.True(t, ok)
				assert.Contains(t, strings.ToLower(ex.Input), dim)
			}
		}
	}
}

func TestGenerateDeepWork_PomodoroShape(t *testing.T) {
	b, rng := newTestBank(5)
	examples, err := GenerateDeepWork(b, rng, 500)
	require.NoError(t, err)

	var sawPomodoro, sawStop bool
	for _, ex := range examples {
		require.NotNil(t, ex.Call)
		switch ex.Call.Name {
		case "start_deep_work":
			for _, p := range ex.Call.Params {
				if p.Key == "pomodoro_mode" {
					sawPomodoro = true
					assert.Equal(t, true, p.Value)
					assert.Equal(t, corpus.Param{Key: "duration_minutes", Value: 25}, ex.Call.Params[0])
				}
			}
		case "stop_deep_work":
			sawStop = true
			assert.Empty(t, ex.Call.Params)
		case "extend_deep_work":
			require.Len(t, ex.Call.Params, 1)
			assert.Equal(t, "additional_minutes", ex.Call.Params[0].Key)
		default:
			t.Fatalf("unexpected function %s", ex.Call.Name)
		}
	}
	assert.True(t, sawPomodoro)
	assert.True(t, sawStop)
}

func TestGenerateNavigation_KnownDestinations(t *testing.T) {
	b, rng := newTestBank(17)
	examples, err := GenerateNavigation(b, rng, 300)
	require.NoError(t, err)

	known := make(map[string]bool, len(destinations))
	for _, d := range destinations {
		known[d.id] = true
	}
	for _, ex := range examples {
		require.NotNil(t, ex.Raw)
		assert.Equal(t, corpus.VerbNavigate, ex.Raw.Action)
		assert.True(t, known[ex.Raw.Destination], ex.Raw.Destination)
	}
}

func TestGenerateWorkout_StrengthParamOrder(t *testing.T) {
	b, rng := newTestBank(23)
	examples, err := GenerateWorkout(b, rng, 400)
	require.NoError(t, err)

	var sawStrength bool
	for _, ex := range examples {
		require.NotNil(t, ex.Call)
		assert.Equal(t, "log_workout", ex.Call.Name)
		require.NotEmpty(t, ex.Call.Params)
		assert.Equal(t, "workout_type", ex.Call.Params[0].Key)

		if len(ex.Call.Params) == 4 {
			sawStrength = true
			assert.Equal(t, "strength", ex.Call.Params[0].Value)
			assert.Equal(t, "exercise", ex.Call.Params[1].Key)
			assert.Equal(t, "sets", ex.Call.Params[2].Key)
			assert.Equal(t, "reps", ex.Call.Params[3].Key)
		}
	}
	assert.True(t, sawStrength)
}

func TestGenerateJournal_MoodTitle(t *testing.T) {
	b, rng := newTestBank(31)
	examples, err := GenerateJournal(b, rng, 300)
	require.NoError(t, err)

	var sawMood bool
	for _, ex := range examples {
		require.NotNil(t, ex.Call)
		assert.Equal(t, "create_atom", ex.Call.Name)
		assert.Equal(t, corpus.Param{Key: "atom_type", Value: "journalEntry"}, ex.Call.Params[0])

		meta, ok := ex.Call.Params[2].Value.(corpus.Object)
		require.True(t, ok)
		if meta[0].Value == "mood" {
			sawMood = true
			title, ok := ex.Call.Params[1].Value.(string)
			require.True(t, ok)
			assert.True(t, strings.HasPrefix(title, "Feeling "), title)
		}
	}
	assert.True(t, sawMood)
}
