package encode

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmoos/voicegen/internal/corpus"
)

func TestSerialize_SingleStringParam(t *testing.T) {
	out, err := Serialize(corpus.Call{Name: "query_level_system", Params: []corpus.Param{
		{Key: "query_type", Value: "levelStatus"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "<start_function_call>call:query_level_system{query_type:<escape>levelStatus<escape>}<end_function_call>", out)
}

func TestSerialize_NoParams(t *testing.T) {
	out, err := Serialize(corpus.Call{Name: "stop_deep_work"})
	require.NoError(t, err)
	assert.Equal(t, "<start_function_call>call:stop_deep_work{}<end_function_call>", out)
}

func TestSerialize_ScalarRendering(t *testing.T) {
	out, err := Serialize(corpus.Call{Name: "start_deep_work", Params: []corpus.Param{
		{Key: "duration_minutes", Value: 25},
		{Key: "pomodoro_mode", Value: true},
	}})
	require.NoError(t, err)
	assert.Equal(t, "<start_function_call>call:start_deep_work{duration_minutes:<escape>25<escape>,pomodoro_mode:<escape>true<escape>}<end_function_call>", out)
}

func TestSerialize_CompositeIsCompactOrderedJSON(t *testing.T) {
	out, err := Serialize(corpus.Call{Name: "create_atom", Params: []corpus.Param{
		{Key: "atom_type", Value: "task"},
		{Key: "title", Value: "Review PR"},
		{Key: "metadata", Value: corpus.Metadata{
			{Key: "startTime", Value: "3pm"},
			{Key: "priority", Value: "high"},
		}},
	}})
	require.NoError(t, err)
	assert.Contains(t, out, `metadata:<escape>{"startTime":"3pm","priority":"high"}<escape>`)
}

func TestEncode_Deterministic(t *testing.T) {
	ex := corpus.Example{
		Input: "Remind me to buy groceries at 3pm",
		Raw: &corpus.RawExample{
			Action:   corpus.VerbCreate,
			Type:     "task",
			Title:    "buy groceries",
			Metadata: corpus.Metadata{{Key: "startTime", Value: "3pm"}},
		},
	}
	first, err := Encode(ex)
	require.NoError(t, err)
	second, err := Encode(ex)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncode_MissingDescriptor(t *testing.T) {
	_, err := Encode(corpus.Example{Input: "do something"})
	assert.Error(t, err)
}

func TestNormalize_CreateDefaults(t *testing.T) {
	call := Normalize(&corpus.RawExample{Action: corpus.VerbCreate})
	assert.Equal(t, "create_atom", call.Name)
	require.Len(t, call.Params, 2)
	assert.Equal(t, corpus.Param{Key: "atom_type", Value: "idea"}, call.Params[0])
	assert.Equal(t, corpus.Param{Key: "title", Value: "Untitled"}, call.Params[1])
}

func TestNormalize_CreateWithLinks(t *testing.T) {
	call := Normalize(&corpus.RawExample{
		Action: corpus.VerbCreate,
		Type:   "task",
		Title:  "Ship release",
		Links:  []corpus.Link{{Type: "project", Query: "Phoenix"}},
	})
	require.Len(t, call.Params, 3)
	assert.Equal(t, "links", call.Params[2].Key)

	out, err := Serialize(call)
	require.NoError(t, err)
	assert.Contains(t, out, `links:<escape>[{"type":"project","query":"Phoenix"}]<escape>`)
}

func TestNormalize_SearchFlattensFilter(t *testing.T) {
	call := Normalize(&corpus.RawExample{
		Action: corpus.VerbSearch,
		Type:   "task",
		Filter: corpus.Metadata{{Key: "status", Value: "completed"}},
	})
	assert.Equal(t, "search_atoms", call.Name)
	require.Len(t, call.Params, 2)
	assert.Equal(t, "types", call.Params[0].Key)
	assert.Equal(t, corpus.List{"task"}, call.Params[0].Value)
	assert.Equal(t, corpus.Param{Key: "status", Value: "completed"}, call.Params[1])
}

func TestNormalize_SemanticSearch(t *testing.T) {
	call := Normalize(&corpus.RawExample{Action: corpus.VerbSearch, Target: "context", Mode: "semantic"})
	require.Len(t, call.Params, 2)
	assert.Equal(t, corpus.Param{Key: "mode", Value: "semantic"}, call.Params[0])
	assert.Equal(t, corpus.Param{Key: "target", Value: "context"}, call.Params[1])
}

func TestNormalize_BatchItems(t *testing.T) {
	call := Normalize(&corpus.RawExample{
		Action: corpus.VerbBatch,
		Items: []corpus.BatchItem{
			{Type: "idea", Title: "Note on caching"},
			{Type: "task", Title: "call dentist"},
		},
	})
	assert.Equal(t, "batch_create", call.Name)

	out, err := Serialize(call)
	require.NoError(t, err)
	assert.Contains(t, out, `items:<escape>[{"atom_type":"idea","title":"Note on caching"},{"atom_type":"task","title":"call dentist"}]<escape>`)
}

func TestNormalize_Navigate(t *testing.T) {
	call := Normalize(&corpus.RawExample{Action: corpus.VerbNavigate, Destination: "plannerum"})
	assert.Equal(t, "navigate", call.Name)
	require.Len(t, call.Params, 1)
	assert.Equal(t, corpus.Param{Key: "destination", Value: "plannerum"}, call.Params[0])
}

func TestNormalize_UnknownVerbDegrades(t *testing.T) {
	call := Normalize(&corpus.RawExample{Action: "teleport"})
	assert.Equal(t, "create_atom", call.Name)
}

func TestSerialize_MatchesGrammar(t *testing.T) {
	grammar := regexp.MustCompile(`^<start_function_call>call:\w+\{.*\}<end_function_call>$`)

	calls := []corpus.Call{
		{Name: "delete_atom", Params: []corpus.Param{{Key: "target", Value: "context"}}},
		{Name: "log_workout", Params: []corpus.Param{
			{Key: "workout_type", Value: "run"},
			{Key: "distance_km", Value: 5},
		}},
		{Name: "stop_deep_work"},
	}
	for _, call := range calls {
		out, err := Serialize(call)
		require.NoError(t, err)
		assert.Regexp(t, grammar, out)
		_, known := Functions[call.Name]
		assert.True(t, known, call.Name)
	}
}
