package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmoos/voicegen/internal/corpus"
)

func TestCheck_CleanExamples(t *testing.T) {
	examples := []corpus.Example{
		{
			Input: "Go to inbox",
			Raw:   &corpus.RawExample{Action: corpus.VerbNavigate, Destination: "inbox"},
		},
		{
			Input: "Stop deep work",
			Call:  &corpus.Call{Name: "stop_deep_work"},
		},
	}
	assert.Empty(t, Check(examples))
}

func TestCheck_EmptyInput(t *testing.T) {
	findings := Check([]corpus.Example{
		{Input: "   ", Call: &corpus.Call{Name: "stop_deep_work"}},
	})
	require.Len(t, findings, 1)
	assert.Equal(t, 0, findings[0].Index)
	assert.Contains(t, findings[0].Message, "empty input")
}

func TestCheck_MissingDescriptor(t *testing.T) {
	findings := Check([]corpus.Example{{Input: "do something"}})
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "no output descriptor")
}

func TestCheck_InvalidLegacyVerb(t *testing.T) {
	findings := Check([]corpus.Example{
		{Input: "beam me up", Raw: &corpus.RawExample{Action: "teleport"}},
	})
	require.Len(t, findings, 1)
	assert.Equal(t, 0, findings[0].Index)
	assert.Contains(t, findings[0].Message, `invalid action "teleport"`)
}

func TestCheck_UnknownFunction(t *testing.T) {
	findings := Check([]corpus.Example{
		{Input: "make coffee", Call: &corpus.Call{Name: "brew_coffee"}},
	})
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, `unknown function "brew_coffee"`)
}

func TestCheck_FindingsDoNotFilter(t *testing.T) {
	// Two defective examples among a clean one: both get findings, the
	// caller still holds all three examples untouched.
	examples := []corpus.Example{
		{Input: "", Call: &corpus.Call{Name: "stop_deep_work"}},
		{Input: "Go home", Raw: &corpus.RawExample{Action: corpus.VerbNavigate, Destination: "home"}},
		{Input: "fly", Call: &corpus.Call{Name: "levitate"}},
	}
	findings := Check(examples)
	require.Len(t, findings, 2)
	assert.Equal(t, 0, findings[0].Index)
	assert.Equal(t, 2, findings[1].Index)
	assert.Len(t, examples, 3)
}
