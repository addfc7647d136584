package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_SubstitutesAllPlaceholders(t *testing.T) {
	out, err := render("Remind me to {task} at {time}", Vars{
		"task": "call the bank",
		"time": "3pm",
	})
	require.NoError(t, err)
	assert.Equal(t, "Remind me to call the bank at 3pm", out)
}

func TestRender_MissingPlaceholderErrors(t *testing.T) {
	_, err := render("Create idea about {topic}", Vars{})
	assert.Error(t, err)
}

func TestRender_NoPlaceholders(t *testing.T) {
	out, err := render("What tasks are due today", Vars{"unused": "x"})
	require.NoError(t, err)
	assert.Equal(t, "What tasks are due today", out)
}
