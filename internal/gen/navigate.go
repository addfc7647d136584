package gen

import (
	"math/rand"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
)

type destination struct {
	id      string
	phrases []string
}

var destinations = []destination{
	{"home", []string{"go home", "open home", "show home", "home screen"}},
	{"today", []string{"go to today", "open today", "show today", "today view"}},
	{"projects", []string{"go to projects", "open projects", "show projects", "my projects"}},
	{"ideas", []string{"go to ideas", "open ideas", "show ideas", "idea list"}},
	{"tasks", []string{"go to tasks", "open tasks", "show tasks", "task list", "my tasks"}},
	{"schedule", []string{"go to schedule", "open schedule", "show schedule", "my calendar", "calendar"}},
	{"research", []string{"go to research", "open research", "show research"}},
	{"focus", []string{"go to focus", "open focus mode", "focus screen"}},
	{"settings", []string{"go to settings", "open settings", "settings"}},
	{"sanctuary", []string{"go to sanctuary", "open sanctuary", "sanctuary view", "show sanctuary"}},
	{"dashboard", []string{"go to dashboard", "open dashboard", "show dashboard", "main dashboard"}},
	{"plannerum", []string{"go to plannerum", "open plannerum", "show plannerum", "planner", "plan", "planning", "open planner", "go to planner"}},
	{"thinkspace", []string{"go to thinkspace", "open thinkspace", "show thinkspace", "canvas", "think", "open canvas", "go to canvas", "thinking space"}},
	{"inbox", []string{"go to inbox", "open inbox", "show inbox", "my inbox", "inbox view"}},
	{"notes", []string{"go to notes", "open notes", "show notes", "my notes", "notes view"}},
}

// GenerateNavigation covers view-switching commands.
func GenerateNavigation(b *bank.Bank, rng *rand.Rand, n int) ([]corpus.Example, error) {
	examples := make([]corpus.Example, 0, n)
	for i := 0; i < n; i++ {
		dest := destinations[rng.Intn(len(destinations))]
		examples = append(examples, corpus.Example{
			Input: dest.phrases[rng.Intn(len(dest.phrases))],
			Raw:   &corpus.RawExample{Action: corpus.VerbNavigate, Destination: dest.id},
		})
	}
	return examples, nil
}
