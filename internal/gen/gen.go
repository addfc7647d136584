// Package gen holds the category generators: each one turns a weighted
// template pool plus placeholder draws into a fixed number of raw examples
// for its semantic class.
package gen

import (
	"math/rand"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
)

// GenerateFunc produces exactly n examples for one category. It is a pure
// function of the category definition, n, and the generator state.
type GenerateFunc func(b *bank.Bank, rng *rand.Rand, n int) ([]corpus.Example, error)

// Category is a named semantic class with its corpus target count.
type Category struct {
	Name     string
	Target   int
	Generate GenerateFunc
}

// Template pairs an input pattern with a structural output skeleton. Build
// inserts drawn values into descriptor fields; it never string-concatenates
// them into the encoded form.
type Template struct {
	Pattern string
	Build   func(v Vars) *corpus.RawExample
}

// Registry returns the categories in their fixed assembly order with their
// per-category targets. Targets sum to 15600.
func Registry() []Category {
	return []Category{
		{Name: "simple_creation", Target: 3500, Generate: GenerateSimpleCreation},
		{Name: "project_creation", Target: 2500, Generate: GenerateProjectCreation},
		{Name: "timed_creation", Target: 2000, Generate: GenerateTimedCreation},
		{Name: "modification", Target: 1500, Generate: GenerateModification},
		{Name: "search", Target: 500, Generate: GenerateSearch},
		{Name: "batch", Target: 500, Generate: GenerateBatch},
		{Name: "level_system", Target: 2000, Generate: GenerateLevelSystem},
		{Name: "deep_work", Target: 1000, Generate: GenerateDeepWork},
		{Name: "journal", Target: 1000, Generate: GenerateJournal},
		{Name: "workout", Target: 500, Generate: GenerateWorkout},
		{Name: "navigation", Target: 600, Generate: GenerateNavigation},
	}
}

// fill runs the draw-render-build loop shared by the template categories.
func fill(pool *Pool[Template], rng *rand.Rand, n int, draw func() Vars) ([]corpus.Example, error) {
	examples := make([]corpus.Example, 0, n)
	for i := 0; i < n; i++ {
		tmpl := pool.Pick(rng)
		vars := draw()
		input, err := render(tmpl.Pattern, vars)
		if err != nil {
			return nil, err
		}
		examples = append(examples, corpus.Example{
			Input: input,
			Raw:   tmpl.Build(vars),
		})
	}
	return examples, nil
}
