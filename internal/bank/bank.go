// Package bank exposes the static placeholder vocabularies behind uniform
// draw operations. All randomness flows through the injected generator so a
// seeded run draws the same sequence of values.
package bank

import (
	"math/rand"
	"strings"
)

type Bank struct {
	rng           *rand.Rand
	projectRefs   []ProjectRef
	searchQueries []string
}

func New(rng *rand.Rand) *Bank {
	return &Bank{
		rng:           rng,
		projectRefs:   buildProjectRefs(),
		searchQueries: buildSearchQueries(),
	}
}

func buildProjectRefs() []ProjectRef {
	refs := make([]ProjectRef, 0, len(personNames)+len(companyNames)+len(projects))
	for _, name := range personNames {
		refs = append(refs, ProjectRef{Name: name, Kind: RefPerson})
	}
	for _, name := range companyNames {
		refs = append(refs, ProjectRef{Name: name, Kind: RefCompany})
	}
	for _, name := range projects {
		refs = append(refs, ProjectRef{Name: name, Kind: RefProject})
	}
	return refs
}

// Search queries are the topics plus the last word of every task phrase.
func buildSearchQueries() []string {
	seen := make(map[string]struct{}, len(topics)+len(tasks))
	queries := make([]string, 0, len(topics)+len(tasks))
	for _, t := range topics {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			queries = append(queries, t)
		}
	}
	for _, t := range tasks {
		words := strings.Fields(t)
		last := words[len(words)-1]
		if _, ok := seen[last]; !ok {
			seen[last] = struct{}{}
			queries = append(queries, last)
		}
	}
	return queries
}

func (b *Bank) pick(values []string) string {
	return values[b.rng.Intn(len(values))]
}

func (b *Bank) Topic() string          { return b.pick(topics) }
func (b *Bank) Task() string           { return b.pick(tasks) }
func (b *Bank) Project() string        { return b.pick(projects) }
func (b *Bank) PersonName() string     { return b.pick(personNames) }
func (b *Bank) Time() string           { return b.pick(times) }
func (b *Bank) RelativeTime() string   { return b.pick(relativeTimes) }
func (b *Bank) Priority() string       { return b.pick(priorities) }
func (b *Bank) MeetingPerson() string  { return b.pick(meetingPeople) }
func (b *Bank) BlockName() string      { return b.pick(blockNames) }
func (b *Bank) Dimension() string      { return b.pick(dimensions) }
func (b *Bank) Feeling() string        { return b.pick(feelings) }
func (b *Bank) Gratitude() string      { return b.pick(gratitudeContent) }
func (b *Bank) Learning() string       { return b.pick(learningContent) }
func (b *Bank) GeneralContent() string { return b.pick(generalContent) }
func (b *Bank) Exercise() string       { return b.pick(exercises) }
func (b *Bank) SearchQuery() string    { return b.pick(b.searchQueries) }

// Duration draws one phrase together with its minute value.
func (b *Bank) Duration() Duration {
	return durations[b.rng.Intn(len(durations))]
}

// ProjectRef draws a project reference across people, companies, and generic
// projects.
func (b *Bank) ProjectRef() ProjectRef {
	return b.projectRefs[b.rng.Intn(len(b.projectRefs))]
}

// TaskSample draws k pairwise-distinct task phrases. Used by batch examples
// where sibling items must not repeat.
func (b *Bank) TaskSample(k int) []string {
	if k > len(tasks) {
		k = len(tasks)
	}
	perm := b.rng.Perm(len(tasks))
	sample := make([]string, 0, k)
	for _, idx := range perm[:k] {
		sample = append(sample, tasks[idx])
	}
	return sample
}

// DurationMinutes reports the minute value of a known duration phrase.
// Phrases outside the table are a caller error.
func DurationMinutes(phrase string) (int, bool) {
	for _, d := range durations {
		if d.Phrase == phrase {
			return d.Minutes, true
		}
	}
	return 0, false
}
