package gen

import (
	"math/rand"
	"strings"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
)

type journalKind struct {
	entryType string
	phrases   []string
}

var journalKinds = []journalKind{
	{"gratitude", []string{
		"I'm grateful for {content}", "Grateful for {content}", "Thankful for {content}",
		"I appreciate {content}", "Gratitude: {content}",
	}},
	{"mood", []string{
		"I'm feeling {content}", "Feeling {content}", "My mood is {content}",
		"I feel {content} today",
	}},
	{"learning", []string{
		"I learned that {content}", "Today I learned {content}", "Learned: {content}",
		"TIL {content}", "I discovered that {content}",
	}},
	{"reflection", []string{
		"Reflecting on {content}", "I've been thinking about {content}",
		"Thought: {content}", "Reflection: {content}",
	}},
	{"goal", []string{
		"My goal is to {content}", "I want to {content}", "Goal: {content}",
		"I'm aiming to {content}",
	}},
	{"challenge", []string{
		"I'm struggling with {content}", "Challenge: {content}",
		"My challenge is {content}", "I'm working through {content}",
	}},
	{"celebration", []string{
		"I achieved {content}", "Celebrating {content}", "Win: {content}",
		"I'm proud of {content}", "Victory: {content}",
	}},
	{"intention", []string{
		"My intention today is {content}", "I intend to {content}",
		"Today I will {content}", "Setting intention: {content}",
	}},
	{"freeform", []string{
		"Journal: {content}", "Note to self: {content}", "Dear diary: {content}",
		"{content}",
	}},
}

// GenerateJournal covers journal entries. Every entry becomes a
// create_atom journalEntry tagged with its entry type.
func GenerateJournal(b *bank.Bank, rng *rand.Rand, n int) ([]corpus.Example, error) {
	examples := make([]corpus.Example, 0, n)
	for i := 0; i < n; i++ {
		kind := journalKinds[rng.Intn(len(journalKinds))]
		pattern := kind.phrases[rng.Intn(len(kind.phrases))]

		var content string
		switch kind.entryType {
		case "gratitude":
			content = b.Gratitude()
		case "mood":
			content = b.Feeling()
		case "learning":
			content = b.Learning()
		default:
			content = b.GeneralContent()
		}

		input := strings.ReplaceAll(pattern, "{content}", content)
		examples = append(examples, corpus.Example{
			Input: input,
			Call: &corpus.Call{Name: "create_atom", Params: []corpus.Param{
				{Key: "atom_type", Value: "journalEntry"},
				{Key: "title", Value: journalTitle(kind.entryType, content)},
				{Key: "metadata", Value: corpus.Object{{Key: "entryType", Value: kind.entryType}}},
			}},
		})
	}
	return examples, nil
}

// journalTitle derives the entry title: moods read as a feeling statement,
// everything else is the content capitalized and capped at 50 characters.
func journalTitle(entryType, content string) string {
	if entryType == "mood" {
		return "Feeling " + content
	}
	if len(content) >= 50 {
		return content[:47] + "..."
	}
	return capitalize(content)
}
