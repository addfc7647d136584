package gen

import (
	"math/rand"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
)

func typedSearch(atomType string) func(Vars) *corpus.RawExample {
	return func(v Vars) *corpus.RawExample {
		return &corpus.RawExample{
			Action: corpus.VerbSearch,
			Type:   atomType,
			Query:  v["query"],
		}
	}
}

func generalSearch(v Vars) *corpus.RawExample {
	return &corpus.RawExample{Action: corpus.VerbSearch, Query: v["query"]}
}

func filteredSearch(atomType, filterKey string, filterValue func(Vars) string) func(Vars) *corpus.RawExample {
	return func(v Vars) *corpus.RawExample {
		return &corpus.RawExample{
			Action: corpus.VerbSearch,
			Type:   atomType,
			Filter: corpus.Metadata{{Key: filterKey, Value: filterValue(v)}},
		}
	}
}

func semanticSearch(Vars) *corpus.RawExample {
	return &corpus.RawExample{Action: corpus.VerbSearch, Target: "context", Mode: "semantic"}
}

func searchPool() *Pool[Template] {
	pool := NewPool[Template]()

	pool.Add(3,
		Template{Pattern: "Find ideas about {query}", Build: typedSearch("idea")},
		Template{Pattern: "Show ideas about {query}", Build: typedSearch("idea")},
		Template{Pattern: "Search ideas for {query}", Build: typedSearch("idea")},
		Template{Pattern: "What ideas do I have about {query}", Build: typedSearch("idea")},
		Template{Pattern: "Find tasks about {query}", Build: typedSearch("task")},
		Template{Pattern: "Show tasks for {query}", Build: typedSearch("task")},
		Template{Pattern: "What tasks are related to {query}", Build: typedSearch("task")},
		Template{Pattern: "Find research on {query}", Build: typedSearch("research")},
		Template{Pattern: "Show me research about {query}", Build: typedSearch("research")},
		Template{Pattern: "What research do I have on {query}", Build: typedSearch("research")},
		Template{Pattern: "Find notes about {query}", Build: typedSearch("note")},
		Template{Pattern: "Show notes about {query}", Build: typedSearch("note")},
		Template{Pattern: "Search notes for {query}", Build: typedSearch("note")},
		Template{Pattern: "What notes do I have about {query}", Build: typedSearch("note")},
		Template{Pattern: "Find thinkspaces about {query}", Build: typedSearch("thinkspace")},
		Template{Pattern: "Show thinkspaces for {query}", Build: typedSearch("thinkspace")},
		Template{Pattern: "What canvases do I have about {query}", Build: typedSearch("thinkspace")},
		Template{Pattern: "Find connections about {query}", Build: typedSearch("connection")},
		Template{Pattern: "Show connections for {query}", Build: typedSearch("connection")},
		Template{Pattern: "What mental models do I have about {query}", Build: typedSearch("connection")},
	)

	pool.Add(3,
		Template{Pattern: "Search for {query}", Build: generalSearch},
		Template{Pattern: "Find {query}", Build: generalSearch},
		Template{Pattern: "Look for {query}", Build: generalSearch},
		Template{Pattern: "What do I have about {query}", Build: generalSearch},
		Template{Pattern: "Search {query}", Build: generalSearch},
		Template{Pattern: "Find anything about {query}", Build: generalSearch},
	)

	pool.Add(2,
		Template{Pattern: "What tasks are due today", Build: filteredSearch("task", "dueDate", literal("today"))},
		Template{Pattern: "Show me today's tasks", Build: filteredSearch("task", "dueDate", literal("today"))},
		Template{Pattern: "What's due this week", Build: filteredSearch("task", "dueDate", literal("this week"))},
		Template{Pattern: "Tasks for tomorrow", Build: filteredSearch("task", "dueDate", literal("tomorrow"))},
		Template{Pattern: "What do I have scheduled today", Build: filteredSearch("schedule_block", "date", literal("today"))},
		Template{Pattern: "Show my schedule for tomorrow", Build: filteredSearch("schedule_block", "date", literal("tomorrow"))},
	)

	pool.Add(2,
		Template{Pattern: "Show completed tasks", Build: filteredSearch("task", "status", literal("completed"))},
		Template{Pattern: "What have I finished", Build: filteredSearch("task", "status", literal("completed"))},
		Template{Pattern: "Show open tasks", Build: filteredSearch("task", "status", literal("todo"))},
		Template{Pattern: "What's left to do", Build: filteredSearch("task", "status", literal("todo"))},
		Template{Pattern: "Tasks in progress", Build: filteredSearch("task", "status", literal("in_progress"))},
		Template{Pattern: "What am I working on", Build: filteredSearch("task", "status", literal("in_progress"))},
	)

	pool.Add(3,
		Template{Pattern: "Show tasks in {project}", Build: filteredSearch("task", "project", fromVar("project"))},
		Template{Pattern: "What's in {project} project", Build: filteredSearch("", "project", fromVar("project"))},
		Template{Pattern: "Ideas for {project}", Build: filteredSearch("idea", "project", fromVar("project"))},
		Template{Pattern: "Everything in {project}", Build: filteredSearch("", "project", fromVar("project"))},
		Template{Pattern: "Show ideas for {person_name}", Build: filteredSearch("idea", "project", fromVar("person_name"))},
		Template{Pattern: "What's in {person_name}", Build: filteredSearch("", "project", fromVar("person_name"))},
		Template{Pattern: "Tasks for {person_name}", Build: filteredSearch("task", "project", fromVar("person_name"))},
		Template{Pattern: "{person_name} inbox", Build: filteredSearch("", "project", fromVar("person_name"))},
		Template{Pattern: "Show {person_name} project", Build: filteredSearch("", "project", fromVar("person_name"))},
	)

	pool.Add(1,
		Template{Pattern: "What's relevant to this", Build: semanticSearch},
		Template{Pattern: "Find related items", Build: semanticSearch},
		Template{Pattern: "Show similar things", Build: semanticSearch},
		Template{Pattern: "What connects to this", Build: semanticSearch},
	)

	return pool
}

// GenerateSearch covers keyword, type-filtered, time/status/project-filtered,
// and semantic retrieval commands.
func GenerateSearch(b *bank.Bank, rng *rand.Rand, n int) ([]corpus.Example, error) {
	pool := searchPool()
	return fill(pool, rng, n, func() Vars {
		return Vars{
			"query":       b.SearchQuery(),
			"project":     b.Project(),
			"person_name": b.PersonName(),
		}
	})
}
