package gen

import (
	"math/rand"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
)

// Modification commands operate on the contextual entity (whatever the user
// is looking at), so target is always "context".

func updateMeta(key string, value func(Vars) string) func(Vars) *corpus.RawExample {
	return func(v Vars) *corpus.RawExample {
		return &corpus.RawExample{
			Action:   corpus.VerbUpdate,
			Target:   "context",
			Metadata: corpus.Metadata{{Key: key, Value: value(v)}},
		}
	}
}

func updateLink(queryVar string) func(Vars) *corpus.RawExample {
	return func(v Vars) *corpus.RawExample {
		return &corpus.RawExample{
			Action: corpus.VerbUpdate,
			Target: "context",
			Links:  []corpus.Link{{Type: "project", Query: v[queryVar]}},
		}
	}
}

func modificationPool() *Pool[Template] {
	status := func(s string) func(Vars) *corpus.RawExample {
		return updateMeta("status", literal(s))
	}
	priority := func(p string) func(Vars) *corpus.RawExample {
		return updateMeta("priority", literal(p))
	}
	deleteContext := func(Vars) *corpus.RawExample {
		return &corpus.RawExample{Action: corpus.VerbDelete, Target: "context"}
	}
	rename := func(v Vars) *corpus.RawExample {
		return &corpus.RawExample{Action: corpus.VerbUpdate, Target: "context", Title: v["task"]}
	}

	pool := NewPool[Template]()

	pool.Add(3,
		Template{Pattern: "Mark as complete", Build: status("completed")},
		Template{Pattern: "Done", Build: status("completed")},
		Template{Pattern: "Complete", Build: status("completed")},
		Template{Pattern: "Finish this", Build: status("completed")},
		Template{Pattern: "Check this off", Build: status("completed")},
		Template{Pattern: "I finished this", Build: status("completed")},
		Template{Pattern: "That's done", Build: status("completed")},
		Template{Pattern: "Mark in progress", Build: status("in_progress")},
		Template{Pattern: "Start working on this", Build: status("in_progress")},
		Template{Pattern: "Working on it", Build: status("in_progress")},
		Template{Pattern: "Reopen this", Build: status("todo")},
		Template{Pattern: "Not done yet", Build: status("todo")},
		Template{Pattern: "Undo complete", Build: status("todo")},
	)

	pool.Add(2,
		Template{Pattern: "Move to {time}", Build: updateMeta("startTime", fromVar("time"))},
		Template{Pattern: "Reschedule to {time}", Build: updateMeta("startTime", fromVar("time"))},
		Template{Pattern: "Push to {time}", Build: updateMeta("startTime", fromVar("time"))},
		Template{Pattern: "Change time to {time}", Build: updateMeta("startTime", fromVar("time"))},
		Template{Pattern: "Move this to {relative_time}", Build: updateMeta("startTime", fromVar("relative_time"))},
		Template{Pattern: "Delay to {relative_time}", Build: updateMeta("startTime", fromVar("relative_time"))},
		Template{Pattern: "Extend to {time}", Build: updateMeta("endTime", fromVar("time"))},
		Template{Pattern: "End at {time}", Build: updateMeta("endTime", fromVar("time"))},
		Template{Pattern: "Make it end at {time}", Build: updateMeta("endTime", fromVar("time"))},
	)

	pool.Add(2,
		Template{Pattern: "Make this high priority", Build: priority("high")},
		Template{Pattern: "High priority", Build: priority("high")},
		Template{Pattern: "This is urgent", Build: priority("high")},
		Template{Pattern: "Important", Build: priority("high")},
		Template{Pattern: "Lower the priority", Build: priority("low")},
		Template{Pattern: "Low priority", Build: priority("low")},
		Template{Pattern: "Not that important", Build: priority("low")},
		Template{Pattern: "Normal priority", Build: priority("medium")},
		Template{Pattern: "Medium priority", Build: priority("medium")},
	)

	// Project assignment, including routing to a person's inbox.
	pool.Add(3,
		Template{Pattern: "Add to {project} project", Build: updateLink("project")},
		Template{Pattern: "Move to {project}", Build: updateLink("project")},
		Template{Pattern: "Put this in {project}", Build: updateLink("project")},
		Template{Pattern: "Assign to {project}", Build: updateLink("project")},
		Template{Pattern: "This belongs in {project}", Build: updateLink("project")},
		Template{Pattern: "Add to {person_name}", Build: updateLink("person_name")},
		Template{Pattern: "Move to {person_name}", Build: updateLink("person_name")},
		Template{Pattern: "Put in {person_name} inbox", Build: updateLink("person_name")},
		Template{Pattern: "Send to {person_name}", Build: updateLink("person_name")},
	)

	pool.Add(1,
		Template{Pattern: "Rename to {task}", Build: rename},
		Template{Pattern: "Change title to {task}", Build: rename},
		Template{Pattern: "Call it {task} instead", Build: rename},
		Template{Pattern: "Actually make it {task}", Build: rename},
	)

	pool.Add(2,
		Template{Pattern: "Delete this", Build: deleteContext},
		Template{Pattern: "Remove this", Build: deleteContext},
		Template{Pattern: "Delete that", Build: deleteContext},
		Template{Pattern: "Get rid of this", Build: deleteContext},
		Template{Pattern: "Remove it", Build: deleteContext},
		Template{Pattern: "Cancel this", Build: deleteContext},
		Template{Pattern: "Never mind", Build: deleteContext},
	)

	return pool
}

// GenerateModification covers status, time, priority, project, title, and
// delete operations against the contextual entity.
func GenerateModification(b *bank.Bank, rng *rand.Rand, n int) ([]corpus.Example, error) {
	pool := modificationPool()
	return fill(pool, rng, n, func() Vars {
		return Vars{
			"time":          b.Time(),
			"relative_time": b.RelativeTime(),
			"project":       b.Project(),
			"person_name":   b.PersonName(),
			"task":          b.Task(),
		}
	})
}
