package gen

import (
	"math/rand"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
)

// createOf builds a plain creation skeleton: the named var becomes the title.
func createOf(atomType, titleVar string) func(Vars) *corpus.RawExample {
	return func(v Vars) *corpus.RawExample {
		return &corpus.RawExample{
			Action: corpus.VerbCreate,
			Type:   atomType,
			Title:  v[titleVar],
		}
	}
}

// createWithPriority pins the priority metadata field. An empty priority
// means "use the drawn {priority} value".
func createWithPriority(atomType, titleVar, priority string) func(Vars) *corpus.RawExample {
	return func(v Vars) *corpus.RawExample {
		p := priority
		if p == "" {
			p = v["priority"]
		}
		return &corpus.RawExample{
			Action:   corpus.VerbCreate,
			Type:     atomType,
			Title:    v[titleVar],
			Metadata: corpus.Metadata{{Key: "priority", Value: p}},
		}
	}
}

func templates(build func(Vars) *corpus.RawExample, patterns ...string) []Template {
	out := make([]Template, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, Template{Pattern: p, Build: build})
	}
	return out
}

func simpleCreationPool() *Pool[Template] {
	idea := createOf("idea", "topic")
	task := createOf("task", "task")

	pool := NewPool[Template]()

	// Ideas and tasks carry the most weight; they dominate real usage.
	pool.Add(3, templates(idea,
		"Create idea about {topic}",
		"New idea about {topic}",
		"Add idea for {topic}",
		"Jot down idea about {topic}",
		"Note about {topic}",
		"I have an idea about {topic}",
		"Thought about {topic}",
		"Add thought on {topic}",
		"Capture idea for {topic}",
		"Quick idea {topic}",
		"Idea {topic}",
		"{topic} idea",
		"Brain dump about {topic}",
		"Let me note down {topic}",
		"Save idea about {topic}",
	)...)

	pool.Add(4, templates(task,
		"Create task {task}",
		"New task {task}",
		"Add task {task}",
		"I need to {task}",
		"Remind me to {task}",
		"Don't let me forget to {task}",
		"Add to my list {task}",
		"Todo {task}",
		"To do {task}",
		"{task}",
		"Make sure I {task}",
		"Put on my list {task}",
		"Add {task} to tasks",
		"Task to {task}",
		"Need to {task}",
	)...)

	pool.Add(1, templates(createOf("project", "project"),
		"Create project called {project}",
		"New project {project}",
		"Start a project for {project}",
		"Add project {project}",
	)...)

	pool.Add(1, templates(createOf("research", "topic"),
		"Save this article about {topic}",
		"Add to research {topic}",
		"Research about {topic}",
		"Look into {topic}",
		"Investigate {topic}",
	)...)

	pool.Add(2, templates(createOf("note", "topic"),
		"Create note about {topic}",
		"New note {topic}",
		"Add note about {topic}",
		"Quick note {topic}",
		"Note {topic}",
		"Floating note {topic}",
		"Add floating note about {topic}",
		"Drop a note about {topic}",
	)...)

	pool.Add(1, templates(createOf("thinkspace", "topic"),
		"Create thinkspace for {topic}",
		"New thinkspace {topic}",
		"Add thinkspace about {topic}",
		"Create canvas for {topic}",
		"New canvas {topic}",
		"Start a thinkspace for {topic}",
		"Make a thinking space for {topic}",
	)...)

	pool.Add(1, templates(createOf("connection", "topic"),
		"Create connection about {topic}",
		"New connection {topic}",
		"Add connection for {topic}",
		"Mental model for {topic}",
		"Create mental model about {topic}",
		"Link {topic}",
		"Connect {topic}",
	)...)

	pool.Add(1,
		Template{Pattern: "Create {priority} priority idea about {topic}", Build: createWithPriority("idea", "topic", "")},
		Template{Pattern: "High priority idea about {topic}", Build: createWithPriority("idea", "topic", "high")},
		Template{Pattern: "Important idea about {topic}", Build: createWithPriority("idea", "topic", "high")},
	)

	pool.Add(1,
		Template{Pattern: "Urgent task {task}", Build: createWithPriority("task", "task", "high")},
		Template{Pattern: "High priority {task}", Build: createWithPriority("task", "task", "high")},
		Template{Pattern: "Low priority {task}", Build: createWithPriority("task", "task", "low")},
		Template{Pattern: "Important {task}", Build: createWithPriority("task", "task", "high")},
		Template{Pattern: "When I get to it {task}", Build: createWithPriority("task", "task", "low")},
	)

	return pool
}

// GenerateSimpleCreation covers entity creation with no time expression and
// no project link.
func GenerateSimpleCreation(b *bank.Bank, rng *rand.Rand, n int) ([]corpus.Example, error) {
	pool := simpleCreationPool()
	return fill(pool, rng, n, func() Vars {
		return Vars{
			"topic":    b.Topic(),
			"task":     b.Task(),
			"project":  b.Project(),
			"priority": b.Priority(),
		}
	})
}
