package gen

import (
	"math/rand"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
)

// createLinked builds a creation skeleton linked to the drawn project
// reference (person, company, or generic project inbox).
func createLinked(atomType, titleVar string) func(Vars) *corpus.RawExample {
	return func(v Vars) *corpus.RawExample {
		return &corpus.RawExample{
			Action: corpus.VerbCreate,
			Type:   atomType,
			Title:  v[titleVar],
			Links:  []corpus.Link{{Type: "project", Query: v["project_ref"]}},
		}
	}
}

func projectCreationPool() *Pool[Template] {
	idea := createLinked("idea", "topic")
	task := createLinked("task", "task")

	pool := NewPool[Template]()

	// "Idea for X" is the signature command of the project inbox; it gets
	// the heaviest weight.
	pool.Add(4, templates(idea,
		"Idea for {project_ref} {topic}",
		"Idea for {project_ref} about {topic}",
		"Idea for {project_ref}: {topic}",
		"New idea for {project_ref} {topic}",
		"New idea for {project_ref} about {topic}",
		"I just got this idea for {project_ref} {topic}",
		"I just had this idea for {project_ref} {topic}",
		"Just got an idea for {project_ref} {topic}",
		"Just had a thought for {project_ref} {topic}",
		"Thought for {project_ref} {topic}",
		"Quick thought for {project_ref} {topic}",
		"Note for {project_ref} {topic}",
		"Add note for {project_ref} {topic}",
		"Add to {project_ref} {topic}",
		"Add to {project_ref} inbox {topic}",
		"Put in {project_ref} inbox {topic}",
		"For {project_ref} {topic}",
		"For {project_ref} idea about {topic}",
		"Idea for {project_ref} project {topic}",
		"Add idea to {project_ref} project {topic}",
		"Capture for {project_ref} {topic}",
		"Save for {project_ref} {topic}",
	)...)

	pool.Add(3, templates(task,
		"Task for {project_ref} {task}",
		"New task for {project_ref} {task}",
		"Add task for {project_ref} {task}",
		"Add task to {project_ref} {task}",
		"Create task in {project_ref} {task}",
		"For {project_ref} {task}",
		"For {project_ref} task to {task}",
		"I need to {task} for {project_ref}",
		"Need to {task} for {project_ref}",
		"Remind me for {project_ref} to {task}",
		"Task for {project_ref} project {task}",
		"{task} for {project_ref} project",
		"Todo for {project_ref} {task}",
		"To do for {project_ref} {task}",
	)...)

	pool.Add(1, templates(createLinked("research", "topic"),
		"Research for {project_ref} {topic}",
		"Add research for {project_ref} about {topic}",
		"Save for {project_ref} research {topic}",
	)...)

	pool.Add(2,
		Template{Pattern: "{topic} idea for {project_ref}", Build: idea},
		Template{Pattern: "Idea about {topic} for {project_ref}", Build: idea},
		Template{Pattern: "New idea about {topic} for {project_ref}", Build: idea},
		Template{Pattern: "Thought about {topic} for {project_ref}", Build: idea},
		Template{Pattern: "{task} for {project_ref}", Build: task},
		Template{Pattern: "Task {task} for {project_ref}", Build: task},
	)

	return pool
}

// GenerateProjectCreation covers creation commands that route an entity into
// a specific person's, company's, or project's inbox.
func GenerateProjectCreation(b *bank.Bank, rng *rand.Rand, n int) ([]corpus.Example, error) {
	pool := projectCreationPool()
	return fill(pool, rng, n, func() Vars {
		return Vars{
			"project_ref": b.ProjectRef().Name,
			"topic":       b.Topic(),
			"task":        b.Task(),
		}
	})
}
