package gen

import (
	"math/rand"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
)

func taskItems(v Vars, vars ...string) []corpus.BatchItem {
	items := make([]corpus.BatchItem, 0, len(vars))
	for _, name := range vars {
		items = append(items, corpus.BatchItem{Type: "task", Title: v[name]})
	}
	return items
}

func batchOfTasks(vars ...string) func(Vars) *corpus.RawExample {
	return func(v Vars) *corpus.RawExample {
		return &corpus.RawExample{Action: corpus.VerbBatch, Items: taskItems(v, vars...)}
	}
}

func mixedBatch(v Vars) *corpus.RawExample {
	return &corpus.RawExample{
		Action: corpus.VerbBatch,
		Items: []corpus.BatchItem{
			{Type: "idea", Title: v["topic"]},
			{Type: "task", Title: v["task1"]},
		},
	}
}

func linkedBatch(v Vars) *corpus.RawExample {
	links := []corpus.Link{{Type: "project", Query: v["project_ref"]}}
	return &corpus.RawExample{
		Action: corpus.VerbBatch,
		Items: []corpus.BatchItem{
			{Type: "task", Title: v["task1"], Links: links},
			{Type: "task", Title: v["task2"], Links: links},
		},
	}
}

func batchPool() *Pool[Template] {
	two := batchOfTasks("task1", "task2")
	three := batchOfTasks("task1", "task2", "task3")

	pool := NewPool[Template]()

	pool.Add(3,
		Template{Pattern: "I need to {task1} and {task2}", Build: two},
		Template{Pattern: "{task1} and {task2}", Build: two},
		Template{Pattern: "Create tasks {task1} and {task2}", Build: two},
		Template{Pattern: "Add {task1} and also {task2}", Build: two},
	)

	pool.Add(2,
		Template{Pattern: "I need to {task1}, {task2}, and {task3}", Build: three},
		Template{Pattern: "{task1}, {task2}, and {task3}", Build: three},
		Template{Pattern: "Create tasks for {task1}, {task2}, and {task3}", Build: three},
		Template{Pattern: "Add to my list {task1}, {task2}, {task3}", Build: three},
	)

	pool.Add(1,
		Template{Pattern: "Idea about {topic} and task to {task1}", Build: mixedBatch},
		Template{Pattern: "Note about {topic} and remind me to {task1}", Build: mixedBatch},
	)

	pool.Add(2,
		Template{Pattern: "For {project_ref} {task1} and {task2}", Build: linkedBatch},
		Template{Pattern: "Add to {project_ref} {task1} and {task2}", Build: linkedBatch},
	)

	return pool
}

// GenerateBatch covers brain-dump commands creating several entities at
// once. Sibling items always draw distinct task phrases.
func GenerateBatch(b *bank.Bank, rng *rand.Rand, n int) ([]corpus.Example, error) {
	pool := batchPool()
	return fill(pool, rng, n, func() Vars {
		sample := b.TaskSample(3)
		return Vars{
			"task1":       sample[0],
			"task2":       sample[1],
			"task3":       sample[2],
			"topic":       b.Topic(),
			"project_ref": b.ProjectRef().Name,
		}
	})
}
