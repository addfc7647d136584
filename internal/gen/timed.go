package gen

import (
	"fmt"
	"math/rand"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
)

func timedTask(startVar string) func(Vars) *corpus.RawExample {
	return func(v Vars) *corpus.RawExample {
		return &corpus.RawExample{
			Action:   corpus.VerbCreate,
			Type:     "task",
			Title:    v["task"],
			Metadata: corpus.Metadata{{Key: "startTime", Value: v[startVar]}},
		}
	}
}

func timedLinkedTask() func(Vars) *corpus.RawExample {
	return func(v Vars) *corpus.RawExample {
		return &corpus.RawExample{
			Action:   corpus.VerbCreate,
			Type:     "task",
			Title:    v["task"],
			Metadata: corpus.Metadata{{Key: "startTime", Value: v["time"]}},
			Links:    []corpus.Link{{Type: "project", Query: v["project_ref"]}},
		}
	}
}

func literal(s string) func(Vars) string { return func(Vars) string { return s } }

func fromVar(name string) func(Vars) string { return func(v Vars) string { return v[name] } }

func meetingTitle(prefix string) func(Vars) string {
	return func(v Vars) string { return prefix + v["person"] }
}

// scheduleBlock builds a schedule_block skeleton with the listed metadata
// keys filled from the drawn vars.
func scheduleBlock(title func(Vars) string, blockType string, metaKeys ...string) func(Vars) *corpus.RawExample {
	return func(v Vars) *corpus.RawExample {
		meta := make(corpus.Metadata, 0, len(metaKeys)+1)
		for _, key := range metaKeys {
			meta = append(meta, corpus.Field{Key: key, Value: v[metaVar(key)]})
		}
		meta = append(meta, corpus.Field{Key: "blockType", Value: blockType})
		return &corpus.RawExample{
			Action:   corpus.VerbCreate,
			Type:     "schedule_block",
			Title:    title(v),
			Metadata: meta,
		}
	}
}

func metaVar(key string) string {
	switch key {
	case "startTime":
		return "start_time"
	case "endTime":
		return "end_time"
	default:
		return key
	}
}

type timedKind struct {
	templates []Template
	draw      func(b *bank.Bank, rng *rand.Rand) Vars
}

func timedKinds() []timedKind {
	return []timedKind{
		{ // task with absolute time
			templates: templates(timedTask("time"),
				"Task {task} at {time}",
				"{task} at {time}",
				"Remind me to {task} at {time}",
				"Schedule {task} for {time}",
				"{task} scheduled for {time}",
				"Put {task} at {time}",
			),
			draw: func(b *bank.Bank, _ *rand.Rand) Vars {
				return Vars{"task": b.Task(), "time": b.Time()}
			},
		},
		{ // task with relative time
			templates: templates(timedTask("relative_time"),
				"{task} {relative_time}",
				"Remind me {relative_time} to {task}",
				"Schedule {task} for {relative_time}",
				"{relative_time} {task}",
			),
			draw: func(b *bank.Bank, _ *rand.Rand) Vars {
				return Vars{"task": b.Task(), "relative_time": b.RelativeTime()}
			},
		},
		{ // schedule block with a time range
			templates: []Template{
				{Pattern: "Block {start_time} to {end_time} for {block_name}", Build: scheduleBlock(fromVar("block_name"), "focus", "startTime", "endTime")},
				{Pattern: "Deep work from {start_time} to {end_time}", Build: scheduleBlock(literal("Deep work"), "focus", "startTime", "endTime")},
				{Pattern: "Focus time {start_time} to {end_time}", Build: scheduleBlock(literal("Focus time"), "focus", "startTime", "endTime")},
				{Pattern: "Meeting from {start_time} to {end_time} {block_name}", Build: scheduleBlock(fromVar("block_name"), "event", "startTime", "endTime")},
				{Pattern: "{block_name} from {start_time} to {end_time}", Build: scheduleBlock(fromVar("block_name"), "task", "startTime", "endTime")},
			},
			draw: func(b *bank.Bank, rng *rand.Rand) Vars {
				start := 8 + rng.Intn(8) // 8am through 3pm
				end := start + 1 + rng.Intn(3)
				return Vars{
					"start_time": clockLabel(start),
					"end_time":   clockLabel(end),
					"block_name": b.BlockName(),
				}
			},
		},
		{ // schedule block by duration
			templates: []Template{
				{Pattern: "Block {duration} for {block_name} at {time}", Build: scheduleBlock(fromVar("block_name"), "task", "startTime", "duration")},
				{Pattern: "{duration} of {block_name} at {time}", Build: scheduleBlock(fromVar("block_name"), "task", "startTime", "duration")},
				{Pattern: "Schedule {duration} for {block_name}", Build: scheduleBlock(fromVar("block_name"), "task", "duration")},
			},
			draw: func(b *bank.Bank, _ *rand.Rand) Vars {
				return Vars{
					"duration":   b.Duration().Phrase,
					"block_name": b.BlockName(),
					"time":       b.Time(),
				}
			},
		},
		{ // meetings
			templates: []Template{
				{Pattern: "Meeting with {person} at {time}", Build: scheduleBlock(meetingTitle("Meeting with "), "event", "startTime")},
				{Pattern: "Call with {person} at {time}", Build: scheduleBlock(meetingTitle("Call with "), "event", "startTime")},
				{Pattern: "1:1 with {person} at {time}", Build: scheduleBlock(meetingTitle("1:1 with "), "event", "startTime")},
				{Pattern: "Sync with {person} {relative_time}", Build: func(v Vars) *corpus.RawExample {
					return &corpus.RawExample{
						Action:   corpus.VerbCreate,
						Type:     "schedule_block",
						Title:    "Sync with " + v["person"],
						Metadata: corpus.Metadata{{Key: "startTime", Value: v["relative_time"]}, {Key: "blockType", Value: "event"}},
					}
				}},
			},
			draw: func(b *bank.Bank, _ *rand.Rand) Vars {
				return Vars{
					"person":        b.MeetingPerson(),
					"time":          b.Time(),
					"relative_time": b.RelativeTime(),
				}
			},
		},
		{ // timed task routed to a project
			templates: templates(timedLinkedTask(),
				"Task for {project_ref} {task} at {time}",
				"{task} for {project_ref} at {time}",
				"Remind me for {project_ref} to {task} at {time}",
			),
			draw: func(b *bank.Bank, _ *rand.Rand) Vars {
				return Vars{
					"task":        b.Task(),
					"time":        b.Time(),
					"project_ref": b.ProjectRef().Name,
				}
			},
		},
	}
}

func clockLabel(hour int) string {
	switch {
	case hour == 12:
		return "12pm"
	case hour > 12:
		return fmt.Sprintf("%dpm", hour-12)
	default:
		return fmt.Sprintf("%dam", hour)
	}
}

// GenerateTimedCreation covers creation commands carrying a time expression:
// timed and relative tasks, schedule blocks, meetings, and timed tasks
// routed to projects.
func GenerateTimedCreation(b *bank.Bank, rng *rand.Rand, n int) ([]corpus.Example, error) {
	kinds := timedKinds()
	examples := make([]corpus.Example, 0, n)
	for i := 0; i < n; i++ {
		kind := kinds[rng.Intn(len(kinds))]
		tmpl := kind.templates[rng.Intn(len(kind.templates))]
		vars := kind.draw(b, rng)
		input, err := render(tmpl.Pattern, vars)
		if err != nil {
			return nil, err
		}
		examples = append(examples, corpus.Example{Input: input, Raw: tmpl.Build(vars)})
	}
	return examples, nil
}
