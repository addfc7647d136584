package gen

import (
	"math/rand"
	"strings"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
)

// Session lengths people actually ask for, with the phrasings that map to
// each minute value.
type sessionDuration struct {
	minutes int
	phrases []string
}

var sessionDurations = []sessionDuration{
	{30, []string{"30 minutes", "half hour", "half an hour"}},
	{45, []string{"45 minutes"}},
	{60, []string{"1 hour", "an hour", "one hour", "60 minutes"}},
	{90, []string{"90 minutes", "hour and a half", "1.5 hours"}},
	{120, []string{"2 hours", "two hours", "couple hours"}},
	{180, []string{"3 hours", "three hours"}},
}

var deepWorkStarts = []string{
	"Start deep work", "Begin focus mode", "Let's do deep work", "Enter focus mode",
	"Start focused time", "Begin concentration mode", "Go into deep work",
	"I want to focus", "Time to focus", "Focus time", "Deep work mode",
	"Heads down time", "No distractions mode",
}

var deepWorkTimedStarts = []string{
	"Start deep work for {duration}", "Focus for {duration}", "Deep work {duration}",
	"Let's focus for {duration}", "Begin focus mode for {duration}",
	"{duration} of deep work", "I want to focus for {duration}",
}

var pomodoroStarts = []string{
	"Start pomodoro", "Pomodoro mode", "Begin pomodoro session",
	"Let's do pomodoro", "Start pomodoro deep work",
}

var deepWorkStops = []string{
	"Stop deep work", "End focus mode", "Done focusing", "Stop focus mode",
	"End deep work", "Finish focus session", "Exit focus mode",
	"I'm done focusing", "End concentration mode", "Stop the timer",
}

var deepWorkExtends = []string{
	"Extend deep work by {duration}", "Add {duration} to focus time",
	"Extend focus {duration}", "Keep going for {duration} more",
	"Add {duration} more", "Continue for {duration}", "{duration} more of deep work",
}

type deepWorkKind int

const (
	deepWorkStart deepWorkKind = iota
	deepWorkTimedStart
	deepWorkPomodoro
	deepWorkStop
	deepWorkExtend
)

// GenerateDeepWork covers session control: plain and timed starts,
// pomodoro starts, stops, and extensions, in the historical mix.
func GenerateDeepWork(b *bank.Bank, rng *rand.Rand, n int) ([]corpus.Example, error) {
	// Mix ratios 1/4 : 1/3 : 1/10 : 1/5 : 1/6 over a common denominator,
	// drawn per example so the category still yields exactly n.
	kinds := NewPool[deepWorkKind]().
		Add(15, deepWorkStart).
		Add(20, deepWorkTimedStart).
		Add(6, deepWorkPomodoro).
		Add(12, deepWorkStop).
		Add(10, deepWorkExtend)

	examples := make([]corpus.Example, 0, n)
	for i := 0; i < n; i++ {
		var ex corpus.Example
		switch kinds.Pick(rng) {
		case deepWorkStart:
			ex = corpus.Example{
				Input: deepWorkStarts[rng.Intn(len(deepWorkStarts))],
				Call:  &corpus.Call{Name: "start_deep_work"},
			}
		case deepWorkTimedStart:
			minutes, phrase := drawSessionDuration(rng)
			ex = corpus.Example{
				Input: substituteDuration(deepWorkTimedStarts[rng.Intn(len(deepWorkTimedStarts))], phrase),
				Call: &corpus.Call{Name: "start_deep_work", Params: []corpus.Param{
					{Key: "duration_minutes", Value: minutes},
				}},
			}
		case deepWorkPomodoro:
			ex = corpus.Example{
				Input: pomodoroStarts[rng.Intn(len(pomodoroStarts))],
				Call: &corpus.Call{Name: "start_deep_work", Params: []corpus.Param{
					{Key: "duration_minutes", Value: 25},
					{Key: "pomodoro_mode", Value: true},
				}},
			}
		case deepWorkStop:
			ex = corpus.Example{
				Input: deepWorkStops[rng.Intn(len(deepWorkStops))],
				Call:  &corpus.Call{Name: "stop_deep_work"},
			}
		case deepWorkExtend:
			minutes, phrase := drawSessionDuration(rng)
			ex = corpus.Example{
				Input: substituteDuration(deepWorkExtends[rng.Intn(len(deepWorkExtends))], phrase),
				Call: &corpus.Call{Name: "extend_deep_work", Params: []corpus.Param{
					{Key: "additional_minutes", Value: minutes},
				}},
			}
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

func drawSessionDuration(rng *rand.Rand) (int, string) {
	d := sessionDurations[rng.Intn(len(sessionDurations))]
	return d.minutes, d.phrases[rng.Intn(len(d.phrases))]
}

func substituteDuration(pattern, phrase string) string {
	return strings.ReplaceAll(pattern, "{duration}", phrase)
}
