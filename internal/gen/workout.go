package gen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
)

// workoutType pairs a canonical type id with the spoken forms that resolve
// to it.
type workoutType struct {
	id     string
	spoken []string
}

var workoutTypes = []workoutType{
	{"run", []string{"run", "running", "went for a run", "jogged", "jogging"}},
	{"walk", []string{"walk", "walked", "went for a walk", "walking"}},
	{"swim", []string{"swim", "swimming", "swam", "went swimming"}},
	{"cycle", []string{"bike", "cycling", "biked", "went cycling", "rode my bike"}},
	{"strength", []string{"lifted weights", "strength training", "weight training", "gym workout", "lifted"}},
	{"yoga", []string{"yoga", "did yoga", "yoga session"}},
	{"hiit", []string{"HIIT", "hiit workout", "interval training", "tabata"}},
}

var (
	workoutDurations = []int{15, 20, 30, 45, 60, 90}
	runDistances     = []int{3, 5, 7, 10, 15, 21}
	strengthSets     = []int{3, 4, 5}
	strengthReps     = []int{8, 10, 12, 15, 20}
)

var plainWorkoutPatterns = []string{
	"Log {workout_type}",
	"I did a {workout_type}",
	"Just finished {workout_type}",
	"Completed {workout_type} workout",
	"{workout_type} done",
}

var timedWorkoutPatterns = []string{
	"Log {duration} minute {workout_type}",
	"{workout_type} for {duration} minutes",
	"Did {duration} minutes of {workout_type}",
	"Just finished {duration} minute {workout_type}",
}

var distanceRunPatterns = []string{
	"Ran {distance} km",
	"Ran {distance} kilometers",
	"{distance} km run",
	"Went for a {distance} km run",
}

var strengthPatterns = []string{
	"Did {sets} sets of {reps} {exercise}",
	"{exercise} {sets} by {reps}",
	"Completed {sets} sets of {exercise}",
	"{reps} {exercise}",
}

type workoutKind int

const (
	workoutPlain workoutKind = iota
	workoutTimed
	workoutDistance
	workoutStrength
)

// GenerateWorkout covers exercise logging: plain logs, duration logs,
// distance runs, and strength sessions with sets and reps.
func GenerateWorkout(b *bank.Bank, rng *rand.Rand, n int) ([]corpus.Example, error) {
	kinds := NewPool[workoutKind]().
		Add(2, workoutPlain).
		Add(2, workoutTimed).
		Add(1, workoutDistance).
		Add(1, workoutStrength)

	examples := make([]corpus.Example, 0, n)
	for i := 0; i < n; i++ {
		var ex corpus.Example
		switch kinds.Pick(rng) {
		case workoutPlain:
			wt := workoutTypes[rng.Intn(len(workoutTypes))]
			spoken := wt.spoken[rng.Intn(len(wt.spoken))]
			pattern := plainWorkoutPatterns[rng.Intn(len(plainWorkoutPatterns))]
			ex = corpus.Example{
				Input: strings.ReplaceAll(pattern, "{workout_type}", spoken),
				Call: &corpus.Call{Name: "log_workout", Params: []corpus.Param{
					{Key: "workout_type", Value: wt.id},
				}},
			}
		case workoutTimed:
			wt := workoutTypes[rng.Intn(len(workoutTypes))]
			spoken := wt.spoken[rng.Intn(len(wt.spoken))]
			duration := workoutDurations[rng.Intn(len(workoutDurations))]
			pattern := timedWorkoutPatterns[rng.Intn(len(timedWorkoutPatterns))]
			input := strings.ReplaceAll(pattern, "{workout_type}", spoken)
			input = strings.ReplaceAll(input, "{duration}", fmt.Sprint(duration))
			ex = corpus.Example{
				Input: input,
				Call: &corpus.Call{Name: "log_workout", Params: []corpus.Param{
					{Key: "workout_type", Value: wt.id},
					{Key: "duration_minutes", Value: duration},
				}},
			}
		case workoutDistance:
			distance := runDistances[rng.Intn(len(runDistances))]
			pattern := distanceRunPatterns[rng.Intn(len(distanceRunPatterns))]
			ex = corpus.Example{
				Input: strings.ReplaceAll(pattern, "{distance}", fmt.Sprint(distance)),
				Call: &corpus.Call{Name: "log_workout", Params: []corpus.Param{
					{Key: "workout_type", Value: "run"},
					{Key: "distance_km", Value: distance},
				}},
			}
		case workoutStrength:
			exercise := b.Exercise()
			sets := strengthSets[rng.Intn(len(strengthSets))]
			reps := strengthReps[rng.Intn(len(strengthReps))]
			pattern := strengthPatterns[rng.Intn(len(strengthPatterns))]
			input := strings.ReplaceAll(pattern, "{exercise}", exercise)
			input = strings.ReplaceAll(input, "{sets}", fmt.Sprint(sets))
			input = strings.ReplaceAll(input, "{reps}", fmt.Sprint(reps))
			ex = corpus.Example{
				Input: input,
				Call: &corpus.Call{Name: "log_workout", Params: []corpus.Param{
					{Key: "workout_type", Value: "strength"},
					{Key: "exercise", Value: exercise},
					{Key: "sets", Value: sets},
					{Key: "reps", Value: reps},
				}},
			}
		}
		examples = append(examples, ex)
	}
	return examples, nil
}
