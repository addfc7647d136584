package corpus

import "math/rand"

// Assembler merges category outputs into the final train/validation split.
type Assembler struct {
	rng *rand.Rand
}

func NewAssembler(rng *rand.Rand) *Assembler {
	return &Assembler{rng: rng}
}

// Split is the persisted partition of the shuffled corpus.
type Split struct {
	Train []Record
	Valid []Record
}

// Assemble shuffles the concatenated pairs once, splits off the last tenth as
// validation, and wraps every pair in the conversation envelope. Order within
// each partition is the post-shuffle order.
func (a *Assembler) Assemble(pairs []Pair) Split {
	shuffled := make([]Pair, len(pairs))
	copy(shuffled, pairs)

	a.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	validSize := len(shuffled) / 10
	splitIdx := len(shuffled) - validSize

	return Split{
		Train: wrapAll(shuffled[:splitIdx]),
		Valid: wrapAll(shuffled[splitIdx:]),
	}
}

func wrapAll(pairs []Pair) []Record {
	records := make([]Record, 0, len(pairs))
	for _, p := range pairs {
		records = append(records, Wrap(p))
	}
	return records
}
