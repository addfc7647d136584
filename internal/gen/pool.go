package gen

import "math/rand"

// Pool is an explicit weighted-sampling table. An entry with weight k is k
// times as likely to be picked as one with weight 1; weights live in a
// cumulative table instead of physically repeated entries, so the bias stays
// auditable independent of pool size.
type Pool[T any] struct {
	items      []T
	cumulative []int
	total      int
}

func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Add registers items at the given weight. Non-positive weights are dropped.
func (p *Pool[T]) Add(weight int, items ...T) *Pool[T] {
	if weight <= 0 {
		return p
	}
	for _, item := range items {
		p.total += weight
		p.items = append(p.items, item)
		p.cumulative = append(p.cumulative, p.total)
	}
	return p
}

func (p *Pool[T]) Len() int { return len(p.items) }

// Pick draws one item with probability proportional to its weight.
func (p *Pool[T]) Pick(rng *rand.Rand) T {
	target := rng.Intn(p.total)
	lo, hi := 0, len(p.cumulative)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if p.cumulative[mid] <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return p.items[lo]
}
