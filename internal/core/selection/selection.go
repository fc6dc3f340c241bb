// Package selection chooses which eligible ads to show. The tiered
// algorithm fills the budget from high priority ads first, in order, then
// samples the medium and low tiers at random.
package selection

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"kunooz-ads/internal/core/domain"
)

const (
	// MaxCount caps the number of ads returned per request.
	MaxCount = 10
	// DefaultCount is used when the caller does not ask for a number.
	DefaultCount = 3
)

// ClampCount bounds a requested count to [1, MaxCount].
func ClampCount(n int) int {
	return min(max(n, 1), MaxCount)
}

// RandFunc returns the random source for a single selection call.
type RandFunc func() *rand.Rand

// NewRand is the default RandFunc: a PCG generator freshly seeded from the
// runtime source on every call.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Selector implements tiered random selection.
type Selector struct {
	newRand RandFunc
}

// NewSelector returns a Selector drawing randomness from newRand. A nil
// newRand uses NewRand.
func NewSelector(newRand RandFunc) *Selector {
	if newRand == nil {
		newRand = NewRand
	}
	return &Selector{newRand: newRand}
}

// Select picks up to count ads from eligible. The result has
// min(ClampCount(count), len(eligible)) distinct ads. The input slice is
// not modified.
func (s *Selector) Select(eligible []domain.Advertisement, count int) []domain.Advertisement {
	count = ClampCount(count)
	ads := slices.Clone(eligible)
	sortByPriority(ads)
	if len(ads) <= count {
		return ads
	}

	var high, medium, low []domain.Advertisement
	for _, ad := range ads {
		switch {
		case ad.Priority >= domain.HighPriority:
			high = append(high, ad)
		case ad.Priority == domain.MediumPriority:
			medium = append(medium, ad)
		default:
			low = append(low, ad)
		}
	}

	selected := make([]domain.Advertisement, 0, count)
	selected = append(selected, high[:min(count, len(high))]...)
	if len(selected) == count {
		return selected
	}

	rng := s.newRand()
	selected = append(selected, sample(rng, medium, count-len(selected))...)
	if len(selected) < count {
		selected = append(selected, sample(rng, low, count-len(selected))...)
	}
	return selected
}

// Sample returns a uniform random sample of min(count, len(eligible)) ads
// with no priority tiers. It backs the placement widget.
func (s *Selector) Sample(eligible []domain.Advertisement, count int) []domain.Advertisement {
	if count < 1 {
		count = 1
	}
	return sample(s.newRand(), eligible, count)
}

// sample draws n items without replacement using a partial Fisher-Yates
// shuffle over a copy of pool.
func sample(rng *rand.Rand, pool []domain.Advertisement, n int) []domain.Advertisement {
	n = min(n, len(pool))
	if n <= 0 {
		return nil
	}
	buf := slices.Clone(pool)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:n]
}

func sortByPriority(ads []domain.Advertisement) {
	slices.SortStableFunc(ads, func(a, b domain.Advertisement) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
}
