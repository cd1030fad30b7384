package puzzle

import "math/rand"

// Shuffler produces a permutation of an arrangement.
// Implementations may reorder the argument in place and return it.
type Shuffler interface {
	Shuffle(a Arrangement) Arrangement
}

// ShuffleFunc adapts a plain function to the Shuffler interface.
type ShuffleFunc func(a Arrangement) Arrangement

// Shuffle calls f(a).
func (f ShuffleFunc) Shuffle(a Arrangement) Arrangement {
	return f(a)
}

// RandShuffler is a uniform Fisher-Yates shuffle over a seeded source.
// A result equal to the input (or to the solved state) is accepted as is.
type RandShuffler struct {
	rng *rand.Rand
}

// NewRandShuffler creates a shuffler with a deterministic seed.
func NewRandShuffler(seed int64) *RandShuffler {
	return &RandShuffler{rng: rand.New(rand.NewSource(seed))}
}

// Shuffle permutes a in place: for each i, pick j uniformly in [i, n-1]
// and swap elements i and j.
func (s *RandShuffler) Shuffle(a Arrangement) Arrangement {
	n := len(a)
	for i := range n {
		j := i + s.rng.Intn(n-i)
		a[i], a[j] = a[j], a[i]
	}
	return a
}

// Fixed returns a Shuffler that always yields a copy of result.
// Used for scripted boards and tests.
func Fixed(result Arrangement) Shuffler {
	return ShuffleFunc(func(Arrangement) Arrangement {
		return result.Clone()
	})
}
