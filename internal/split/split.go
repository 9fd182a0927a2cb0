package split

import (
	"fmt"
	"math/rand"
)

// Partition holds record indices for the three dataset slices.
type Partition struct {
	Train      []int
	Validation []int
	Test       []int
}

// Split shuffles n record indices with the given seed and cuts the
// shuffled order into contiguous train/validation/test slices of
// 50%/25%/25%. It errors when any slice would come out empty.
func Split(n int, seed int64) (*Partition, error) {
	if n < 4 {
		return nil, fmt.Errorf("cannot split %d records into three non-empty partitions", n)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	trainEnd := n / 2
	validEnd := 3 * n / 4
	return &Partition{
		Train:      indices[:trainEnd],
		Validation: indices[trainEnd:validEnd],
		Test:       indices[validEnd:],
	}, nil
}
