package split_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rating-engine/ratings/internal/split"
)

func TestSplitSizes(t *testing.T) {
	for _, n := range []int{4, 10, 99, 100, 1250} {
		partition, err := split.Split(n, 42)
		assert.NoError(t, err)

		assert.Equal(t, n/2, len(partition.Train))
		assert.Equal(t, 3*n/4-n/2, len(partition.Validation))
		assert.Equal(t, n-3*n/4, len(partition.Test))

		total := len(partition.Train) + len(partition.Validation) + len(partition.Test)
		if total != n {
			t.Errorf("Partition sizes for n=%d sum to %d", n, total)
		}
	}
}

func TestSplitCoversAllIndicesOnce(t *testing.T) {
	n := 100
	partition, err := split.Split(n, 7)
	assert.NoError(t, err)

	seen := make(map[int]int)
	for _, idx := range partition.Train {
		seen[idx]++
	}
	for _, idx := range partition.Validation {
		seen[idx]++
	}
	for _, idx := range partition.Test {
		seen[idx]++
	}

	assert.Len(t, seen, n)
	for idx, count := range seen {
		if count != 1 {
			t.Errorf("Index %d appears %d times across partitions", idx, count)
		}
	}
}

func TestSplitDeterministicForSeed(t *testing.T) {
	a, err := split.Split(50, 42)
	assert.NoError(t, err)
	b, err := split.Split(50, 42)
	assert.NoError(t, err)

	assert.Equal(t, a.Train, b.Train)
	assert.Equal(t, a.Validation, b.Validation)
	assert.Equal(t, a.Test, b.Test)
}

func TestSplitSeedChangesOrder(t *testing.T) {
	a, err := split.Split(100, 1)
	assert.NoError(t, err)
	b, err := split.Split(100, 2)
	assert.NoError(t, err)

	assert.NotEqual(t, a.Train, b.Train)
}

func TestSplitTooFewRecords(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3} {
		_, err := split.Split(n, 42)
		if err == nil {
			t.Errorf("Expected error splitting %d records, got none", n)
		}
	}
}
