package world

import (
	"fmt"
	"math/rand"
)

// SampleCells picks k distinct cell indexes from [0, n) uniformly at random.
// It runs a partial Fisher-Yates shuffle, so no index can be drawn twice.
func SampleCells(rng *rand.Rand, n, k int) ([]int, error) {
	if k < 0 || k > n {
		return nil, fmt.Errorf("cannot sample %d cells from %d", k, n)
	}

	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k], nil
}
