package random_test

import (
	"testing"

	"wealth-sprint/internal/random"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	seq := random.NewSequence(5, -3, 1)
	assert.Equal(t, 1, seq.IntN(4))
	assert.Equal(t, 3, seq.IntN(4))
	assert.Equal(t, 1, seq.IntN(4))
	assert.Equal(t, 1, seq.IntN(4), "wraps around")

	assert.Equal(t, 0, random.NewSequence().IntN(10))
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	a, b := random.New(7), random.New(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestBetween(t *testing.T) {
	src := random.New(3)
	for i := 0; i < 200; i++ {
		v := random.Between(src, 3, 4)
		assert.True(t, v == 3 || v == 4, "got %d", v)
	}
	assert.Equal(t, 3, random.Between(src, 3, 3))
	assert.Equal(t, 5, random.Between(src, 5, 2))
}

func TestShuffleIsPermutation(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	random.Shuffle(random.New(11), len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, items)
}
