package histogram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/activemedian/histogram"
)

func TestHistogram_UpdateTracksBuckets(t *testing.T) {
	h := histogram.New(4)

	h.Update(0, 1) // vertex gains its first edge
	assert.Equal(t, 1, h.At(1))

	h.Update(1, 2) // vertex gains a second edge
	assert.Equal(t, 0, h.At(1))
	assert.Equal(t, 1, h.At(2))

	h.Update(2, 1) // vertex loses an edge
	assert.Equal(t, 1, h.At(1))
	assert.Equal(t, 0, h.At(2))

	h.Update(1, 0) // vertex loses its last edge
	assert.Equal(t, 0, h.At(1))
}

func TestHistogram_GrowsByDoublingAndPreservesContents(t *testing.T) {
	h := histogram.New(2)

	h.Update(0, 1)
	h.Update(0, 2)
	assert.Equal(t, 2, h.Cap())

	// Observing degree 5 forces growth past the initial capacity of 2.
	h.Update(0, 5)
	assert.GreaterOrEqual(t, h.Cap(), 5)

	// Pre-growth counts for degrees 1 and 2 must have survived the resize.
	assert.Equal(t, 1, h.At(1))
	assert.Equal(t, 1, h.At(2))
	assert.Equal(t, 1, h.At(5))
}

func TestHistogram_AtOutOfRangeIsZero(t *testing.T) {
	h := histogram.New(3)
	assert.Equal(t, 0, h.At(0))
	assert.Equal(t, 0, h.At(100))
}
