package vertextable_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/activemedian/histogram"
	"github.com/katalvlaran/activemedian/vertextable"
)

func TestTable_GetOrCreateIsIdempotent(t *testing.T) {
	tbl := vertextable.New(4, histogram.New(histogram.DefaultInitialCapacity))

	e1 := tbl.GetOrCreate("alice")
	e2 := tbl.GetOrCreate("alice")

	assert.Same(t, e1, e2)
	assert.Equal(t, 1, tbl.Count())
}

func TestTable_GetAndRemove(t *testing.T) {
	tbl := vertextable.New(4, histogram.New(histogram.DefaultInitialCapacity))
	tbl.GetOrCreate("alice")

	_, ok := tbl.Get("alice")
	require.True(t, ok)

	removed := tbl.Remove("alice")
	assert.True(t, removed)
	assert.Equal(t, 0, tbl.Count())

	_, ok = tbl.Get("alice")
	assert.False(t, ok)

	assert.False(t, tbl.Remove("alice"))
}

func TestTable_CheckLoadRehashesPastThreshold(t *testing.T) {
	tbl := vertextable.New(4, histogram.New(histogram.DefaultInitialCapacity))

	// 3/4 = 0.75, not yet above threshold.
	for i := 0; i < 3; i++ {
		tbl.GetOrCreate(fmt.Sprintf("v%d", i))
	}
	assert.False(t, tbl.CheckLoad())

	// 4/4 = 1.0 > 0.75, triggers rehash to 2*4+1 = 9 buckets.
	tbl.GetOrCreate("v3")
	assert.True(t, tbl.CheckLoad())

	for i := 0; i < 4; i++ {
		_, ok := tbl.Get(fmt.Sprintf("v%d", i))
		assert.True(t, ok)
	}
	assert.Equal(t, 4, tbl.Count())
}

func TestTable_EntryPointerStableAcrossRehash(t *testing.T) {
	tbl := vertextable.New(2, histogram.New(histogram.DefaultInitialCapacity))
	e := tbl.GetOrCreate("alice")

	for i := 0; i < 10; i++ {
		tbl.GetOrCreate(fmt.Sprintf("filler%d", i))
		tbl.CheckLoad()
	}

	after, ok := tbl.Get("alice")
	require.True(t, ok)
	assert.Same(t, e, after)
}

func TestTable_CursorWalksAllEntries(t *testing.T) {
	tbl := vertextable.New(8, histogram.New(histogram.DefaultInitialCapacity))
	names := map[string]bool{"alice": true, "bob": true, "carol": true}
	for name := range names {
		tbl.GetOrCreate(name)
	}

	seen := map[string]bool{}
	for c := tbl.Walk(); c.Valid(); c.Advance() {
		seen[c.Entry().Name()] = true
	}

	assert.Equal(t, names, seen)
}

func TestTable_CursorRemoveCurrentContinuesWalk(t *testing.T) {
	tbl := vertextable.New(8, histogram.New(histogram.DefaultInitialCapacity))
	tbl.GetOrCreate("alice")
	tbl.GetOrCreate("bob")
	tbl.GetOrCreate("carol")

	removedCount := 0
	for c := tbl.Walk(); c.Valid(); {
		if c.Entry().Name() == "bob" {
			c.RemoveCurrent()
			removedCount++
			continue
		}
		c.Advance()
	}

	assert.Equal(t, 1, removedCount)
	assert.Equal(t, 2, tbl.Count())
	_, ok := tbl.Get("bob")
	assert.False(t, ok)
}
