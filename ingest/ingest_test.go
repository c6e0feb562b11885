package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/activemedian/ingest"
)

func TestParse_WellFormedLine(t *testing.T) {
	line := `{"created_time": "2016-03-28T23:23:12Z", "target": "Bob", "actor": "Alice"}`

	ev, ok := ingest.Parse(line)
	require.True(t, ok)
	assert.Equal(t, "Alice", ev.Actor)
	assert.Equal(t, "Bob", ev.Target)
	assert.NotZero(t, ev.Timestamp)
}

func TestParse_MissingFieldRejected(t *testing.T) {
	_, ok := ingest.Parse(`{"created_time": "2016-03-28T23:23:12Z", "target": "", "actor": "Alice"}`)
	assert.False(t, ok)
}

func TestParse_GarbageLineRejected(t *testing.T) {
	_, ok := ingest.Parse("not even close to json")
	assert.False(t, ok)
}

func TestParse_OrderingIsCreatedTimeTargetActor(t *testing.T) {
	// actor and target swapped relative to the expected shape must fail
	// to produce the fields in the right roles.
	line := `{"created_time": "2016-03-28T23:23:12Z", "actor": "Alice", "target": "Bob"}`
	_, ok := ingest.Parse(line)
	assert.False(t, ok)
}

func TestParse_TruncatesOverlongLines(t *testing.T) {
	padding := strings.Repeat(" ", 1000)
	line := `{"created_time": "2016-03-28T23:23:12Z", "target": "Bob", "actor": "Alice"}` + padding

	ev, ok := ingest.Parse(line)
	require.True(t, ok)
	assert.Equal(t, "Alice", ev.Actor)
}

func TestParse_SameTimestampParsesDeterministically(t *testing.T) {
	line := `{"created_time": "2016-03-28T23:23:12Z", "target": "Bob", "actor": "Alice"}`

	ev1, ok1 := ingest.Parse(line)
	ev2, ok2 := ingest.Parse(line)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, ev1.Timestamp, ev2.Timestamp)
}
