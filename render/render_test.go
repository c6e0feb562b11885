package render_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/activemedian/config"
	"github.com/katalvlaran/activemedian/engine"
	"github.com/katalvlaran/activemedian/ingest"
	"github.com/katalvlaran/activemedian/render"
)

func TestFormatMedian(t *testing.T) {
	assert.Equal(t, "1.00", render.FormatMedian(1))
	assert.Equal(t, "1.50", render.FormatMedian(1.5))
	assert.Equal(t, "0.00", render.FormatMedian(0))
}

func TestDumpGraph_IncludesVertexNamesAndLengths(t *testing.T) {
	e := engine.New(config.Default())
	_, err := e.Ingest(ingest.Event{Timestamp: 1, Actor: "John", Target: "Jane"})
	require.NoError(t, err)

	var buf bytes.Buffer
	render.DumpGraph(&buf, uuid.New(), e.Table())

	out := buf.String()
	assert.Contains(t, out, "John")
	assert.Contains(t, out, "Jane")
}
