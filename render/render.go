package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/activemedian/vertextable"
)

// FormatMedian renders a median value the same way the original
// implementation's fprintf("%.2f\n", ...) does, minus the trailing
// newline — callers write lines, not raw floats.
func FormatMedian(median float64) string {
	return fmt.Sprintf("%.2f", median)
}

// DumpGraph renders every vertex currently in tbl — its active length,
// recorded length, and full chronological edge list — as a single table,
// tagged with runID so repeated dumps against the same input file can be
// told apart in logs. It is the go-pretty-backed replacement for the
// original implementation's raw printf graph dump.
func DumpGraph(w io.Writer, runID uuid.UUID, tbl *vertextable.Table) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("graph dump — run %s — %d vertices", runID, tbl.Count())
	t.AppendHeader(table.Row{"Vertex", "Active Len", "Recorded Len", "Edges (peer@timestamp, newest first)"})

	for c := tbl.Walk(); c.Valid(); c.Advance() {
		entry := c.Entry()
		list := entry.List()

		var edges []string
		for it := list.Iterate(); it.Valid(); it.Advance() {
			rec := it.Record()
			edges = append(edges, fmt.Sprintf("%s@%d", rec.Peer.Name(), rec.Timestamp))
		}

		t.AppendRow(table.Row{
			entry.Name(),
			list.ActiveLen(),
			list.RecordedLen(),
			strings.Join(edges, ", "),
		})
	}

	t.Render()
}
