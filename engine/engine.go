package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/activemedian/config"
	"github.com/katalvlaran/activemedian/edgelist"
	"github.com/katalvlaran/activemedian/histogram"
	"github.com/katalvlaran/activemedian/ingest"
	"github.com/katalvlaran/activemedian/median"
	"github.com/katalvlaran/activemedian/vertextable"
)

// ErrEmptyActor indicates an Event with an empty actor name was passed to
// Ingest. ingest.Parse never produces one, but the check guards engine
// callers that build Events another way.
var ErrEmptyActor = errors.New("engine: empty actor name")

// ErrEmptyTarget indicates an Event with an empty target name was passed
// to Ingest.
var ErrEmptyTarget = errors.New("engine: empty target name")

// GraphEngine is the rolling-window social graph: a vertex table, the
// degree histogram that backs the fast median, and the current maximum
// observed timestamp.
type GraphEngine struct {
	runID uuid.UUID
	cfg   config.Config

	table *vertextable.Table
	hist  *histogram.Histogram

	globalMaxTime int64
}

// New returns an empty GraphEngine configured per cfg, stamped with a
// fresh RunID for log and dump correlation.
func New(cfg config.Config) *GraphEngine {
	hist := histogram.New(cfg.InitialHistogramCapacity)

	return &GraphEngine{
		runID: uuid.New(),
		cfg:   cfg,
		table: vertextable.New(cfg.InitialTableSize, hist),
		hist:  hist,
	}
}

// ID returns the engine's run identifier.
func (e *GraphEngine) ID() uuid.UUID {
	return e.runID
}

// Table exposes the underlying vertex table for read-only inspection —
// debug dumps and tests. Engine-internal invariants assume Ingest remains
// the only mutator; callers must not mutate the returned Table.
func (e *GraphEngine) Table() *vertextable.Table {
	return e.table
}

// VertexCount implements median.HistogramSource.
func (e *GraphEngine) VertexCount() int {
	return e.table.Count()
}

// Cap implements median.HistogramSource.
func (e *GraphEngine) Cap() int {
	return e.hist.Cap()
}

// At implements median.HistogramSource.
func (e *GraphEngine) At(degree int) int {
	return e.hist.At(degree)
}

// Degrees implements median.DegreeSource.
func (e *GraphEngine) Degrees(dst []int) []int {
	for c := e.table.Walk(); c.Valid(); c.Advance() {
		dst = append(dst, c.Entry().List().ActiveLen())
	}

	return dst
}

// Median computes the current median active degree using alg.
func (e *GraphEngine) Median(alg median.Algorithm) (float64, error) {
	return median.Compute(alg, e, e)
}

func (e *GraphEngine) windowSeconds() int64 {
	return int64(e.cfg.Window / time.Second)
}

// Ingest resolves one event into the graph: it advances the global
// maximum timestamp, and — unless the event is too stale to affect the
// window — updates the actor/target adjacency and runs the eviction
// sweep. It reports false for a stale event, which leaves the graph
// untouched, and true for every event applied to the graph, even one (such
// as a replay) that changes nothing; a stale event still has a
// well-defined median (computed by the caller via Median afterward).
func (e *GraphEngine) Ingest(ev ingest.Event) (graphUpdated bool, err error) {
	if ev.Actor == "" {
		return false, ErrEmptyActor
	}
	if ev.Target == "" {
		return false, ErrEmptyTarget
	}

	if ev.Timestamp > e.globalMaxTime {
		e.globalMaxTime = ev.Timestamp
	}

	if e.globalMaxTime-ev.Timestamp > e.windowSeconds() {
		return false, nil
	}

	actorEntry := e.table.GetOrCreate(ev.Actor)
	targetEntry := e.table.GetOrCreate(ev.Target)

	e.resolveEdge(actorEntry, targetEntry, ev.Timestamp)

	e.table.CheckLoad()
	e.updateGraph()

	return true, nil
}

// resolveEdge records or refreshes the single edge between actor and
// target. The edge is physically stored in exactly one of the two
// vertices' lists — never both — while both vertices' active degree
// always reflects its presence, matching the original implementation's
// four-way branch on which side (if either) already holds the record.
func (e *GraphEngine) resolveEdge(actorEntry, targetEntry *vertextable.Entry, timestamp int64) {
	actorList := actorEntry.List()
	targetList := targetEntry.List()

	actorHasTarget, actorRec := findPeer(actorList, targetEntry)
	targetHasActor, targetRec := findPeer(targetList, actorEntry)

	switch {
	case !actorHasTarget && targetHasActor:
		// Target's list already holds the edge; refresh it if the new
		// observation is more recent.
		if timestamp > targetRec.Timestamp {
			targetList.RemoveByPeer(actorEntry)
			actorList.IncActive(-1)
			targetList.InsertSorted(actorEntry, timestamp)
			actorList.IncActive(1)
		}
	case actorHasTarget && !targetHasActor:
		// Actor's list already holds the edge; refresh it if the new
		// observation is more recent.
		if timestamp > actorRec.Timestamp {
			actorList.RemoveByPeer(targetEntry)
			targetList.IncActive(-1)
			actorList.InsertSorted(targetEntry, timestamp)
			targetList.IncActive(1)
		}
	case !actorHasTarget && !targetHasActor:
		// Neither side has recorded this edge yet: store it in the
		// actor's list and count it on both sides.
		actorList.InsertSorted(targetEntry, timestamp)
		targetList.IncActive(1)
	default:
		// Both sides already record this edge — an inconsistent state
		// that a well-formed input stream never produces. Left
		// unresolved, matching the original implementation, which does
		// not handle this combination either.
	}
}

func findPeer(l *edgelist.List, peer edgelist.VertexRef) (bool, edgelist.Record) {
	rec, ok := l.Find(peer)
	return ok, rec
}

// updateGraph evicts every edge record older than the rolling window and
// removes any vertex left with no active edges, walking the vertex table
// once. Because each vertex's records are stored newest-first, the first
// stale record found marks every record after it as stale too, so the
// sweep removes a single trailing run per vertex rather than scanning
// every record individually.
func (e *GraphEngine) updateGraph() {
	window := e.windowSeconds()

	// Peers emptied by eviction are removed from the table only after the
	// whole walk below finishes. Table.Remove is a standalone bucket scan
	// that knows nothing about an open Cursor; calling it mid-walk against
	// an arbitrary peer (not the cursor's own current entry) could unlink
	// a node the cursor's prev still points at, corrupting the walk. Queuing
	// names here and removing them once cur is no longer in use avoids that
	// entirely.
	var pendingRemovals []string

	for cur := e.table.Walk(); cur.Valid(); {
		entry := cur.Entry()
		list := entry.List()

		if list.ActiveLen() == 0 {
			cur.RemoveCurrent()
			continue
		}

		it := list.Iterate()
		for it.Valid() {
			if e.globalMaxTime-it.Record().Timestamp <= window {
				it.Advance()
				continue
			}

			// Every record from here on is at least this stale; evict
			// the whole trailing run.
			for it.Valid() {
				if name, remove := e.evictRecord(entry, it.Record()); remove {
					pendingRemovals = append(pendingRemovals, name)
				}
				it.RemoveCurrent()
			}
			break
		}

		if list.RecordedLen() == 0 && list.ActiveLen() == 0 {
			cur.RemoveCurrent()
			continue
		}

		cur.Advance()
	}

	for _, name := range pendingRemovals {
		e.table.Remove(name)
	}
}

// evictRecord reflects the removal of rec (owned by owner's list) on the
// peer's side: the peer loses one active edge. It reports the peer's name
// and whether that emptied it, leaving the actual Table.Remove to
// updateGraph once the table walk has finished.
//
// When rec's peer is owner itself (a self-referential edge), the peer's
// active length is still decremented — matching the original
// implementation, which double-counts self-loops in exactly this way —
// but removal is never requested for it; owner's own post-sweep
// recorded/active-length check in updateGraph handles that case.
func (e *GraphEngine) evictRecord(owner *vertextable.Entry, rec edgelist.Record) (peerName string, shouldRemove bool) {
	peerEntry, ok := rec.Peer.(*vertextable.Entry)
	if !ok {
		return "", false
	}

	peerList := peerEntry.List()
	peerList.IncActive(-1)

	if peerEntry == owner {
		return "", false
	}

	if peerList.ActiveLen() == 0 {
		return peerEntry.Name(), true
	}

	return "", false
}
