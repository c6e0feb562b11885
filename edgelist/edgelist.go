package edgelist

import (
	"github.com/katalvlaran/activemedian/histogram"
)

// VertexRef is a stable, comparable handle to a vertex's entry in some
// vertex table. edgelist never dereferences the table itself — it only
// stores and compares refs — so this package has no dependency on
// vertextable and no import cycle results from vertextable.Entry
// implementing this interface.
type VertexRef interface {
	// Name returns the vertex's stored key. Used only for debug rendering;
	// VertexRef values are compared with ==, never by name.
	Name() string
}

// Record is one edge observation: the counterparty and the moment the
// payment between the owning vertex and Peer occurred.
type Record struct {
	Peer      VertexRef
	Timestamp int64
}

type node struct {
	rec  Record
	next *node
}

// List is a single vertex's adjacency list: the edge records this vertex
// hosts, newest timestamp first. RecordedLen counts every node still
// linked; ActiveLen is the vertex's degree, which also counts edges whose
// record is hosted in the peer's list, so it can exceed RecordedLen. The
// engine's eviction sweep unlinks stale records rather than marking them.
//
// A List is owned by exactly one vertex for its lifetime and must not be
// shared or mutated from more than one goroutine at a time — the owning
// engine.GraphEngine is the sole writer, by design (see package engine).
type List struct {
	hist        *histogram.Histogram
	head        *node
	recordedLen int
	activeLen   int
}

// New returns an empty List backed by hist, the shared degree-frequency
// index that every IncActive call reports transitions into.
func New(hist *histogram.Histogram) *List {
	return &List{hist: hist}
}

// RecordedLen reports how many edge records are still physically linked,
// evicted or not.
func (l *List) RecordedLen() int {
	return l.recordedLen
}

// ActiveLen reports the vertex's active degree: the running total of every
// IncActive delta, including those for edges recorded in a peer's list.
func (l *List) ActiveLen() int {
	return l.activeLen
}

// IncActive adjusts the active length by delta and reports the transition
// to the shared histogram. delta is typically +1 (a new edge observed) or
// -1 (an edge evicted or a record physically removed).
func (l *List) IncActive(delta int) {
	old := l.activeLen
	l.activeLen = old + delta
	if l.hist != nil {
		l.hist.Update(old, l.activeLen)
	}
}

// InsertSorted links a new record for (peer, timestamp) into the list,
// preserving descending-timestamp order, and increments both the recorded
// and active lengths. Among records sharing the same timestamp, the new
// record is linked after every existing record with that timestamp — the
// first record inserted at a given timestamp sorts first, matching the
// original implementation's insertion-order tie-break.
func (l *List) InsertSorted(peer VertexRef, timestamp int64) {
	l.recordedLen++
	l.IncActive(1)

	newNode := &node{rec: Record{Peer: peer, Timestamp: timestamp}}

	if l.head == nil || l.head.rec.Timestamp < timestamp {
		newNode.next = l.head
		l.head = newNode
		return
	}

	prev := l.head
	for prev.next != nil && prev.next.rec.Timestamp >= timestamp {
		prev = prev.next
	}
	newNode.next = prev.next
	prev.next = newNode
}

// Find returns the first record whose peer equals the given ref, and
// whether one was found. Peers are compared with == only.
func (l *List) Find(peer VertexRef) (Record, bool) {
	for n := l.head; n != nil; n = n.next {
		if n.rec.Peer == peer {
			return n.rec, true
		}
	}
	return Record{}, false
}

// RemoveByPeer finds and physically removes the first record whose peer
// equals ref, reporting whether one was found. It exists for the engine's
// cross-list edge-refresh logic, where a stale record must be unlinked
// from whichever list currently holds it before a fresher one is
// inserted.
func (l *List) RemoveByPeer(ref VertexRef) bool {
	it := l.Iterate()
	for it.Valid() {
		if it.Record().Peer == ref {
			it.RemoveCurrent()
			return true
		}
		it.Advance()
	}
	return false
}

// Iterator walks a List from newest to oldest record, tolerating removal
// of the record currently positioned at via RemoveCurrent. Advance and
// RemoveCurrent are deliberately separate operations — never combined —
// so a caller can inspect Record() before deciding which to call.
type Iterator struct {
	list *List
	prev *node // node before cur, or nil if cur is the head
	cur  *node
}

// Iterate returns a new Iterator positioned at the newest record, or an
// iterator with Valid() == false if the list is empty.
func (l *List) Iterate() *Iterator {
	return &Iterator{list: l, cur: l.head}
}

// Valid reports whether the iterator is positioned at a record.
func (it *Iterator) Valid() bool {
	return it.cur != nil
}

// Record returns the record at the iterator's current position. Calling
// it when Valid() is false panics, the same way indexing past a slice's
// end does.
func (it *Iterator) Record() Record {
	return it.cur.rec
}

// Advance moves the iterator to the next-oldest record.
func (it *Iterator) Advance() {
	it.prev = it.cur
	it.cur = it.cur.next
}

// RemoveCurrent unlinks the record at the iterator's current position,
// decrements the list's recorded length, reports an active-length
// decrement via IncActive, and advances the iterator to the record that
// followed it. It is the only mutating operation an Iterator exposes.
func (it *Iterator) RemoveCurrent() {
	removed := it.cur
	next := removed.next

	if it.prev == nil {
		it.list.head = next
	} else {
		it.prev.next = next
	}

	it.list.recordedLen--
	it.list.IncActive(-1)

	it.cur = next
}
