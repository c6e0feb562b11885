package vertextable

import (
	"github.com/katalvlaran/activemedian/edgelist"
	"github.com/katalvlaran/activemedian/histogram"
)

// hashMultiplier is the multiplicative constant the original implementation
// uses for its string hash. Kept identical so that bucket distribution
// behavior carries over unchanged.
const hashMultiplier uint64 = 2630849305

// Entry is a single vertex's slot in the table: its name, its adjacency
// list, and a link to the next entry sharing its bucket. An *Entry's
// address never changes for as long as it remains in the table — rehash
// relinks entries between buckets rather than recreating them — so it is
// safe to store as an edgelist.VertexRef inside another vertex's list and
// keep using it across arbitrarily many rehashes.
type Entry struct {
	name string
	list *edgelist.List
	next *Entry
}

// Name implements edgelist.VertexRef.
func (e *Entry) Name() string {
	return e.name
}

// List returns the vertex's adjacency list.
func (e *Entry) List() *edgelist.List {
	return e.list
}

// Table is a chained hash map from vertex name to Entry. It is the single
// owner of every vertex's identity and adjacency list in a running
// engine.GraphEngine.
type Table struct {
	buckets []*Entry
	count   int
	hist    *histogram.Histogram
}

// New returns an empty Table with initialCapacity buckets (clamped to at
// least 1), whose entries report degree transitions into hist.
func New(initialCapacity int, hist *histogram.Histogram) *Table {
	if initialCapacity < 1 {
		initialCapacity = 1
	}
	return &Table{
		buckets: make([]*Entry, initialCapacity),
		hist:    hist,
	}
}

func hash(key string, nBuckets int) int {
	var code uint64
	for i := 0; i < len(key); i++ {
		code = code*hashMultiplier + uint64(key[i])
	}
	return int(code % uint64(nBuckets))
}

// Count reports the number of vertices currently in the table.
func (t *Table) Count() int {
	return t.count
}

// Get returns the entry for name, if present.
func (t *Table) Get(name string) (*Entry, bool) {
	idx := hash(name, len(t.buckets))
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.name == name {
			return e, true
		}
	}
	return nil, false
}

// GetOrCreate returns the existing entry for name, or creates, links, and
// returns a new one backed by a fresh edgelist.List.
func (t *Table) GetOrCreate(name string) *Entry {
	if e, ok := t.Get(name); ok {
		return e
	}

	idx := hash(name, len(t.buckets))
	e := &Entry{
		name: name,
		list: edgelist.New(t.hist),
		next: t.buckets[idx],
	}
	t.buckets[idx] = e
	t.count++

	return e
}

// Remove deletes the entry for name, if present, and reports whether it
// was found.
func (t *Table) Remove(name string) bool {
	idx := hash(name, len(t.buckets))

	var prev *Entry
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.name == name {
			if prev == nil {
				t.buckets[idx] = e.next
			} else {
				prev.next = e.next
			}
			t.count--

			return true
		}
		prev = e
	}

	return false
}

// LoadFactor reports the table's current elements-per-bucket ratio.
func (t *Table) LoadFactor() float64 {
	return float64(t.count) / float64(len(t.buckets))
}

// MaxLoadFactor is the threshold above which CheckLoad triggers a rehash,
// matching the original implementation's MAX_LOAD.
const MaxLoadFactor = 0.75

// CheckLoad rehashes the table to 2n+1 buckets if the load factor exceeds
// MaxLoadFactor, and reports whether it did. A rehash that cannot allocate
// its new bucket slice leaves the table in its prior, working state rather
// than propagating the failure — mirroring the original's "rehashing
// failed, continue with the old table" degrade path — though a genuine
// allocation failure in Go is ordinarily an unrecoverable fatal error, not
// a recoverable panic; this guard only helps for the allocation sizes this
// engine actually produces.
func (t *Table) CheckLoad() (rehashed bool) {
	if t.LoadFactor() <= MaxLoadFactor {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			rehashed = false
		}
	}()

	t.rehash()

	return true
}

func (t *Table) rehash() {
	newCap := len(t.buckets)*2 + 1
	newBuckets := make([]*Entry, newCap)

	for _, head := range t.buckets {
		for e := head; e != nil; {
			next := e.next
			idx := hash(e.name, newCap)
			e.next = newBuckets[idx]
			newBuckets[idx] = e
			e = next
		}
	}

	t.buckets = newBuckets
}

// Cursor walks every entry in a Table, tolerating removal of the entry it
// is currently positioned at via RemoveCurrent. As with edgelist.Iterator,
// Advance and RemoveCurrent are separate operations.
type Cursor struct {
	t      *Table
	bucket int
	prev   *Entry
	cur    *Entry
}

// Walk returns a Cursor positioned at the table's first entry, in
// bucket order, or a cursor with Valid() == false if the table is empty.
func (t *Table) Walk() *Cursor {
	c := &Cursor{t: t, bucket: 0}
	if len(t.buckets) == 0 {
		c.bucket = -1
		return c
	}

	c.cur = t.buckets[0]
	c.seekNonEmptyBucket()

	return c
}

func (c *Cursor) seekNonEmptyBucket() {
	for c.cur == nil && c.bucket < len(c.t.buckets)-1 {
		c.bucket++
		c.prev = nil
		c.cur = c.t.buckets[c.bucket]
	}
}

// Valid reports whether the cursor is positioned at an entry.
func (c *Cursor) Valid() bool {
	return c.cur != nil
}

// Entry returns the entry at the cursor's current position.
func (c *Cursor) Entry() *Entry {
	return c.cur
}

// Advance moves the cursor to the next entry, crossing bucket boundaries
// as needed.
func (c *Cursor) Advance() {
	c.prev = c.cur
	c.cur = c.cur.next
	c.seekNonEmptyBucket()
}

// RemoveCurrent unlinks the entry at the cursor's current position from
// its bucket, decrements the table's count, and advances the cursor to
// the entry that followed it.
func (c *Cursor) RemoveCurrent() {
	removed := c.cur
	next := removed.next

	if c.prev == nil {
		c.t.buckets[c.bucket] = next
	} else {
		c.prev.next = next
	}
	c.t.count--

	c.cur = next
	c.seekNonEmptyBucket()
}
