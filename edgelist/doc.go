// Package edgelist implements the per-vertex adjacency list at the heart of
// the rolling-window graph: a chronologically descending-sorted record of
// the in-window edges a vertex hosts, with a "recorded" length (every
// record still physically present) and an "active" length (the vertex's
// degree, which also counts edges recorded only in the peer's list).
//
// A List never resolves its own peers; it stores a VertexRef — an opaque,
// stable handle into package vertextable — rather than re-looking the peer
// up by name on every walk. This mirrors the original C implementation's
// storage of a raw pointer to the counterparty's table block, reexpressed
// as a Go interface so no package here needs unsafe pointer arithmetic.
package edgelist
