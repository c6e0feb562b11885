// Package engine implements GraphEngine, the single-writer orchestrator
// that ties together package vertextable, edgelist, and histogram into the
// rolling-window social graph described by the project: Ingest resolves
// one payment event into the graph, and an internal eviction sweep keeps
// every vertex's active degree consistent with the rolling window after
// every ingest.
//
// A GraphEngine is not safe for concurrent Ingest calls — by design, it is
// meant to be driven by a single sequential reader, matching the original
// implementation's single-threaded main loop. Nothing here takes a lock;
// callers needing concurrent access must serialize their own calls.
package engine
