// Package median implements the two active-degree median algorithms the
// engine can compute after each ingest cycle: a naive O(N log N) sort over
// every vertex's active degree, and a fast O(D) walk over the degree
// histogram, where D is the largest observed degree. Both read-only views
// of the graph are provided by the caller; this package does no graph
// mutation.
package median
