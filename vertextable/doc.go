// Package vertextable implements the chained hash map that owns every
// vertex's identity and adjacency list for the lifetime of a
// engine.GraphEngine.
//
// Keys hash with the same multiplicative string hash as the original
// implementation (multiplier 2630849305), and the table grows to 2n+1
// buckets whenever its load factor exceeds 0.75. Buckets are singly
// linked lists of *Entry so that a Cursor walking the table tolerates
// removal of the entry it is currently positioned at — removing any
// other entry during the walk is undefined and must not be relied upon.
package vertextable
