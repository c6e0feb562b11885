// Package histogram implements the degree-frequency index that backs the
// fast O(D) median algorithm in package median, where D is the largest
// currently observed vertex degree.
//
// A Histogram is a dynamically sized array H where H[d-1] holds the number
// of vertices whose active edge-list length (degree) equals d. It is
// mutated only through Update, which is called once per active-length
// transition anywhere in the graph (see edgelist.List.IncActive).
package histogram
