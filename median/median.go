package median

import (
	"errors"
	"math"
	"sort"
)

// ErrNoVertices indicates a median was requested over an empty graph, for
// which no active-degree median is defined.
var ErrNoVertices = errors.New("median: no vertices in graph")

// ErrUnknownAlgorithm indicates an Algorithm value other than Naive or Fast
// was passed to Compute.
var ErrUnknownAlgorithm = errors.New("median: unknown algorithm")

// exactHalfTolerance bounds how close a running histogram sum must land to
// half the vertex count before Fast treats it as an exact tie and averages
// across the boundary, matching the source implementation's 1e-5 constant.
// Only reachable when the vertex count is even.
const exactHalfTolerance = 1e-5

// Algorithm selects which median computation Compute dispatches to.
type Algorithm string

const (
	// Naive sorts every vertex's active degree and selects the middle
	// value(s): O(N log N) in the vertex count N.
	Naive Algorithm = "naive"

	// Fast walks the degree histogram from smallest to largest degree,
	// accumulating frequency until it crosses half the vertex count:
	// O(D) in the largest observed degree D, independent of N.
	Fast Algorithm = "fast"
)

// DegreeSource supplies every active vertex degree, in no particular
// order, to the Naive algorithm.
type DegreeSource interface {
	// Degrees appends the active degree of every vertex to dst and
	// returns the extended slice, following Go's usual append pattern.
	Degrees(dst []int) []int
}

// HistogramSource supplies the degree-frequency view the Fast algorithm
// walks, together with the total vertex count.
type HistogramSource interface {
	// VertexCount returns the total number of vertices currently tracked.
	VertexCount() int

	// Cap returns the largest degree the histogram can report without
	// implying growth; the walk never needs to go further than this.
	Cap() int

	// At returns the number of vertices whose active degree equals
	// degree (1-indexed).
	At(degree int) int
}

// Compute dispatches to Naive's naiveMedian or Fast's fastMedian based on
// alg, returning ErrUnknownAlgorithm for any other value.
//
// degrees is consulted only by Naive; hist only by Fast. Either may be nil
// so long as the corresponding algorithm is not selected.
func Compute(alg Algorithm, degrees DegreeSource, hist HistogramSource) (float64, error) {
	switch alg {
	case Naive:
		return naiveMedian(degrees)
	case Fast:
		return fastMedian(hist)
	default:
		return 0, ErrUnknownAlgorithm
	}
}

func naiveMedian(src DegreeSource) (float64, error) {
	degrees := src.Degrees(nil)
	n := len(degrees)
	if n == 0 {
		return 0, ErrNoVertices
	}

	sort.Ints(degrees)

	if n%2 == 1 {
		return float64(degrees[n/2]), nil
	}

	hi := n / 2
	return float64(degrees[hi]+degrees[hi-1]) / 2, nil
}

func fastMedian(hist HistogramSource) (float64, error) {
	total := hist.VertexCount()
	if total == 0 {
		return 0, ErrNoVertices
	}

	halfTotal := float64(total) / 2
	sum := 0.0

	for degree := 1; degree <= hist.Cap(); degree++ {
		freq := hist.At(degree)
		if freq == 0 {
			continue
		}

		sum += float64(freq)

		if math.Abs(sum-halfTotal) < exactHalfTolerance {
			next := degree + 1
			for ; next <= hist.Cap(); next++ {
				if hist.At(next) > 0 {
					break
				}
			}
			return float64(degree+next) / 2, nil
		}

		if sum > halfTotal {
			return float64(degree), nil
		}
	}

	return 0, ErrNoVertices
}
