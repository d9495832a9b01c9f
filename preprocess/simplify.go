package preprocess

import (
	"sort"

	"github.com/arqade/rdltpn/rdlt"
)

// unboundedL stands in for an effectively-unlimited traversal bound when
// eRU has no finite value; the abstract edge must still carry a positive
// integer L for the Petri-net mapper to consume (spec §4.3, Failure modes:
// "the mapper may still produce a PN whose analyser will find it unsound").
const unboundedL = 1 << 30

// bucketOrder fixes iteration order across the four concrete-path buckets
// so abstract-edge synthesis is deterministic regardless of map iteration
// elsewhere (spec §5, Ordering).
var bucketOrder = []Bucket{BucketInToOut, BucketOutToIn, BucketInSelfLoop, BucketOutSelfLoop}

// Simplify runs EVSA (spec §4.3) over r, producing the Level-1
// simplification, one Level-2 subgraph per RBS, the combined RDLT the
// mapper consumes, and any warnings (unbounded reuse). If extend is true,
// the dummy source/sink vertices are added to Level-1 before the combined
// view is built; a missing source or sink then yields ErrInvalidTopology.
func Simplify(r *rdlt.RDLT, extend bool) (*Result, error) {
	infos := discoverRBSs(r)
	l1 := buildLevel1(r, infos)
	cycles := allSimpleCycles(r)

	level2 := make(map[string]*rdlt.RDLT, len(infos))
	var abstracts []*AbstractPath
	var warnings []string

	centers := make([]string, 0, len(infos))
	for c := range infos {
		centers = append(centers, c)
	}
	sort.Strings(centers)

	for _, center := range centers {
		info := infos[center]
		l2 := buildLevel2(r, info)
		level2[center] = l2

		buckets := enumerateConcretePaths(r, info)
		for _, bucket := range bucketOrder {
			for _, path := range buckets[bucket] {
				eru, unbounded, warn := computeERU(r, info, path, cycles, infos)
				l := eru + 1
				if unbounded {
					warnings = append(warnings, warn)
					l = unboundedL
				}
				from := path[0].From
				to := path[len(path)-1].To
				ae, err := l1.AddEdge(from, to, rdlt.Epsilon, l, rdlt.EdgeAbstract)
				if err != nil {
					continue // parallel abstract edges are permitted; a real failure here indicates a topology bug upstream
				}
				ae.ConcretePath = concreteVertices(path)
				abstracts = append(abstracts, &AbstractPath{
					RBSCenter: center,
					Bucket:    bucket,
					From:      from,
					To:        to,
					Vertices:  ae.ConcretePath,
					Edges:     path,
					ERU:       eruOrUnbounded(eru, unbounded),
				})
			}
		}
	}

	if extend {
		if err := applyExtension(l1); err != nil {
			return nil, err
		}
	}

	combined := buildCombined(l1, level2)

	return &Result{
		Level1:    l1,
		Level2:    level2,
		Combined:  combined,
		RBSInfos:  infos,
		Abstracts: abstracts,
		Warnings:  warnings,
	}, nil
}

func eruOrUnbounded(eru int, unbounded bool) int {
	if unbounded {
		return Unbounded
	}

	return eru
}

func concreteVertices(path []*rdlt.Edge) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path[0].From)
	for _, e := range path {
		out = append(out, e.To)
	}

	return out
}
