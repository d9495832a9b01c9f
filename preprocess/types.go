package preprocess

import "github.com/arqade/rdltpn/rdlt"

// Unbounded marks an eRU value with no finite bound (spec §4.3: "cycles
// with unbounded reuse... yield eRU = ∞").
const Unbounded = -1

// RBSInfo is the discovered shape of one reset-bound subsystem: its
// center, its member set, and its bridge classification.
type RBSInfo struct {
	Center     string
	Members    map[string]bool // includes Center
	InBridges  []string
	OutBridges []string
}

// IsBridge reports whether id is either an in-bridge or an out-bridge of
// this RBS.
func (info *RBSInfo) IsBridge(id string) bool {
	for _, b := range info.InBridges {
		if b == id {
			return true
		}
	}
	for _, b := range info.OutBridges {
		if b == id {
			return true
		}
	}

	return false
}

// AbstractPath is one concrete path EVSA folded into a single abstract
// arc: the bucket it came from, its endpoints, the underlying concrete
// vertex sequence, and its computed eRU.
type AbstractPath struct {
	RBSCenter string
	Bucket    Bucket
	From, To  string
	Vertices  []string // concrete path, endpoints included
	Edges     []*rdlt.Edge
	ERU       int // Unbounded if no finite bound was found
}

// Bucket names the four concrete-path categories EVSA enumerates per RBS
// (spec §4.3, Pass R2).
type Bucket int

const (
	BucketInToOut Bucket = iota
	BucketOutToIn
	BucketInSelfLoop
	BucketOutSelfLoop
)

// Result is EVSA's output: the Level-1 simplification, one Level-2
// subgraph per RBS, the combined RDLT the mapper consumes, and any
// warnings raised along the way (e.g. unbounded reuse).
type Result struct {
	Level1    *rdlt.RDLT
	Level2    map[string]*rdlt.RDLT // keyed by reset-center ID
	Combined  *rdlt.RDLT
	RBSInfos  map[string]*RBSInfo
	Abstracts []*AbstractPath
	Warnings  []string
}
