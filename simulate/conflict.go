package simulate

import (
	"sort"

	"github.com/arqade/rdltpn/petri"
)

// conflictGroup is one partition of enabled transitions sharing a
// non-auxiliary normal input place (spec §4.5, Conflict grouping per
// step).
type conflictGroup struct {
	key         string
	transitions []string
}

const noInputGroupKey = "\x00no-input"

// groupConflicts partitions enabled by the first non-auxiliary normal
// input place each transition has; transitions sharing that place land in
// the same group, indexed by the place id. A transition with no such
// input joins the sentinel-keyed group. Groups are returned sorted by key
// (spec §5: "visits split-group keys in sorted order"). A transition with
// more than one non-auxiliary normal input is grouped by the first one
// encountered in arc-insertion order, rather than the union of all of
// them — the spec does not define how overlapping groups merge, and this
// keeps the partition a true partition (one group per transition) instead
// of requiring union-find over place ids. Two transitions whose first such
// inputs differ therefore land in different groups even when they share a
// later one — e.g. the ε-transitions into a mix-join vertex, which each
// read their own checked place first and all read the shared unconstrained
// place after it.
func groupConflicts(pn *petri.PetriNet, enabled []string) []conflictGroup {
	membersOf := make(map[string][]string)

	for _, t := range enabled {
		key := noInputGroupKey
		for _, a := range pn.InArcs(t) {
			if a.Type != petri.ArcNormal {
				continue
			}
			p, ok := pn.Places[a.From]
			if !ok || p.HasRole(petri.RoleAuxiliary) {
				continue
			}
			key = a.From

			break
		}
		membersOf[key] = append(membersOf[key], t)
	}

	keys := make([]string, 0, len(membersOf))
	for k := range membersOf {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]conflictGroup, 0, len(keys))
	for _, k := range keys {
		ts := append([]string(nil), membersOf[k]...)
		sort.Strings(ts)
		groups = append(groups, conflictGroup{key: k, transitions: ts})
	}

	return groups
}

// cartesianProduct returns every combination picking exactly one
// transition from each split-group, in group order.
func cartesianProduct(groups [][]string) [][]string {
	result := [][]string{{}}
	for _, g := range groups {
		var next [][]string
		for _, prefix := range result {
			for _, t := range g {
				combo := append(append([]string(nil), prefix...), t)
				next = append(next, combo)
			}
		}
		result = next
	}

	return result
}
