package petri

import (
	"sort"
	"strings"
)

// DescribeActivities derives every transition's Activities trace from its
// incident arcs (spec §6, BehaviouralReport.perSequenceResults[].
// activityExtraction): one "place:direction:type" descriptor per arc,
// sorted for determinism and joined with commas. Call once after a net's
// topology is finished (the mapper calls this as its final step); arcs
// added afterward are not reflected.
func (pn *PetriNet) DescribeActivities() {
	for id, t := range pn.Transitions {
		descs := make([]string, 0, len(pn.inArcs[id])+len(pn.outArcs[id]))
		for _, a := range pn.InArcs(id) {
			descs = append(descs, a.From+":in:"+string(a.Type))
		}
		for _, a := range pn.OutArcs(id) {
			descs = append(descs, a.To+":out:"+string(a.Type))
		}
		sort.Strings(descs)
		t.Activities = strings.Join(descs, ",")
	}
}
