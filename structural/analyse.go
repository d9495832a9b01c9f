package structural

import (
	"sort"

	"github.com/arqade/rdltpn/digraph"
	"github.com/arqade/rdltpn/petri"
)

const (
	placePrefix      = "p:"
	transitionPrefix = "t:"
)

var placeRoleOrder = []petri.PlaceRole{
	petri.RoleGlobalSource,
	petri.RoleGlobalSink,
	petri.RoleSplit,
	petri.RoleChecked,
	petri.RoleTraversed,
	petri.RoleAuxiliary,
	petri.RoleConsensus,
	petri.RoleUnconstrained,
	petri.RoleMixJoin,
}

var transitionRoleOrder = []petri.TransitionRole{
	petri.RoleCheck,
	petri.RoleTraverse,
	petri.RoleReset,
}

// Analyse builds the structural report for pn: connectivity over the
// place/transition/arc graph, node counts, and role-classified id lists.
// It never mutates pn and does not depend on any marking.
func Analyse(pn *petri.PetriNet) *Report {
	g := digraph.NewGraph()
	for _, id := range pn.PlaceIDs() {
		_, _ = g.AddVertex(placePrefix + id)
	}
	for _, id := range pn.TransitionIDs() {
		_, _ = g.AddVertex(transitionPrefix + id)
	}
	for _, a := range pn.Arcs() {
		g.AddEdge(nodeKey(pn, a.From), nodeKey(pn, a.To))
	}

	report := &Report{
		TransitionsCount: len(pn.TransitionIDs()),
		PlacesCount:      len(pn.PlaceIDs()),
		PlaceRoles:       classifyPlaceRoles(pn),
		TransitionRoles:  classifyTransitionRoles(pn),
	}

	sources := pn.PlacesWithRole(petri.RoleGlobalSource)
	sinks := pn.PlacesWithRole(petri.RoleGlobalSink)
	if len(sources) == 1 {
		report.Connectivity.Source = sources[0].ID
	} else if len(sources) > 1 {
		report.Issues = append(report.Issues, "more than one global source place")
	}
	if len(sinks) == 1 {
		report.Connectivity.Sink = sinks[0].ID
	} else if len(sinks) > 1 {
		report.Issues = append(report.Issues, "more than one global sink place")
	}

	report.Connectivity.Auxiliary = idsOf(pn.PlacesWithRole(petri.RoleAuxiliary))
	report.Connectivity.IsolatedNodes = isolatedNodes(g)
	report.Connectivity.Unreached = unreachedNodes(g, report.Connectivity.Source)
	report.Connectivity.StronglyConnected = isStronglyConnected(g)

	if len(report.Connectivity.Unreached) > 0 {
		report.Issues = append(report.Issues, "unreachable nodes from the global source")
	}
	if len(report.Connectivity.IsolatedNodes) > 0 {
		report.Issues = append(report.Issues, "isolated nodes with no incident arcs")
	}

	return report
}

func nodeKey(pn *petri.PetriNet, id string) string {
	if _, ok := pn.Places[id]; ok {
		return placePrefix + id
	}

	return transitionPrefix + id
}

func idsOf(places []*petri.Place) []string {
	out := make([]string, 0, len(places))
	for _, p := range places {
		out = append(out, p.ID)
	}
	sort.Strings(out)

	return out
}

func classifyPlaceRoles(pn *petri.PetriNet) map[string][]string {
	out := make(map[string][]string)
	for _, role := range placeRoleOrder {
		if ids := idsOf(pn.PlacesWithRole(role)); len(ids) > 0 {
			out[string(role)] = ids
		}
	}

	return out
}

func classifyTransitionRoles(pn *petri.PetriNet) map[string][]string {
	out := make(map[string][]string)
	for _, role := range transitionRoleOrder {
		transitions := pn.TransitionsWithRole(role)
		ids := make([]string, 0, len(transitions))
		for _, t := range transitions {
			ids = append(ids, t.ID)
		}
		sort.Strings(ids)
		if len(ids) > 0 {
			out[string(role)] = ids
		}
	}

	return out
}

// isolatedNodes returns every node (prefixed, stripped back to its plain
// id) with neither an incoming nor an outgoing arc.
func isolatedNodes(g *digraph.Graph) []string {
	var out []string
	for i := 0; i < g.VertexCount(); i++ {
		if len(g.Outgoing(i)) == 0 && len(g.Incoming(i)) == 0 {
			out = append(out, stripPrefix(g.VertexID(i)))
		}
	}
	sort.Strings(out)

	return out
}

// unreachedNodes returns every node not reachable from source via any arc,
// in either direction. An empty source (no global source place) yields no
// verdict, since there is nothing to measure reachability against.
func unreachedNodes(g *digraph.Graph, source string) []string {
	if source == "" {
		return nil
	}
	idx, ok := g.IndexOf(placePrefix + source)
	if !ok {
		return nil
	}

	// Walk an undirected copy: same vertex order (so same indices), every
	// arc added in both directions.
	u := digraph.NewGraph()
	for i := 0; i < g.VertexCount(); i++ {
		_, _ = u.AddVertex(g.VertexID(i))
	}
	for _, e := range g.Edges() {
		u.AddEdge(g.VertexID(e.From), g.VertexID(e.To))
		u.AddEdge(g.VertexID(e.To), g.VertexID(e.From))
	}

	reached := make(map[int]bool)
	for _, v := range u.BFS(idx, nil) {
		reached[v] = true
	}

	var out []string
	for i := 0; i < g.VertexCount(); i++ {
		if !reached[i] {
			out = append(out, stripPrefix(g.VertexID(i)))
		}
	}
	sort.Strings(out)

	return out
}

// isStronglyConnected reports whether the graph collapses to a single
// Tarjan SCC. A graph with zero or one node is vacuously strongly
// connected.
func isStronglyConnected(g *digraph.Graph) bool {
	if g.VertexCount() <= 1 {
		return true
	}

	return len(g.SCCTarjan()) == 1
}

func stripPrefix(id string) string {
	if len(id) > len(placePrefix) && id[:len(placePrefix)] == placePrefix {
		return id[len(placePrefix):]
	}
	if len(id) > len(transitionPrefix) && id[:len(transitionPrefix)] == transitionPrefix {
		return id[len(transitionPrefix):]
	}

	return id
}
