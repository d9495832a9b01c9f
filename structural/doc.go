// Package structural implements the structural analyser (spec §6): a
// connectivity, count, and role-classification report over a frozen
// PetriNet, independent of any firing sequence. It treats the net as an
// undirected-for-reachability, directed-for-strong-connectivity bipartite
// graph of places and transitions connected by arcs, reusing the
// digraph package's BFS and Tarjan SCC the way the preprocessor reuses
// them for RDLT reachability.
package structural
