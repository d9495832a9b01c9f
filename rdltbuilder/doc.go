// Package rdltbuilder is a fluent fixture constructor for rdlt.RDLT values,
// adapted from the graph-construction builder found elsewhere in this
// module's ancestry: a Constructor closure type plus an orchestrator that
// applies a sequence of them in order. It exists to cut down on repeated
// manual AddVertex/AddEdge boilerplate across this module's tests; it is
// not used by any non-test code.
package rdltbuilder
