package rdltbuilder

import "github.com/arqade/rdltpn/rdlt"

// EpsilonChain returns seed scenario 1: a two-vertex ε-chain x -> y.
func EpsilonChain() (*rdlt.RDLT, error) {
	return Build(
		Controllers("x", "y"),
		Eps("x", "y", 1),
	)
}

// ThreeWaySplit returns seed scenario 2: w splits to x and y by ε, which
// rejoin at z under distinct Σ-constraints a and b (no OR-join).
func ThreeWaySplit() (*rdlt.RDLT, error) {
	return Build(
		Controllers("w", "x", "y", "z"),
		Eps("w", "x", 1),
		Eps("w", "y", 1),
		Sigma("x", "z", "a", 1),
		Sigma("y", "z", "b", 1),
	)
}

// LoopCase returns seed scenario 3: x and w loop back and forth before
// fanning out to z.
func LoopCase() (*rdlt.RDLT, error) {
	return Build(
		Controllers("x", "w", "y", "z"),
		Eps("x", "w", 1),
		Eps("w", "x", 1),
		Eps("w", "y", 1),
		Eps("x", "z", 1),
		Eps("y", "z", 1),
	)
}

// RBSWithOutBridge returns seed scenario 4: a single RBS {c, brA} rooted at
// center c. Member brA is its in-bridge (entered from ext, outside the RBS)
// and its out-bridge (exiting to o2, outside the RBS, under a
// Σ-constraint); o2 then leads on to sink.
func RBSWithOutBridge() (*rdlt.RDLT, error) {
	return Build(
		ResetCenter("c"),
		Controllers("ext", "brA", "o2", "sink"),
		Eps("ext", "brA", 1),
		Eps("c", "brA", 2),
		Sigma("brA", "o2", "k", 1),
		Eps("o2", "sink", 1),
	)
}

// MixJoin returns seed scenario 5: z is reached by one ε-edge and one
// Σ-edge (constraint a).
func MixJoin() (*rdlt.RDLT, error) {
	return Build(
		Controllers("w", "u", "z"),
		Eps("w", "z", 1),
		Sigma("u", "z", "a", 1),
	)
}

// SiblingOrJoin returns seed scenario 6: two ε-only sibling paths from w
// rejoining at z, qualifying z as an OR-join.
func SiblingOrJoin() (*rdlt.RDLT, error) {
	return Build(
		Controllers("w", "x", "y", "z"),
		Eps("w", "x", 1),
		Eps("w", "y", 1),
		Eps("x", "z", 1),
		Eps("y", "z", 1),
	)
}
