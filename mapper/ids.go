package mapper

// ID-naming helpers. Every place/transition ID is a pure function of the
// RDLT vertex/edge it originates from, so two mapper runs over the same
// combined RDLT produce byte-identical PetriNet IDs regardless of
// iteration order.

func tID(v string) string            { return "T" + v }
func splitPlaceID(v string) string   { return "P" + v + "split" }
func traversedPlaceID(v string) string { return "P" + v + "m" }
func tjID(v string) string           { return "TJ" + v }
func pjID(v string) string           { return "PJ" + v }
func checkedEpsID(to, from string) string { return "Pε" + to + from }
func auxEpsID(to, from string) string     { return "Pεn" + to + from }
func sigmaCheckedID(alias, v string) string { return "P" + alias + v }
func mixUnconstrainedID(alias string) string { return "P" + alias + "ε" }
func consensusID(c string) string { return "Pcons" + c }
func resetTransitionID(c string) string { return "Trr" + c }

// epsTransitionID names the traverse transition Tε{to}{from} for an ε-edge
// from->to.
// Abstract edges carry a running index since more than one abstract arc
// may share the same (from, to) pair.
func epsTransitionID(to, from string, idx int, abstract bool) string {
	base := "Tε" + to + from
	if abstract {
		return base + "_" + itoaMapper(idx)
	}

	return base
}

func itoaMapper(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}

	return string(buf[i:])
}
