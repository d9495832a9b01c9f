package mapper

import (
	"sort"
	"strings"

	"github.com/arqade/rdltpn/rdlt"
)

// aliasRegistry assigns each distinct Σ-constraint a short alias from the
// pool a, b, …, z, a1, b1, …, z1, a2, … (spec §4.4 step 5). A single-letter
// constraint is assigned its own lowercased letter when that letter is
// still free; a collision overflows into the numbered pool (a1, b1, …),
// and every multi-letter constraint takes the next alias of the whole
// pool (free single letters first). Assignment order follows spec §5: single-character
// constraints sorted alphabetically before multi-character ones, which are
// processed in edge-iteration (input) order.
type aliasRegistry struct {
	assigned    map[string]string
	usedLetters map[byte]bool
	overflowIdx int
}

func newAliasRegistry() *aliasRegistry {
	return &aliasRegistry{
		assigned:    make(map[string]string),
		usedLetters: make(map[byte]bool),
	}
}

// seed precomputes aliases for every distinct Σ-constraint present on r's
// edges, in the ordering spec §5 mandates.
func (a *aliasRegistry) seed(r *rdlt.RDLT) {
	seen := make(map[string]bool)
	var single, multi []string
	for _, e := range r.Edges() {
		if e.IsEpsilon() || seen[e.C] {
			continue
		}
		seen[e.C] = true
		if len(e.C) == 1 {
			single = append(single, e.C)
		} else {
			multi = append(multi, e.C)
		}
	}
	sort.Strings(single)

	for _, c := range single {
		lower := strings.ToLower(c)
		if a.reserveLetter(lower[0]) {
			a.assigned[c] = lower
		} else {
			idx := a.overflowIdx
			a.overflowIdx++
			a.assigned[c] = string(byte('a'+idx%26)) + itoaMapper(idx/26+1)
		}
	}
	for _, c := range multi {
		a.assigned[c] = a.nextFromPool()
	}
}

// Alias returns the alias for constraint c, assigning one lazily from the
// pool if seed never saw it.
func (a *aliasRegistry) Alias(c string) string {
	if alias, ok := a.assigned[c]; ok {
		return alias
	}
	alias := a.nextFromPool()
	a.assigned[c] = alias

	return alias
}

func (a *aliasRegistry) reserveLetter(l byte) bool {
	if a.usedLetters[l] {
		return false
	}
	a.usedLetters[l] = true

	return true
}

func (a *aliasRegistry) nextFromPool() string {
	for l := byte('a'); l <= 'z'; l++ {
		if !a.usedLetters[l] {
			a.usedLetters[l] = true

			return string(l)
		}
	}
	idx := a.overflowIdx
	a.overflowIdx++
	letter := byte('a' + idx%26)
	round := idx/26 + 1

	return string(letter) + itoaMapper(round)
}
