// Package ident allocates the four limb identifiers a 256-bit name
// expands to under the word-size transform, memoizing the mapping so
// repeated references to the same source name inside one translation
// run always expand to the same four names (spec.md §4.5 determinism
// requirement).
package ident

import "fmt"

// Allocator tracks which names are already reserved in the object
// under translation and memoizes name -> four-limb expansions.
type Allocator struct {
	reserved map[string]bool
	expanded map[string][4]string
}

// New seeds an Allocator with the names already in use, which per
// invariant 1 are unique across the whole object by the time the word
// size transform runs.
func New(reservedNames []string) *Allocator {
	a := &Allocator{
		reserved: make(map[string]bool, len(reservedNames)),
		expanded: make(map[string][4]string),
	}
	for _, n := range reservedNames {
		a.reserved[n] = true
	}
	return a
}

// limbSuffix are ordered most-significant (1) to least-significant (4),
// matching limb256's big-endian convention.
var limbSuffix = [4]string{"1", "2", "3", "4"}

// Expand returns the four limb names for name, allocating and
// reserving them on first use and returning the cached result on every
// subsequent call for the same name.
func (a *Allocator) Expand(name string) [4]string {
	if limbs, ok := a.expanded[name]; ok {
		return limbs
	}
	var limbs [4]string
	for i, suffix := range limbSuffix {
		limbs[i] = a.fresh(name + "_" + suffix)
	}
	a.expanded[name] = limbs
	for _, l := range limbs {
		a.reserved[l] = true
	}
	return limbs
}

// fresh returns base if unreserved, otherwise appends a counter until
// an unreserved name is found. WST never drives this path on its own
// output (limb names are derived from already-unique source names), but
// adversarial pre-existing names can collide with a generated limb name.
func (a *Allocator) fresh(base string) string {
	if !a.reserved[base] {
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d", base, n)
		if !a.reserved[candidate] {
			return candidate
		}
	}
}

// Reserve marks name as taken without expanding it, used when a fresh
// name is needed for a purpose other than limb expansion (e.g. a
// temporary introduced while lowering a condition expression).
func (a *Allocator) Reserve(name string) {
	a.reserved[name] = true
}

// IsReserved reports whether name is already taken.
func (a *Allocator) IsReserved(name string) bool {
	return a.reserved[name]
}
