// Package negotiate picks the best subset of offered discrete values given a
// filter of allowed values and an ordered wishlist of preferred values. The
// integers carry no unit; callers use it to negotiate stream resolutions,
// bitrates, protocol versions, or configuration tiers among offered options.
package negotiate

import (
	"sort"
	"strconv"
)

// Entry is one element of an allowed or preferred specification: either a
// specific value or a wildcard matching every value. Entries are immutable,
// comparable with ==, and usable as map keys.
type Entry struct {
	value int
	any   bool
}

// Specific returns an Entry matching exactly v.
func Specific(v int) Entry {
	return Entry{value: v}
}

// Wildcard matches any value. Its presence in a specification
// short-circuits the filtering or preference logic for that specification.
var Wildcard = Entry{any: true}

// Value returns the entry's target value, or false for a wildcard.
func (e Entry) Value() (int, bool) {
	return e.value, !e.any
}

// IsWildcard reports whether the entry matches any value.
func (e Entry) IsWildcard() bool {
	return e.any
}

func (e Entry) String() string {
	if e.any {
		return "*"
	}
	return strconv.Itoa(e.value)
}

// Select returns the values from available that pass the allowed filter and
// best satisfy preferred. Each preferred entry resolves independently: an
// exact match when permitted and offered, otherwise the first permitted value
// greater than it, otherwise the last permitted value. The result is sorted
// ascending without duplicates and never aliases available.
//
// A Wildcard in allowed permits everything offered; a Wildcard in preferred
// returns everything permitted, in the order it was offered. When nothing is
// both offered and permitted the result is empty regardless of preferred, and
// an empty preferred yields an empty result even when permitted values exist.
//
// The nearest-greater fallback scans in offered order, so it coincides with
// numeric nearness only when available is sorted ascending. That ordering is
// a precondition on the caller, not enforced here.
func Select(available []int, allowed, preferred []Entry) []int {
	var present []int
	if hasWildcard(allowed) {
		present = append(present, available...)
	} else {
		permitted := make(map[int]struct{}, len(allowed))
		for _, e := range allowed {
			permitted[e.value] = struct{}{}
		}
		for _, v := range available {
			if _, ok := permitted[v]; ok {
				present = append(present, v)
			}
		}
	}

	if len(present) == 0 || hasWildcard(preferred) {
		return present
	}

	picked := make(map[int]struct{}, len(preferred))
	for _, e := range preferred {
		if e.any {
			// hasWildcard above already returned for this case.
			panic("invariant violation: wildcard preference past short-circuit")
		}
		pick(present, e.value, picked)
	}

	out := make([]int, 0, len(picked))
	for v := range picked {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// pick resolves one preferred value against the non-empty present sequence.
func pick(present []int, want int, into map[int]struct{}) {
	for _, v := range present {
		if v == want {
			into[v] = struct{}{}
			return
		}
	}
	for _, v := range present {
		if v > want {
			into[v] = struct{}{}
			return
		}
	}
	into[present[len(present)-1]] = struct{}{}
}

func hasWildcard(entries []Entry) bool {
	for _, e := range entries {
		if e.any {
			return true
		}
	}
	return false
}
