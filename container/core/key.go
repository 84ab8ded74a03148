/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package core

import "sort"

// Key wraps an object key, enforcing the "keys are strings with a
// total order" invariant.
type Key struct {
	s string
}

// NewKey wraps s as a Key.
func NewKey(s string) Key { return Key{s: s} }

// String returns the underlying key text.
func (k Key) String() string { return k.s }

// Less reports whether k sorts strictly before other, per the total
// byte-lexicographic order mandates.
func (k Key) Less(other Key) bool { return k.s < other.s }

// Compare returns -1, 0, or 1 as k is less than, equal to, or greater
// than other, for use with binary search.
func (k Key) Compare(other Key) int {
	switch {
	case k.s < other.s:
		return -1
	case k.s > other.s:
		return 1
	default:
		return 0
	}
}

// KeyValue is one (key, value) pair of an object body.
type KeyValue struct {
	Key   Key
	Value Value
}

// sortKeyValues sorts pairs into ascending key order in place, stably.
func sortKeyValues(pairs []KeyValue) {
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Key.Less(pairs[j].Key)
	})
}
