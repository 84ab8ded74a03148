/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package core

// CustomValue is the capability interface a host type implements to be
// embedded inside a Value tree and serialized as if it were a native
// JSON value. Implementations get sensible defaults via
// container/custom.Base; this interface lives in core (rather than in
// container/custom) so Value can hold one without an import cycle.
type CustomValue interface {
	// Kind reports which logical JSON type this value should appear
	// to be (typically KindObject or KindString).
	Kind() Kind
	// ToJSON returns the JSON-shaped projection a serializer should
	// emit in place of this value. Called at most once per
	// serializer pass; the result is memoized by identity.
	ToJSON() Value
	// ToString returns the text accessor result; most implementations delegate to ToJSON.
	ToString() string
	// Size reports the container size when this value masquerades as
	// an array or object; zero for leaf custom values.
	Size() int
	// ByIndex returns the i-th child when masquerading as an array
	// or object; returns Undefined when out of range.
	ByIndex(i int) Value
	// ByKey returns the named child when masquerading as an object;
	// returns Undefined on miss.
	ByKey(key string) Value
	// Equals reports structural equality with another CustomValue.
	// The default (see container/custom.Base) is identity equality.
	Equals(other CustomValue) bool
}
