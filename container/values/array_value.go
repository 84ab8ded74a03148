/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package values

import (
	"fmt"

	"github.com/kcenon/go_json_value/container/core"
)

// Array builds an array Value from the given elements.
func Array(elements ...core.Value) core.Value { return core.NewArray(elements...) }

// At returns the element at index, or an error if out of range —
// an ergonomic, error-returning counterpart to core.Value.Index, which
// instead returns the shared undefined on a miss.
func At(v core.Value, index int) (core.Value, error) {
	if index < 0 || index >= v.Len() {
		return core.Undefined, fmt.Errorf("index %d out of range (size %d)", index, v.Len())
	}
	return v.Index(index), nil
}

// Append returns a new array with elements appended to v's end.
func Append(v core.Value, elements ...core.Value) core.Value {
	return v.AppendElements(elements...)
}

// Insert returns a new array with elements inserted at position at.
func Insert(v core.Value, at int, elements ...core.Value) core.Value {
	return v.Insert(at, elements...)
}

// Erase returns a new array with the half-open range [from, to)
// removed.
func Erase(v core.Value, from, to int) core.Value {
	return v.Erase(from, to)
}

// Slice returns a new array holding the elements in [from, to).
func Slice(v core.Value, from, to int) core.Value {
	return v.Slice(from, to)
}
