/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package values provides named constructors building core.Value
// instances of each logical JSON type: one constructor per number/
// string/bool/null/array/object alphabet entry.
package values

import (
	"github.com/kcenon/go_json_value/container/core"
)

// Int32 builds a number Value stored as a 32-bit signed integer.
func Int32(v int32) core.Value { return core.NewInt32(v) }

// UInt32 builds a number Value stored as a 32-bit unsigned integer.
func UInt32(v uint32) core.Value { return core.NewUInt32(v) }

// Int64 builds a number Value stored as a 64-bit signed integer.
func Int64(v int64) core.Value { return core.NewInt64(v) }

// UInt64 builds a number Value stored as a 64-bit unsigned integer.
func UInt64(v uint64) core.Value { return core.NewUInt64(v) }

// Float64 builds a number Value stored as an IEEE-754 double.
func Float64(v float64) core.Value { return core.NewFloat64(v) }

// NumberFromText builds a number Value whose authoritative form is the
// given text, e.g. for values parsed
// from another source that must round-trip byte-exactly.
func NumberFromText(text string) core.Value { return core.NewNumberText(text) }
