/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package core

import "math"

// NewBool constructs a JSON boolean.
func NewBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// NewInt32 constructs a JSON number from a native int32.
func NewInt32(n int32) Value { return Value{tag: TagInt32, num: int64(n)} }

// NewUInt32 constructs a JSON number from a native uint32.
func NewUInt32(n uint32) Value { return Value{tag: TagUInt32, num: int64(n)} }

// NewInt64 constructs a JSON number from a native int64.
func NewInt64(n int64) Value { return Value{tag: TagInt64, num: n} }

// NewUInt64 constructs a JSON number from a native uint64.
func NewUInt64(n uint64) Value { return Value{tag: TagUInt64, num: int64(n)} }

// NewInt is a convenience constructor picking Int64 for a platform int.
func NewInt(n int) Value { return NewInt64(int64(n)) }

// NewFloat64 constructs a JSON number from a native double.
func NewFloat64(f float64) Value {
	return Value{tag: TagDouble, num: int64(math.Float64bits(f))}
}

// newStringLike builds either an inline short string/number or a heap
// long string/number, choosing the tag by length.
func newStringLike(s string, numeric bool) Value {
	if len(s) <= maxInlineLen {
		v := Value{}
		if numeric {
			v.tag = TagShortNumber
		} else {
			v.tag = TagShortString
		}
		v.inlineLen = byte(len(s))
		copy(v.inline[:], s)
		return v
	}
	v := Value{str: s, strSlab: newRCSlab([]byte(s))}
	if numeric {
		v.tag = TagLongNumber
	} else {
		v.tag = TagLongString
	}
	return v
}

// NewString constructs a JSON string, heap-copying the text if it is
// longer than the inline budget.
func NewString(s string) Value { return newStringLike(s, false) }

// NewNumberText constructs a JSON number whose textual form is s,
// taken verbatim.
// The text is not validated here; an invalid form is only an issue
// at serialization time, matching the source's
// documented behavior.
func NewNumberText(s string) Value { return newStringLike(s, true) }

// NewStringRef constructs a borrowed-string Value: in the source
// language this variant exists only for compile-time string constants
// whose storage outlives the Value. Go strings are
// always backed by GC-managed, immutable storage, so there is no
// lifetime hazard to guard against; NewStringRef still tags the
// result TagStringRef so physical-storage tests can distinguish "was
// explicitly constructed from a borrowed literal" from "was promoted
// to an owned copy". Any path that would place a Value inside a
// shared array/object container promotes Ref tags to their owned
// counterpart first — see promoteForStorage.
func NewStringRef(s string) Value { return Value{tag: TagStringRef, str: s} }

// NewNumberRef is the number-text analogue of NewStringRef.
func NewNumberRef(s string) Value { return Value{tag: TagNumberRef, str: s} }

// promoteForStorage converts a borrowed Ref tag into its owned
// equivalent. Called whenever a Value is about to become a child of
// an array or object body, so containers never retain a "borrowed"
// tag past the point where it must be promoted to a heap copy.
func promoteForStorage(v Value) Value {
	switch v.tag {
	case TagStringRef:
		return NewString(v.str)
	case TagNumberRef:
		return NewNumberText(v.str)
	default:
		return v
	}
}

// NewArray constructs a JSON array from elements, in order, admitting
// repeats. An empty call returns the allocation-free
// EmptyArray singleton.
func NewArray(elements ...Value) Value {
	if len(elements) == 0 {
		return EmptyArray
	}
	body := make([]Value, len(elements))
	for i, e := range elements {
		body[i] = promoteForStorage(e)
	}
	return Value{tag: TagArray, arrSlab: newRCSlab(body)}
}

// NewObject constructs a JSON object from pairs, canonically sorted
// by key. Duplicate keys are preserved as given (not
// deduplicated at construction; see MergeKeys/SetKeys for the
// deduplicating path).
func NewObject(pairs ...KeyValue) Value {
	if len(pairs) == 0 {
		return EmptyObject
	}
	body := make([]KeyValue, len(pairs))
	for i, p := range pairs {
		body[i] = KeyValue{Key: p.Key, Value: promoteForStorage(p.Value)}
	}
	sortKeyValues(body)
	return Value{tag: TagObject, objSlab: newRCSlab(body)}
}

// NewCustom wraps a CustomValue handle as a Value.
func NewCustom(c CustomValue) Value {
	return Value{tag: TagCustom, custom: c}
}

// Empty returns the canonical empty instance of the given logical
// type, ("a logical type tag produces the empty
// canonical instance of that type").
func Empty(k Kind) Value {
	switch k {
	case KindUndefined:
		return Undefined
	case KindNull:
		return Null
	case KindBoolean:
		return False
	case KindNumber:
		return NewInt32(0)
	case KindString:
		return NewString("")
	case KindArray:
		return EmptyArray
	case KindObject:
		return EmptyObject
	default:
		return Undefined
	}
}
