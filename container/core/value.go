/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
****************************************************************************/

// Package core provides the fundamental Value representation shared by
// every codec and façade in this module: a tagged union over the seven
// JSON logical types, immutable through any handle, with
// small strings/numbers inlined and larger containers shared by
// reference via an atomic refcount (rc.go).
package core

import "math"

// Value is an immutable handle to a JSON-representable datum. The zero
// Value is Undefined.
//
// Dispatch on the stored alternative uses the Tag/Kind switch below,
// not a visitor interface.
type Value struct {
	tag Tag

	// Inline payload for TagShortString / TagShortNumber: the string
	// bytes live directly in the Value, avoiding a heap allocation
	// for anything up to maxInlineLen bytes.
	inlineLen byte
	inline    [maxInlineLen]byte

	// Native Go string payload for the non-inline string-like tags.
	// Go strings are already immutable, so TagLongString/TagLongNumber
	// do not need to copy into inline storage; strSlab below exists
	// purely so the shared-refcount invariant is
	// observable and testable even though the GC would reclaim the
	// backing array on its own.
	str     string
	strSlab *rcSlab[byte]

	// Numeric payload, raw bits reinterpreted per tag:
	//   TagInt32/TagInt64:   num as a plain signed value
	//   TagUInt32/TagUInt64: num holding the bit pattern of the
	//                        unsigned value (safe: same width)
	//   TagDouble:           num holding math.Float64bits(f)
	num int64

	// Heap payload for TagArray / TagObject.
	arrSlab *rcSlab[Value]
	objSlab *rcSlab[KeyValue]

	// Heap payload for TagCustom.
	custom CustomValue
}

// Undefined is the canonical "no value" sentinel.
var Undefined = Value{tag: TagUndefined}

// Null is the canonical JSON null.
var Null = Value{tag: TagNull}

// True and False are the canonical booleans.
var True = Value{tag: TagBoolTrue}
var False = Value{tag: TagBoolFalse}

// EmptyArray and EmptyObject are the canonical empty containers,
// allocation-free ("elide allocation for empties").
var EmptyArray = Value{tag: TagEmptyArray}
var EmptyObject = Value{tag: TagEmptyObject}

// Kind returns the logical JSON type of v.
func (v Value) Kind() Kind {
	switch v.tag {
	case TagUndefined:
		return KindUndefined
	case TagNull:
		return KindNull
	case TagBoolFalse, TagBoolTrue:
		return KindBoolean
	case TagShortNumber, TagLongNumber, TagNumberRef, TagInt32, TagUInt32, TagInt64, TagUInt64, TagDouble:
		return KindNumber
	case TagShortString, TagLongString, TagStringRef:
		return KindString
	case TagEmptyArray, TagArray:
		return KindArray
	case TagEmptyObject, TagObject:
		return KindObject
	case TagCustom:
		if v.custom != nil {
			return v.custom.Kind()
		}
		return KindUndefined
	default:
		return KindUndefined
	}
}

// Tag exposes the physical storage variant for low-level callers and
// tests.
func (v Value) Tag() Tag { return v.tag }

// Custom returns the underlying custom-value handle, or nil if v does
// not hold one. Serializers use this to memoize a custom value's JSON
// projection by identity.
func (v Value) Custom() CustomValue { return v.custom }

// IsUndefined reports whether v is the undefined sentinel.
func (v Value) IsUndefined() bool { return v.tag == TagUndefined }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.tag == TagNull }

// IsBool reports whether v is a JSON boolean.
func (v Value) IsBool() bool { return v.tag == TagBoolFalse || v.tag == TagBoolTrue }

// IsNumber reports whether v is a JSON number.
func (v Value) IsNumber() bool { return v.Kind() == KindNumber }

// IsString reports whether v is a JSON string.
func (v Value) IsString() bool { return v.Kind() == KindString }

// IsArray reports whether v is a JSON array.
func (v Value) IsArray() bool { return v.Kind() == KindArray }

// IsObject reports whether v is a JSON object.
func (v Value) IsObject() bool { return v.Kind() == KindObject }

// IsCustom reports whether v holds a custom value handle.
func (v Value) IsCustom() bool { return v.tag == TagCustom }

// bitsAsFloat64 reinterprets the num field as a float64; only valid
// when v.tag == TagDouble.
func (v Value) bitsAsFloat64() float64 { return math.Float64frombits(uint64(v.num)) }

// stringBytes returns the raw bytes backing a string-like value,
// regardless of which string tag is in play.
func (v Value) stringBytes() string {
	switch v.tag {
	case TagShortString, TagShortNumber:
		return string(v.inline[:v.inlineLen])
	default:
		return v.str
	}
}

// Equal implements: undefined never equals anything
// (including another undefined); otherwise two Values are equal iff
// their logical Kind matches and the visited payload compares equal.
// A short inline string and a heap long string with identical bytes
// compare equal — string comparison always goes through
// stringBytes(), collapsing every string tag to a plain byte
// comparison. Custom values compare only with other custom values,
// through CustomValue.Equals.
func (a Value) Equal(b Value) bool {
	if a.tag == TagUndefined || b.tag == TagUndefined {
		return false
	}
	if a.tag == TagCustom || b.tag == TagCustom {
		if a.tag != b.tag {
			return false
		}
		if a.custom == nil || b.custom == nil {
			return a.custom == b.custom
		}
		return a.custom.Equals(b.custom)
	}
	ak, bk := a.Kind(), b.Kind()
	if ak != bk {
		return false
	}
	switch ak {
	case KindNull:
		return true
	case KindBoolean:
		return a.tag == b.tag
	case KindNumber:
		return numbersEqual(a, b)
	case KindString:
		return a.stringBytes() == b.stringBytes()
	case KindArray:
		ae, be := a.arrayElements(), b.arrayElements()
		if len(ae) != len(be) {
			return false
		}
		for i := range ae {
			if !ae[i].Equal(be[i]) {
				return false
			}
		}
		return true
	case KindObject:
		ao, bo := a.objectPairs(), b.objectPairs()
		if len(ao) != len(bo) {
			return false
		}
		for i := range ao {
			if ao[i].Key != bo[i].Key || !ao[i].Value.Equal(bo[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// numbersEqual implements number equality for: when both
// sides carry stored text (numbers-as-text, §3.3) the comparison is
// the exact stored text, since the textual form is authoritative and
// a float round-trip could lose precision; otherwise it falls back to
// a parsed-float comparison so e.g. an int32 1 equals a double 1.0.
func numbersEqual(a, b Value) bool {
	if isTextNumber(a.tag) && isTextNumber(b.tag) {
		return a.stringBytes() == b.stringBytes()
	}
	af := a.GetFloat64()
	bf := b.GetFloat64()
	return af == bf
}

func isTextNumber(t Tag) bool {
	return t == TagShortNumber || t == TagLongNumber || t == TagNumberRef
}

// arrayElements returns the element slice for any array-kind tag.
func (v Value) arrayElements() []Value {
	if v.tag == TagEmptyArray {
		return nil
	}
	if v.arrSlab == nil {
		return nil
	}
	return v.arrSlab.data
}

// objectPairs returns the sorted pair slice for any object-kind tag.
func (v Value) objectPairs() []KeyValue {
	if v.tag == TagEmptyObject {
		return nil
	}
	if v.objSlab == nil {
		return nil
	}
	return v.objSlab.data
}
