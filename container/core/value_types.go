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

package core

// Kind is the logical JSON type of a Value. It is the type a caller
// reasons about; Tag (below) is the physical storage variant, which
// may differ for values of the same Kind (a short string and a long
// string are both KindString).
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns a human readable name for the logical type.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Tag is the physical storage discriminant of a Value.
// Several tags map to the same Kind; Tag exists so low-level callers
// (and tests) can observe which representation was chosen without
// being able to mutate it.
type Tag int

const (
	TagUndefined Tag = iota
	TagNull
	TagBoolFalse
	TagBoolTrue
	TagShortString // inline bytes, length <= maxInlineLen
	TagShortNumber // inline bytes, numeric text, length <= maxInlineLen
	TagInt32
	TagUInt32
	TagInt64
	TagUInt64
	TagDouble
	TagEmptyArray
	TagEmptyObject
	TagLongString // heap, refcounted byte buffer
	TagLongNumber // heap, refcounted byte buffer, numeric text
	TagArray       // heap, refcounted Value buffer
	TagObject      // heap, refcounted KeyValue buffer, sorted by key
	TagStringRef   // borrowed string, promoted to an owned tag when stored in a container
	TagNumberRef   // borrowed numeric text, promoted to an owned tag when stored in a container
	TagCustom      // core.CustomValue handle
)

// String gives a short stable label for the tag, used in tests and
// debug output.
func (t Tag) String() string {
	switch t {
	case TagUndefined:
		return "undefined"
	case TagNull:
		return "null"
	case TagBoolFalse:
		return "bool_false"
	case TagBoolTrue:
		return "bool_true"
	case TagShortString:
		return "short_string"
	case TagShortNumber:
		return "short_number"
	case TagInt32:
		return "int32"
	case TagUInt32:
		return "uint32"
	case TagInt64:
		return "int64"
	case TagUInt64:
		return "uint64"
	case TagDouble:
		return "dnum"
	case TagEmptyArray:
		return "empty_array"
	case TagEmptyObject:
		return "empty_object"
	case TagLongString:
		return "long_string"
	case TagLongNumber:
		return "long_number"
	case TagArray:
		return "array"
	case TagObject:
		return "object"
	case TagStringRef:
		return "string_ref"
	case TagNumberRef:
		return "number_ref"
	case TagCustom:
		return "custom_type"
	default:
		return "unknown"
	}
}

// maxInlineLen is the inline-string/number byte budget.
const maxInlineLen = 14
