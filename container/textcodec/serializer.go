/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package textcodec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kcenon/go_json_value/container/core"
)

type serFrameKind int

const (
	serFrameValue serFrameKind = iota
	serFrameArray
	serFrameObject
)

type serFrame struct {
	kind serFrameKind

	value core.Value // serFrameValue

	elems []core.Value  // serFrameArray
	pairs []core.KeyValue // serFrameObject
	idx   int
	wrote bool
}

// Serializer is an incremental Value-to-text-JSON pushdown machine.
// Read returns the next bounded output chunk; an empty chunk with the
// stack drained means done.
type Serializer struct {
	stack []*serFrame
	buf   []byte

	customCache map[core.CustomValue]core.Value
}

// NewSerializer begins serializing v.
func NewSerializer(v core.Value) *Serializer {
	return &Serializer{
		stack:       []*serFrame{{kind: serFrameValue, value: v}},
		customCache: make(map[core.CustomValue]core.Value),
	}
}

// Read drives the machine to its next natural yield point — entering
// a nested array/object, or the stack draining — and returns the
// bytes produced since the previous call. An empty return with the
// stack empty means serialization is complete; callers should stop
// calling Read once they observe this.
func (s *Serializer) Read() []byte {
	s.buf = s.buf[:0]
	for len(s.stack) > 0 {
		top := s.stack[len(s.stack)-1]
		switch top.kind {
		case serFrameValue:
			s.stack = s.stack[:len(s.stack)-1]
			if s.renderValue(top.value) {
				return s.buf
			}
		case serFrameArray:
			if s.stepArray(top) {
				return s.buf
			}
		case serFrameObject:
			if s.stepObject(top) {
				return s.buf
			}
		}
	}
	return s.buf
}

// renderValue renders v. It returns true when it pushed a new
// container cursor frame (a yield point); false when it rendered a
// scalar inline and the caller should keep draining the stack.
func (s *Serializer) renderValue(v core.Value) bool {
	if v.Tag() == core.TagCustom {
		proj, ok := s.customCache[v.Custom()]
		if !ok {
			proj = v.Custom().ToJSON()
			s.customCache[v.Custom()] = proj
		}
		s.stack = append(s.stack, &serFrame{kind: serFrameValue, value: proj})
		return false
	}

	switch v.Kind() {
	case core.KindUndefined:
		// Only reached at the top level — container entries skip
		// undefined before ever pushing a value frame.
		s.buf = append(s.buf, "null"...)
		return false
	case core.KindNull:
		s.buf = append(s.buf, "null"...)
		return false
	case core.KindBoolean:
		if v.GetBool() {
			s.buf = append(s.buf, "true"...)
		} else {
			s.buf = append(s.buf, "false"...)
		}
		return false
	case core.KindString:
		s.buf = append(s.buf, '"')
		s.writeEscaped(v.GetString())
		s.buf = append(s.buf, '"')
		return false
	case core.KindNumber:
		s.renderNumber(v)
		return false
	case core.KindArray:
		s.buf = append(s.buf, '[')
		s.stack = append(s.stack, &serFrame{kind: serFrameArray, elems: v.Elements()})
		return true
	case core.KindObject:
		s.buf = append(s.buf, '{')
		s.stack = append(s.stack, &serFrame{kind: serFrameObject, pairs: v.Keys()})
		return true
	default:
		s.buf = append(s.buf, "null"...)
		return false
	}
}

func (s *Serializer) stepArray(top *serFrame) bool {
	for top.idx < len(top.elems) && top.elems[top.idx].IsUndefined() {
		top.idx++
	}
	if top.idx >= len(top.elems) {
		s.buf = append(s.buf, ']')
		s.stack = s.stack[:len(s.stack)-1]
		return false
	}
	if top.wrote {
		s.buf = append(s.buf, ',')
	}
	top.wrote = true
	elem := top.elems[top.idx]
	top.idx++
	s.stack = append(s.stack, &serFrame{kind: serFrameValue, value: elem})
	return false
}

func (s *Serializer) stepObject(top *serFrame) bool {
	for top.idx < len(top.pairs) && top.pairs[top.idx].Value.IsUndefined() {
		top.idx++
	}
	if top.idx >= len(top.pairs) {
		s.buf = append(s.buf, '}')
		s.stack = s.stack[:len(s.stack)-1]
		return false
	}
	if top.wrote {
		s.buf = append(s.buf, ',')
	}
	top.wrote = true
	kv := top.pairs[top.idx]
	top.idx++
	s.buf = append(s.buf, '"')
	s.writeEscaped(kv.Key.String())
	s.buf = append(s.buf, '"', ':')
	s.stack = append(s.stack, &serFrame{kind: serFrameValue, value: kv.Value})
	return false
}

// writeEscaped applies the text escape table of: the
// standard mappings, not the source's apparent `\b`→`b\\`/`\r`→`\f`
// typos (see DESIGN.md open-question decision).
func (s *Serializer) writeEscaped(str string) {
	for i := 0; i < len(str); i++ {
		b := str[i]
		switch b {
		case '"':
			s.buf = append(s.buf, '\\', '"')
		case '\\':
			s.buf = append(s.buf, '\\', '\\')
		case '\n':
			s.buf = append(s.buf, '\\', 'n')
		case '\r':
			s.buf = append(s.buf, '\\', 'r')
		case '\t':
			s.buf = append(s.buf, '\\', 't')
		case '\f':
			s.buf = append(s.buf, '\\', 'f')
		case '\b':
			s.buf = append(s.buf, '\\', 'b')
		default:
			if b < 0x20 {
				s.buf = append(s.buf, fmt.Sprintf(`\u%04x`, b)...)
			} else {
				s.buf = append(s.buf, b)
			}
		}
	}
}

func (s *Serializer) renderNumber(v core.Value) {
	switch v.Tag() {
	case core.TagInt32:
		s.buf = strconv.AppendInt(s.buf, v.GetInt64(), 10)
	case core.TagUInt32, core.TagUInt64:
		s.buf = strconv.AppendUint(s.buf, v.GetUInt64(), 10)
	case core.TagInt64:
		s.buf = strconv.AppendInt(s.buf, v.GetInt64(), 10)
	case core.TagDouble:
		s.renderDouble(v.GetFloat64())
	default: // short/long/ref number-text: verbatim, authoritative,
		// except the non-finite sentinels, which must be quoted same
		// as a TagDouble infinity.
		text := v.GetString()
		switch text {
		case "∞", "+∞":
			s.buf = append(s.buf, `"∞"`...)
		case "-∞":
			s.buf = append(s.buf, `"-∞"`...)
		default:
			s.buf = append(s.buf, text...)
		}
	}
}

// smallestNormalFloat64 is the smallest positive *normal* (non-
// subnormal) float64 — below this the hand-rolled printer described
// by prints "0".
const smallestNormalFloat64 = 2.2250738585072014e-308

// renderDouble implements's finite-double printer: NaN
// emits null, infinities emit a quoted "∞"/"-∞", and finite values are
// normalized into [1,10) when their decimal exponent falls outside
// [-2, 8], printed with up to 12 fractional digits and a trailing
// `e±DD` when an exponent was factored out.
func (s *Serializer) renderDouble(f float64) {
	switch {
	case math.IsNaN(f):
		s.buf = append(s.buf, "null"...)
		return
	case math.IsInf(f, 1):
		s.buf = append(s.buf, `"∞"`...)
		return
	case math.IsInf(f, -1):
		s.buf = append(s.buf, `"-∞"`...)
		return
	case f == 0:
		s.buf = append(s.buf, '0')
		return
	}

	neg := f < 0
	if neg {
		f = -f
	}
	if f < smallestNormalFloat64 {
		s.buf = append(s.buf, '0')
		return
	}

	exp := int(math.Floor(math.Log10(f)))
	if exp < -2 || exp > 8 {
		f = f / math.Pow(10, float64(exp))
	} else {
		exp = 0
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	intPart := math.Floor(f)
	frac := f - intPart
	sb.WriteString(strconv.FormatFloat(intPart, 'f', 0, 64))
	if frac > 1e-12 {
		sb.WriteByte('.')
		for i := 0; i < 12 && frac >= 1e-6; i++ {
			frac *= 10
			digit := int(math.Floor(frac))
			sb.WriteByte(byte('0' + digit))
			frac -= float64(digit)
		}
	}
	if exp != 0 {
		fmt.Fprintf(&sb, "e%+03d", exp)
	}
	s.buf = append(s.buf, sb.String()...)
}

// Stringify is the one-shot convenience wrapper.
func Stringify(v core.Value) string {
	s := NewSerializer(v)
	var out strings.Builder
	for {
		chunk := s.Read()
		if len(chunk) == 0 {
			break
		}
		out.Write(chunk)
	}
	return out.String()
}
