/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package binarycodec

import (
	"encoding/binary"
	"math"

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

	value core.Value

	elems []core.Value
	pairs []core.KeyValue
	idx   int
	wantKey bool
}

// Serializer is an incremental Value-to-binary-TLV pushdown machine.
// Unlike the text serializer, no entry is ever skipped: there is no
// undefined elision in the binary format.
type Serializer struct {
	stack []*serFrame
	buf   []byte

	customCache map[core.CustomValue]core.Value
}

// NewSerializer begins serializing v to binary TLV.
func NewSerializer(v core.Value) *Serializer {
	return &Serializer{
		stack:       []*serFrame{{kind: serFrameValue, value: v}},
		customCache: make(map[core.CustomValue]core.Value),
	}
}

// Read drives the machine to its next yield point (a nested
// array/object entered) or stack-empty, and returns the bytes
// produced since the previous call. An empty return with nothing left
// to do means serialization is complete.
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
			s.stepArray(top)
		case serFrameObject:
			s.stepObject(top)
		}
	}
	return s.buf
}

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
		s.writeHeader(majorSimple, simpleUndefined)
	case core.KindNull:
		s.writeHeader(majorSimple, simpleNull)
	case core.KindBoolean:
		if v.GetBool() {
			s.writeHeader(majorSimple, simpleTrue)
		} else {
			s.writeHeader(majorSimple, simpleFalse)
		}
	case core.KindNumber:
		s.encodeNumber(v)
	case core.KindString:
		text := v.GetString()
		s.writeTag(majorString, uint64(len(text)))
		s.buf = append(s.buf, text...)
	case core.KindArray:
		elems := v.Elements()
		s.writeTag(majorArray, uint64(len(elems)))
		if len(elems) > 0 {
			s.stack = append(s.stack, &serFrame{kind: serFrameArray, elems: elems})
			return true
		}
	case core.KindObject:
		pairs := v.Keys()
		s.writeTag(majorObject, uint64(len(pairs)))
		if len(pairs) > 0 {
			s.stack = append(s.stack, &serFrame{kind: serFrameObject, pairs: pairs, wantKey: true})
			return true
		}
	}
	return false
}

func (s *Serializer) stepArray(top *serFrame) {
	if top.idx >= len(top.elems) {
		s.stack = s.stack[:len(s.stack)-1]
		return
	}
	elem := top.elems[top.idx]
	top.idx++
	s.stack = append(s.stack, &serFrame{kind: serFrameValue, value: elem})
}

func (s *Serializer) stepObject(top *serFrame) {
	if top.idx >= len(top.pairs) {
		s.stack = s.stack[:len(s.stack)-1]
		return
	}
	kv := top.pairs[top.idx]
	if top.wantKey {
		top.wantKey = false
		s.stack = append(s.stack, &serFrame{kind: serFrameValue, value: core.NewString(kv.Key.String())})
		return
	}
	top.idx++
	top.wantKey = true
	s.stack = append(s.stack, &serFrame{kind: serFrameValue, value: kv.Value})
}

func (s *Serializer) encodeNumber(v core.Value) {
	switch v.Tag() {
	case core.TagDouble:
		s.writeHeader(majorSimple, simpleDouble)
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.GetFloat64()))
		s.buf = append(s.buf, buf[:]...)
	case core.TagInt32, core.TagInt64:
		n := v.GetInt64()
		if n >= 0 {
			s.writeTag(majorPosInt, uint64(n))
		} else if n == math.MinInt64 {
			s.writeTag(majorNegInt, 1<<63)
		} else {
			s.writeTag(majorNegInt, uint64(-n))
		}
	case core.TagUInt32, core.TagUInt64:
		s.writeTag(majorPosInt, v.GetUInt64())
	default: // short/long/ref number-text: authoritative stored text
		text := v.GetString()
		s.writeTag(majorNumStr, uint64(len(text)))
		s.buf = append(s.buf, text...)
	}
}

func (s *Serializer) writeHeader(major, arg byte) {
	s.buf = append(s.buf, (major<<3)|arg)
}

func minBytesBE(m uint64) int {
	for n := 1; n < 8; n++ {
		if m < uint64(1)<<(8*uint(n)) {
			return n
		}
	}
	return 8
}

// writeTag emits a header whose argument encodes (byte-count-1) for
// magnitude, followed by magnitude's minimal big-endian bytes — the
// shared shape of integer, string, array and object headers.
func (s *Serializer) writeTag(major byte, magnitude uint64) {
	count := minBytesBE(magnitude)
	s.writeHeader(major, byte(count-1))
	start := len(s.buf)
	s.buf = append(s.buf, make([]byte, count)...)
	m := magnitude
	for i := count - 1; i >= 0; i-- {
		s.buf[start+i] = byte(m)
		m >>= 8
	}
}

// Binarize is the one-shot convenience wrapper.
func Binarize(v core.Value) []byte {
	s := NewSerializer(v)
	var out []byte
	for {
		chunk := s.Read()
		if len(chunk) == 0 {
			break
		}
		out = append(out, chunk...)
	}
	return out
}
