/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package jsonvalue is the convenience façade over this module's
// value model and codecs: one-shot Parse/Stringify for
// the text-JSON wire format and Binarize/Unbinarize for the binary TLV
// wire format. Hosts that need incremental, chunk-at-a-time control
// should use container/textcodec and container/binarycodec directly.
package jsonvalue

import (
	"github.com/kcenon/go_json_value/container/binarycodec"
	"github.com/kcenon/go_json_value/container/core"
	"github.com/kcenon/go_json_value/container/textcodec"
)

// Value is the tagged-union JSON value type this module builds and
// transforms; re-exported so callers need only import this package for
// the common path.
type Value = core.Value

// ParseError reports a text or binary parse failure at a byte offset.
type ParseError = core.ParseError

// Parse decodes a complete text-JSON document into a Value.
func Parse(text []byte) (Value, error) {
	return textcodec.Parse(text)
}

// Stringify renders v as a text-JSON document.
func Stringify(v Value) string {
	return textcodec.Stringify(v)
}

// Binarize renders v as a binary TLV document.
func Binarize(v Value) []byte {
	return binarycodec.Binarize(v)
}

// Unbinarize decodes a complete binary TLV document into a Value.
func Unbinarize(data []byte) (Value, error) {
	return binarycodec.Unbinarize(data)
}
