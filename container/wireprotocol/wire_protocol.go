/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package wireprotocol is a thin cross-language interop bridge around
// the binary TLV codec, kept as its own package so cross-language
// wire-format code stays separate from the core value model.
package wireprotocol

import (
	"github.com/kcenon/go_json_value/container/binarycodec"
	"github.com/kcenon/go_json_value/container/core"
)

// Encode renders v as binary TLV bytes, the wire format other-language
// ports of this library exchange.
func Encode(v core.Value) []byte {
	return binarycodec.Binarize(v)
}

// Decode parses binary TLV bytes produced by Encode (or by a
// compatible port in another language) back into a Value.
func Decode(data []byte) (core.Value, error) {
	return binarycodec.Unbinarize(data)
}
