/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package values

import (
	"encoding/base64"

	"github.com/kcenon/go_json_value/container/core"
)

// BytesAsString projects raw bytes as a base64-encoded string Value,
// since JSON has no native binary type.
func BytesAsString(data []byte) core.Value {
	return core.NewString(base64.StdEncoding.EncodeToString(data))
}

// BytesFromString decodes the base64 text of a string Value produced
// by BytesAsString back into raw bytes.
func BytesFromString(v core.Value) ([]byte, error) {
	return base64.StdEncoding.DecodeString(v.GetString())
}
