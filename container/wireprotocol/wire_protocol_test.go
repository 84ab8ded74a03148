/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package wireprotocol

import (
	"testing"

	"github.com/kcenon/go_json_value/container/core"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v := core.NewObject(
		core.KeyValue{Key: core.NewKey("id"), Value: core.NewInt64(9001)},
		core.KeyValue{Key: core.NewKey("tags"), Value: core.NewArray(core.NewString("a"), core.NewString("b"))},
	)
	data := Encode(v)
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !back.Equal(v) {
		t.Fatal("Encode/Decode should round-trip via the binary TLV bridge")
	}
}
