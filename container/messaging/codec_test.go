/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package messaging

import (
	"strings"
	"testing"

	"github.com/kcenon/go_json_value/container/core"
)

func testEnvelope() *Envelope {
	payload := core.NewObject(
		core.KeyValue{Key: core.NewKey("username"), Value: core.NewString("bob")},
		core.KeyValue{Key: core.NewKey("age"), Value: core.NewInt32(25)},
	)
	return NewEnvelope("client", "v1", "server", "v2", "user_registration", payload)
}

func TestEnvelopeToJSON(t *testing.T) {
	e := testEnvelope()
	out, err := e.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(out, `"message_type"`) || !strings.Contains(out, "user_registration") {
		t.Fatalf("JSON projection should carry header fields, got %s", out)
	}
	if !strings.Contains(out, "bob") {
		t.Fatalf("JSON projection should embed the payload, got %s", out)
	}
}

func TestEnvelopeToXML(t *testing.T) {
	e := testEnvelope()
	out, err := e.ToXML()
	if err != nil {
		t.Fatalf("ToXML failed: %v", err)
	}
	if !strings.Contains(out, "<envelope>") || !strings.Contains(out, "<message_type>user_registration</message_type>") {
		t.Fatalf("XML projection should carry header fields, got %s", out)
	}
}

func TestEnvelopeMessagePackRoundTrip(t *testing.T) {
	e := testEnvelope()
	data, err := e.ToMessagePack()
	if err != nil {
		t.Fatalf("ToMessagePack failed: %v", err)
	}
	back, err := FromMessagePack(data)
	if err != nil {
		t.Fatalf("FromMessagePack failed: %v", err)
	}
	if back.SourceID != e.SourceID || back.MessageType != e.MessageType {
		t.Fatal("MessagePack round-trip should preserve routing metadata")
	}
	if back.Payload.Get("username").GetString() != "bob" {
		t.Fatal("MessagePack round-trip should preserve the payload")
	}
	if back.Payload.Get("age").GetInt64() != 25 {
		t.Fatal("MessagePack round-trip should preserve numeric payload fields")
	}
}
