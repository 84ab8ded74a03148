/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package messaging

import (
	"testing"

	"github.com/kcenon/go_json_value/container/core"
)

func TestBuilderObject(t *testing.T) {
	v := NewBuilder().
		WithKey("name", core.NewString("alice")).
		WithKey("age", core.NewInt32(30)).
		Build()
	if !v.IsObject() {
		t.Fatal("a builder that only saw WithKey calls should build an object")
	}
	if v.Get("name").GetString() != "alice" {
		t.Fatal("object field should round-trip through the builder")
	}
}

func TestBuilderArray(t *testing.T) {
	v := NewBuilder().
		WithElement(core.NewInt32(1)).
		WithElement(core.NewInt32(2)).
		Build()
	if !v.IsArray() {
		t.Fatal("a builder that saw any WithElement call should build an array")
	}
	if v.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", v.Len())
	}
}

func TestEmptyBuilderProducesEmptyObject(t *testing.T) {
	v := NewBuilder().Build()
	if !v.IsObject() || v.Len() != 0 {
		t.Fatal("an untouched builder should build an empty object")
	}
}

func TestNewEnvelopeFields(t *testing.T) {
	payload := core.NewObject(core.KeyValue{Key: core.NewKey("k"), Value: core.NewInt32(1)})
	e := NewEnvelope("src", "sub1", "dst", "sub2", "greeting", payload)
	if e.SourceID != "src" || e.TargetID != "dst" || e.MessageType != "greeting" {
		t.Fatal("NewEnvelope should store routing metadata verbatim")
	}
	if !e.Payload.Equal(payload) {
		t.Fatal("NewEnvelope should store the payload verbatim")
	}
}
