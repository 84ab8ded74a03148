/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package messaging provides a fluent builder API for constructing JSON
// Value objects and arrays, plus an Envelope type for request/response
// framing around a Value payload.
package messaging

import (
	"github.com/kcenon/go_json_value/container/core"
)

// Builder provides a fluent API for constructing an object or array
// Value one field/element at a time.
//
// Example usage:
//
//	v := messaging.NewBuilder().
//	    WithKey("name", core.NewString("alice")).
//	    WithKey("age", core.NewInt64(30)).
//	    Build()
type Builder struct {
	pairs []core.KeyValue
	elems []core.Value
	asArray bool
}

// NewBuilder creates a new, empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithKey adds a key/value pair, building an object Value.
// Returns the builder for method chaining.
func (b *Builder) WithKey(key string, v core.Value) *Builder {
	b.pairs = append(b.pairs, core.KeyValue{Key: core.NewKey(key), Value: v})
	return b
}

// WithElement appends an element, building an array Value.
// Returns the builder for method chaining.
func (b *Builder) WithElement(v core.Value) *Builder {
	b.elems = append(b.elems, v)
	b.asArray = true
	return b
}

// Build constructs the Value described by the prior With* calls. A
// builder that saw any WithElement call produces an array (any
// WithKey calls are ignored); otherwise it produces an object.
func (b *Builder) Build() core.Value {
	if b.asArray {
		return core.NewArray(b.elems...)
	}
	return core.NewObject(b.pairs...)
}

// Envelope wraps a Value payload with routing metadata, the way a
// host embedding this library in a request/response pipeline would
// frame a message.
type Envelope struct {
	SourceID    string
	SourceSubID string
	TargetID    string
	TargetSubID string
	MessageType string
	Payload     core.Value
}

// NewEnvelope wraps payload with the given routing metadata.
func NewEnvelope(sourceID, sourceSubID, targetID, targetSubID, messageType string, payload core.Value) *Envelope {
	return &Envelope{
		SourceID:    sourceID,
		SourceSubID: sourceSubID,
		TargetID:    targetID,
		TargetSubID: targetSubID,
		MessageType: messageType,
		Payload:     payload,
	}
}
