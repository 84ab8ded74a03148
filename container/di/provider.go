/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package di provides dependency injection support for the value
// library. It defines standard interfaces and providers for
// integration with Go DI frameworks such as Google Wire and Uber Dig.
//
// Example usage with Google Wire:
//
//	// wire.go
//	//go:build wireinject
//	// +build wireinject
//
//	package main
//
//	import (
//	    "github.com/google/wire"
//	    "github.com/kcenon/go_json_value/container/di"
//	)
//
//	func InitializeApp() (*App, error) {
//	    wire.Build(di.ProviderSet, NewApp)
//	    return nil, nil
//	}
//
// Example usage with Uber Dig:
//
//	container := dig.New()
//	container.Provide(di.NewCodecFactory)
package di

import (
	"github.com/kcenon/go_json_value/container/binarycodec"
	"github.com/kcenon/go_json_value/container/core"
	"github.com/kcenon/go_json_value/container/messaging"
	"github.com/kcenon/go_json_value/container/textcodec"
)

// CodecFactory defines the interface for creating parsers, serializers
// and builders. This abstraction allows tests to substitute mocked
// factories, and lets application wiring stay ignorant of the concrete
// pushdown-machine types.
type CodecFactory interface {
	// NewTextParser creates a fresh incremental text-JSON parser.
	NewTextParser(preprocess textcodec.Preprocessor) *textcodec.Parser

	// NewTextSerializer creates a text-JSON serializer for v.
	NewTextSerializer(v core.Value) *textcodec.Serializer

	// NewBinaryParser creates a fresh incremental binary TLV parser.
	NewBinaryParser() *binarycodec.Parser

	// NewBinarySerializer creates a binary TLV serializer for v.
	NewBinarySerializer(v core.Value) *binarycodec.Serializer

	// NewBuilder creates a new fluent Value Builder.
	NewBuilder() *messaging.Builder
}

// DefaultCodecFactory is the default CodecFactory implementation. It
// delegates directly to the constructors exported by textcodec,
// binarycodec and messaging.
type DefaultCodecFactory struct{}

// NewCodecFactory creates a CodecFactory. This is the provider
// function for dependency injection frameworks.
func NewCodecFactory() CodecFactory {
	return &DefaultCodecFactory{}
}

// NewTextParser creates a fresh incremental text-JSON parser.
func (f *DefaultCodecFactory) NewTextParser(preprocess textcodec.Preprocessor) *textcodec.Parser {
	return textcodec.NewParser(preprocess)
}

// NewTextSerializer creates a text-JSON serializer for v.
func (f *DefaultCodecFactory) NewTextSerializer(v core.Value) *textcodec.Serializer {
	return textcodec.NewSerializer(v)
}

// NewBinaryParser creates a fresh incremental binary TLV parser.
func (f *DefaultCodecFactory) NewBinaryParser() *binarycodec.Parser {
	return binarycodec.NewParser()
}

// NewBinarySerializer creates a binary TLV serializer for v.
func (f *DefaultCodecFactory) NewBinarySerializer(v core.Value) *binarycodec.Serializer {
	return binarycodec.NewSerializer(v)
}

// NewBuilder creates a new fluent Value Builder.
func (f *DefaultCodecFactory) NewBuilder() *messaging.Builder {
	return messaging.NewBuilder()
}
