/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package custom provides a default, embeddable implementation of
// core.CustomValue so host types only need to override the handful of
// methods that give them their actual behavior.
package custom

import "github.com/kcenon/go_json_value/container/core"

// Base is a zero-value-friendly core.CustomValue that reports itself as
// an empty object and compares equal only by identity. Embed it in a
// host type and override ToJSON/Kind/Size/ByIndex/ByKey to give the
// leaf real content; Equals may be overridden too if structural
// equality is wanted instead of the identity default. Base holds one
// byte so that distinct instances always have distinct addresses.
type Base struct{ _ byte }

// Kind reports KindObject by default.
func (Base) Kind() core.Kind { return core.KindObject }

// ToJSON returns an empty object by default.
func (Base) ToJSON() core.Value { return core.EmptyObject }

// ToString returns the empty string by default.
func (b Base) ToString() string { return "" }

// Size reports zero children by default.
func (Base) Size() int { return 0 }

// ByIndex returns Undefined by default.
func (Base) ByIndex(int) core.Value { return core.Undefined }

// ByKey returns Undefined by default.
func (Base) ByKey(string) core.Value { return core.Undefined }

// Equals implements identity equality: two CustomValue handles compare
// equal only when they are backed by the same embedded Base field —
// i.e. the same host instance — not merely two zero-value Bases.
// Host types wanting structural equality should override this.
func (b *Base) Equals(other core.CustomValue) bool {
	ob, ok := other.(interface{ base() *Base })
	if !ok {
		return false
	}
	return b == ob.base()
}

// base returns the embedded Base, so Equals can find it inside a host
// type that embeds Base.
func (b *Base) base() *Base { return b }
