/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package core

import "testing"

func TestInlineVsHeapStringThreshold(t *testing.T) {
	short := NewString("0123456789abcd") // 14 bytes, at the inline budget
	if short.Tag() != TagShortString {
		t.Fatalf("a 14-byte string should stay inline, got %s", short.Tag())
	}
	long := NewString("0123456789abcde") // 15 bytes, over budget
	if long.Tag() != TagLongString {
		t.Fatalf("a 15-byte string should move to the heap, got %s", long.Tag())
	}
}

func TestRefTagsPromoteOnStorage(t *testing.T) {
	ref := NewStringRef("borrowed")
	if ref.Tag() != TagStringRef {
		t.Fatal("NewStringRef should tag the value as a borrowed ref")
	}
	arr := NewArray(ref)
	stored := arr.Index(0)
	if stored.Tag() == TagStringRef {
		t.Fatal("a ref placed into an array must be promoted to an owned tag")
	}
	if !stored.Equal(ref) {
		t.Fatal("promotion must preserve the logical value")
	}
}

func TestNumberRefPromotesOnStorage(t *testing.T) {
	ref := NewNumberRef("123456789012345678901234567890")
	if ref.Tag() != TagNumberRef {
		t.Fatal("NewNumberRef should tag the value as a borrowed numeric-text ref")
	}
	if ref.Kind() != KindNumber {
		t.Fatal("a number ref should report KindNumber like any other number tag")
	}
	if ref.GetString() != "123456789012345678901234567890" {
		t.Fatal("a number ref should expose its text verbatim before promotion")
	}
	arr := NewArray(ref)
	stored := arr.Index(0)
	if stored.Tag() == TagNumberRef {
		t.Fatal("a number ref placed into an array must be promoted to an owned tag")
	}
	if stored.GetString() != ref.GetString() {
		t.Fatal("promotion must preserve the authoritative number text")
	}
}

func TestEmptyPerLogicalType(t *testing.T) {
	if !Empty(KindBoolean).Equal(False) {
		t.Fatal("Empty(KindBoolean) should be false")
	}
	if Empty(KindArray).Tag() != TagEmptyArray {
		t.Fatal("Empty(KindArray) should be the canonical empty array")
	}
	if Empty(KindString).GetString() != "" {
		t.Fatal("Empty(KindString) should be the empty string")
	}
}

func TestDuplicateKeysPreservedInInputOrder(t *testing.T) {
	obj := NewObject(
		KeyValue{Key: NewKey("a"), Value: NewInt32(1)},
		KeyValue{Key: NewKey("a"), Value: NewInt32(2)},
	)
	keys := obj.Keys()
	if len(keys) != 2 {
		t.Fatalf("duplicate keys should not be deduplicated at construction, got %d pairs", len(keys))
	}
	if keys[0].Value.GetInt64() != 1 || keys[1].Value.GetInt64() != 2 {
		t.Fatal("a stable sort should preserve relative input order among equal keys")
	}
}
