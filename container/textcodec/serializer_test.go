/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package textcodec

import (
	"strings"
	"testing"

	"github.com/kcenon/go_json_value/container/core"
)

func TestStringifyScalars(t *testing.T) {
	if Stringify(core.True) != "true" {
		t.Fatal("bool true should stringify to \"true\"")
	}
	if Stringify(core.Null) != "null" {
		t.Fatal("null should stringify to \"null\"")
	}
	if Stringify(core.NewString("hi")) != `"hi"` {
		t.Fatal("string should be quoted")
	}
}

func TestStringifyObjectSortsKeys(t *testing.T) {
	obj := core.NewObject(
		core.KeyValue{Key: core.NewKey("z"), Value: core.NewInt32(1)},
		core.KeyValue{Key: core.NewKey("a"), Value: core.NewInt32(2)},
	)
	got := Stringify(obj)
	if got != `{"a":2,"z":1}` {
		t.Fatalf("expected sorted-key object, got %s", got)
	}
}

func TestStringifyElidesUndefinedEntries(t *testing.T) {
	arr := core.NewArray(core.NewInt32(1), core.Undefined, core.NewInt32(2))
	if got := Stringify(arr); got != "[1,2]" {
		t.Fatalf("undefined array entries should be elided, got %s", got)
	}

	obj := core.NewObject(
		core.KeyValue{Key: core.NewKey("a"), Value: core.NewInt32(1)},
		core.KeyValue{Key: core.NewKey("b"), Value: core.Undefined},
	)
	if got := Stringify(obj); got != `{"a":1}` {
		t.Fatalf("undefined object entries should be elided, got %s", got)
	}
}

func TestStringifyEscapesControlAndQuotes(t *testing.T) {
	v := core.NewString("a\n\t\"\\b")
	got := Stringify(v)
	want := `"a\n\t\"\\b"`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestStringifyInfinityIsQuoted(t *testing.T) {
	pos := core.NewFloat64(posInf())
	neg := core.NewFloat64(negInf())
	if got := Stringify(pos); got != `"∞"` {
		t.Fatalf("positive infinity should serialize as a quoted ∞, got %s", got)
	}
	if got := Stringify(neg); got != `"-∞"` {
		t.Fatalf("negative infinity should serialize as a quoted -∞, got %s", got)
	}
}

func TestStringifyTextInfinityIsQuoted(t *testing.T) {
	if got := Stringify(core.NewNumberText("∞")); got != `"∞"` {
		t.Fatalf("a number-text infinity sentinel should serialize quoted, got %s", got)
	}
	if got := Stringify(core.NewNumberText("-∞")); got != `"-∞"` {
		t.Fatalf("a number-text negative-infinity sentinel should serialize quoted, got %s", got)
	}
	if got := Stringify(core.NewNumberText("+∞")); got != `"∞"` {
		t.Fatalf("a leading-plus infinity sentinel should serialize quoted, got %s", got)
	}
}

func posInf() float64 {
	v := core.NewNumberText("∞")
	return v.GetFloat64()
}

func negInf() float64 {
	v := core.NewNumberText("-∞")
	return v.GetFloat64()
}

func TestStringifyNaNIsNull(t *testing.T) {
	nan := core.NewNumberText("not-a-number")
	if got := Stringify(core.NewFloat64(nan.GetFloat64())); got != "null" {
		t.Fatalf("NaN should serialize as null, got %s", got)
	}
}

func TestReadYieldsChunkPerContainerBoundary(t *testing.T) {
	v := core.NewArray(core.NewInt32(1), core.NewArray(core.NewInt32(2)))
	s := NewSerializer(v)
	var out strings.Builder
	chunks := 0
	for {
		chunk := s.Read()
		if len(chunk) == 0 {
			break
		}
		chunks++
		out.Write(chunk)
	}
	if out.String() != "[1,[2]]" {
		t.Fatalf("full output mismatch: got %s", out.String())
	}
	if chunks < 2 {
		t.Fatalf("a nested structure should yield more than once, got %d chunks", chunks)
	}
}

func TestNumberTextRendersVerbatim(t *testing.T) {
	v := core.NewNumberText("123456789012345678901234567890")
	if got := Stringify(v); got != "123456789012345678901234567890" {
		t.Fatalf("authoritative number text should render verbatim, got %s", got)
	}
}

func TestRoundTripParseStringify(t *testing.T) {
	text := `{"name":"Alice","tags":[1,2,3],"active":true,"score":3.5}`
	v, err := Parse([]byte(text))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	back, err := Parse([]byte(Stringify(v)))
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if !back.Equal(v) {
		t.Fatal("parse -> stringify -> parse should round-trip equal")
	}
}
