/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package values

import (
	"fmt"

	"github.com/kcenon/go_json_value/container/core"
)

// Object builds an object Value from the given pairs, canonically
// sorted by key.
func Object(pairs ...core.KeyValue) core.Value { return core.NewObject(pairs...) }

// Pair is a convenience constructor for a core.KeyValue.
func Pair(key string, v core.Value) core.KeyValue {
	return core.KeyValue{Key: core.NewKey(key), Value: v}
}

// FromGo recursively converts a native Go value (as produced by
// encoding/json.Unmarshal into interface{}, or hand-built by a caller)
// into a Value tree. Supported inputs: nil, bool, string, the numeric
// kinds, []interface{}, map[string]interface{}, and core.Value itself
// (returned unchanged). Anything else is an error.
func FromGo(in interface{}) (core.Value, error) {
	switch x := in.(type) {
	case nil:
		return core.Null, nil
	case core.Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return core.NewString(x), nil
	case float64:
		return core.NewFloat64(x), nil
	case float32:
		return core.NewFloat64(float64(x)), nil
	case int:
		return core.NewInt64(int64(x)), nil
	case int32:
		return core.NewInt32(x), nil
	case int64:
		return core.NewInt64(x), nil
	case uint32:
		return core.NewUInt32(x), nil
	case uint64:
		return core.NewUInt64(x), nil
	case []interface{}:
		elems := make([]core.Value, len(x))
		for i, e := range x {
			ev, err := FromGo(e)
			if err != nil {
				return core.Undefined, err
			}
			elems[i] = ev
		}
		return core.NewArray(elems...), nil
	case map[string]interface{}:
		pairs := make([]core.KeyValue, 0, len(x))
		for k, e := range x {
			ev, err := FromGo(e)
			if err != nil {
				return core.Undefined, err
			}
			pairs = append(pairs, Pair(k, ev))
		}
		return core.NewObject(pairs...), nil
	default:
		return core.Undefined, fmt.Errorf("values.FromGo: unsupported type %T", in)
	}
}
