/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package values

import "github.com/kcenon/go_json_value/container/core"

// Bool builds a boolean Value.
func Bool(v bool) core.Value {
	if v {
		return core.True
	}
	return core.False
}
