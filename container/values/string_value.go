/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package values

import (
	"github.com/kcenon/go_json_value/container/core"
)

// String builds a string Value.
func String(v string) core.Value { return core.NewString(v) }
