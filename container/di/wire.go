/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package di

import (
	"github.com/google/wire"
)

// ProviderSet is the Wire provider set for this library's codec
// dependencies. Include this set in your wire.Build() call to
// automatically wire parser/serializer/builder construction.
//
// Example:
//
//	func InitializeService() (*Service, error) {
//	    wire.Build(
//	        di.ProviderSet,
//	        NewService,
//	    )
//	    return nil, nil
//	}
var ProviderSet = wire.NewSet(
	NewCodecFactory,
	wire.Bind(new(CodecFactory), new(*DefaultCodecFactory)),
)
