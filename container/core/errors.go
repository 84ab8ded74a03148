/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package core

import "fmt"

// ParseError is returned by the one-shot façades (and available from
// the incremental parsers) when a parse fails. Offset is the byte
// offset of the first unprocessed byte, counted from the start of the
// whole input across every chunk handed to the parser.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}

// NewParseError builds a ParseError.
func NewParseError(offset int, format string, args ...any) *ParseError {
	return &ParseError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}
