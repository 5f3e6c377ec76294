package parser

import (
	"fmt"
	"strings"

	"shellkernel/internal/logger"
	"shellkernel/pkg/shelltypes"
)

// ErrArgTooLong reports an argument exceeding shelltypes.MaxArgLen. The
// legacy implementation overflowed its fixed argument buffer here; a
// conforming parse rejects instead.
var ErrArgTooLong = fmt.Errorf("argument exceeds %d bytes", shelltypes.MaxArgLen)

// Parse splits a normalized line into a command name and up to
// MaxArguments tagged arguments. The line must already be normalized:
// tokens are separated by exactly one space. Arguments beyond
// MaxArguments are dropped, which callers must treat as policy, not an
// error. Each argument's tag derives from its first byte.
func Parse(line []byte) (*shelltypes.ParseResult, error) {
	if len(line) == 0 {
		return &shelltypes.ParseResult{}, nil
	}

	fields := strings.Split(string(line), " ")
	result := &shelltypes.ParseResult{CommandName: fields[0]}

	for i, field := range fields[1:] {
		if i >= shelltypes.MaxArguments {
			logger.Debug("dropping excess arguments",
				"command", result.CommandName,
				"dropped", len(fields)-1-shelltypes.MaxArguments)
			break
		}
		if len(field) > shelltypes.MaxArgLen {
			return nil, fmt.Errorf("argument %q: %w", field, ErrArgTooLong)
		}
		result.Arguments = append(result.Arguments, shelltypes.Argument{
			Token:   shelltypes.TokenFromByte(field[0]),
			Content: field,
		})
	}
	return result, nil
}
