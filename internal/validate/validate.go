// Package validate checks a parse result against a command's argument
// template: every mandatory entry must be present, and every supplied
// value must conform to its declared type.
package validate

import (
	"errors"
	"fmt"
	"strconv"

	"shellkernel/pkg/shelltypes"
)

// ErrMissingArgument reports a mandatory template entry with no matching
// argument token in the parse result.
var ErrMissingArgument = errors.New("missing required argument")

// ErrBadArgument reports a supplied value that fails its declared type.
var ErrBadArgument = errors.New("argument value does not match type")

// Validate checks req against the argument template. For each mandatory
// entry, an argument carrying the entry's token must be present and its
// value must conform to the entry's type; optional entries are
// type-checked only when supplied. Arguments with no matching template
// entry pass through unvalidated — intentional passthrough, the handler
// sees them as-is.
func Validate(specs []shelltypes.ArgSpec, req *shelltypes.ParseResult) error {
	for _, spec := range specs {
		arg, found := req.Arg(spec.Token)
		if !found {
			if spec.Mandatory {
				return fmt.Errorf("%w: %s (%s)", ErrMissingArgument, spec.Token, spec.Type)
			}
			continue
		}
		if err := checkType(spec.Type, arg.Value()); err != nil {
			return fmt.Errorf("argument %s: %w", spec.Token, err)
		}
	}
	return nil
}

// checkType validates a single value against the declared argument type.
// The unsigned ranges are inclusive on both ends; ParseUint with the
// matching bit size rejects non-digits, signs, and out-of-range values in
// one step.
func checkType(t shelltypes.ArgType, value string) error {
	switch t {
	case shelltypes.TypeUint8:
		return checkUint(value, 8)
	case shelltypes.TypeUint16:
		return checkUint(value, 16)
	case shelltypes.TypeUint32:
		return checkUint(value, 32)
	case shelltypes.TypeChar:
		if len(value) == 0 || value[0] < 32 || value[0] > 127 {
			return fmt.Errorf("%w: want printable ASCII, got %q", ErrBadArgument, value)
		}
		return nil
	case shelltypes.TypeString, shelltypes.TypeFloat, shelltypes.TypeFlag:
		// Accepted unconditionally; deeper format checks belong to the
		// handler.
		return nil
	default:
		return fmt.Errorf("%w: unknown argument type %d", ErrBadArgument, t)
	}
}

func checkUint(value string, bits int) error {
	if _, err := strconv.ParseUint(value, 10, bits); err != nil {
		return fmt.Errorf("%w: want uint%d, got %q", ErrBadArgument, bits, value)
	}
	return nil
}
