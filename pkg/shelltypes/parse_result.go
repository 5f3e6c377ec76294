// Package shelltypes defines the shared data model for the shell kernel.
// This file contains the parser output types and their value coercion
// helpers.
package shelltypes

import "strconv"

// Argument is one parsed argument from a command line. Content holds the
// argument substring exactly as received, leading token character
// included; Value strips the token character off, which is the part
// validation and handlers consume.
type Argument struct {
	Token   ArgToken
	Content string
}

// Value returns the argument content without its leading token character.
func (a Argument) Value() string {
	if len(a.Content) == 0 {
		return ""
	}
	return a.Content[1:]
}

// ParseResult is the output of one parse cycle: the command name and the
// captured arguments in the order they appeared. At most one ParseResult
// is live at a time; it is discarded when the processing cycle ends.
type ParseResult struct {
	CommandName string
	Arguments   []Argument
}

// Arg returns the first argument carrying the given token.
func (r *ParseResult) Arg(t ArgToken) (Argument, bool) {
	for _, a := range r.Arguments {
		if a.Token == t {
			return a, true
		}
	}
	return Argument{}, false
}

// Uint8 coerces the value of the argument tagged t to a uint8.
func (r *ParseResult) Uint8(t ArgToken) (uint8, bool) {
	a, ok := r.Arg(t)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(a.Value(), 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

// Uint16 coerces the value of the argument tagged t to a uint16.
func (r *ParseResult) Uint16(t ArgToken) (uint16, bool) {
	a, ok := r.Arg(t)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(a.Value(), 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// Uint32 coerces the value of the argument tagged t to a uint32.
func (r *ParseResult) Uint32(t ArgToken) (uint32, bool) {
	a, ok := r.Arg(t)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(a.Value(), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// Float64 coerces the value of the argument tagged t to a float64.
func (r *ParseResult) Float64(t ArgToken) (float64, bool) {
	a, ok := r.Arg(t)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(a.Value(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Has reports whether an argument carrying the given token was supplied.
func (r *ParseResult) Has(t ArgToken) bool {
	_, ok := r.Arg(t)
	return ok
}
