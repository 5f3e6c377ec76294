// Package shelltypes defines the shared data model for the shell kernel.
// This file contains the argument token and type enumerations, the wire
// limits, and the response codes emitted by the dispatcher.
package shelltypes

// Wire limits for a single command line. These match the transport
// contract: a whole line, a single argument, and the argument count are
// all bounded, and anything beyond the bound is a reportable error rather
// than a truncation.
const (
	// MaxLineLen is the capacity of the line buffer in bytes.
	MaxLineLen = 100
	// MaxArgLen is the maximum length of one argument, including its
	// leading token character.
	MaxArgLen = 20
	// MaxArguments is the number of arguments captured per line; excess
	// arguments are dropped.
	MaxArguments = 5
)

// ArgToken is the one-letter tag identifying an argument's role, derived
// from the argument's first byte. Valid tokens are the lowercase ASCII
// letters; any other leading byte classifies as TokenInvalid.
type ArgToken byte

// TokenInvalid marks an argument whose leading byte is not a lowercase
// ASCII letter.
const TokenInvalid ArgToken = 0

// TokenFromByte maps an argument's first byte to its token. Bytes outside
// 'a'..'z' yield TokenInvalid.
func TokenFromByte(b byte) ArgToken {
	if b >= 'a' && b <= 'z' {
		return ArgToken(b)
	}
	return TokenInvalid
}

// Valid reports whether t is one of the 26 letter tokens.
func (t ArgToken) Valid() bool {
	return t >= 'a' && t <= 'z'
}

// String returns the token letter, or "?" for TokenInvalid.
func (t ArgToken) String() string {
	if !t.Valid() {
		return "?"
	}
	return string(byte(t))
}

// ArgType is the declared data type of a templated argument. It governs
// the validation rules applied to a supplied argument's value.
type ArgType int

const (
	// TypeUint8 accepts base-10 integers in [0, 255].
	TypeUint8 ArgType = iota
	// TypeUint16 accepts base-10 integers in [0, 65535].
	TypeUint16
	// TypeUint32 accepts base-10 integers in [0, 4294967295].
	TypeUint32
	// TypeChar accepts values whose first byte is printable ASCII [32, 127].
	TypeChar
	// TypeString accepts any value.
	TypeString
	// TypeFloat accepts any value; numeric format checking is left to the
	// handler.
	TypeFloat
	// TypeFlag accepts any value, including none.
	TypeFlag
)

// String returns a short name for the argument type.
func (a ArgType) String() string {
	switch a {
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeChar:
		return "char"
	case TypeString:
		return "string"
	case TypeFloat:
		return "float"
	case TypeFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// ArgSpec is one entry of a command's argument template: which token the
// argument carries, what type its value must conform to, and whether the
// argument must be present. Templates are static configuration and are
// never mutated at runtime.
type ArgSpec struct {
	Mandatory bool
	Type      ArgType
	Token     ArgToken
}

// ResponseCode selects one of the fixed status responses the dispatcher
// renders after each processing cycle.
type ResponseCode int

const (
	// ResponseOK reports a successfully executed command.
	ResponseOK ResponseCode = iota
	// ResponseFuncErr reports a failure from the command's handler.
	ResponseFuncErr
	// ResponseCmdErr reports an unrecognized command name.
	ResponseCmdErr
	// ResponseArgErr reports a missing or malformed argument.
	ResponseArgErr
)

// Wire returns the exact response bytes for the code, CR LF terminated.
func (c ResponseCode) Wire() []byte {
	switch c {
	case ResponseOK:
		return []byte("-->OK!\r\n")
	case ResponseFuncErr:
		return []byte("-->Function Error!\r\n")
	case ResponseCmdErr:
		return []byte("Command Error!\r\n")
	case ResponseArgErr:
		return []byte("Argument Error!\r\n")
	default:
		return nil
	}
}
