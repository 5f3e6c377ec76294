package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shellkernel/pkg/shelltypes"
)

// req builds a parse result from raw argument strings, classifying each
// by its first byte the way the parser does.
func req(args ...string) *shelltypes.ParseResult {
	result := &shelltypes.ParseResult{CommandName: "test"}
	for _, arg := range args {
		result.Arguments = append(result.Arguments, shelltypes.Argument{
			Token:   shelltypes.TokenFromByte(arg[0]),
			Content: arg,
		})
	}
	return result
}

func mandatory(token byte, t shelltypes.ArgType) []shelltypes.ArgSpec {
	return []shelltypes.ArgSpec{{Mandatory: true, Type: t, Token: shelltypes.ArgToken(token)}}
}

func TestValidate_Uint8(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "zero", value: "a0", valid: true},
		{name: "typical", value: "a42", valid: true},
		{name: "upper bound", value: "a255", valid: true},
		{name: "just above range", value: "a256", valid: false},
		{name: "well above range", value: "a999", valid: false},
		{name: "negative", value: "a-1", valid: false},
		{name: "not a number", value: "afoo", valid: false},
		{name: "empty value", value: "a", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(mandatory('a', shelltypes.TypeUint8), req(tt.value))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrBadArgument)
			}
		})
	}
}

func TestValidate_Uint16(t *testing.T) {
	assert.NoError(t, Validate(mandatory('n', shelltypes.TypeUint16), req("n65535")))
	assert.Error(t, Validate(mandatory('n', shelltypes.TypeUint16), req("n65536")))
}

func TestValidate_Uint32(t *testing.T) {
	assert.NoError(t, Validate(mandatory('n', shelltypes.TypeUint32), req("n4294967295")))
	assert.Error(t, Validate(mandatory('n', shelltypes.TypeUint32), req("n4294967296")))
}

func TestValidate_Char(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "letter", value: "cX", valid: true},
		{name: "space", value: "c ", valid: true},
		{name: "tilde", value: "c~", valid: true},
		{name: "control byte", value: "c\x07", valid: false},
		{name: "empty value", value: "c", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(mandatory('c', shelltypes.TypeChar), req(tt.value))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_StringFloatFlag_Unconditional(t *testing.T) {
	for _, typ := range []shelltypes.ArgType{
		shelltypes.TypeString,
		shelltypes.TypeFloat,
		shelltypes.TypeFlag,
	} {
		t.Run(typ.String(), func(t *testing.T) {
			assert.NoError(t, Validate(mandatory('v', typ), req("vanything-goes")))
			assert.NoError(t, Validate(mandatory('v', typ), req("v")))
		})
	}
}

func TestValidate_MissingMandatory(t *testing.T) {
	err := Validate(mandatory('a', shelltypes.TypeUint8), req())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestValidate_MissingMandatory_OtherArgsPresent(t *testing.T) {
	// Supplying b5 instead of the required a-token still fails.
	err := Validate(mandatory('a', shelltypes.TypeUint8), req("b5"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestValidate_OptionalAbsent(t *testing.T) {
	specs := []shelltypes.ArgSpec{
		{Mandatory: false, Type: shelltypes.TypeUint8, Token: 'o'},
	}
	assert.NoError(t, Validate(specs, req()))
}

func TestValidate_OptionalPresentTypeChecked(t *testing.T) {
	specs := []shelltypes.ArgSpec{
		{Mandatory: false, Type: shelltypes.TypeUint8, Token: 'o'},
	}
	assert.Error(t, Validate(specs, req("o999")))
	assert.NoError(t, Validate(specs, req("o99")))
}

func TestValidate_UnexpectedArgumentsPassThrough(t *testing.T) {
	// Arguments with no template entry are not validated; the handler
	// sees them as-is.
	specs := mandatory('a', shelltypes.TypeUint8)
	assert.NoError(t, Validate(specs, req("a1", "zjunk", "qmore")))
}

func TestValidate_MultipleMandatory(t *testing.T) {
	specs := []shelltypes.ArgSpec{
		{Mandatory: true, Type: shelltypes.TypeUint8, Token: 'l'},
		{Mandatory: true, Type: shelltypes.TypeUint8, Token: 's'},
	}

	assert.NoError(t, Validate(specs, req("l1", "s0")))
	assert.Error(t, Validate(specs, req("l1")))
	assert.Error(t, Validate(specs, req("l1", "s900")))
}
