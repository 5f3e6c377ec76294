package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRev(t *testing.T) {
	major, minor, patch := Rev()
	assert.Equal(t, uint64(1), major)
	assert.Equal(t, uint64(1), minor)
	assert.Equal(t, uint64(0), patch)
}

func TestRev_MalformedVersion(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "not-a-version"
	major, minor, patch := Rev()
	assert.Zero(t, major)
	assert.Zero(t, minor)
	assert.Zero(t, patch)
}

func TestValidateVersion(t *testing.T) {
	require.NoError(t, ValidateVersion())

	orig := Version
	defer func() { Version = orig }()

	Version = "bogus"
	assert.Error(t, ValidateVersion())
}

func TestGetFormattedVersion(t *testing.T) {
	assert.Contains(t, GetFormattedVersion(), "shellkernel v"+Version)
}
