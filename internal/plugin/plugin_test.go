package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDescriptor() Descriptor {
	return Descriptor{
		Name:         "fs",
		Version:      "1.0.0",
		Capabilities: []Capability{CapabilityFileRead},
		Register:     func(*Registration) error { return nil },
	}
}

func TestDescriptorValidate(t *testing.T) {
	require.NoError(t, validDescriptor().Validate())
}

func TestDescriptorValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Descriptor)
		wantErr error
	}{
		{
			name:    "missing name",
			mutate:  func(d *Descriptor) { d.Name = "" },
			wantErr: ErrMissingName,
		},
		{
			name:    "uppercase name",
			mutate:  func(d *Descriptor) { d.Name = "FS" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "name with spaces",
			mutate:  func(d *Descriptor) { d.Name = "my plugin" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "trailing hyphen",
			mutate:  func(d *Descriptor) { d.Name = "fs-" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "missing version",
			mutate:  func(d *Descriptor) { d.Version = "" },
			wantErr: ErrMissingVersion,
		},
		{
			name:    "garbage version",
			mutate:  func(d *Descriptor) { d.Version = "not-a-version" },
			wantErr: ErrInvalidVersion,
		},
		{
			name:    "nil register",
			mutate:  func(d *Descriptor) { d.Register = nil },
			wantErr: ErrNilRegister,
		},
		{
			name:    "unknown capability",
			mutate:  func(d *Descriptor) { d.Capabilities = []Capability{"teleport"} },
			wantErr: ErrInvalidCapability,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDescriptor()
			tt.mutate(&d)

			err := d.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var invalid *InvalidDescriptorError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, d.Name, invalid.Name)
		})
	}
}

func TestDescriptorValidate_SingleLetterName(t *testing.T) {
	d := validDescriptor()
	d.Name = "x"
	require.NoError(t, d.Validate())
}

func TestDescriptorValidate_PrereleaseVersion(t *testing.T) {
	d := validDescriptor()
	d.Version = "2.0.0-beta.1"
	require.NoError(t, d.Validate())
}

func TestDescriptorHasCapability(t *testing.T) {
	d := validDescriptor()

	assert.True(t, d.HasCapability(CapabilityFileRead))
	assert.False(t, d.HasCapability(CapabilityDialogOpen))
}

func TestInvalidDescriptorError_Message(t *testing.T) {
	err := &InvalidDescriptorError{Name: "fs", Err: ErrMissingVersion}
	assert.Contains(t, err.Error(), `"fs"`)
	assert.Contains(t, err.Error(), "version is required")

	anon := &InvalidDescriptorError{Err: ErrMissingName}
	assert.Contains(t, anon.Error(), "invalid plugin")
	assert.True(t, errors.Is(anon, ErrMissingName))
}
