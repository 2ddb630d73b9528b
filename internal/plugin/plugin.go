package plugin

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// Capability identifies a host capability a plugin grants to the application.
type Capability string

// Capabilities supplied by the built-in plugins.
const (
	CapabilityFileRead      Capability = "filesystem.read"
	CapabilityFileWrite     Capability = "filesystem.write"
	CapabilityDialogOpen    Capability = "dialog.open"
	CapabilityDialogSave    Capability = "dialog.save"
	CapabilityDialogMessage Capability = "dialog.message"
)

// validCapabilities are the capability values the shell knows how to grant.
var validCapabilities = map[Capability]bool{
	CapabilityFileRead:      true,
	CapabilityFileWrite:     true,
	CapabilityDialogOpen:    true,
	CapabilityDialogSave:    true,
	CapabilityDialogMessage: true,
}

// RegisterFunc is a plugin's registration entry point. It is invoked once,
// during bootstrap, with a Registration handle scoped to the plugin.
type RegisterFunc func(*Registration) error

// Descriptor identifies a capability plugin and its registration routine.
// Descriptors are immutable values; the application builder owns them until
// they are consumed at build time.
type Descriptor struct {
	// Name is the unique capability name (e.g. "fs", "dialog").
	Name string

	// Version is the plugin version (semver).
	Version string

	// Capabilities are the capabilities the plugin intends to grant.
	Capabilities []Capability

	// Register installs the plugin into a Registry during bootstrap.
	Register RegisterFunc
}

// Validation errors.
var (
	ErrMissingName       = errors.New("descriptor: name is required")
	ErrInvalidName       = errors.New("descriptor: name must be lowercase alphanumeric with hyphens")
	ErrMissingVersion    = errors.New("descriptor: version is required")
	ErrInvalidVersion    = errors.New("descriptor: version must be valid semver")
	ErrNilRegister       = errors.New("descriptor: register function is required")
	ErrInvalidCapability = errors.New("descriptor: invalid capability")
)

// namePattern validates plugin names.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$|^[a-z]$`)

// Validate checks that the descriptor is well-formed. A malformed descriptor
// is reported as an *InvalidDescriptorError wrapping the specific reason.
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return &InvalidDescriptorError{Name: d.Name, Err: ErrMissingName}
	}
	if !namePattern.MatchString(d.Name) {
		return &InvalidDescriptorError{Name: d.Name, Err: ErrInvalidName}
	}
	if d.Version == "" {
		return &InvalidDescriptorError{Name: d.Name, Err: ErrMissingVersion}
	}
	if _, err := semver.NewVersion(d.Version); err != nil {
		return &InvalidDescriptorError{Name: d.Name, Err: fmt.Errorf("%w: %q", ErrInvalidVersion, d.Version)}
	}
	if d.Register == nil {
		return &InvalidDescriptorError{Name: d.Name, Err: ErrNilRegister}
	}
	for _, c := range d.Capabilities {
		if !validCapabilities[c] {
			return &InvalidDescriptorError{Name: d.Name, Err: fmt.Errorf("%w: %q", ErrInvalidCapability, c)}
		}
	}
	return nil
}

// HasCapability returns true if the descriptor declares the capability.
func (d Descriptor) HasCapability(c Capability) bool {
	for _, dc := range d.Capabilities {
		if dc == c {
			return true
		}
	}
	return false
}

// InvalidDescriptorError reports a malformed plugin descriptor.
type InvalidDescriptorError struct {
	Name string // capability name, may be empty
	Err  error  // underlying validation failure
}

func (e *InvalidDescriptorError) Error() string {
	if e.Name == "" {
		return "invalid plugin: " + e.Err.Error()
	}
	return fmt.Sprintf("invalid plugin %q: %v", e.Name, e.Err)
}

func (e *InvalidDescriptorError) Unwrap() error {
	return e.Err
}
