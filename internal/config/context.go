// Package config loads the application context from packaged bundle
// metadata. The metadata is compiled into the binary; loading it cannot be
// affected by the user's environment, only by a broken bundle, which is a
// fatal startup condition for the shell.
package config

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

//go:embed nova.conf.json
var bundled []byte

// Defaults applied for metadata keys the bundle omits.
const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
)

// Loader errors.
var (
	ErrEmptyMetadata     = errors.New("config: bundle metadata is empty")
	ErrInvalidMetadata   = errors.New("config: bundle metadata is not valid JSON")
	ErrMissingProduct    = errors.New("config: productName is required")
	ErrMissingVersion    = errors.New("config: version is required")
	ErrInvalidVersion    = errors.New("config: version must be valid semver")
	ErrMissingIdentifier = errors.New("config: identifier is required")
)

// WindowConfig holds the main window defaults from the bundle metadata.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// Context is the process-wide application context produced by loading the
// packaged metadata. It is created once per process and is read-only after
// Load returns.
type Context struct {
	ProductName string
	Version     string
	Identifier  string
	Window      WindowConfig

	raw []byte
}

// Load parses the metadata bundled into the binary.
func Load() (*Context, error) {
	return LoadFrom(bundled)
}

// LoadFrom parses bundle metadata from raw JSON. Missing window keys are
// filled with defaults; productName, version, and identifier are required.
func LoadFrom(data []byte) (*Context, error) {
	if len(data) == 0 {
		return nil, ErrEmptyMetadata
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidMetadata
	}

	product := gjson.GetBytes(data, "productName").String()
	if product == "" {
		return nil, ErrMissingProduct
	}

	version := gjson.GetBytes(data, "version").String()
	if version == "" {
		return nil, ErrMissingVersion
	}
	if _, err := semver.NewVersion(version); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}

	identifier := gjson.GetBytes(data, "identifier").String()
	if identifier == "" {
		return nil, ErrMissingIdentifier
	}

	data, err := applyDefaults(data, product)
	if err != nil {
		return nil, fmt.Errorf("config: applying defaults: %w", err)
	}

	return &Context{
		ProductName: product,
		Version:     version,
		Identifier:  identifier,
		Window: WindowConfig{
			Title:  gjson.GetBytes(data, "app.window.title").String(),
			Width:  int(gjson.GetBytes(data, "app.window.width").Int()),
			Height: int(gjson.GetBytes(data, "app.window.height").Int()),
		},
		raw: data,
	}, nil
}

// applyDefaults overlays default values onto the raw metadata for keys the
// bundle omits. The window title defaults to the product name.
func applyDefaults(data []byte, product string) ([]byte, error) {
	var err error

	if !gjson.GetBytes(data, "app.window.title").Exists() {
		if data, err = sjson.SetBytes(data, "app.window.title", product); err != nil {
			return nil, err
		}
	}
	if !gjson.GetBytes(data, "app.window.width").Exists() {
		if data, err = sjson.SetBytes(data, "app.window.width", defaultWindowWidth); err != nil {
			return nil, err
		}
	}
	if !gjson.GetBytes(data, "app.window.height").Exists() {
		if data, err = sjson.SetBytes(data, "app.window.height", defaultWindowHeight); err != nil {
			return nil, err
		}
	}

	return data, nil
}

// Get returns the metadata value at a gjson path, e.g. "app.window.width".
func (c *Context) Get(path string) gjson.Result {
	return gjson.GetBytes(c.raw, path)
}

// PluginConfig returns the metadata block for a named plugin. The result is
// a zero Result if the bundle carries no configuration for the plugin.
func (c *Context) PluginConfig(name string) gjson.Result {
	return gjson.GetBytes(c.raw, "plugins."+name)
}
