// Package fs is the filesystem capability plugin for the Nova shell.
//
// The plugin grants the shell access to the host filesystem. Its internals
// live with the host runtime; the shell consumes only the registration
// contract exposed here.
package fs

import (
	"github.com/esengine/nova-editor/internal/plugin"
)

// Version is the plugin version reported in the descriptor.
const Version = "2.0.0"

// Plugin returns the filesystem capability descriptor. The returned
// descriptor is registered by the application builder:
//
//	app.NewBuilder().WithPlugin(fs.Plugin())
func Plugin() plugin.Descriptor {
	return plugin.Descriptor{
		Name:    "fs",
		Version: Version,
		Capabilities: []plugin.Capability{
			plugin.CapabilityFileRead,
			plugin.CapabilityFileWrite,
		},
		Register: register,
	}
}

// register grants the filesystem capabilities to the host registry.
func register(reg *plugin.Registration) error {
	reg.Grant(plugin.CapabilityFileRead, plugin.CapabilityFileWrite)
	return nil
}
