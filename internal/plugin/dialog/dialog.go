// Package dialog is the native dialog capability plugin for the Nova shell.
//
// The plugin grants the shell access to host open/save/message dialogs. As
// with fs, the shell consumes only the registration contract.
package dialog

import (
	"github.com/esengine/nova-editor/internal/plugin"
)

// Version is the plugin version reported in the descriptor.
const Version = "2.0.0"

// Plugin returns the dialog capability descriptor.
func Plugin() plugin.Descriptor {
	return plugin.Descriptor{
		Name:    "dialog",
		Version: Version,
		Capabilities: []plugin.Capability{
			plugin.CapabilityDialogOpen,
			plugin.CapabilityDialogSave,
			plugin.CapabilityDialogMessage,
		},
		Register: register,
	}
}

// register grants the dialog capabilities to the host registry.
func register(reg *plugin.Registration) error {
	reg.Grant(
		plugin.CapabilityDialogOpen,
		plugin.CapabilityDialogSave,
		plugin.CapabilityDialogMessage,
	)
	return nil
}
