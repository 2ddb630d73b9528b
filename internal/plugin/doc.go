// Package plugin provides the capability plugin contract for the Nova shell.
//
// A plugin is described by a Descriptor: a capability name, a version, and a
// registration entry point. The shell runtime applies descriptors to a
// Registry in the order the application builder accumulated them; each
// plugin's Register function receives a Registration handle scoped to that
// plugin and uses it to grant the capabilities the plugin supplies.
//
// Plugin internals are opaque to the shell. The fs and dialog subpackages
// expose the two capability plugins the shell composes at startup:
//
//	app.NewBuilder().
//	    WithPlugin(fs.Plugin()).
//	    WithPlugin(dialog.Plugin())
package plugin
