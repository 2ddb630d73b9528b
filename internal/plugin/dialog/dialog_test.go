package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esengine/nova-editor/internal/plugin"
)

func TestPlugin_Descriptor(t *testing.T) {
	d := Plugin()

	require.NoError(t, d.Validate())
	assert.Equal(t, "dialog", d.Name)
	assert.Equal(t, Version, d.Version)
	assert.True(t, d.HasCapability(plugin.CapabilityDialogOpen))
	assert.True(t, d.HasCapability(plugin.CapabilityDialogSave))
	assert.True(t, d.HasCapability(plugin.CapabilityDialogMessage))
}

func TestPlugin_Register(t *testing.T) {
	r := plugin.NewRegistry()
	require.NoError(t, r.Apply(Plugin()))

	assert.True(t, r.Grants("dialog", plugin.CapabilityDialogOpen))
	assert.True(t, r.Grants("dialog", plugin.CapabilityDialogSave))
	assert.True(t, r.Grants("dialog", plugin.CapabilityDialogMessage))
}
