package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCapability(t *testing.T) {
	t.Run("rich template wins over simple template", func(t *testing.T) {
		device := DeviceContext{SupportedInterfaces: []string{InterfaceSimpleTemplate, InterfaceRichTemplate}}
		assert.Equal(t, CapabilityRichTemplate, ResolveCapability(device))
	})

	t.Run("simple template when rich is absent", func(t *testing.T) {
		device := DeviceContext{SupportedInterfaces: []string{InterfaceSimpleTemplate}}
		assert.Equal(t, CapabilitySimpleTemplate, ResolveCapability(device))
	})

	t.Run("none for voice-only devices", func(t *testing.T) {
		assert.Equal(t, CapabilityNone, ResolveCapability(DeviceContext{}))
		assert.Equal(t, CapabilityNone, ResolveCapability(DeviceContext{SupportedInterfaces: []string{"AudioPlayer"}}))
	})
}
