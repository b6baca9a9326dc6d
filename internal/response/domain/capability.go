package domain

// Declared device interface identifiers, as reported by the host platform's
// device context.
const (
	InterfaceRichTemplate   = "Alexa.Presentation.APL"
	InterfaceSimpleTemplate = "Display"
)

// DeviceContext describes the rendering interfaces the current device
// declares. It is supplied by the host platform per turn.
type DeviceContext struct {
	SupportedInterfaces []string
}

// Supports reports whether the device declares the given interface.
func (d DeviceContext) Supports(name string) bool {
	for _, iface := range d.SupportedInterfaces {
		if iface == name {
			return true
		}
	}
	return false
}

// VisualCapability is the single visual modality usable for a response.
type VisualCapability string

const (
	// CapabilityRichTemplate renders data-driven visual documents.
	CapabilityRichTemplate VisualCapability = "RICH_TEMPLATE"
	// CapabilitySimpleTemplate renders legacy display templates.
	CapabilitySimpleTemplate VisualCapability = "SIMPLE_TEMPLATE"
	// CapabilityNone means only cards can accompany the response.
	CapabilityNone VisualCapability = "NONE"
)

// ResolveCapability picks the one visual modality for the device. The host
// platform rejects responses carrying both template kinds, so rich templates
// win over simple templates unconditionally, and cards are only usable when
// neither template interface exists.
func ResolveCapability(d DeviceContext) VisualCapability {
	if d.Supports(InterfaceRichTemplate) {
		return CapabilityRichTemplate
	}
	if d.Supports(InterfaceSimpleTemplate) {
		return CapabilitySimpleTemplate
	}
	return CapabilityNone
}
