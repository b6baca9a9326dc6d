// Package domain holds the response model: the semantic data a turn handler
// produces, the device capability resolution, and the builder value that
// assembles the final wire response.
package domain

// Speech is the spoken part of a response.
type Speech struct {
	Output   string
	Reprompt string
}

// Card is the semantic card content supplied by a caller. Image URLs are
// optional; when present the card renders as an image-bearing standard card,
// otherwise as a text-only simple card.
type Card struct {
	Title         string
	Output        string
	ImageSmallURL string
	ImageLargeURL string
}

// HasImage reports whether the card carries at least one image URL.
func (c Card) HasImage() bool {
	return c.ImageSmallURL != "" || c.ImageLargeURL != ""
}

// Template is a rich, data-driven visual document render.
type Template struct {
	Token       string
	Document    map[string]any
	Datasources map[string]any
}

// Commands is a supplementary visual command batch sent alongside a rich
// template render.
type Commands struct {
	Token    string
	Commands []map[string]any
}

// DisplayTemplate is a legacy display template render.
type DisplayTemplate struct {
	Type  string
	Token string
	Title string
	Text  string
}

// Data is the semantic response content for one turn. Exactly one visual
// form (rich template, display template, or card) ends up in the finalized
// response, chosen by the device capability.
type Data struct {
	Speech   Speech
	Card     *Card
	Visual   *Template
	Commands *Commands
	Display  *DisplayTemplate
	Hint     string
}

// Intent names a flow in progress, persisted between turns so the next turn
// knows what the skill was doing.
type Intent struct {
	Name  string            `json:"name"`
	Slots map[string]string `json:"slots,omitempty"`
}

// Options are the recognized finalization switches.
type Options struct {
	// OutgoingIntent, when set, is serialized into the request-attribute
	// store for the next turn.
	OutgoingIntent *Intent

	// ShouldEndSession explicitly closes the session when true.
	ShouldEndSession *bool

	// KeepSessionOpen asks for a reprompt even when the caller supplied
	// none; the repeat-prompt policy provides the text.
	KeepSessionOpen bool
}
