package domain

// Wire constants for the finalized response.
const (
	speechTypeSSML          = "SSML"
	cardTypeSimple          = "Simple"
	cardTypeStandard        = "Standard"
	cardTypeLinkAccount     = "LinkAccount"
	cardTypePermissions     = "AskForPermissionsConsent"
	directiveTypeRenderDoc  = "Alexa.Presentation.APL.RenderDocument"
	directiveTypeCommands   = "Alexa.Presentation.APL.ExecuteCommands"
	directiveTypeRender     = "Display.RenderTemplate"
	directiveTypeHint       = "Hint"
)

// OutputSpeech is the wire shape of spoken output.
type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

// CardImage carries the image URLs of a standard card.
type CardImage struct {
	SmallImageURL string `json:"smallImageUrl,omitempty"`
	LargeImageURL string `json:"largeImageUrl,omitempty"`
}

// ResponseCard is the wire shape of a card.
type ResponseCard struct {
	Type        string     `json:"type"`
	Title       string     `json:"title,omitempty"`
	Content     string     `json:"content,omitempty"`
	Text        string     `json:"text,omitempty"`
	Image       *CardImage `json:"image,omitempty"`
	Permissions []string   `json:"permissions,omitempty"`
}

// Reprompt is the wire shape of the reprompt block.
type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// Response is the immutable finalized response object handed back to the
// host platform.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *ResponseCard `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	Directives       []any         `json:"directives,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

// Builder accumulates a response as a value. Every attachment returns an
// updated copy, so intermediate states can be inspected or discarded; only
// Build produces the final Response.
type Builder struct {
	speech           *OutputSpeech
	card             *ResponseCard
	reprompt         *Reprompt
	directives       []any
	shouldEndSession *bool
}

// NewBuilder returns an empty response builder.
func NewBuilder() Builder {
	return Builder{}
}

// WithSpeech sets the primary spoken output. The text is expected to carry
// speech markup already.
func (b Builder) WithSpeech(ssml string) Builder {
	b.speech = &OutputSpeech{Type: speechTypeSSML, SSML: ssml}
	return b
}

// WithReprompt sets the reprompt speech.
func (b Builder) WithReprompt(ssml string) Builder {
	b.reprompt = &Reprompt{OutputSpeech: OutputSpeech{Type: speechTypeSSML, SSML: ssml}}
	return b
}

// WithSimpleCard attaches a text-only card.
func (b Builder) WithSimpleCard(title, content string) Builder {
	b.card = &ResponseCard{Type: cardTypeSimple, Title: title, Content: content}
	return b
}

// WithStandardCard attaches an image-bearing card.
func (b Builder) WithStandardCard(title, text, smallImageURL, largeImageURL string) Builder {
	b.card = &ResponseCard{
		Type:  cardTypeStandard,
		Title: title,
		Text:  text,
		Image: &CardImage{SmallImageURL: smallImageURL, LargeImageURL: largeImageURL},
	}
	return b
}

// WithLinkAccountCard attaches an account-linking card.
func (b Builder) WithLinkAccountCard() Builder {
	b.card = &ResponseCard{Type: cardTypeLinkAccount}
	return b
}

// WithPermissionsCard attaches a consent card asking for the permissions.
func (b Builder) WithPermissionsCard(permissions []string) Builder {
	b.card = &ResponseCard{Type: cardTypePermissions, Permissions: permissions}
	return b
}

// WithDirective appends a directive verbatim.
func (b Builder) WithDirective(directive any) Builder {
	directives := make([]any, len(b.directives), len(b.directives)+1)
	copy(directives, b.directives)
	b.directives = append(directives, directive)
	return b
}

// WithRichTemplate appends a rich-template render directive.
func (b Builder) WithRichTemplate(t Template) Builder {
	return b.WithDirective(map[string]any{
		"type":        directiveTypeRenderDoc,
		"token":       t.Token,
		"document":    t.Document,
		"datasources": t.Datasources,
	})
}

// WithCommands appends a supplementary visual command directive.
func (b Builder) WithCommands(c Commands) Builder {
	return b.WithDirective(map[string]any{
		"type":     directiveTypeCommands,
		"token":    c.Token,
		"commands": c.Commands,
	})
}

// WithDisplayTemplate appends a legacy display-template render directive.
func (b Builder) WithDisplayTemplate(t DisplayTemplate) Builder {
	return b.WithDirective(map[string]any{
		"type": directiveTypeRender,
		"template": map[string]any{
			"type":  t.Type,
			"token": t.Token,
			"title": t.Title,
			"textContent": map[string]any{
				"primaryText": map[string]any{
					"type": "PlainText",
					"text": t.Text,
				},
			},
		},
	})
}

// WithHint appends a hint directive.
func (b Builder) WithHint(text string) Builder {
	return b.WithDirective(map[string]any{
		"type": directiveTypeHint,
		"hint": map[string]any{
			"type": "PlainText",
			"text": text,
		},
	})
}

// WithShouldEndSession sets the end-of-session flag.
func (b Builder) WithShouldEndSession(end bool) Builder {
	b.shouldEndSession = &end
	return b
}

// HasCard reports whether a card has been attached.
func (b Builder) HasCard() bool {
	return b.card != nil
}

// DirectiveCount returns the number of attached directives.
func (b Builder) DirectiveCount() int {
	return len(b.directives)
}

// Build produces the immutable response object.
func (b Builder) Build() Response {
	return Response{
		OutputSpeech:     b.speech,
		Card:             b.card,
		Reprompt:         b.reprompt,
		Directives:       b.directives,
		ShouldEndSession: b.shouldEndSession,
	}
}
