package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_ValueSemantics(t *testing.T) {
	base := NewBuilder().WithSpeech("<speak>hello</speak>")

	withCard := base.WithSimpleCard("Title", "Body")
	withDirective := base.WithHint("try this")

	// Extending a builder never mutates the value it came from.
	assert.False(t, base.HasCard())
	assert.Equal(t, 0, base.DirectiveCount())
	assert.True(t, withCard.HasCard())
	assert.Equal(t, 1, withDirective.DirectiveCount())
}

func TestBuilder_Build(t *testing.T) {
	resp := NewBuilder().
		WithSpeech("<speak>hello</speak>").
		WithReprompt("<speak>still there?</speak>").
		WithSimpleCard("Title", "Body").
		WithShouldEndSession(false).
		Build()

	require.NotNil(t, resp.OutputSpeech)
	assert.Equal(t, "SSML", resp.OutputSpeech.Type)
	assert.Equal(t, "<speak>hello</speak>", resp.OutputSpeech.SSML)
	require.NotNil(t, resp.Reprompt)
	assert.Equal(t, "<speak>still there?</speak>", resp.Reprompt.OutputSpeech.SSML)
	require.NotNil(t, resp.Card)
	assert.Equal(t, "Simple", resp.Card.Type)
	require.NotNil(t, resp.ShouldEndSession)
	assert.False(t, *resp.ShouldEndSession)
}

func TestBuilder_StandardCard(t *testing.T) {
	resp := NewBuilder().
		WithStandardCard("Title", "Body", "https://img/s.png", "https://img/l.png").
		Build()

	require.NotNil(t, resp.Card)
	assert.Equal(t, "Standard", resp.Card.Type)
	require.NotNil(t, resp.Card.Image)
	assert.Equal(t, "https://img/s.png", resp.Card.Image.SmallImageURL)
	assert.Equal(t, "https://img/l.png", resp.Card.Image.LargeImageURL)
}

func TestBuilder_PermissionsCard(t *testing.T) {
	perms := []string{"read::alexa:household:list"}
	resp := NewBuilder().WithPermissionsCard(perms).Build()

	require.NotNil(t, resp.Card)
	assert.Equal(t, "AskForPermissionsConsent", resp.Card.Type)
	assert.Equal(t, perms, resp.Card.Permissions)
}

func TestBuilder_TemplateDirectives(t *testing.T) {
	resp := NewBuilder().
		WithRichTemplate(Template{Token: "tok", Document: map[string]any{"type": "APL"}}).
		WithCommands(Commands{Token: "tok", Commands: []map[string]any{{"type": "SpeakItem"}}}).
		Build()

	require.Len(t, resp.Directives, 2)
	first, ok := resp.Directives[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alexa.Presentation.APL.RenderDocument", first["type"])
	second, ok := resp.Directives[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alexa.Presentation.APL.ExecuteCommands", second["type"])
}

func TestBuilder_DisplayTemplateAndHint(t *testing.T) {
	resp := NewBuilder().
		WithDisplayTemplate(DisplayTemplate{Type: "BodyTemplate1", Token: "tok", Title: "Title", Text: "Text"}).
		WithHint("say more").
		Build()

	require.Len(t, resp.Directives, 2)
	hint, ok := resp.Directives[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Hint", hint["type"])
}

func TestCard_HasImage(t *testing.T) {
	assert.False(t, Card{Title: "T", Output: "O"}.HasImage())
	assert.True(t, Card{ImageSmallURL: "https://img/s.png"}.HasImage())
	assert.True(t, Card{ImageLargeURL: "https://img/l.png"}.HasImage())
}

func TestSSMLSynthesizer(t *testing.T) {
	synth := SSMLSynthesizer{}

	t.Run("wraps plain text", func(t *testing.T) {
		got := synth.Synthesize(Speech{Output: "hello", Reprompt: "still there?"})
		assert.Equal(t, "<speak>hello</speak>", got.Output)
		assert.Equal(t, "<speak>still there?</speak>", got.Reprompt)
	})

	t.Run("keeps existing markup", func(t *testing.T) {
		got := synth.Synthesize(Speech{Output: "<speak>hi</speak>"})
		assert.Equal(t, "<speak>hi</speak>", got.Output)
	})

	t.Run("empty reprompt stays empty", func(t *testing.T) {
		got := synth.Synthesize(Speech{Output: "hi"})
		assert.Empty(t, got.Reprompt)
	})
}
