// Package application implements response finalization: it merges speech,
// card, and visual-template data per device capability and produces the
// immutable response object handed back to the host platform.
package application

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/felixgeelhaar/vocalis/internal/analytics"
	"github.com/felixgeelhaar/vocalis/internal/response/domain"
	sessiondomain "github.com/felixgeelhaar/vocalis/internal/session/domain"
	shared "github.com/felixgeelhaar/vocalis/internal/shared/domain"
)

// ListPermissions are the consent scopes requested by the permission-card
// flow.
var ListPermissions = []string{
	"read::alexa:household:list",
	"write::alexa:household:list",
}

// continuePrompt is spoken when the permission-card flow is entered without
// output data.
const continuePrompt = "Please continue."

// Turn carries the per-turn context a response is assembled against.
type Turn struct {
	// SessionID scopes request attributes.
	SessionID string

	// Locale is the user's locale for catalog and speech purposes.
	Locale string

	// Device describes the rendering interfaces the device declares.
	Device domain.DeviceContext
}

// RepeatPrompter supplies repeat speech when a caller keeps the session open
// without providing new reprompt text.
type RepeatPrompter interface {
	RepeatSpeech(ctx context.Context, turn Turn) (domain.Speech, bool)
}

// AssemblerConfig configures the assembler.
type AssemblerConfig struct {
	// LogResponses logs every finalized response verbatim when true.
	LogResponses bool
}

// Assembler finalizes responses. Each build runs the same forward-only
// sequence: speech, visual, session flags, finalize.
type Assembler struct {
	store        sessiondomain.AttributeStore
	tracker      analytics.Tracker
	synthesizer  domain.Synthesizer
	repeat       RepeatPrompter
	logger       *slog.Logger
	logResponses bool
}

// NewAssembler creates a new response assembler. The repeat prompter may be
// nil when no repeat-prompt policy applies.
func NewAssembler(
	store sessiondomain.AttributeStore,
	tracker analytics.Tracker,
	synthesizer domain.Synthesizer,
	repeat RepeatPrompter,
	cfg AssemblerConfig,
	logger *slog.Logger,
) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	if synthesizer == nil {
		synthesizer = domain.SSMLSynthesizer{}
	}
	return &Assembler{
		store:        store,
		tracker:      tracker,
		synthesizer:  synthesizer,
		repeat:       repeat,
		logger:       logger,
		logResponses: cfg.LogResponses,
	}
}

// Ask builds a response that keeps the session open for a user reply.
func (a *Assembler) Ask(ctx context.Context, turn Turn, data *domain.Data, opts *domain.Options) (domain.Response, error) {
	if data == nil {
		data = &domain.Data{}
	}
	speech := a.synthesizer.Synthesize(data.Speech)

	b := domain.NewBuilder().WithSpeech(speech.Output)
	if speech.Reprompt != "" {
		b = b.WithReprompt(speech.Reprompt)
	}

	return a.finalize(ctx, turn, b, data, opts)
}

// Tell builds a response that speaks and closes the session.
func (a *Assembler) Tell(ctx context.Context, turn Turn, data *domain.Data, opts *domain.Options) (domain.Response, error) {
	if data == nil {
		data = &domain.Data{}
	}
	speech := a.synthesizer.Synthesize(data.Speech)

	b := domain.NewBuilder().
		WithSpeech(speech.Output).
		WithShouldEndSession(true)

	return a.finalize(ctx, turn, b, data, opts)
}

// AskForPermissions builds a response carrying a consent card for the given
// permissions.
func (a *Assembler) AskForPermissions(ctx context.Context, turn Turn, data *domain.Data, opts *domain.Options, permissions []string) (domain.Response, error) {
	if data == nil {
		data = &domain.Data{}
	}
	speech := a.synthesizer.Synthesize(data.Speech)

	b := domain.NewBuilder().
		WithSpeech(speech.Output).
		WithPermissionsCard(permissions)
	if speech.Reprompt != "" {
		b = b.WithReprompt(speech.Reprompt)
	}

	return a.finalize(ctx, turn, b, data, opts)
}

// SendLinkAccountCard builds a response carrying an account-linking card.
func (a *Assembler) SendLinkAccountCard(ctx context.Context, turn Turn, data *domain.Data, opts *domain.Options) (domain.Response, error) {
	if data == nil {
		data = &domain.Data{}
	}
	speech := a.synthesizer.Synthesize(data.Speech)

	b := domain.NewBuilder().
		WithSpeech(speech.Output).
		WithLinkAccountCard()
	if speech.Reprompt != "" {
		b = b.WithReprompt(speech.Reprompt)
	}

	return a.finalize(ctx, turn, b, data, opts)
}

// SendDirective builds a bare directive-only response with no additional
// speech or visual content.
func (a *Assembler) SendDirective(ctx context.Context, turn Turn, directive any) (domain.Response, error) {
	b := domain.NewBuilder().WithDirective(directive)
	return a.finalize(ctx, turn, b, nil, nil)
}

// SendPermissionCard enters the list-access consent flow. The analytics
// event is fire-and-forget: a tracker failure is logged and never blocks the
// response. Without output data a minimal continue prompt is returned
// instead of failing.
func (a *Assembler) SendPermissionCard(ctx context.Context, turn Turn, data *domain.Data, opts *domain.Options) (domain.Response, error) {
	if data == nil {
		return a.Ask(ctx, turn, &domain.Data{
			Speech: domain.Speech{Output: continuePrompt, Reprompt: continuePrompt},
		}, nil)
	}

	if a.tracker != nil {
		event := analytics.NewEvent(analytics.EventPermissionCardSent, analytics.EventTypeList, turn.SessionID)
		go func(ctx context.Context) {
			if err := a.tracker.Track(ctx, event); err != nil {
				a.logger.Error("permission card analytics failed", "error", err)
			}
		}(context.WithoutCancel(ctx))
	}

	return a.AskForPermissions(ctx, turn, data, opts, ListPermissions)
}

// finalize runs the visual and session-flag stages and builds the response.
func (a *Assembler) finalize(ctx context.Context, turn Turn, b domain.Builder, data *domain.Data, opts *domain.Options) (domain.Response, error) {
	if data != nil {
		b = a.applyRepeatSpeech(ctx, turn, b, data, opts)
		b = a.applyVisual(turn, b, data)
	}

	if opts != nil {
		if opts.OutgoingIntent != nil {
			if err := a.persistOutgoingIntent(ctx, turn, opts.OutgoingIntent); err != nil {
				return domain.Response{}, err
			}
		}
		if opts.ShouldEndSession != nil && *opts.ShouldEndSession {
			b = b.WithShouldEndSession(true)
		}
	}

	resp := b.Build()

	if a.logResponses {
		if payload, err := json.Marshal(resp); err == nil {
			a.logger.Debug("finalized response", "response", string(payload))
		}
	}

	return resp, nil
}

// applyRepeatSpeech sets a reprompt from the repeat-prompt policy when the
// caller keeps the session open without new reprompt text.
func (a *Assembler) applyRepeatSpeech(ctx context.Context, turn Turn, b domain.Builder, data *domain.Data, opts *domain.Options) domain.Builder {
	if a.repeat == nil || opts == nil || !opts.KeepSessionOpen || data.Speech.Reprompt != "" {
		return b
	}
	repeat, ok := a.repeat.RepeatSpeech(ctx, turn)
	if !ok {
		return b
	}
	speech := a.synthesizer.Synthesize(repeat)
	if speech.Output == "" {
		return b
	}
	return b.WithReprompt(speech.Output)
}

// applyVisual attaches exactly one visual form per the device capability:
// templates when a template interface exists, a card only when none does.
func (a *Assembler) applyVisual(turn Turn, b domain.Builder, data *domain.Data) domain.Builder {
	switch domain.ResolveCapability(turn.Device) {
	case domain.CapabilityRichTemplate:
		if data.Visual != nil {
			b = b.WithRichTemplate(*data.Visual)
		}
		if data.Commands != nil {
			b = b.WithCommands(*data.Commands)
		}
	case domain.CapabilitySimpleTemplate:
		if data.Display != nil {
			b = b.WithDisplayTemplate(*data.Display)
		}
		if data.Hint != "" {
			b = b.WithHint(data.Hint)
		}
	case domain.CapabilityNone:
		if data.Card != nil && data.Card.Title != "" && data.Card.Output != "" && !b.HasCard() {
			if data.Card.HasImage() {
				b = b.WithStandardCard(data.Card.Title, data.Card.Output, data.Card.ImageSmallURL, data.Card.ImageLargeURL)
			} else {
				b = b.WithSimpleCard(data.Card.Title, data.Card.Output)
			}
		}
	}
	return b
}

// persistOutgoingIntent serializes the intent marker into the
// request-attribute store for the next turn.
func (a *Assembler) persistOutgoingIntent(ctx context.Context, turn Turn, intent *domain.Intent) error {
	if a.store == nil {
		return nil
	}
	payload, err := json.Marshal(intent)
	if err != nil {
		return shared.Unknown("failed to serialize outgoing intent", err)
	}
	if err := a.store.Set(ctx, turn.SessionID, sessiondomain.KeyOutgoingIntent, string(payload)); err != nil {
		a.logger.Error("failed to persist outgoing intent", "session_id", turn.SessionID, "error", err)
		return shared.Unknown("failed to persist outgoing intent", err)
	}
	return nil
}
