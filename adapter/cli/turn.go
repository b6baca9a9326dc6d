package cli

import (
	responseapp "github.com/felixgeelhaar/vocalis/internal/response/application"
	responsedomain "github.com/felixgeelhaar/vocalis/internal/response/domain"
	"github.com/google/uuid"
)

// NewTurn builds the per-turn context for a command invocation. An empty
// session id gets a generated one; an empty locale falls back to the app
// default.
func NewTurn(sessionID, locale string, interfaces []string) responseapp.Turn {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	if locale == "" {
		if a := GetApp(); a != nil && a.DefaultLocale != "" {
			locale = a.DefaultLocale
		} else {
			locale = "en-US"
		}
	}
	return responseapp.Turn{
		SessionID: sessionID,
		Locale:    locale,
		Device:    responsedomain.DeviceContext{SupportedInterfaces: interfaces},
	}
}
