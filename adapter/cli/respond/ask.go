package respond

import (
	"fmt"

	responsedomain "github.com/felixgeelhaar/vocalis/internal/response/domain"
	"github.com/spf13/cobra"
)

var (
	askTurn       turnFlags
	askData       dataFlags
	askEndSession bool
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Assemble a response that waits for a user reply",
	Long: `Assemble a response that speaks and keeps the session open.

Examples:
  vocalis respond ask --speech "Which pack?" --reprompt "Gold or silver?"
  vocalis respond ask --speech "Here you go" --card-title "Packs" --card-text "Gold and silver"
  vocalis respond ask --speech "Look!" --interface Alexa.Presentation.APL`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		var opts *responsedomain.Options
		if askEndSession {
			end := true
			opts = &responsedomain.Options{ShouldEndSession: &end}
		}

		resp, err := app.Assembler.Ask(cmd.Context(), askTurn.turn(), askData.data(), opts)
		if err != nil {
			return fmt.Errorf("failed to assemble response: %w", err)
		}
		return printResponse(resp)
	},
}

func init() {
	askTurn.register(askCmd)
	askData.register(askCmd)
	askCmd.Flags().BoolVar(&askEndSession, "end-session", false, "close the session after speaking")
}
