package respond

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	tellTurn turnFlags
	tellData dataFlags
)

var tellCmd = &cobra.Command{
	Use:   "tell",
	Short: "Assemble a final response that closes the session",
	Long: `Assemble a response that speaks once and ends the session.

Examples:
  vocalis respond tell --speech "Goodbye!"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		resp, err := app.Assembler.Tell(cmd.Context(), tellTurn.turn(), tellData.data(), nil)
		if err != nil {
			return fmt.Errorf("failed to assemble response: %w", err)
		}
		return printResponse(resp)
	},
}

func init() {
	tellTurn.register(tellCmd)
	tellData.register(tellCmd)
}
