package respond

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	permTurn turnFlags
	permData dataFlags
)

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Assemble a list-access consent card response",
	Long: `Assemble a response carrying a consent card asking for household
list access. Without --speech a minimal continue prompt is returned.

Examples:
  vocalis respond permissions --speech "I need access to your lists"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		data := permData.data()
		if permData.speech == "" {
			data = nil
		}

		resp, err := app.Assembler.SendPermissionCard(cmd.Context(), permTurn.turn(), data, nil)
		if err != nil {
			return fmt.Errorf("failed to assemble response: %w", err)
		}
		return printResponse(resp)
	},
}

func init() {
	permTurn.register(permissionsCmd)
	permData.register(permissionsCmd)
}
