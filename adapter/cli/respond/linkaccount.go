package respond

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	linkTurn turnFlags
	linkData dataFlags
)

var linkAccountCmd = &cobra.Command{
	Use:   "link-account",
	Short: "Assemble an account-linking card response",
	Long: `Assemble a response carrying an account-linking card.

Examples:
  vocalis respond link-account --speech "Please link your account"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		resp, err := app.Assembler.SendLinkAccountCard(cmd.Context(), linkTurn.turn(), linkData.data(), nil)
		if err != nil {
			return fmt.Errorf("failed to assemble response: %w", err)
		}
		return printResponse(resp)
	},
}

func init() {
	linkTurn.register(linkAccountCmd)
	linkData.register(linkAccountCmd)
}
