package monetize

import (
	"fmt"

	"github.com/felixgeelhaar/vocalis/adapter/cli"
	"github.com/spf13/cobra"
)

var (
	upsellSession   string
	upsellLocale    string
	upsellProductID string
	upsellMessage   string
)

var upsellCmd = &cobra.Command{
	Use:   "upsell",
	Short: "Dispatch an Upsell directive",
	Long: `Dispatch an Upsell directive carrying a suggestion message for a
product the user does not own yet.

Examples:
  vocalis monetize upsell --product-id amzn1.adg.product.123 --message "Want to hear more?"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.PurchaseService == nil {
			return fmt.Errorf("application not initialized")
		}
		if upsellProductID == "" {
			return fmt.Errorf("--product-id is required")
		}

		turn := cli.NewTurn(upsellSession, upsellLocale, nil)
		resp, err := app.PurchaseService.UpsellByID(cmd.Context(), turn, upsellProductID, upsellMessage)
		if err != nil {
			return fmt.Errorf("upsell failed: %w", err)
		}
		return printResponse(resp)
	},
}

func init() {
	upsellCmd.Flags().StringVar(&upsellSession, "session", "", "session id (generated when empty)")
	upsellCmd.Flags().StringVarP(&upsellLocale, "locale", "l", "", "catalog locale")
	upsellCmd.Flags().StringVar(&upsellProductID, "product-id", "", "product id to suggest")
	upsellCmd.Flags().StringVarP(&upsellMessage, "message", "m", "", "upsell message spoken to the user")
}
