package monetize

import (
	"fmt"

	"github.com/felixgeelhaar/vocalis/adapter/cli"
	"github.com/spf13/cobra"
)

var (
	buySession   string
	buyLocale    string
	buyProductID string
	buyName      string
)

var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Dispatch a Buy directive",
	Long: `Dispatch a Buy directive for a product, addressed either by product
id or by catalog reference name.

Examples:
  vocalis monetize buy --product-id amzn1.adg.product.123
  vocalis monetize buy --name gold_pack`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.PurchaseService == nil {
			return fmt.Errorf("application not initialized")
		}
		if buyProductID == "" && buyName == "" {
			return fmt.Errorf("either --product-id or --name is required")
		}

		ctx := cmd.Context()
		turn := cli.NewTurn(buySession, buyLocale, nil)

		if buyProductID != "" {
			resp, err := app.PurchaseService.PurchaseByID(ctx, turn, buyProductID)
			if err != nil {
				return fmt.Errorf("purchase failed: %w", err)
			}
			return printResponse(resp)
		}

		resp, err := app.PurchaseService.PurchaseByName(ctx, turn, buyName)
		if err != nil {
			return fmt.Errorf("purchase failed: %w", err)
		}
		return printResponse(resp)
	},
}

func init() {
	buyCmd.Flags().StringVar(&buySession, "session", "", "session id (generated when empty)")
	buyCmd.Flags().StringVarP(&buyLocale, "locale", "l", "", "catalog locale")
	buyCmd.Flags().StringVar(&buyProductID, "product-id", "", "product id to buy")
	buyCmd.Flags().StringVar(&buyName, "name", "", "catalog reference name to buy")
}
