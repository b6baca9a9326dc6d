package monetize

import (
	"fmt"

	"github.com/felixgeelhaar/vocalis/adapter/cli"
	"github.com/spf13/cobra"
)

var (
	refundSession   string
	refundLocale    string
	refundProductID string
)

var refundCmd = &cobra.Command{
	Use:   "refund",
	Short: "Dispatch a Cancel directive",
	Long: `Dispatch a Cancel directive to start a refund for a product.

Examples:
  vocalis monetize refund --product-id amzn1.adg.product.123`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.PurchaseService == nil {
			return fmt.Errorf("application not initialized")
		}
		if refundProductID == "" {
			return fmt.Errorf("--product-id is required")
		}

		turn := cli.NewTurn(refundSession, refundLocale, nil)
		resp, err := app.PurchaseService.RefundByID(cmd.Context(), turn, refundProductID)
		if err != nil {
			return fmt.Errorf("refund failed: %w", err)
		}
		return printResponse(resp)
	},
}

func init() {
	refundCmd.Flags().StringVar(&refundSession, "session", "", "session id (generated when empty)")
	refundCmd.Flags().StringVarP(&refundLocale, "locale", "l", "", "catalog locale")
	refundCmd.Flags().StringVar(&refundProductID, "product-id", "", "product id to refund")
}
