// Package monetize exposes the purchase, refund, and upsell flows on the
// command line. Each command prints the finalized directive-bearing response
// as JSON.
package monetize

import (
	"encoding/json"
	"fmt"

	responsedomain "github.com/felixgeelhaar/vocalis/internal/response/domain"
	"github.com/spf13/cobra"
)

// Cmd is the monetize command group
var Cmd = &cobra.Command{
	Use:   "monetize",
	Short: "Run purchase, refund, and upsell flows",
	Long:  `Dispatch monetization directives for in-skill products.`,
}

func printResponse(resp responsedomain.Response) error {
	payload, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render response: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}

func init() {
	Cmd.AddCommand(buyCmd)
	Cmd.AddCommand(refundCmd)
	Cmd.AddCommand(upsellCmd)
}
