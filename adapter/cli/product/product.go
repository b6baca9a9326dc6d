package product

import (
	"github.com/spf13/cobra"
)

// Cmd is the product command group
var Cmd = &cobra.Command{
	Use:   "product",
	Short: "Query the in-skill product catalog",
	Long:  `List and filter the in-skill products offered by the monetization service.`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(speakCmd)
}
