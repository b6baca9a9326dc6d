package product

import (
	"fmt"

	"github.com/felixgeelhaar/vocalis/adapter/cli"
	"github.com/spf13/cobra"
)

var speakLocale string

var speakCmd = &cobra.Command{
	Use:   "speak",
	Short: "Render the user's entitled products as a spoken phrase",
	Long: `Render the entitled products as a single phrase the way a voice
response would read them, e.g. "Gold Pack, Silver Pack and Premium".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CatalogService == nil {
			return fmt.Errorf("application not initialized")
		}

		turn := cli.NewTurn("", speakLocale, nil)
		phrase, err := app.CatalogService.SpeakableEntitledProducts(cmd.Context(), turn.Locale)
		if err != nil {
			return fmt.Errorf("failed to render products: %w", err)
		}

		if phrase == "" {
			fmt.Println("No entitled products.")
			return nil
		}
		fmt.Println(phrase)
		return nil
	},
}

func init() {
	speakCmd.Flags().StringVarP(&speakLocale, "locale", "l", "", "catalog locale (defaults to configured locale)")
}
