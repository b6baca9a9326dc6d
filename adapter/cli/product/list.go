package product

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/vocalis/adapter/cli"
	"github.com/felixgeelhaar/vocalis/internal/catalog/domain"
	"github.com/spf13/cobra"
)

var (
	locale          string
	onlyConsumable  bool
	onlyEntitled    bool
	onlyPurchasable bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List in-skill products",
	Long: `List in-skill products with optional filtering.

Filter Options:
  --consumable   Show only consumable products
  --entitled     Show only products the user already owns
  --purchasable  Show only products that can currently be bought

Examples:
  vocalis product list                    # Full catalog
  vocalis product list --consumable      # Consumables only
  vocalis product list --entitled        # Owned products
  vocalis product list --locale de-DE    # Catalog for a locale`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CatalogService == nil {
			return fmt.Errorf("application not initialized")
		}

		ctx := cmd.Context()
		turn := cli.NewTurn("", locale, nil)

		var (
			list domain.List
			err  error
		)
		switch {
		case onlyConsumable:
			list, err = app.CatalogService.ConsumableProducts(ctx, turn.Locale)
		case onlyEntitled:
			list, err = app.CatalogService.EntitledProducts(ctx, turn.Locale)
		case onlyPurchasable:
			list, err = app.CatalogService.PurchasableProducts(ctx, turn.Locale)
		default:
			list, err = app.CatalogService.Products(ctx, turn.Locale)
		}
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		if len(list) == 0 {
			fmt.Println("No products found.")
			return nil
		}

		fmt.Printf("Products (%d):\n", len(list))
		fmt.Println(strings.Repeat("-", 60))
		for _, p := range list {
			fmt.Printf("%s %s\n", entitledIcon(p), p.Name)
			fmt.Printf("   ID: %s\n", p.ProductID)
			fmt.Printf("   Reference: %s\n", p.ReferenceName)
			fmt.Printf("   Type: %s  Purchasable: %s\n", p.Type, p.Purchasable)
			fmt.Println()
		}

		return nil
	},
}

func entitledIcon(p domain.Product) string {
	if p.Entitled == domain.Entitled {
		return "[x]"
	}
	return "[ ]"
}

func init() {
	listCmd.Flags().StringVarP(&locale, "locale", "l", "", "catalog locale (defaults to configured locale)")
	listCmd.Flags().BoolVar(&onlyConsumable, "consumable", false, "show only consumable products")
	listCmd.Flags().BoolVar(&onlyEntitled, "entitled", false, "show only entitled products")
	listCmd.Flags().BoolVar(&onlyPurchasable, "purchasable", false, "show only purchasable products")
}
