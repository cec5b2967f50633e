package custom

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"quickview.GO/api"
	"quickview.GO/cmd"
	"quickview.GO/config"
	"quickview.GO/cron"
	gqlregistry "quickview.GO/graphql/registry"
	"quickview.GO/service/quickview"
)

type priceArgs struct {
	Amount   *int64 `mapstructure:"amount"`
	Currency string `mapstructure:"currency"`
	Locale   string `mapstructure:"locale"`
}

func init() {
	// GraphQL extension: _extension(name: "formatPrice", args: "{\"amount\": 2490}")
	gqlregistry.Register("formatPrice", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		cfg := config.LoadAppConfig()
		in := priceArgs{Currency: cfg.PriceCurrency, Locale: cfg.PriceLocale}
		if err := gqlregistry.DecodeArgs(args, &in); err != nil {
			return nil, fmt.Errorf("formatPrice: %w", err)
		}
		if in.Amount == nil {
			return nil, fmt.Errorf("formatPrice: amount is required")
		}
		price, err := quickview.FormatPrice(*in.Amount, in.Currency, in.Locale)
		if err != nil {
			return nil, err
		}
		return map[string]string{"price": price}, nil
	})

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "custom:classify",
		Short: "Print the role each option name is rendered with",
		Args:  cobra.MinimumNArgs(1),
		Run: func(c *cobra.Command, args []string) {
			for _, name := range args {
				fmt.Fprintf(c.OutOrStdout(), "%s: %s\n", name, quickview.ClassifyOption(name))
			}
		},
	})

	// Cron job
	cron.Register("customping", "@every 1h", func(args ...string) {
		log.Println("Custom cron: ping at", args)
	})

	// HTTP route
	api.RegisterGET("/custom/ping", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"pong": "ok"})
	})
}
