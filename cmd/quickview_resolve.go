package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"quickview.GO/core/app"
	"quickview.GO/service/quickview"
)

var (
	resolveHandle string
	resolveSets   []string
	resolveAdd    bool
	resolveCart   string
)

var resolveCmd = &cobra.Command{
	Use:   "quickview:resolve",
	Short: "Resolve an option selection to a variant, optionally adding it to a cart",
	Example: `  quickview quickview:resolve --handle classic-tee --set Color=Black --set Size=Medium
  quickview quickview:resolve --handle classic-tee --set Size=Small --add --cart <token>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := app.Open()
		if err != nil {
			return err
		}
		return runResolve(cmd.Context(), cmd.OutOrStdout(), c.Service)
	},
}

func runResolve(ctx context.Context, out io.Writer, svc *quickview.Service) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if resolveAdd && resolveCart == "" {
		return errors.New("--add needs --cart")
	}
	ss, err := svc.Open(ctx, resolveCart, resolveHandle)
	if err != nil {
		return err
	}
	for _, set := range resolveSets {
		name, value, ok := strings.Cut(set, "=")
		if !ok {
			return fmt.Errorf("--set %q: want Name=Value", set)
		}
		pos, err := optionPosition(ss.Product(), name)
		if err != nil {
			return err
		}
		if err := ss.Choose(pos, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if !resolveAdd {
		variant, fired, err := ss.Evaluate()
		var incomplete *quickview.IncompleteSelectionError
		if errors.As(err, &incomplete) {
			fmt.Fprintln(out, incomplete.Prompt())
			return err
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "variant %s\n", variant.ID)
		for _, r := range fired {
			fmt.Fprintf(out, "bundle %s: %s\n", r.Name, r.Handle)
		}
		return nil
	}

	res, err := ss.Confirm(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "added %s\n", res.Variant.ID)
	for _, b := range res.Bundles {
		if b.Added() {
			fmt.Fprintf(out, "added bundle %s (%s x%d)\n", b.Handle, b.VariantID, b.Quantity)
		} else {
			fmt.Fprintf(out, "bundle %s skipped: %v\n", b.Handle, b.Err)
		}
	}
	return nil
}

// optionPosition finds the option called name, case-insensitively.
func optionPosition(p quickview.Product, name string) (int, error) {
	for _, o := range p.Options {
		if strings.EqualFold(o.Name, name) {
			return o.Position, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", quickview.ErrUnknownPosition, name)
}

func init() {
	resolveCmd.Flags().StringVar(&resolveHandle, "handle", "", "Product handle")
	resolveCmd.Flags().StringArrayVar(&resolveSets, "set", nil, "Option selection as Name=Value (repeatable)")
	resolveCmd.Flags().BoolVar(&resolveAdd, "add", false, "Add the resolved variant and bundles to the cart")
	resolveCmd.Flags().StringVar(&resolveCart, "cart", "", "Cart token used with --add")
	_ = resolveCmd.MarkFlagRequired("handle")
	rootCmd.AddCommand(resolveCmd)
}
