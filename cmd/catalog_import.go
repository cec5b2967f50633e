package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quickview.GO/config"
	catalogRepo "quickview.GO/model/repository/catalog"
	catalogService "quickview.GO/service/catalog"
)

var (
	importFile    string
	importMigrate bool
)

var importCmd = &cobra.Command{
	Use:   "catalog:import",
	Short: "Import storefront product JSON into the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		if importMigrate {
			if err := config.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}

		res, err := catalogService.Import(context.Background(), catalogRepo.NewProductRepository(db), f)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, w := range res.Warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		fmt.Fprintf(out, "Imported %d of %d products (%d skipped) in %s\n", res.Imported, res.Total, res.Skipped, res.TotalTime)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Product JSON file (array or {\"products\": [...]})")
	importCmd.Flags().BoolVar(&importMigrate, "migrate", false, "Create or update the tables first")
	_ = importCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(importCmd)
}
