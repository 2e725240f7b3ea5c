package cli

import (
	"context"
	"fmt"

	"shelf_life/inventory/internal/logic"
	"shelf_life/inventory/internal/store"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var fixturePath string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Stock the database from a fixture.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			items, err := loadItems(fixturePath)
			if err != nil {
				return err
			}

			db, err := store.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			if err := store.Migrate(ctx, db, cfg.DatabaseDriver); err != nil {
				return err
			}
			s := store.NewStore(db, cfg.DatabaseDriver)
			n, err := seed(ctx, s, items)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Stocked %d items\n", n)

			created, err := bootstrapStaff(ctx, s, cfg)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Created staff account %s\n", cfg.StaffBootstrapUsername)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&fixturePath, "fixture", "f", "", "YAML fixture with the opening stock (default: built-in shop stock)")
	return cmd
}

type itemCreator interface {
	CreateItem(ctx context.Context, item store.StockItem) (int64, error)
}

func seed(ctx context.Context, s itemCreator, items []logic.Item) (int, error) {
	for i, item := range items {
		if _, err := s.CreateItem(ctx, store.StockItem{SKU: uuid.NewString(), Item: item}); err != nil {
			return i, fmt.Errorf("failed to seed %q: %w", item.Name, err)
		}
	}
	return len(items), nil
}
