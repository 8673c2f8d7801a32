package main

import (
	"context"
	"os"
	"time"

	"car-rental/internal/handler/middleware"
	"car-rental/internal/infra/store"
	"car-rental/internal/pkg/config"
	"car-rental/internal/seed"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		items   int
		driver  string
		dataDir string
		seedVal uint64
	)

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Write demo cars, categories and customers to the configured store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("driver") {
				cfg.Store.Driver = driver
			}
			if cmd.Flags().Changed("dir") {
				cfg.Store.DataDir = dataDir
			}
			logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

			if !cmd.Flags().Changed("seed") {
				seedVal = uint64(time.Now().UnixNano())
			}
			ds, err := seed.Generate(gofakeit.New(seedVal), items, time.Now())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			st, cleanup, err := store.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := seed.Write(ctx, st, cfg.Store, ds); err != nil {
				return err
			}

			logger.Info("seed written",
				"driver", cfg.Store.Driver,
				"cars", len(ds.Cars),
				"categories", len(ds.Categories),
				"customers", len(ds.Customers),
				"seed", seedVal,
			)
			return nil
		},
	}

	cmd.Flags().IntVarP(&items, "items", "n", seed.DefaultItems, "number of cars and customers to generate")
	cmd.Flags().StringVar(&driver, "driver", "", "store driver (json|postgres), overrides STORE_DRIVER")
	cmd.Flags().StringVar(&dataDir, "dir", "", "data directory for the json driver, overrides STORE_DATA_DIR")
	cmd.Flags().Uint64Var(&seedVal, "seed", 0, "random seed for reproducible output")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Stderr.WriteString("seed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
