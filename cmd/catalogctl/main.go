package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"catalog-manager/internal/config"
	"catalog-manager/internal/logger"
	"catalog-manager/internal/repository"
	"catalog-manager/internal/sku"
	"catalog-manager/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// catalog es el repositorio abierto para un comando
type catalog struct {
	cfg  *config.Config
	kv   store.Store
	repo *repository.ProductRepository
}

func (c *catalog) Close() error {
	return c.kv.Close()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Manage the product catalog from the command line",
		Long: `Manage the product catalog stored by the API.

The store is selected with the same environment variables as the server
(STORE_DRIVER, STORE_PATH, MONGO_URI, ...). Stop the server before using
the bolt store, the file is locked while it runs.`,
		SilenceUsage: true,
	}

	root.AddCommand(newListCmd(), newAddCmd(), newDeleteCmd())
	return root
}

func openCatalog(ctx context.Context) (*catalog, error) {
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg)
	if err != nil {
		return nil, err
	}

	kv, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	repo, err := repository.NewProductRepository(ctx, kv,
		sku.NewGenerator(kv, sku.WithLogger(zlog)),
		repository.WithLogger(zlog.WithOptions(zap.IncreaseLevel(zap.WarnLevel))),
	)
	if err != nil {
		kv.Close()
		return nil, err
	}

	return &catalog{cfg: cfg, kv: kv, repo: repo}, nil
}
