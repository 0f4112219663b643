package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sangkips/posledger/internal/application/service"
	"github.com/sangkips/posledger/internal/config"
	"github.com/sangkips/posledger/internal/infrastructure/database"
	"github.com/sangkips/posledger/internal/infrastructure/repository"
	"github.com/sangkips/posledger/internal/seed"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
)

// options are the flags shared by every import command
type options struct {
	envFile  string
	encoding string
	dryRun   bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "seed",
		Short: "Import product masters and cashier lists",
		Long: `seed loads reference data exported from the back office into the
receipt store. CSV files are decoded from cp932 by default; .xlsx workbooks
are read from their first sheet.

Examples:
  seed products ./products.csv
  seed cashiers ./cashiers.csv --encoding shift_jis
  seed products ./master.xlsx --dry-run`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "Path to the env file with database settings")
	root.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "Parse and report without writing to the store")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "List every skipped row")

	root.AddCommand(newProductsCmd(opts), newCashiersCmd(opts))
	return root
}

// withServices opens the configured store for the duration of fn
func withServices(opts *options, fn func(ctx context.Context, products *service.ProductService, cashiers *service.CashierService) error) error {
	cfg := config.LoadFile(opts.envFile)

	db, err := database.New(&cfg.Database, cfg.App.Debug)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return err
		}
	}

	return fn(context.Background(),
		service.NewProductService(repository.NewProductRepository(db)),
		service.NewCashierService(repository.NewCashierRepository(db)),
	)
}

// open returns the input file and whether it is a workbook
func open(path string) (*os.File, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, strings.EqualFold(filepath.Ext(path), ".xlsx"), nil
}

func inputEncoding(opts *options, fallback string) (encoding.Encoding, error) {
	name := opts.encoding
	if name == "" {
		name = fallback
	}
	return seed.Encoding(name)
}

func printReport(w io.Writer, kind string, report *seed.Report, opts *options) {
	fmt.Fprintf(w, "%s: %d rows, %d accepted, %d skipped\n", kind, report.Rows, report.Accepted, len(report.Skipped))
	if opts.verbose && len(report.Skipped) > 0 {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report.Skipped)
	}
	if opts.dryRun {
		fmt.Fprintln(w, "dry run: nothing written")
	}
}
