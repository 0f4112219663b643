package main

import (
	"context"
	"fmt"

	"github.com/sangkips/posledger/internal/application/service"
	"github.com/sangkips/posledger/internal/domain/entity"
	"github.com/sangkips/posledger/internal/seed"
	"github.com/spf13/cobra"
)

func newProductsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products <file>",
		Short: "Import a product master, replacing products with the same code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, report, err := readProducts(opts, args[0])
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), "products", report, opts)
			if opts.dryRun || len(products) == 0 {
				return nil
			}

			return withServices(opts, func(ctx context.Context, ps *service.ProductService, _ *service.CashierService) error {
				return ps.ImportProducts(ctx, products)
			})
		},
	}
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "CSV encoding (default cp932)")
	return cmd
}

func readProducts(opts *options, path string) ([]entity.Product, *seed.Report, error) {
	f, isXLSX, err := open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if isXLSX {
		return seed.ParseProductsXLSX(f)
	}

	enc, err := inputEncoding(opts, "cp932")
	if err != nil {
		return nil, nil, fmt.Errorf("products: %w", err)
	}
	return seed.ParseProductsCSV(f, enc)
}
