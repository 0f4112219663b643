package main

import (
	"context"
	"fmt"

	"github.com/sangkips/posledger/internal/application/service"
	"github.com/sangkips/posledger/internal/domain/entity"
	"github.com/sangkips/posledger/internal/seed"
	"github.com/spf13/cobra"
)

func newCashiersCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cashiers <file>",
		Short: "Import a cashier list, keeping names that already exist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cashiers, report, err := readCashiers(opts, args[0])
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), "cashiers", report, opts)
			if opts.dryRun || len(cashiers) == 0 {
				return nil
			}

			return withServices(opts, func(ctx context.Context, _ *service.ProductService, cs *service.CashierService) error {
				return cs.ImportCashiers(ctx, cashiers)
			})
		},
	}
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "CSV encoding (default shift_jis)")
	return cmd
}

func readCashiers(opts *options, path string) ([]entity.Cashier, *seed.Report, error) {
	f, isXLSX, err := open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if isXLSX {
		return seed.ParseCashiersXLSX(f)
	}

	enc, err := inputEncoding(opts, "shift_jis")
	if err != nil {
		return nil, nil, fmt.Errorf("cashiers: %w", err)
	}
	return seed.ParseCashiersCSV(f, enc)
}
