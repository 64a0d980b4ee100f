package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanshika/insuradmin/internal/generator"
)

func newSeedCmd(a *app) *cobra.Command {
	cfg := generator.DefaultConfig()
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a deterministic sample dataset into the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storage := a.cfg.Storage
			if !force {
				for _, path := range []string{storage.PolicyholdersPath(), storage.ProductsPath(), storage.PaymentsPath()} {
					if _, err := os.Stat(path); err == nil {
						return fmt.Errorf("%s already exists; use --force to overwrite", path)
					}
				}
			}

			dataset, err := generator.New(cfg).Generate(cmd.Context())
			if err != nil {
				return fmt.Errorf("generate dataset: %w", err)
			}
			if err := generator.WriteDataset(dataset, storage, a.logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d policyholders, %d products and %d payments into %s\n",
				len(dataset.Policyholders), len(dataset.Products), len(dataset.Payments), storage.DataDir)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.NumPolicyholders, "policyholders", cfg.NumPolicyholders, "number of policyholders to generate")
	flags.IntVar(&cfg.NumProducts, "products", cfg.NumProducts, "number of products to generate")
	flags.IntVar(&cfg.NumPayments, "payments", cfg.NumPayments, "number of payments to generate")
	flags.Float64Var(&cfg.SuspendedChance, "suspended-chance", cfg.SuspendedChance, "probability that a policyholder or product starts suspended")
	flags.Float64Var(&cfg.PaidChance, "paid-chance", cfg.PaidChance, "probability that a payment is already paid")
	flags.Float64Var(&cfg.OrphanChance, "orphan-chance", cfg.OrphanChance, "probability that a payment references a missing policyholder or product")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for deterministic generation")
	flags.BoolVar(&force, "force", false, "overwrite existing collection files")
	return cmd
}
