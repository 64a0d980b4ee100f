package generator

import (
	"fmt"
	"log/slog"

	"github.com/vanshika/insuradmin/internal/config"
	"github.com/vanshika/insuradmin/internal/domain"
	"github.com/vanshika/insuradmin/internal/repository"
)

// WriteDataset saves each collection to its configured file, replacing what was there.
func WriteDataset(dataset Dataset, cfg config.StorageConfig, logger *slog.Logger) error {
	if err := repository.NewStore[domain.Policyholder](cfg.PolicyholdersPath(), logger).Save(dataset.Policyholders); err != nil {
		return fmt.Errorf("write policyholders: %w", err)
	}
	if err := repository.NewStore[domain.Product](cfg.ProductsPath(), logger).Save(dataset.Products); err != nil {
		return fmt.Errorf("write products: %w", err)
	}
	if err := repository.NewStore[domain.Payment](cfg.PaymentsPath(), logger).Save(dataset.Payments); err != nil {
		return fmt.Errorf("write payments: %w", err)
	}
	return nil
}
