package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vanshika/insuradmin/internal/config"
	"github.com/vanshika/insuradmin/internal/domain"
	"github.com/vanshika/insuradmin/internal/repository"
)

// Workspace composes the three managers over shared in-memory collections so
// that every menu and report in one process sees the same state.
type Workspace struct {
	Policyholders *PolicyholderService
	Products      *ProductService
	Payments      *PaymentService
}

// Snapshot is a copy of all three collections taken at one point in time.
type Snapshot struct {
	Policyholders []domain.Policyholder
	Products      []domain.Product
	Payments      []domain.Payment
}

// NewWorkspace wires JSON stores at the configured paths.
func NewWorkspace(cfg config.StorageConfig, logger *slog.Logger) *Workspace {
	return &Workspace{
		Policyholders: NewPolicyholderService(repository.NewStore[domain.Policyholder](cfg.PolicyholdersPath(), logger), logger),
		Products:      NewProductService(repository.NewStore[domain.Product](cfg.ProductsPath(), logger), logger),
		Payments:      NewPaymentService(repository.NewStore[domain.Payment](cfg.PaymentsPath(), logger), logger),
	}
}

// Load reads all three collections. Every failure is reported, not only the first.
func (w *Workspace) Load() error {
	var errs []error
	if err := w.Policyholders.Load(); err != nil {
		errs = append(errs, fmt.Errorf("load policyholders: %w", err))
	}
	if err := w.Products.Load(); err != nil {
		errs = append(errs, fmt.Errorf("load products: %w", err))
	}
	if err := w.Payments.Load(); err != nil {
		errs = append(errs, fmt.Errorf("load payments: %w", err))
	}
	return errors.Join(errs...)
}

// Snapshot copies the current in-memory collections, saved or not.
func (w *Workspace) Snapshot() Snapshot {
	return Snapshot{
		Policyholders: w.Policyholders.List(),
		Products:      w.Products.List(),
		Payments:      w.Payments.List(),
	}
}

// Dirty reports whether any collection has unsaved changes.
func (w *Workspace) Dirty() bool {
	return w.Policyholders.Dirty() || w.Products.Dirty() || w.Payments.Dirty()
}

// SaveAll persists every collection with unsaved changes.
func (w *Workspace) SaveAll() error {
	var errs []error
	if w.Policyholders.Dirty() {
		if err := w.Policyholders.Save(); err != nil {
			errs = append(errs, fmt.Errorf("save policyholders: %w", err))
		}
	}
	if w.Products.Dirty() {
		if err := w.Products.Save(); err != nil {
			errs = append(errs, fmt.Errorf("save products: %w", err))
		}
	}
	if w.Payments.Dirty() {
		if err := w.Payments.Save(); err != nil {
			errs = append(errs, fmt.Errorf("save payments: %w", err))
		}
	}
	return errors.Join(errs...)
}
