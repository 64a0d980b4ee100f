package service

import (
	"log/slog"
	"strings"

	"github.com/vanshika/insuradmin/internal/domain"
)

// ProductService manages the in-memory product catalog.
type ProductService struct {
	items  collection[domain.Product]
	logger *slog.Logger
}

// NewProductService builds a manager over store. Call Load before use.
func NewProductService(store CollectionStore[domain.Product], logger *slog.Logger) *ProductService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductService{
		items:  collection[domain.Product]{store: store},
		logger: logger.With("component", "products"),
	}
}

// Load replaces the in-memory catalog with the persisted one.
func (s *ProductService) Load() error { return s.items.load() }

// Save persists the whole catalog, overwriting the backing file.
func (s *ProductService) Save() error { return s.items.save() }

// Dirty reports whether there are changes since the last load or save.
func (s *ProductService) Dirty() bool { return s.items.dirty }

// Path returns the backing file location.
func (s *ProductService) Path() string { return s.items.store.Path() }

// List returns every product in catalog order, the order Select numbers them in.
func (s *ProductService) List() []domain.Product { return s.items.list() }

// Find returns the first product with id.
func (s *ProductService) Find(id string) (domain.Product, error) {
	return s.items.find(strings.TrimSpace(id))
}

// Search returns products whose id equals term or whose name contains it.
func (s *ProductService) Search(term string) []domain.Product {
	return s.items.search(func(p domain.Product) bool { return p.Matches(term) })
}

// Select returns the product at the 1-based position shown in product pickers.
func (s *ProductService) Select(position int) (domain.Product, error) {
	if len(s.items.items) == 0 {
		return domain.Product{}, ErrNoProducts
	}
	if position < 1 || position > len(s.items.items) {
		return domain.Product{}, ErrNotFound
	}
	return s.items.items[position-1], nil
}

// Create adds a new active product.
func (s *ProductService) Create(in ProductInput) (domain.Product, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = newID(ProductIDPrefix)
	}
	p := domain.NewProduct(id, sanitizeString(in.Name), in.Price)
	if err := s.items.add(p); err != nil {
		return domain.Product{}, err
	}
	s.logger.Info("product created", "id", p.ID, "price", p.Price)
	return p, nil
}

// Update overwrites the non-nil fields of upd.
func (s *ProductService) Update(id string, upd ProductUpdate) (domain.Product, error) {
	p, _, err := s.items.mutate(strings.TrimSpace(id), func(p *domain.Product) domain.Outcome {
		if upd.Name != nil {
			p.UpdateName(sanitizeString(*upd.Name))
		}
		if upd.Price != nil {
			p.UpdatePrice(*upd.Price)
		}
		return domain.Applied
	})
	if err != nil {
		return domain.Product{}, err
	}
	s.logger.Info("product updated", "id", p.ID)
	return p, nil
}

// Suspend takes an active product off sale. Unchanged means it was already suspended.
func (s *ProductService) Suspend(id string) (domain.Product, domain.Outcome, error) {
	p, outcome, err := s.items.mutate(strings.TrimSpace(id), (*domain.Product).Suspend)
	if err == nil {
		s.logger.Info("product suspend", "id", p.ID, "outcome", outcome)
	}
	return p, outcome, err
}

// Reactivate puts a suspended product back on sale. Unchanged means it was already active.
func (s *ProductService) Reactivate(id string) (domain.Product, domain.Outcome, error) {
	p, outcome, err := s.items.mutate(strings.TrimSpace(id), (*domain.Product).Reactivate)
	if err == nil {
		s.logger.Info("product reactivate", "id", p.ID, "outcome", outcome)
	}
	return p, outcome, err
}
