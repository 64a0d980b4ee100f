package service

import (
	"log/slog"
	"strings"

	"github.com/vanshika/insuradmin/internal/domain"
)

// PaymentService manages the in-memory payment collection.
type PaymentService struct {
	items  collection[domain.Payment]
	logger *slog.Logger
}

// NewPaymentService builds a manager over store. Call Load before use.
func NewPaymentService(store CollectionStore[domain.Payment], logger *slog.Logger) *PaymentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentService{
		items:  collection[domain.Payment]{store: store},
		logger: logger.With("component", "payments"),
	}
}

// Load replaces the in-memory collection with the persisted one.
func (s *PaymentService) Load() error { return s.items.load() }

// Save persists the whole collection, overwriting the backing file.
func (s *PaymentService) Save() error { return s.items.save() }

// Dirty reports whether there are changes since the last load or save.
func (s *PaymentService) Dirty() bool { return s.items.dirty }

// Path returns the backing file location.
func (s *PaymentService) Path() string { return s.items.store.Path() }

// List returns every payment in insertion order.
func (s *PaymentService) List() []domain.Payment { return s.items.list() }

// Find returns the first payment with id.
func (s *PaymentService) Find(id string) (domain.Payment, error) {
	return s.items.find(strings.TrimSpace(id))
}

// Search returns payments whose payment, policyholder or product id equals term.
func (s *PaymentService) Search(term string) []domain.Payment {
	return s.items.search(func(p domain.Payment) bool { return p.Matches(term) })
}

// Create adds a new pending payment. The referenced policyholder and product
// are not checked; payments that do not resolve are left out of reports.
func (s *PaymentService) Create(in PaymentInput) (domain.Payment, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = newID(PaymentIDPrefix)
	}
	p := domain.NewPayment(id, strings.TrimSpace(in.PolicyholderID), strings.TrimSpace(in.ProductID), in.Amount, strings.TrimSpace(in.DueDate))
	if err := s.items.add(p); err != nil {
		return domain.Payment{}, err
	}
	s.logger.Info("payment created", "id", p.ID, "policyholder_id", p.PolicyholderID, "product_id", p.ProductID, "amount", p.Amount)
	return p, nil
}

// Process marks a pending payment as paid. Unchanged means it was already processed.
func (s *PaymentService) Process(id string) (domain.Payment, domain.Outcome, error) {
	p, outcome, err := s.items.mutate(strings.TrimSpace(id), (*domain.Payment).Process)
	if err == nil {
		s.logger.Info("payment process", "id", p.ID, "outcome", outcome)
	}
	return p, outcome, err
}

// ApplyPenalty adds penalty to a pending payment. Unchanged means it was already paid.
func (s *PaymentService) ApplyPenalty(id string, penalty float64) (domain.Payment, domain.Outcome, error) {
	p, outcome, err := s.items.mutate(strings.TrimSpace(id), func(p *domain.Payment) domain.Outcome {
		return p.ApplyPenalty(penalty)
	})
	if err == nil {
		s.logger.Info("payment penalty", "id", p.ID, "penalty", penalty, "amount", p.Amount, "outcome", outcome)
	}
	return p, outcome, err
}

// SendReminder produces the reminder for a pending payment. Unchanged means no
// reminder is needed because the payment is paid.
func (s *PaymentService) SendReminder(id string) (string, domain.Outcome, error) {
	p, err := s.items.find(strings.TrimSpace(id))
	if err != nil {
		return "", 0, err
	}
	text, outcome := p.Reminder()
	s.logger.Info("payment reminder", "id", p.ID, "outcome", outcome)
	return text, outcome, nil
}
