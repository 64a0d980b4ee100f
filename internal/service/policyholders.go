package service

import (
	"log/slog"
	"strings"

	"github.com/vanshika/insuradmin/internal/domain"
)

// PolicyholderService manages the in-memory policyholder collection.
type PolicyholderService struct {
	items  collection[domain.Policyholder]
	logger *slog.Logger
}

// NewPolicyholderService builds a manager over store. Call Load before use.
func NewPolicyholderService(store CollectionStore[domain.Policyholder], logger *slog.Logger) *PolicyholderService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PolicyholderService{
		items:  collection[domain.Policyholder]{store: store},
		logger: logger.With("component", "policyholders"),
	}
}

// Load replaces the in-memory collection with the persisted one.
func (s *PolicyholderService) Load() error { return s.items.load() }

// Save persists the whole collection, overwriting the backing file.
func (s *PolicyholderService) Save() error { return s.items.save() }

// Dirty reports whether there are changes since the last load or save.
func (s *PolicyholderService) Dirty() bool { return s.items.dirty }

// Path returns the backing file location.
func (s *PolicyholderService) Path() string { return s.items.store.Path() }

// List returns every policyholder in insertion order.
func (s *PolicyholderService) List() []domain.Policyholder { return s.items.list() }

// Find returns the first policyholder with id.
func (s *PolicyholderService) Find(id string) (domain.Policyholder, error) {
	return s.items.find(strings.TrimSpace(id))
}

// Search returns every policyholder matching term by id, email, phone or name fragment.
func (s *PolicyholderService) Search(term string) []domain.Policyholder {
	return s.items.search(func(p domain.Policyholder) bool { return p.Matches(term) })
}

// Register adds a new active policyholder.
func (s *PolicyholderService) Register(in PolicyholderInput) (domain.Policyholder, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = newID(PolicyholderIDPrefix)
	}
	p := domain.NewPolicyholder(id, sanitizeString(in.Name), strings.TrimSpace(in.Email), strings.TrimSpace(in.Phone))
	if err := s.items.add(p); err != nil {
		return domain.Policyholder{}, err
	}
	s.logger.Info("policyholder registered", "id", p.ID)
	return p, nil
}

// Update overwrites the non-nil fields of upd.
func (s *PolicyholderService) Update(id string, upd PolicyholderUpdate) (domain.Policyholder, error) {
	p, _, err := s.items.mutate(strings.TrimSpace(id), func(p *domain.Policyholder) domain.Outcome {
		if upd.Name != nil {
			p.UpdateName(sanitizeString(*upd.Name))
		}
		if upd.Email != nil {
			p.UpdateEmail(strings.TrimSpace(*upd.Email))
		}
		if upd.Phone != nil {
			p.UpdatePhone(strings.TrimSpace(*upd.Phone))
		}
		return domain.Applied
	})
	if err != nil {
		return domain.Policyholder{}, err
	}
	s.logger.Info("policyholder updated", "id", p.ID)
	return p, nil
}

// Suspend suspends an active policyholder. Unchanged means it was already suspended.
func (s *PolicyholderService) Suspend(id string) (domain.Policyholder, domain.Outcome, error) {
	p, outcome, err := s.items.mutate(strings.TrimSpace(id), (*domain.Policyholder).Suspend)
	if err == nil {
		s.logger.Info("policyholder suspend", "id", p.ID, "outcome", outcome)
	}
	return p, outcome, err
}

// Reactivate reactivates a suspended policyholder. Unchanged means it was already active.
func (s *PolicyholderService) Reactivate(id string) (domain.Policyholder, domain.Outcome, error) {
	p, outcome, err := s.items.mutate(strings.TrimSpace(id), (*domain.Policyholder).Reactivate)
	if err == nil {
		s.logger.Info("policyholder reactivate", "id", p.ID, "outcome", outcome)
	}
	return p, outcome, err
}
