package domain

import (
	"fmt"
	"strings"
)

// Policyholder is a customer holding one or more insurance products.
type Policyholder struct {
	ID     string `json:"policyholder_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status Status `json:"status"`
}

// NewPolicyholder returns an active policyholder.
func NewPolicyholder(id, name, email, phone string) Policyholder {
	return Policyholder{
		ID:     id,
		Name:   name,
		Email:  email,
		Phone:  phone,
		Status: StatusActive,
	}
}

// Key returns the collection key.
func (p Policyholder) Key() string { return p.ID }

// ApplyDefaults fills the status a freshly constructed policyholder would carry.
func (p *Policyholder) ApplyDefaults() {
	if p.Status == "" {
		p.Status = StatusActive
	}
}

// UpdateName overwrites the name.
func (p *Policyholder) UpdateName(name string) { p.Name = name }

// UpdateEmail overwrites the email address.
func (p *Policyholder) UpdateEmail(email string) { p.Email = email }

// UpdatePhone overwrites the phone number.
func (p *Policyholder) UpdatePhone(phone string) { p.Phone = phone }

// Suspend moves an active policyholder to suspended.
func (p *Policyholder) Suspend() Outcome {
	if p.Status != StatusActive {
		return Unchanged
	}
	p.Status = StatusSuspended
	return Applied
}

// Reactivate moves a suspended policyholder back to active.
func (p *Policyholder) Reactivate() Outcome {
	if p.Status != StatusSuspended {
		return Unchanged
	}
	p.Status = StatusActive
	return Applied
}

// Matches implements the policyholder search: case-insensitive exact id, email
// or phone, or a name substring.
func (p Policyholder) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	return term == strings.ToLower(p.ID) ||
		strings.Contains(strings.ToLower(p.Name), term) ||
		term == strings.ToLower(p.Email) ||
		term == strings.ToLower(p.Phone)
}

// Details renders every field in a fixed order.
func (p Policyholder) Details() string {
	return fmt.Sprintf("Policyholder Details:\nID: %s\nName: %s\nEmail: %s\nPhone: %s\nStatus: %s",
		p.ID, p.Name, p.Email, p.Phone, p.Status)
}
