package domain

import (
	"fmt"
	"strings"
)

// Payment is an amount a policyholder owes for a product.
// PolicyholderID and ProductID are not checked against their collections.
type Payment struct {
	ID             string  `json:"payment_id"`
	PolicyholderID string  `json:"policyholder_id"`
	ProductID      string  `json:"product_id"`
	Amount         float64 `json:"amount"`
	DueDate        string  `json:"due_date"`
	Status         Status  `json:"status"`
}

// NewPayment returns a pending payment.
func NewPayment(id, policyholderID, productID string, amount float64, dueDate string) Payment {
	return Payment{
		ID:             id,
		PolicyholderID: policyholderID,
		ProductID:      productID,
		Amount:         amount,
		DueDate:        dueDate,
		Status:         StatusPending,
	}
}

// Key returns the collection key.
func (p Payment) Key() string { return p.ID }

// ApplyDefaults fills the status a freshly constructed payment would carry.
func (p *Payment) ApplyDefaults() {
	if p.Status == "" {
		p.Status = StatusPending
	}
}

// Process marks a pending payment as paid. A payment is processed at most once.
func (p *Payment) Process() Outcome {
	if p.Status != StatusPending {
		return Unchanged
	}
	p.Status = StatusPaid
	return Applied
}

// ApplyPenalty adds penalty to the amount due while the payment is pending.
// The penalty is not range-checked: a negative value lowers the balance.
func (p *Payment) ApplyPenalty(penalty float64) Outcome {
	if p.Status != StatusPending {
		return Unchanged
	}
	p.Amount += penalty
	return Applied
}

// Reminder returns the reminder text for a pending payment.
func (p Payment) Reminder() (string, Outcome) {
	if p.Status != StatusPending {
		return "", Unchanged
	}
	return fmt.Sprintf("Reminder sent for Payment %s (Policyholder ID: %s). Amount due: %s by %s.",
		p.ID, p.PolicyholderID, FormatMoney(p.Amount), p.DueDate), Applied
}

// Matches reports an exact match on the payment, policyholder or product id.
func (p Payment) Matches(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}
	return term == p.ID || term == p.PolicyholderID || term == p.ProductID
}

// Details renders every field in a fixed order.
func (p Payment) Details() string {
	return fmt.Sprintf("Payment Details:\nPayment ID: %s\nPolicyholder ID: %s\nProduct ID: %s\nAmount: %s\nDue Date: %s\nStatus: %s",
		p.ID, p.PolicyholderID, p.ProductID, FormatMoney(p.Amount), p.DueDate, p.Status)
}
