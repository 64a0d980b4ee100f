// Package report joins payments with their policyholders and products and
// renders the result as the portal's text report.
package report

import (
	"github.com/vanshika/insuradmin/internal/domain"
)

// Join links every payment to the first policyholder and first product with a
// matching id, in payment order. A payment whose policyholder or product does
// not resolve is dropped without a diagnostic.
func Join(policyholders []domain.Policyholder, products []domain.Product, payments []domain.Payment) []domain.LinkedRecord {
	linked := make([]domain.LinkedRecord, 0, len(payments))
	for _, payment := range payments {
		holder, ok := firstPolicyholder(policyholders, payment.PolicyholderID)
		if !ok {
			continue
		}
		product, ok := firstProduct(products, payment.ProductID)
		if !ok {
			continue
		}
		linked = append(linked, domain.Link(holder, product, payment))
	}
	return linked
}

// Unlinked returns the payments Join drops.
func Unlinked(policyholders []domain.Policyholder, products []domain.Product, payments []domain.Payment) []domain.Payment {
	var out []domain.Payment
	for _, payment := range payments {
		_, holderOK := firstPolicyholder(policyholders, payment.PolicyholderID)
		_, productOK := firstProduct(products, payment.ProductID)
		if !holderOK || !productOK {
			out = append(out, payment)
		}
	}
	return out
}

func firstPolicyholder(items []domain.Policyholder, id string) (domain.Policyholder, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.Policyholder{}, false
}

func firstProduct(items []domain.Product, id string) (domain.Product, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.Product{}, false
}
