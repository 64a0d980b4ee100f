package domain

import (
	"fmt"
	"strings"
)

// Product is an insurance product in the catalog.
type Product struct {
	ID     string  `json:"product_id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Status Status  `json:"status"`
}

// NewProduct returns an active product.
func NewProduct(id, name string, price float64) Product {
	return Product{
		ID:     id,
		Name:   name,
		Price:  price,
		Status: StatusActive,
	}
}

// Key returns the collection key.
func (p Product) Key() string { return p.ID }

// ApplyDefaults fills the status a freshly constructed product would carry.
func (p *Product) ApplyDefaults() {
	if p.Status == "" {
		p.Status = StatusActive
	}
}

// UpdateName overwrites the name.
func (p *Product) UpdateName(name string) { p.Name = name }

// UpdatePrice overwrites the price.
func (p *Product) UpdatePrice(price float64) { p.Price = price }

// Suspend takes an active product off sale.
func (p *Product) Suspend() Outcome {
	if p.Status != StatusActive {
		return Unchanged
	}
	p.Status = StatusSuspended
	return Applied
}

// Reactivate puts a suspended product back on sale.
func (p *Product) Reactivate() Outcome {
	if p.Status != StatusSuspended {
		return Unchanged
	}
	p.Status = StatusActive
	return Applied
}

// Matches reports an exact id match or a case-insensitive name substring.
func (p Product) Matches(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}
	return term == p.ID || strings.Contains(strings.ToLower(p.Name), strings.ToLower(term))
}

// Details renders every field in a fixed order.
func (p Product) Details() string {
	return fmt.Sprintf("Product Details:\nID: %s\nName: %s\nPrice: %s\nStatus: %s",
		p.ID, p.Name, FormatMoney(p.Price), p.Status)
}
