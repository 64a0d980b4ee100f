package report

import (
	"errors"
	"fmt"

	"github.com/vanshika/insuradmin/internal/domain"
)

// ErrUnknownField is returned when a filter names a column LinkedRecord does not have.
var ErrUnknownField = errors.New("unknown report field")

// Filter keeps records whose Field equals Value exactly. The zero Filter keeps everything.
type Filter struct {
	Field domain.Field
	Value string
}

// FieldEquals builds a single-field equality filter.
func FieldEquals(field domain.Field, value string) Filter {
	return Filter{Field: field, Value: value}
}

// IsZero reports whether the filter keeps every record.
func (f Filter) IsZero() bool {
	return f.Field == ""
}

// Apply returns the records f keeps, preserving order.
func (f Filter) Apply(records []domain.LinkedRecord) ([]domain.LinkedRecord, error) {
	if f.IsZero() {
		return records, nil
	}
	if _, ok := (domain.LinkedRecord{}).Value(f.Field); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, f.Field)
	}

	out := make([]domain.LinkedRecord, 0, len(records))
	for _, rec := range records {
		if v, _ := rec.Value(f.Field); v == f.Value {
			out = append(out, rec)
		}
	}
	return out, nil
}

// ByPaymentStatus keeps records whose payment is in status.
func ByPaymentStatus(records []domain.LinkedRecord, status domain.Status) []domain.LinkedRecord {
	out, _ := FieldEquals(domain.FieldPaymentStatus, string(status)).Apply(records)
	return out
}

// ByProduct keeps records for one product.
func ByProduct(records []domain.LinkedRecord, productID string) []domain.LinkedRecord {
	out, _ := FieldEquals(domain.FieldProductID, productID).Apply(records)
	return out
}
