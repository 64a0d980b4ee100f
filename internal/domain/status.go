package domain

import (
	"strconv"
)

// Status is the lifecycle state of an entity.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
)

// Outcome reports whether a lifecycle or balance operation changed the record.
// Operations called outside their valid source state return Unchanged and leave
// the record untouched, so repeating a call is always safe.
type Outcome int

const (
	Applied Outcome = iota + 1
	Unchanged
)

// Changed reports whether the operation mutated the record.
func (o Outcome) Changed() bool {
	return o == Applied
}

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Unchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// FormatMoney renders an amount the way every details block and report shows it.
func FormatMoney(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

// formatNumber is the shortest exact representation, used for field-equality filters.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
