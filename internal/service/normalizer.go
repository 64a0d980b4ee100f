package service

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// ID prefixes used when the operator leaves the id blank.
const (
	PolicyholderIDPrefix = "PH"
	ProductIDPrefix      = "PR"
	PaymentIDPrefix      = "PM"
)

// ParseAmount converts operator input into a monetary amount. Non-finite values
// are rejected because they cannot be written to the JSON collections.
func ParseAmount(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return value, nil
}

// sanitizeString collapses whitespace and trims the result.
func sanitizeString(value string) string {
	value = whitespaceRegex.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

// newID returns prefix-XXXXXXXX built from a random uuid.
func newID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(raw[:8])
}
