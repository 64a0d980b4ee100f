package report

import (
	"strings"

	"github.com/vanshika/insuradmin/internal/domain"
)

// Separator closes every record block.
var Separator = strings.Repeat("-", 50)

// Render filters records and renders one Policyholder/Product/Payment block per
// record. Output is deterministic for a given input.
func Render(records []domain.LinkedRecord, f Filter) (string, error) {
	kept, err := f.Apply(records)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, rec := range kept {
		writeBlock(&b, rec)
	}
	return b.String(), nil
}

func writeBlock(b *strings.Builder, rec domain.LinkedRecord) {
	line := func(label, value string) {
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte('\n')
	}

	b.WriteString("Policyholder Details:\n")
	line("ID", rec.PolicyholderID)
	line("Name", rec.Name)
	line("Email", rec.Email)
	line("Phone", rec.Phone)
	line("Policyholder Status", string(rec.PolicyholderStatus))

	b.WriteString("\nProduct Details:\n")
	line("ID", rec.ProductID)
	line("Name", rec.ProductName)
	line("Price", domain.FormatMoney(rec.ProductPrice))
	line("Product Status", string(rec.ProductStatus))

	b.WriteString("\nPayment Details:\n")
	line("Payment ID", rec.PaymentID)
	line("Amount", domain.FormatMoney(rec.Amount))
	line("Due Date", rec.DueDate)
	line("Payment Status", string(rec.PaymentStatus))

	b.WriteString(Separator)
	b.WriteByte('\n')
}
