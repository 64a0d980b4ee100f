package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink_FlattensAllFields(t *testing.T) {
	holder := NewPolicyholder("PH1", "Alice", "alice@example.com", "555-0100")
	product := NewProduct("PR1", "Basic", 100)
	payment := NewPayment("PM1", "PH1", "PR1", 120, "2025-01-01")
	payment.Process()

	rec := Link(holder, product, payment)

	want := map[Field]string{
		FieldPolicyholderID:     "PH1",
		FieldName:               "Alice",
		FieldEmail:              "alice@example.com",
		FieldPhone:              "555-0100",
		FieldPolicyholderStatus: "active",
		FieldProductID:          "PR1",
		FieldProductName:        "Basic",
		FieldProductPrice:       "100",
		FieldProductStatus:      "active",
		FieldPaymentID:          "PM1",
		FieldAmount:             "120",
		FieldDueDate:            "2025-01-01",
		FieldPaymentStatus:      "paid",
	}
	require.Len(t, LinkedFields, len(want))
	for field, value := range want {
		got, ok := rec.Value(field)
		require.True(t, ok, "field %s", field)
		assert.Equal(t, value, got, "field %s", field)
	}
}

func TestLinkedRecord_UnknownField(t *testing.T) {
	_, ok := LinkedRecord{}.Value("status")
	assert.False(t, ok)
}

func TestLinkedRecord_ValuesOrder(t *testing.T) {
	rec := LinkedRecord{PolicyholderID: "PH1", PaymentID: "PM1", Amount: 12.5, PaymentStatus: StatusPending}
	values := rec.Values()

	require.Len(t, values, len(LinkedFields))
	assert.Equal(t, "PH1", values[0])
	assert.Equal(t, "PM1", values[9])
	assert.Equal(t, "12.5", values[10])
	assert.Equal(t, "pending", values[12])
}
