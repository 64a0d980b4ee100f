package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment_StartsPending(t *testing.T) {
	p := NewPayment("PM1", "PH1", "PR1", 100, "2025-01-01")
	assert.Equal(t, StatusPending, p.Status)
	assert.Equal(t, 100.0, p.Amount)
}

func TestPayment_Process(t *testing.T) {
	p := NewPayment("PM1", "PH1", "PR1", 100, "2025-01-01")

	require.Equal(t, Applied, p.Process())
	assert.Equal(t, StatusPaid, p.Status)

	assert.Equal(t, Unchanged, p.Process(), "second process must be a no-op")
	assert.Equal(t, StatusPaid, p.Status)
	assert.Equal(t, 100.0, p.Amount)
}

func TestPayment_ApplyPenalty(t *testing.T) {
	tests := []struct {
		name       string
		status     Status
		penalty    float64
		wantAmount float64
		want       Outcome
	}{
		{name: "pending adds penalty", status: StatusPending, penalty: 20, wantAmount: 120, want: Applied},
		{name: "pending accepts zero", status: StatusPending, penalty: 0, wantAmount: 100, want: Applied},
		{name: "negative penalty lowers balance", status: StatusPending, penalty: -30, wantAmount: 70, want: Applied},
		{name: "paid leaves amount", status: StatusPaid, penalty: 20, wantAmount: 100, want: Unchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPayment("PM1", "PH1", "PR1", 100, "2025-01-01")
			p.Status = tt.status

			assert.Equal(t, tt.want, p.ApplyPenalty(tt.penalty))
			assert.InDelta(t, tt.wantAmount, p.Amount, 1e-9)
			assert.Equal(t, tt.status, p.Status)
		})
	}
}

func TestPayment_Reminder(t *testing.T) {
	p := NewPayment("PM1", "PH1", "PR1", 100, "2025-01-01")

	text, outcome := p.Reminder()
	assert.Equal(t, Applied, outcome)
	assert.Equal(t, "Reminder sent for Payment PM1 (Policyholder ID: PH1). Amount due: $100.00 by 2025-01-01.", text)

	p.Process()
	text, outcome = p.Reminder()
	assert.Equal(t, Unchanged, outcome)
	assert.Empty(t, text)
}

func TestPayment_Matches(t *testing.T) {
	p := NewPayment("PM1", "PH1", "PR1", 100, "2025-01-01")
	assert.True(t, p.Matches("PM1"))
	assert.True(t, p.Matches(" PH1 "))
	assert.True(t, p.Matches("PR1"))
	assert.False(t, p.Matches("pm1"), "payment search is case-sensitive")
	assert.False(t, p.Matches(""))
}

func TestPayment_Details(t *testing.T) {
	p := NewPayment("PM1", "PH1", "PR1", 120.5, "2025-01-01")
	want := "Payment Details:\nPayment ID: PM1\nPolicyholder ID: PH1\nProduct ID: PR1\nAmount: $120.50\nDue Date: 2025-01-01\nStatus: pending"
	assert.Equal(t, want, p.Details())
}

func TestPayment_ApplyDefaults(t *testing.T) {
	p := Payment{ID: "PM1"}
	p.ApplyDefaults()
	assert.Equal(t, StatusPending, p.Status)

	paid := Payment{ID: "PM2", Status: StatusPaid}
	paid.ApplyDefaults()
	assert.Equal(t, StatusPaid, paid.Status)
}
