package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyholder_Lifecycle(t *testing.T) {
	p := NewPolicyholder("PH1", "Alice", "alice@example.com", "555-0100")
	assert.Equal(t, StatusActive, p.Status)

	assert.Equal(t, Unchanged, p.Reactivate(), "already active")
	assert.Equal(t, StatusActive, p.Status)

	assert.Equal(t, Applied, p.Suspend())
	assert.Equal(t, StatusSuspended, p.Status)

	assert.Equal(t, Unchanged, p.Suspend(), "already suspended")
	assert.Equal(t, StatusSuspended, p.Status)

	assert.Equal(t, Applied, p.Reactivate())
	assert.Equal(t, StatusActive, p.Status)
}

func TestPolicyholder_Updates(t *testing.T) {
	p := NewPolicyholder("PH1", "Alice", "alice@example.com", "555-0100")
	p.UpdateName("Alice B")
	p.UpdateEmail("ab@example.com")
	p.UpdatePhone("555-0199")

	assert.Equal(t, Policyholder{ID: "PH1", Name: "Alice B", Email: "ab@example.com", Phone: "555-0199", Status: StatusActive}, p)
}

func TestPolicyholder_Matches(t *testing.T) {
	p := NewPolicyholder("PH1", "Alice Walker", "Alice@Example.com", "555-0100")

	for _, term := range []string{"ph1", "walk", "ALICE", "alice@example.com", "555-0100"} {
		assert.True(t, p.Matches(term), "term %q", term)
	}
	for _, term := range []string{"", "example.com", "555", "PH"} {
		assert.False(t, p.Matches(term), "term %q", term)
	}
}

func TestPolicyholder_Details(t *testing.T) {
	p := NewPolicyholder("PH1", "Alice", "alice@example.com", "555-0100")
	assert.Equal(t, "Policyholder Details:\nID: PH1\nName: Alice\nEmail: alice@example.com\nPhone: 555-0100\nStatus: active", p.Details())
}
