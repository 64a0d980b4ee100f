package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_Lifecycle(t *testing.T) {
	p := NewProduct("PR1", "Basic", 100)

	assert.Equal(t, Unchanged, p.Reactivate())
	assert.Equal(t, Applied, p.Suspend())
	assert.Equal(t, Unchanged, p.Suspend())
	assert.Equal(t, StatusSuspended, p.Status)
	assert.Equal(t, Applied, p.Reactivate())
	assert.Equal(t, StatusActive, p.Status)
}

func TestProduct_UpdateAndDetails(t *testing.T) {
	p := NewProduct("PR1", "Basic", 100)
	p.UpdateName("Premium")
	p.UpdatePrice(249.99)

	assert.Equal(t, "Product Details:\nID: PR1\nName: Premium\nPrice: $249.99\nStatus: active", p.Details())
}

func TestProduct_Matches(t *testing.T) {
	p := NewProduct("PR1", "Home Cover", 100)

	assert.True(t, p.Matches("PR1"))
	assert.True(t, p.Matches("cover"))
	assert.False(t, p.Matches("pr1"), "id match is exact")
	assert.False(t, p.Matches("auto"))
}
