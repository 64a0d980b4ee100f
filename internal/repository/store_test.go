package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/insuradmin/internal/domain"
	"github.com/vanshika/insuradmin/internal/logging"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore[domain.Policyholder](filepath.Join(t.TempDir(), "absent.json"), logging.Discard())

	records, err := store.Load()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	t.Run("policyholders", func(t *testing.T) {
		store := NewStore[domain.Policyholder](filepath.Join(dir, "policyholder_data.json"), logging.Discard())
		suspended := domain.NewPolicyholder("PH2", "Bob", "bob@example.com", "555-0101")
		suspended.Suspend()
		want := []domain.Policyholder{
			domain.NewPolicyholder("PH1", "Alice", "alice@example.com", "555-0100"),
			suspended,
			domain.NewPolicyholder("PH3", "Carol", "carol@example.com", "555-0102"),
		}

		require.NoError(t, store.Save(want))
		got, err := store.Load()
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("payments", func(t *testing.T) {
		store := NewStore[domain.Payment](filepath.Join(dir, "payment_data.json"), logging.Discard())
		paid := domain.NewPayment("PM2", "PH1", "PR1", 80.25, "2025-02-01")
		paid.Process()
		want := []domain.Payment{domain.NewPayment("PM1", "PH1", "PR1", 100, "2025-01-01"), paid}

		require.NoError(t, store.Save(want))
		got, err := store.Load()
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := NewStore[domain.Product](filepath.Join(t.TempDir(), "nested", "product_data.json"), logging.Discard())

	require.NoError(t, store.Save([]domain.Product{domain.NewProduct("PR1", "Basic", 100), domain.NewProduct("PR2", "Plus", 150)}))
	require.NoError(t, store.Save([]domain.Product{domain.NewProduct("PR3", "Max", 300)}))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PR3", got[0].ID)
}

func TestStore_SaveEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payment_data.json")
	store := NewStore[domain.Payment](path, logging.Discard())

	require.NoError(t, store.Save(nil))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

func TestStore_LoadFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payment_data.json")
	raw := `[
    {"payment_id": "PM1", "policyholder_id": "PH1", "product_id": "PR1", "amount": 100.0, "due_date": "2025-01-01", "status": "paid", "note": "ignored"},
    {"payment_id": "PM2", "policyholder_id": "PH2", "product_id": "PR1", "amount": 50, "due_date": "2025-03-01"}
]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	got, err := NewStore[domain.Payment](path, logging.Discard()).Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.StatusPaid, got[0].Status)
	assert.Equal(t, domain.StatusPending, got[1].Status, "missing status takes the constructor default")
	assert.Equal(t, 50.0, got[1].Amount)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "product_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"product_id": "PR1", "name": "Basic"`), 0o644))

	_, err := NewStore[domain.Product](path, logging.Discard()).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestStore_LoadRejectsTrailingData(t *testing.T) {
	for name, raw := range map[string]string{
		"garbage":      `[{"payment_id": "PM1", "status": "paid"}] {garbage`,
		"second array": "[]\n[]\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "payment_data.json")
			require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

			records, err := NewStore[domain.Payment](path, logging.Discard()).Load()
			require.ErrorIs(t, err, ErrTrailingData)
			assert.Nil(t, records)
		})
	}

	path := filepath.Join(t.TempDir(), "payment_data.json")
	require.NoError(t, os.WriteFile(path, []byte("[]\n\n  \n"), 0o644))
	records, err := NewStore[domain.Payment](path, logging.Discard()).Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_SaveUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	store := NewStore[domain.Product](filepath.Join(blocker, "product_data.json"), logging.Discard())
	require.Error(t, store.Save([]domain.Product{domain.NewProduct("PR1", "Basic", 100)}))
}
