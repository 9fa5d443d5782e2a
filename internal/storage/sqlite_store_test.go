package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x17green/debtledger/internal/domain"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbFile := filepath.Join(t.TempDir(), "ledger_test.db")
	store, err := NewSQLiteStore(dbFile)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
		os.Remove(dbFile)
	})

	return store
}

func TestSQLiteStore_CreateAndGetDebt(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	debt := newTestDebt("debt-1", 108000)
	debt.InterestRate = decimal.NewFromInt(8)
	debt.Principal = decimal.NewFromInt(100000)
	debt.CalculatedInterest = decimal.NewFromInt(8000)
	debt.Notes = "laptop money"

	require.NoError(t, store.CreateDebt(ctx, debt))

	got, err := store.GetDebt(ctx, "debt-1")
	require.NoError(t, err)
	assert.Equal(t, debt.ID, got.ID)
	assert.Equal(t, debt.LenderID, got.LenderID)
	assert.True(t, got.Principal.Equal(decimal.NewFromInt(100000)))
	assert.True(t, got.CalculatedInterest.Equal(decimal.NewFromInt(8000)))
	assert.True(t, got.OutstandingBalance.Equal(decimal.NewFromInt(108000)))
	assert.Equal(t, "laptop money", got.Notes)
	assert.Nil(t, got.PaidAt)
}

func TestSQLiteStore_GetDebt_NotFound(t *testing.T) {
	store := newSQLiteStore(t)

	_, err := store.GetDebt(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrDebtNotFound)
}

func TestSQLiteStore_RecordPayment_ConditionalUpdate(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	debt := newTestDebt("debt-1", 100)
	require.NoError(t, store.CreateDebt(ctx, debt))

	// First payment based on the current balance commits.
	updated := *debt
	updated.OutstandingBalance = decimal.NewFromInt(40)
	require.NoError(t, store.RecordPayment(ctx, newTestPayment("debt-1", "ref-1", 60), &updated, debt.OutstandingBalance))

	// Second payment based on the stale balance conflicts.
	stale := *debt
	stale.OutstandingBalance = decimal.NewFromInt(40)
	err := store.RecordPayment(ctx, newTestPayment("debt-1", "ref-2", 60), &stale, debt.OutstandingBalance)
	assert.ErrorIs(t, err, domain.ErrBalanceConflict)

	got, err := store.GetDebt(ctx, "debt-1")
	require.NoError(t, err)
	assert.True(t, got.OutstandingBalance.Equal(decimal.NewFromInt(40)))

	payments, err := store.ListPayments(ctx, "debt-1")
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestSQLiteStore_RecordPayment_SettlesDebt(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	debt := newTestDebt("debt-1", 500)
	require.NoError(t, store.CreateDebt(ctx, debt))

	now := time.Now().UTC()
	updated := *debt
	updated.OutstandingBalance = decimal.Zero
	updated.Status = domain.DebtStatusPaid
	updated.PaidAt = &now

	require.NoError(t, store.RecordPayment(ctx, newTestPayment("debt-1", "ref-1", 500), &updated, debt.OutstandingBalance))

	got, err := store.GetDebt(ctx, "debt-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DebtStatusPaid, got.Status)
	assert.True(t, got.OutstandingBalance.IsZero())
	assert.NotNil(t, got.PaidAt)
}

func TestSQLiteStore_RecordPayment_DuplicateReference(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	debt := newTestDebt("debt-1", 100)
	require.NoError(t, store.CreateDebt(ctx, debt))

	first := *debt
	first.OutstandingBalance = decimal.NewFromInt(90)
	require.NoError(t, store.RecordPayment(ctx, newTestPayment("debt-1", "ref-1", 10), &first, debt.OutstandingBalance))

	second := first
	second.OutstandingBalance = decimal.NewFromInt(80)
	dup := newTestPayment("debt-1", "ref-1", 10)
	dup.ID = "pay-other"
	err := store.RecordPayment(ctx, dup, &second, first.OutstandingBalance)
	assert.ErrorIs(t, err, domain.ErrDuplicateReference)

	// The conflicting transaction rolled back entirely.
	got, err := store.GetDebt(ctx, "debt-1")
	require.NoError(t, err)
	assert.True(t, got.OutstandingBalance.Equal(decimal.NewFromInt(90)))
}

func TestSQLiteStore_ListDebtsByUser(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	lending := newTestDebt("debt-1", 100)
	require.NoError(t, store.CreateDebt(ctx, lending))

	owing := newTestDebt("debt-2", 200)
	owing.LenderID = "other"
	owing.DebtorID = "lender-1"
	require.NoError(t, store.CreateDebt(ctx, owing))

	unrelated := newTestDebt("debt-3", 300)
	unrelated.LenderID = "a"
	unrelated.DebtorID = "b"
	require.NoError(t, store.CreateDebt(ctx, unrelated))

	debts, err := store.ListDebtsByUser(ctx, "lender-1")
	require.NoError(t, err)
	assert.Len(t, debts, 2)
}

func TestSQLiteStore_ImportRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	imp := &domain.Import{
		ID:        "import-1",
		UserID:    "user-1",
		Status:    domain.ImportStatusProcessing,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.CreateImport(ctx, imp))

	require.NoError(t, store.IncrementProcessedRows(ctx, "import-1"))
	require.NoError(t, store.IncrementProcessedRows(ctx, "import-1"))
	require.NoError(t, store.AddImportIssue(ctx, "import-1", domain.ImportIssue{LineNumber: 3, Reason: "due_date: must not be in the past"}))
	require.NoError(t, store.UpdateImportStatus(ctx, "import-1", domain.ImportStatusCompleted))

	got, err := store.GetImport(ctx, "import-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ImportStatusCompleted, got.Status)
	assert.Equal(t, 2, got.ProcessedRows)
	assert.NotNil(t, got.CompletedAt)

	issues, total, err := store.GetImportIssues(ctx, "import-1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, issues, 1)
	assert.Equal(t, 3, issues[0].LineNumber)
}

func TestSQLiteStore_ActivityAndIdempotency(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	require.NoError(t, store.AppendActivity(ctx, &domain.Activity{
		ID: "a1", UserID: "user-1", DebtID: "debt-1",
		Kind: domain.ActivityDebtCreated, Amount: decimal.NewFromInt(500), CreatedAt: base,
	}))
	require.NoError(t, store.AppendActivity(ctx, &domain.Activity{
		ID: "a2", UserID: "user-1", DebtID: "debt-1",
		Kind: domain.ActivityPaymentRecorded, Amount: decimal.NewFromInt(100), CreatedAt: base.Add(time.Second),
	}))

	activities, err := store.ListActivity(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "a2", activities[0].ID)

	processed, err := store.IsEventProcessed(ctx, "ev-1")
	require.NoError(t, err)
	assert.False(t, processed)

	require.NoError(t, store.MarkEventProcessed(ctx, "ev-1"))
	require.NoError(t, store.MarkEventProcessed(ctx, "ev-1")) // idempotent

	processed, err = store.IsEventProcessed(ctx, "ev-1")
	require.NoError(t, err)
	assert.True(t, processed)
}
