package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func debtAt(id, lender, debtor string, balance int64, created time.Time) *Debt {
	return &Debt{
		ID:                 id,
		LenderID:           lender,
		DebtorID:           debtor,
		OutstandingBalance: decimal.NewFromInt(balance),
		Status:             DebtStatusPending,
		DueDate:            created.AddDate(0, 1, 0),
		CreatedAt:          created,
	}
}

func TestDeriveDisplayStatus_Overdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	debt := &Debt{
		Status:  DebtStatusPending,
		DueDate: now.AddDate(0, 0, -1),
	}

	assert.Equal(t, DebtStatusOverdue, DeriveDisplayStatus(debt, now))
}

func TestDeriveDisplayStatus_PendingBeforeDueDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	debt := &Debt{
		Status:  DebtStatusPending,
		DueDate: now.AddDate(0, 0, 7),
	}

	assert.Equal(t, DebtStatusPending, DeriveDisplayStatus(debt, now))
}

func TestDeriveDisplayStatus_DueTodayIsNotOverdue(t *testing.T) {
	// Date-only comparison: due at 00:00 today, asked at 23:59 today.
	due := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)

	debt := &Debt{Status: DebtStatusPending, DueDate: due}

	assert.Equal(t, DebtStatusPending, DeriveDisplayStatus(debt, asOf))
}

func TestDeriveDisplayStatus_PaidWinsOverDueDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	debt := &Debt{
		Status:  DebtStatusPaid,
		DueDate: now.AddDate(0, 0, -30),
	}

	assert.Equal(t, DebtStatusPaid, DeriveDisplayStatus(debt, now))
}

func TestSummarize_Partition(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	me := "user-1"

	debts := []*Debt{
		debtAt("d1", me, "user-2", 30000, now.AddDate(0, 0, -3)),
		debtAt("d2", me, "user-3", 20000, now.AddDate(0, 0, -2)),
		debtAt("d3", "user-2", me, 15000, now.AddDate(0, 0, -1)),
		debtAt("d4", "user-4", "user-5", 99999, now), // not a party
	}

	s := Summarize(debts, me, now)

	assert.True(t, s.TotalLending.Equal(decimal.NewFromInt(50000)), "lending total %s", s.TotalLending)
	assert.Equal(t, 2, s.LendingCount)
	assert.True(t, s.TotalOwing.Equal(decimal.NewFromInt(15000)), "owing total %s", s.TotalOwing)
	assert.Equal(t, 1, s.OwingCount)
	assert.Len(t, s.RecentDebts, 3)
}

func TestSummarize_ExternalDebtCountsAsOwing(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	me := "user-1"

	external := debtAt("d1", me, "", 5000, now)
	external.IsExternal = true
	external.ExternalLenderName = "Mama Nkechi"

	s := Summarize([]*Debt{external}, me, now)

	assert.Equal(t, 0, s.LendingCount)
	assert.Equal(t, 1, s.OwingCount)
	assert.True(t, s.TotalOwing.Equal(decimal.NewFromInt(5000)))
}

func TestSummarize_OverdueFilter(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	me := "user-1"

	overdue := debtAt("d1", me, "user-2", 1000, now.AddDate(0, 0, -40))
	overdue.DueDate = now.AddDate(0, 0, -10)

	current := debtAt("d2", me, "user-3", 2000, now)

	paid := debtAt("d3", me, "user-4", 0, now.AddDate(0, 0, -60))
	paid.DueDate = now.AddDate(0, 0, -30)
	paid.Status = DebtStatusPaid

	s := Summarize([]*Debt{overdue, current, paid}, me, now)

	assert.Len(t, s.OverdueDebts, 1)
	assert.Equal(t, "d1", s.OverdueDebts[0].ID)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	me := "user-1"

	a := debtAt("a", me, "user-2", 100, now.AddDate(0, 0, -1))
	b := debtAt("b", me, "user-3", 200, now.AddDate(0, 0, -2))
	c := debtAt("c", "user-2", me, 300, now.AddDate(0, 0, -3))

	s1 := Summarize([]*Debt{a, b, c}, me, now)
	s2 := Summarize([]*Debt{c, b, a}, me, now)

	assert.True(t, s1.TotalLending.Equal(s2.TotalLending))
	assert.True(t, s1.TotalOwing.Equal(s2.TotalOwing))
	assert.Equal(t, s1.LendingCount, s2.LendingCount)
	assert.Equal(t, s1.OwingCount, s2.OwingCount)

	for i := range s1.RecentDebts {
		assert.Equal(t, s1.RecentDebts[i].ID, s2.RecentDebts[i].ID)
	}
}

func TestSummarize_RecencyTieBreaksByID(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	me := "user-1"

	x := debtAt("x", me, "user-2", 100, now)
	y := debtAt("y", me, "user-3", 200, now)

	s := Summarize([]*Debt{y, x}, me, now)

	assert.Equal(t, "x", s.RecentDebts[0].ID)
	assert.Equal(t, "y", s.RecentDebts[1].ID)
}
