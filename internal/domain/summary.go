package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the dashboard aggregate for one user: what they are owed, what
// they owe, and which debts are overdue as of the query time.
type Summary struct {
	TotalLending decimal.Decimal `json:"total_lending"`
	LendingCount int             `json:"lending_count"`
	TotalOwing   decimal.Decimal `json:"total_owing"`
	OwingCount   int             `json:"owing_count"`
	OverdueDebts []*Debt         `json:"overdue_debts"`
	RecentDebts  []*Debt         `json:"recent_debts"`
}

const recentDebtsLimit = 5

// DeriveDisplayStatus computes the display status of a debt as of a given
// date. PAID wins unconditionally; otherwise a pending debt whose due date
// has passed (date-only comparison) shows as OVERDUE. The result is never
// persisted.
func DeriveDisplayStatus(debt *Debt, asOf time.Time) DebtStatus {
	if debt.Status == DebtStatusPaid {
		return DebtStatusPaid
	}
	if dateOnly(debt.DueDate).Before(dateOnly(asOf)) {
		return DebtStatusOverdue
	}
	return DebtStatusPending
}

// Summarize folds a list of debts into the dashboard aggregate for userID.
// It is pure and order-independent: input ordering never affects the output.
//
// Role partition: an external debt recorded by the user counts toward the
// owing set (the named external party is the lender); otherwise the user is
// lending when they hold lender_id and owing when they are the counterparty.
func Summarize(debts []*Debt, userID string, asOf time.Time) *Summary {
	s := &Summary{
		TotalLending: decimal.Zero,
		TotalOwing:   decimal.Zero,
		OverdueDebts: []*Debt{},
		RecentDebts:  []*Debt{},
	}

	var mine []*Debt
	for _, d := range debts {
		owing := (d.IsExternal && d.LenderID == userID) || (!d.IsExternal && d.DebtorID == userID)
		lending := !d.IsExternal && d.LenderID == userID

		switch {
		case lending:
			s.TotalLending = s.TotalLending.Add(d.OutstandingBalance)
			s.LendingCount++
		case owing:
			s.TotalOwing = s.TotalOwing.Add(d.OutstandingBalance)
			s.OwingCount++
		default:
			continue
		}

		mine = append(mine, d)
		if DeriveDisplayStatus(d, asOf) == DebtStatusOverdue {
			s.OverdueDebts = append(s.OverdueDebts, d)
		}
	}

	sortByRecency(s.OverdueDebts)
	sortByRecency(mine)

	if len(mine) > recentDebtsLimit {
		mine = mine[:recentDebtsLimit]
	}
	s.RecentDebts = append(s.RecentDebts, mine...)

	return s
}

// sortByRecency orders debts by created-at descending, breaking ties by ID
// so output is deterministic.
func sortByRecency(debts []*Debt) {
	sort.Slice(debts, func(i, j int) bool {
		if !debts[i].CreatedAt.Equal(debts[j].CreatedAt) {
			return debts[i].CreatedAt.After(debts[j].CreatedAt)
		}
		return debts[i].ID < debts[j].ID
	})
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
