package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository is the persistence collaborator. Implementations must make
// RecordPayment atomic: the payment row and the debt update commit together
// or not at all, and the debt update is conditional on the outstanding
// balance still equalling expectedBalance (ErrBalanceConflict otherwise).
type Repository interface {
	// Debt operations
	CreateDebt(ctx context.Context, debt *Debt) error
	GetDebt(ctx context.Context, debtID string) (*Debt, error)
	ListDebtsByUser(ctx context.Context, userID string) ([]*Debt, error)

	// Payment operations
	RecordPayment(ctx context.Context, payment *Payment, updated *Debt, expectedBalance decimal.Decimal) error
	ListPayments(ctx context.Context, debtID string) ([]*Payment, error)

	// Import bookkeeping
	CreateImport(ctx context.Context, imp *Import) error
	GetImport(ctx context.Context, importID string) (*Import, error)
	UpdateImportStatus(ctx context.Context, importID string, status ImportStatus) error
	IncrementProcessedRows(ctx context.Context, importID string) error
	AddImportIssue(ctx context.Context, importID string, issue ImportIssue) error
	GetImportIssues(ctx context.Context, importID string, page, perPage int) ([]ImportIssue, int, error)

	// Audit trail
	AppendActivity(ctx context.Context, activity *Activity) error
	ListActivity(ctx context.Context, userID string, limit int) ([]*Activity, error)

	// Idempotency tracking for event consumers
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}
