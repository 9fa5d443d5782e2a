package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus is the persisted lifecycle state of a debt. Only PENDING and
// PAID are ever stored; OVERDUE exists purely as a derived display value.
type DebtStatus string

const (
	DebtStatusPending DebtStatus = "PENDING"
	DebtStatusPaid    DebtStatus = "PAID"
	DebtStatusOverdue DebtStatus = "OVERDUE"
)

// Debt is one lending agreement. Principal, interest and total are fixed at
// creation; only the outstanding balance, status and paid-at timestamp change
// afterwards, and only through payment application.
type Debt struct {
	ID                 string          `json:"id"`
	LenderID           string          `json:"lender_id"`
	DebtorID           string          `json:"debtor_id,omitempty"`
	DebtorPhone        string          `json:"debtor_phone,omitempty"`
	DebtorName         string          `json:"debtor_name,omitempty"`
	IsExternal         bool            `json:"is_external"`
	ExternalLenderName string          `json:"external_lender_name,omitempty"`
	Principal          decimal.Decimal `json:"principal"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	CalculatedInterest decimal.Decimal `json:"calculated_interest"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	DueDate            time.Time       `json:"due_date"`
	Status             DebtStatus      `json:"status"`
	Notes              string          `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	PaidAt             *time.Time      `json:"paid_at,omitempty"`
}

type PaymentStatus string

const (
	PaymentStatusSuccessful PaymentStatus = "SUCCESSFUL"
	PaymentStatusFailed     PaymentStatus = "FAILED"
)

// PaymentGateway tags where a payment came from. Informational only; it never
// affects ledger math.
type PaymentGateway string

const (
	GatewayManual PaymentGateway = "manual"
)

// Payment is one settlement event against a debt. Only SUCCESSFUL payments
// reduce the outstanding balance.
type Payment struct {
	ID         string          `json:"id"`
	DebtID     string          `json:"debt_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reference  string          `json:"reference"`
	Gateway    PaymentGateway  `json:"gateway"`
	Status     PaymentStatus   `json:"status"`
	Notes      string          `json:"notes,omitempty"`
	PaidAt     time.Time       `json:"paid_at"`
	RecordedBy string          `json:"recorded_by"`
}

type ActivityKind string

const (
	ActivityDebtCreated     ActivityKind = "debt.created"
	ActivityPaymentRecorded ActivityKind = "payment.recorded"
	ActivityDebtImported    ActivityKind = "debt.imported"
)

// Activity is one audit-trail entry, appended by the event pipeline after a
// ledger operation commits.
type Activity struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	DebtID    string          `json:"debt_id"`
	Kind      ActivityKind    `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

type ImportStatus string

const (
	ImportStatusProcessing ImportStatus = "processing"
	ImportStatusCompleted  ImportStatus = "completed"
	ImportStatusFailed     ImportStatus = "failed"
)

// Import tracks one bulk CSV import of external debts.
type Import struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	Status        ImportStatus `json:"status"`
	ProcessedRows int          `json:"processed_rows"`
	CreatedAt     time.Time    `json:"created_at"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
}

// ImportIssue is a rejected import row with the violated constraint.
type ImportIssue struct {
	LineNumber int    `json:"line_number"`
	Reason     string `json:"reason"`
}
