package eventbus

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x17green/debtledger/internal/domain"
)

type EventType string

const (
	EventTypeActivity  EventType = "activity"
	EventTypeImportRow EventType = "import.row"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	Retries   int         `json:"retries"`
}

// ActivityEvent is published after a ledger write commits. It feeds the audit
// trail only; the ledger state is already durable when it is emitted.
type ActivityEvent struct {
	UserID string              `json:"user_id"`
	DebtID string              `json:"debt_id"`
	Kind   domain.ActivityKind `json:"kind"`
	Amount decimal.Decimal     `json:"amount"`
}

// ImportRowEvent carries one parsed CSV row of a bulk external-debt import.
// Amounts stay as raw text so the ledger service applies the same validation
// as interactive debt creation.
type ImportRowEvent struct {
	ImportID           string `json:"import_id"`
	UserID             string `json:"user_id"`
	LineNumber         int    `json:"line_number"`
	ExternalLenderName string `json:"external_lender_name"`
	Principal          string `json:"principal"`
	InterestRate       string `json:"interest_rate"`
	DueDate            string `json:"due_date"`
	Notes              string `json:"notes"`
}
