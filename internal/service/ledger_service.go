package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/x17green/debtledger/internal/config"
	"github.com/x17green/debtledger/internal/domain"
	"github.com/x17green/debtledger/internal/eventbus"
	"github.com/x17green/debtledger/pkg/logger"
	"github.com/x17green/debtledger/pkg/money"
	"github.com/x17green/debtledger/pkg/validate"
)

var (
	oneHundred     = decimal.NewFromInt(100)
	defaultCeiling = decimal.NewFromInt(10_000_000)
)

// CreateDebtInput is raw user input for debt creation. Amounts arrive as the
// text the user typed; parsing and validation happen here, not in the
// transport layer.
type CreateDebtInput struct {
	DebtorID           string
	DebtorPhone        string
	DebtorName         string
	IsExternal         bool
	ExternalLenderName string
	Principal          string
	InterestRate       string
	DueDate            time.Time
	Notes              string
}

type RecordPaymentInput struct {
	Amount    string
	Notes     string
	Reference string
	Gateway   domain.PaymentGateway
}

type LedgerService interface {
	CreateDebt(ctx context.Context, actorID string, in CreateDebtInput) (*domain.Debt, error)
	RecordPayment(ctx context.Context, actorID, debtID string, in RecordPaymentInput) (*domain.Debt, *domain.Payment, error)
	GetDebt(ctx context.Context, actorID, debtID string) (*domain.Debt, error)
	ListDebts(ctx context.Context, actorID string) ([]*domain.Debt, error)
	ListPayments(ctx context.Context, actorID, debtID string) ([]*domain.Payment, error)
	Summary(ctx context.Context, actorID string) (*domain.Summary, error)
	ListActivity(ctx context.Context, actorID string, limit int) ([]*domain.Activity, error)
	CreateImportedDebt(ctx context.Context, row eventbus.ImportRowEvent) (*domain.Debt, error)
}

type ledgerService struct {
	repo               domain.Repository
	bus                eventbus.EventBus
	logger             *logger.Logger
	maxDebtAmount      decimal.Decimal
	maxConflictRetries int
}

func NewLedgerService(repo domain.Repository, bus eventbus.EventBus, log *logger.Logger, cfg config.LedgerConfig) LedgerService {
	ceiling, err := decimal.NewFromString(cfg.MaxDebtAmount)
	if err != nil || ceiling.LessThanOrEqual(decimal.Zero) {
		ceiling = defaultCeiling
	}

	retries := cfg.MaxConflictRetries
	if retries < 1 {
		retries = 3
	}

	return &ledgerService{
		repo:               repo,
		bus:                bus,
		logger:             log,
		maxDebtAmount:      ceiling,
		maxConflictRetries: retries,
	}
}

func (s *ledgerService) CreateDebt(ctx context.Context, actorID string, in CreateDebtInput) (*domain.Debt, error) {
	ctx = logger.WithActorID(ctx, actorID)

	debt, err := s.buildDebt(actorID, in)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithDebtID(ctx, debt.ID)

	if err := s.repo.CreateDebt(ctx, debt); err != nil {
		s.logger.Error(ctx, "Failed to create debt",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Debt created",
		"total_amount", debt.TotalAmount.String(),
		"due_date", debt.DueDate.Format("2006-01-02"),
	)

	s.publishActivity(ctx, domain.ActivityDebtCreated, actorID, debt.ID, debt.TotalAmount)

	return debt, nil
}

// buildDebt validates raw input and assembles a pending debt. Interest is
// simple annualized percent of principal, computed once at creation and
// frozen: interest = round2(principal * rate / 100), total = principal +
// interest, outstanding = total.
func (s *ledgerService) buildDebt(actorID string, in CreateDebtInput) (*domain.Debt, error) {
	principal, err := money.Parse(in.Principal)
	if err != nil {
		return nil, domain.NewValidationError("principal", err.Error())
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError("principal", "must be greater than zero")
	}
	if principal.GreaterThan(s.maxDebtAmount) {
		return nil, domain.NewValidationError("principal", fmt.Sprintf("exceeds maximum debt amount of %s", money.Format(s.maxDebtAmount)))
	}

	rate := decimal.Zero
	if strings.TrimSpace(in.InterestRate) != "" {
		rate, err = decimal.NewFromString(strings.TrimSpace(in.InterestRate))
		if err != nil {
			return nil, domain.NewValidationError("interest_rate", "must be a number")
		}
	}
	if rate.IsNegative() || rate.GreaterThan(oneHundred) {
		return nil, domain.NewValidationError("interest_rate", "must be between 0 and 100")
	}

	if in.DueDate.IsZero() {
		return nil, domain.NewValidationError("due_date", "is required")
	}
	if startOfDay(in.DueDate).Before(startOfDay(time.Now())) {
		return nil, domain.NewValidationError("due_date", "must not be in the past")
	}

	debtorPhone := ""
	if in.IsExternal {
		if strings.TrimSpace(in.ExternalLenderName) == "" {
			return nil, domain.NewValidationError("external_lender_name", "is required for external debts")
		}
	} else {
		if in.DebtorID == "" && strings.TrimSpace(in.DebtorPhone) == "" {
			return nil, domain.NewValidationError("debtor", "a debtor id or phone number is required")
		}
		if strings.TrimSpace(in.DebtorPhone) != "" {
			debtorPhone, err = validate.NormalizePhone(in.DebtorPhone)
			if err != nil {
				return nil, domain.NewValidationError("debtor_phone", err.Error())
			}
		}
	}

	interest := principal.Mul(rate).Div(oneHundred).Round(2)
	total := principal.Add(interest)

	now := time.Now().UTC()

	return &domain.Debt{
		ID:                 uuid.New().String(),
		LenderID:           actorID,
		DebtorID:           in.DebtorID,
		DebtorPhone:        debtorPhone,
		DebtorName:         strings.TrimSpace(in.DebtorName),
		IsExternal:         in.IsExternal,
		ExternalLenderName: strings.TrimSpace(in.ExternalLenderName),
		Principal:          principal,
		InterestRate:       rate,
		CalculatedInterest: interest,
		TotalAmount:        total,
		OutstandingBalance: total,
		DueDate:            in.DueDate,
		Status:             domain.DebtStatusPending,
		Notes:              in.Notes,
		CreatedAt:          now,
	}, nil
}

func (s *ledgerService) RecordPayment(ctx context.Context, actorID, debtID string, in RecordPaymentInput) (*domain.Debt, *domain.Payment, error) {
	ctx = logger.WithActorID(ctx, actorID)
	ctx = logger.WithDebtID(ctx, debtID)

	amount, err := money.Parse(in.Amount)
	if err != nil {
		return nil, nil, domain.NewValidationError("amount", err.Error())
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, domain.NewValidationError("amount", "must be greater than zero")
	}

	// Optimistic concurrency: re-read the debt and commit conditionally on
	// the balance being unchanged. A conflict restarts from the read, never
	// from a cached balance.
	for attempt := 0; attempt <= s.maxConflictRetries; attempt++ {
		debt, err := s.repo.GetDebt(ctx, debtID)
		if err != nil {
			return nil, nil, err
		}

		if debt.LenderID != actorID {
			return nil, nil, &domain.AuthorizationError{Message: "only the lender can record a payment"}
		}
		if debt.Status != domain.DebtStatusPending {
			return nil, nil, &domain.InvalidStateError{Message: "cannot pay a settled debt"}
		}
		if amount.GreaterThan(debt.OutstandingBalance) {
			return nil, nil, domain.NewValidationError("amount", fmt.Sprintf("exceeds outstanding balance of %s", money.Format(debt.OutstandingBalance)))
		}

		now := time.Now().UTC()

		updated := *debt
		updated.OutstandingBalance = debt.OutstandingBalance.Sub(amount)
		if updated.OutstandingBalance.IsZero() {
			updated.Status = domain.DebtStatusPaid
			updated.PaidAt = &now
		}

		payment := &domain.Payment{
			ID:         uuid.New().String(),
			DebtID:     debtID,
			Amount:     amount,
			Reference:  paymentReference(in.Reference),
			Gateway:    paymentGateway(in.Gateway),
			Status:     domain.PaymentStatusSuccessful,
			Notes:      in.Notes,
			PaidAt:     now,
			RecordedBy: actorID,
		}

		err = s.repo.RecordPayment(ctx, payment, &updated, debt.OutstandingBalance)
		if errors.Is(err, domain.ErrBalanceConflict) {
			s.logger.Warn(ctx, "Concurrent balance change, retrying payment",
				"attempt", attempt+1,
			)
			continue
		}
		if err != nil {
			s.logger.Error(ctx, "Failed to record payment",
				"error", err,
			)
			return nil, nil, err
		}

		s.logger.Info(ctx, "Payment recorded",
			"payment_id", payment.ID,
			"amount", amount.String(),
			"new_balance", updated.OutstandingBalance.String(),
			"status", updated.Status,
		)

		s.publishActivity(ctx, domain.ActivityPaymentRecorded, actorID, debtID, amount)

		return &updated, payment, nil
	}

	return nil, nil, fmt.Errorf("payment retries exhausted: %w", domain.ErrBalanceConflict)
}

func (s *ledgerService) GetDebt(ctx context.Context, actorID, debtID string) (*domain.Debt, error) {
	ctx = logger.WithActorID(ctx, actorID)
	ctx = logger.WithDebtID(ctx, debtID)

	debt, err := s.repo.GetDebt(ctx, debtID)
	if err != nil {
		return nil, err
	}

	if !isParty(debt, actorID) {
		return nil, &domain.AuthorizationError{Message: "not a party to this debt"}
	}

	return debt, nil
}

func (s *ledgerService) ListDebts(ctx context.Context, actorID string) ([]*domain.Debt, error) {
	ctx = logger.WithActorID(ctx, actorID)
	return s.repo.ListDebtsByUser(ctx, actorID)
}

func (s *ledgerService) ListPayments(ctx context.Context, actorID, debtID string) ([]*domain.Payment, error) {
	if _, err := s.GetDebt(ctx, actorID, debtID); err != nil {
		return nil, err
	}
	return s.repo.ListPayments(ctx, debtID)
}

func (s *ledgerService) Summary(ctx context.Context, actorID string) (*domain.Summary, error) {
	ctx = logger.WithActorID(ctx, actorID)

	debts, err := s.repo.ListDebtsByUser(ctx, actorID)
	if err != nil {
		s.logger.Error(ctx, "Failed to list debts for summary",
			"error", err,
		)
		return nil, err
	}

	return domain.Summarize(debts, actorID, time.Now()), nil
}

func (s *ledgerService) ListActivity(ctx context.Context, actorID string, limit int) ([]*domain.Activity, error) {
	ctx = logger.WithActorID(ctx, actorID)

	if limit < 1 || limit > 100 {
		limit = 20
	}

	return s.repo.ListActivity(ctx, actorID, limit)
}

// CreateImportedDebt applies one bulk-import row as an external debt owed by
// the importing user. It runs the same validation as interactive creation.
func (s *ledgerService) CreateImportedDebt(ctx context.Context, row eventbus.ImportRowEvent) (*domain.Debt, error) {
	dueDate, err := time.Parse("2006-01-02", strings.TrimSpace(row.DueDate))
	if err != nil {
		return nil, domain.NewValidationError("due_date", "must be a date in YYYY-MM-DD format")
	}

	debt, err := s.buildDebt(row.UserID, CreateDebtInput{
		IsExternal:         true,
		ExternalLenderName: row.ExternalLenderName,
		Principal:          row.Principal,
		InterestRate:       row.InterestRate,
		DueDate:            dueDate,
		Notes:              row.Notes,
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithDebtID(ctx, debt.ID)

	if err := s.repo.CreateDebt(ctx, debt); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, domain.ActivityDebtImported, row.UserID, debt.ID, debt.TotalAmount)

	return debt, nil
}

func (s *ledgerService) publishActivity(ctx context.Context, kind domain.ActivityKind, userID, debtID string, amount decimal.Decimal) {
	event := eventbus.Event{
		ID:   uuid.New().String(),
		Type: eventbus.EventTypeActivity,
		Payload: eventbus.ActivityEvent{
			UserID: userID,
			DebtID: debtID,
			Kind:   kind,
			Amount: amount,
		},
		Timestamp: time.Now().UTC(),
	}

	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Warn(ctx, "Failed to publish activity event",
			"kind", kind,
			"error", err,
		)
	}
}

func paymentReference(supplied string) string {
	if supplied != "" {
		return supplied
	}
	return "MAN-" + uuid.New().String()
}

func paymentGateway(supplied domain.PaymentGateway) domain.PaymentGateway {
	if supplied != "" {
		return supplied
	}
	return domain.GatewayManual
}

func isParty(debt *domain.Debt, userID string) bool {
	return debt.LenderID == userID || (debt.DebtorID != "" && debt.DebtorID == userID)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
