package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x17green/debtledger/internal/config"
	"github.com/x17green/debtledger/internal/domain"
	"github.com/x17green/debtledger/internal/eventbus"
	"github.com/x17green/debtledger/internal/storage"
	"github.com/x17green/debtledger/mocks"
	"github.com/x17green/debtledger/pkg/logger"
)

func newTestService(t *testing.T, repo domain.Repository) LedgerService {
	t.Helper()
	return NewLedgerService(repo, eventbus.New(logger.NewNop(), nil), logger.NewNop(), config.LedgerConfig{
		MaxDebtAmount:      "10000000",
		MaxConflictRetries: 3,
	})
}

func validDebtInput() CreateDebtInput {
	return CreateDebtInput{
		DebtorPhone:  "08012345678",
		DebtorName:   "Ada Obi",
		Principal:    "100000",
		InterestRate: "8",
		DueDate:      time.Now().AddDate(0, 1, 0),
	}
}

func TestCreateDebt_ComputesInterestAndTotal(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	debt, err := svc.CreateDebt(ctx, "lender-1", validDebtInput())
	require.NoError(t, err)

	assert.True(t, debt.Principal.Equal(decimal.NewFromInt(100000)))
	assert.True(t, debt.CalculatedInterest.Equal(decimal.NewFromInt(8000)), "interest was %s", debt.CalculatedInterest)
	assert.True(t, debt.TotalAmount.Equal(decimal.NewFromInt(108000)))
	assert.True(t, debt.OutstandingBalance.Equal(debt.TotalAmount))
	assert.Equal(t, domain.DebtStatusPending, debt.Status)
	assert.Equal(t, "lender-1", debt.LenderID)
	assert.Equal(t, "+2348012345678", debt.DebtorPhone)
	assert.Nil(t, debt.PaidAt)
}

func TestCreateDebt_InterestRoundsToKobo(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())

	in := validDebtInput()
	in.Principal = "999.99"
	in.InterestRate = "3.5"

	debt, err := svc.CreateDebt(context.Background(), "lender-1", in)
	require.NoError(t, err)

	// 999.99 * 3.5% = 34.99965, rounds to 35.00
	assert.Equal(t, "35", debt.CalculatedInterest.String())
	assert.Equal(t, "1034.99", debt.TotalAmount.String())
}

func TestCreateDebt_ZeroRateByDefault(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())

	in := validDebtInput()
	in.InterestRate = ""

	debt, err := svc.CreateDebt(context.Background(), "lender-1", in)
	require.NoError(t, err)

	assert.True(t, debt.CalculatedInterest.IsZero())
	assert.True(t, debt.TotalAmount.Equal(debt.Principal))
}

func TestCreateDebt_ValidationErrors(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*CreateDebtInput)
		field  string
	}{
		{
			name:   "empty principal",
			mutate: func(in *CreateDebtInput) { in.Principal = "" },
			field:  "principal",
		},
		{
			name:   "zero principal",
			mutate: func(in *CreateDebtInput) { in.Principal = "0" },
			field:  "principal",
		},
		{
			name:   "principal above ceiling",
			mutate: func(in *CreateDebtInput) { in.Principal = "10000001" },
			field:  "principal",
		},
		{
			name:   "negative interest rate",
			mutate: func(in *CreateDebtInput) { in.InterestRate = "-1" },
			field:  "interest_rate",
		},
		{
			name:   "interest rate above 100",
			mutate: func(in *CreateDebtInput) { in.InterestRate = "100.5" },
			field:  "interest_rate",
		},
		{
			name:   "missing due date",
			mutate: func(in *CreateDebtInput) { in.DueDate = time.Time{} },
			field:  "due_date",
		},
		{
			name:   "due date in the past",
			mutate: func(in *CreateDebtInput) { in.DueDate = time.Now().AddDate(0, 0, -1) },
			field:  "due_date",
		},
		{
			name: "no debtor identity",
			mutate: func(in *CreateDebtInput) {
				in.DebtorID = ""
				in.DebtorPhone = ""
			},
			field: "debtor",
		},
		{
			name:   "malformed phone",
			mutate: func(in *CreateDebtInput) { in.DebtorPhone = "12345" },
			field:  "debtor_phone",
		},
		{
			name: "external without lender name",
			mutate: func(in *CreateDebtInput) {
				in.IsExternal = true
				in.ExternalLenderName = ""
			},
			field: "external_lender_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validDebtInput()
			tt.mutate(&in)

			_, err := svc.CreateDebt(ctx, "lender-1", in)
			require.Error(t, err)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCreateDebt_DueToday(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())

	in := validDebtInput()
	in.DueDate = time.Now()

	_, err := svc.CreateDebt(context.Background(), "lender-1", in)
	assert.NoError(t, err, "a debt due today is not in the past")
}

func TestRecordPayment_PartialThenSettle(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	in := validDebtInput()
	in.Principal = "50000"
	in.InterestRate = ""

	debt, err := svc.CreateDebt(ctx, "lender-1", in)
	require.NoError(t, err)

	updated, payment, err := svc.RecordPayment(ctx, "lender-1", debt.ID, RecordPaymentInput{Amount: "20000"})
	require.NoError(t, err)
	assert.Equal(t, "30000", updated.OutstandingBalance.String())
	assert.Equal(t, domain.DebtStatusPending, updated.Status)
	assert.Nil(t, updated.PaidAt)
	assert.Equal(t, domain.PaymentStatusSuccessful, payment.Status)
	assert.Equal(t, domain.GatewayManual, payment.Gateway)
	assert.NotEmpty(t, payment.Reference)

	updated, _, err = svc.RecordPayment(ctx, "lender-1", debt.ID, RecordPaymentInput{Amount: "30000"})
	require.NoError(t, err)
	assert.True(t, updated.OutstandingBalance.IsZero())
	assert.Equal(t, domain.DebtStatusPaid, updated.Status)
	require.NotNil(t, updated.PaidAt)

	// A settled debt accepts no further payments.
	_, _, err = svc.RecordPayment(ctx, "lender-1", debt.ID, RecordPaymentInput{Amount: "1"})
	require.Error(t, err)
	assert.True(t, domain.IsInvalidState(err))

	payments, err := svc.ListPayments(ctx, "lender-1", debt.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestRecordPayment_Overpayment(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	in := validDebtInput()
	in.Principal = "50000"
	in.InterestRate = ""

	debt, err := svc.CreateDebt(ctx, "lender-1", in)
	require.NoError(t, err)

	_, _, err = svc.RecordPayment(ctx, "lender-1", debt.ID, RecordPaymentInput{Amount: "50000.01"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	got, err := svc.GetDebt(ctx, "lender-1", debt.ID)
	require.NoError(t, err)
	assert.True(t, got.OutstandingBalance.Equal(decimal.NewFromInt(50000)), "a rejected payment must not touch the balance")
}

func TestRecordPayment_OnlyLenderMayRecord(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	in := validDebtInput()
	in.DebtorID = "debtor-1"

	debt, err := svc.CreateDebt(ctx, "lender-1", in)
	require.NoError(t, err)

	_, _, err = svc.RecordPayment(ctx, "debtor-1", debt.ID, RecordPaymentInput{Amount: "100"})
	require.Error(t, err)
	assert.True(t, domain.IsAuthorization(err))
}

func TestRecordPayment_InvalidAmount(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())

	_, _, err := svc.RecordPayment(context.Background(), "lender-1", "debt-1", RecordPaymentInput{Amount: "-50"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestRecordPayment_DebtNotFound(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())

	_, _, err := svc.RecordPayment(context.Background(), "lender-1", "missing", RecordPaymentInput{Amount: "100"})
	assert.ErrorIs(t, err, domain.ErrDebtNotFound)
}

func TestRecordPayment_RetriesOnBalanceConflict(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	svc := newTestService(t, repo)
	ctx := context.Background()

	debt := &domain.Debt{
		ID:                 "debt-1",
		LenderID:           "lender-1",
		Principal:          decimal.NewFromInt(1000),
		TotalAmount:        decimal.NewFromInt(1000),
		OutstandingBalance: decimal.NewFromInt(1000),
		Status:             domain.DebtStatusPending,
		DueDate:            time.Now().AddDate(0, 1, 0),
		CreatedAt:          time.Now(),
	}

	// First commit loses the race; the retry re-reads and succeeds.
	repo.EXPECT().GetDebt(mock.Anything, "debt-1").Return(debt, nil).Twice()
	repo.EXPECT().RecordPayment(mock.Anything, mock.Anything, mock.Anything, decimal.NewFromInt(1000)).
		Return(domain.ErrBalanceConflict).Once()
	repo.EXPECT().RecordPayment(mock.Anything, mock.Anything, mock.Anything, decimal.NewFromInt(1000)).
		Return(nil).Once()

	updated, _, err := svc.RecordPayment(ctx, "lender-1", "debt-1", RecordPaymentInput{Amount: "400"})
	require.NoError(t, err)
	assert.Equal(t, "600", updated.OutstandingBalance.String())
}

func TestRecordPayment_ConflictRetriesExhausted(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	svc := newTestService(t, repo)

	debt := &domain.Debt{
		ID:                 "debt-1",
		LenderID:           "lender-1",
		OutstandingBalance: decimal.NewFromInt(1000),
		Status:             domain.DebtStatusPending,
	}

	repo.EXPECT().GetDebt(mock.Anything, "debt-1").Return(debt, nil).Times(4)
	repo.EXPECT().RecordPayment(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrBalanceConflict).Times(4)

	_, _, err := svc.RecordPayment(context.Background(), "lender-1", "debt-1", RecordPaymentInput{Amount: "400"})
	assert.ErrorIs(t, err, domain.ErrBalanceConflict)
}

func TestRecordPayment_KeepsSuppliedReference(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	in := validDebtInput()
	in.InterestRate = ""

	debt, err := svc.CreateDebt(ctx, "lender-1", in)
	require.NoError(t, err)

	_, payment, err := svc.RecordPayment(ctx, "lender-1", debt.ID, RecordPaymentInput{
		Amount:    "100",
		Reference: "BANK-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "BANK-123", payment.Reference)
}

func TestGetDebt_PartiesOnly(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	in := validDebtInput()
	in.DebtorID = "debtor-1"

	debt, err := svc.CreateDebt(ctx, "lender-1", in)
	require.NoError(t, err)

	_, err = svc.GetDebt(ctx, "lender-1", debt.ID)
	assert.NoError(t, err)

	_, err = svc.GetDebt(ctx, "debtor-1", debt.ID)
	assert.NoError(t, err)

	_, err = svc.GetDebt(ctx, "stranger", debt.ID)
	require.Error(t, err)
	assert.True(t, domain.IsAuthorization(err))
}

func TestSummary_PartitionsByRole(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	lend := validDebtInput()
	lend.Principal = "60000"
	lend.InterestRate = ""
	_, err := svc.CreateDebt(ctx, "user-1", lend)
	require.NoError(t, err)

	ext := validDebtInput()
	ext.IsExternal = true
	ext.ExternalLenderName = "Zenith Bank"
	ext.DebtorID = ""
	ext.DebtorPhone = ""
	ext.Principal = "25000"
	ext.InterestRate = ""
	_, err = svc.CreateDebt(ctx, "user-1", ext)
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.LendingCount)
	assert.True(t, summary.TotalLending.Equal(decimal.NewFromInt(60000)))
	assert.Equal(t, 1, summary.OwingCount)
	assert.True(t, summary.TotalOwing.Equal(decimal.NewFromInt(25000)))
	assert.Len(t, summary.RecentDebts, 2)
	assert.Empty(t, summary.OverdueDebts)
}

func TestCreateImportedDebt(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	dueDate := time.Now().AddDate(0, 2, 0).Format("2006-01-02")

	debt, err := svc.CreateImportedDebt(ctx, eventbus.ImportRowEvent{
		ImportID:           "import-1",
		UserID:             "user-1",
		LineNumber:         2,
		ExternalLenderName: "GTBank",
		Principal:          "150000",
		InterestRate:       "12",
		DueDate:            dueDate,
	})
	require.NoError(t, err)

	assert.True(t, debt.IsExternal)
	assert.Equal(t, "GTBank", debt.ExternalLenderName)
	assert.Equal(t, "user-1", debt.LenderID)
	assert.True(t, debt.CalculatedInterest.Equal(decimal.NewFromInt(18000)))
	assert.True(t, debt.OutstandingBalance.Equal(decimal.NewFromInt(168000)))
}

func TestCreateImportedDebt_BadDate(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())

	_, err := svc.CreateImportedDebt(context.Background(), eventbus.ImportRowEvent{
		UserID:             "user-1",
		ExternalLenderName: "GTBank",
		Principal:          "1000",
		DueDate:            "31/12/2026",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
