package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/x17green/debtledger/internal/domain"
)

// MemoryStore is the default Repository for tests and local runs. The single
// mutex gives RecordPayment its required atomicity: the conditional balance
// check and both writes happen under one critical section.
type MemoryStore struct {
	debts           map[string]*domain.Debt
	payments        map[string][]*domain.Payment
	references      map[string]bool
	imports         map[string]*domain.Import
	importIssues    map[string][]domain.ImportIssue
	activities      []*domain.Activity
	processedEvents map[string]bool
	mu              sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		debts:           make(map[string]*domain.Debt),
		payments:        make(map[string][]*domain.Payment),
		references:      make(map[string]bool),
		imports:         make(map[string]*domain.Import),
		importIssues:    make(map[string][]domain.ImportIssue),
		processedEvents: make(map[string]bool),
	}
}

func (s *MemoryStore) CreateDebt(ctx context.Context, debt *domain.Debt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *debt
	s.debts[debt.ID] = &clone
	s.payments[debt.ID] = []*domain.Payment{}

	return nil
}

func (s *MemoryStore) GetDebt(ctx context.Context, debtID string) (*domain.Debt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	debt, exists := s.debts[debtID]
	if !exists {
		return nil, domain.ErrDebtNotFound
	}

	clone := *debt
	return &clone, nil
}

func (s *MemoryStore) ListDebtsByUser(ctx context.Context, userID string) ([]*domain.Debt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var debts []*domain.Debt
	for _, d := range s.debts {
		if d.LenderID == userID || (d.DebtorID != "" && d.DebtorID == userID) {
			clone := *d
			debts = append(debts, &clone)
		}
	}

	return debts, nil
}

func (s *MemoryStore) RecordPayment(ctx context.Context, payment *domain.Payment, updated *domain.Debt, expectedBalance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.debts[updated.ID]
	if !exists {
		return domain.ErrDebtNotFound
	}

	if !current.OutstandingBalance.Equal(expectedBalance) {
		return domain.ErrBalanceConflict
	}

	if s.references[payment.Reference] {
		return domain.ErrDuplicateReference
	}

	debtClone := *updated
	s.debts[updated.ID] = &debtClone

	paymentClone := *payment
	s.payments[payment.DebtID] = append(s.payments[payment.DebtID], &paymentClone)
	s.references[payment.Reference] = true

	return nil
}

func (s *MemoryStore) ListPayments(ctx context.Context, debtID string) ([]*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.debts[debtID]; !exists {
		return nil, domain.ErrDebtNotFound
	}

	payments := make([]*domain.Payment, 0, len(s.payments[debtID]))
	for _, p := range s.payments[debtID] {
		clone := *p
		payments = append(payments, &clone)
	}

	return payments, nil
}

func (s *MemoryStore) CreateImport(ctx context.Context, imp *domain.Import) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *imp
	s.imports[imp.ID] = &clone
	s.importIssues[imp.ID] = []domain.ImportIssue{}

	return nil
}

func (s *MemoryStore) GetImport(ctx context.Context, importID string) (*domain.Import, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	imp, exists := s.imports[importID]
	if !exists {
		return nil, domain.ErrImportNotFound
	}

	clone := *imp
	return &clone, nil
}

func (s *MemoryStore) UpdateImportStatus(ctx context.Context, importID string, status domain.ImportStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	imp, exists := s.imports[importID]
	if !exists {
		return domain.ErrImportNotFound
	}

	imp.Status = status
	if status == domain.ImportStatusCompleted || status == domain.ImportStatusFailed {
		now := time.Now()
		imp.CompletedAt = &now
	}

	return nil
}

func (s *MemoryStore) IncrementProcessedRows(ctx context.Context, importID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	imp, exists := s.imports[importID]
	if !exists {
		return domain.ErrImportNotFound
	}

	imp.ProcessedRows++

	return nil
}

func (s *MemoryStore) AddImportIssue(ctx context.Context, importID string, issue domain.ImportIssue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.imports[importID]; !exists {
		return domain.ErrImportNotFound
	}

	s.importIssues[importID] = append(s.importIssues[importID], issue)

	return nil
}

func (s *MemoryStore) GetImportIssues(ctx context.Context, importID string, page, perPage int) ([]domain.ImportIssue, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.imports[importID]; !exists {
		return nil, 0, domain.ErrImportNotFound
	}

	issues := s.importIssues[importID]
	total := len(issues)

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	start := (page - 1) * perPage
	end := start + perPage

	if start >= total {
		return []domain.ImportIssue{}, total, nil
	}
	if end > total {
		end = total
	}

	return issues[start:end], total, nil
}

func (s *MemoryStore) AppendActivity(ctx context.Context, activity *domain.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *activity
	s.activities = append(s.activities, &clone)

	return nil
}

func (s *MemoryStore) ListActivity(ctx context.Context, userID string, limit int) ([]*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Activity
	for _, a := range s.activities {
		if a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processedEvents[eventID] = true

	return nil
}
