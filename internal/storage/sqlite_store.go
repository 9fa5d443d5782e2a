package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	_ "github.com/mattn/go-sqlite3"

	"github.com/x17green/debtledger/internal/domain"
)

// SQLiteStore is the durable Repository. Money columns are TEXT so decimal
// values survive round trips without precision loss. Payment application is
// a transaction whose debt update is conditional on the outstanding balance,
// which gives the optimistic-concurrency guarantee without row locks.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("could not initialize schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS debts (
		id TEXT PRIMARY KEY,
		lender_id TEXT NOT NULL,
		debtor_id TEXT NOT NULL DEFAULT '',
		debtor_phone TEXT NOT NULL DEFAULT '',
		debtor_name TEXT NOT NULL DEFAULT '',
		is_external INTEGER NOT NULL DEFAULT 0,
		external_lender_name TEXT NOT NULL DEFAULT '',
		principal TEXT NOT NULL,
		interest_rate TEXT NOT NULL,
		calculated_interest TEXT NOT NULL,
		total_amount TEXT NOT NULL,
		outstanding_balance TEXT NOT NULL,
		due_date DATETIME NOT NULL,
		status TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		paid_at DATETIME
	);
	CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		debt_id TEXT NOT NULL,
		amount TEXT NOT NULL,
		reference TEXT NOT NULL UNIQUE,
		gateway TEXT NOT NULL,
		status TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		paid_at DATETIME NOT NULL,
		recorded_by TEXT NOT NULL,
		FOREIGN KEY(debt_id) REFERENCES debts(id)
	);
	CREATE TABLE IF NOT EXISTS imports (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		status TEXT NOT NULL,
		processed_rows INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		completed_at DATETIME
	);
	CREATE TABLE IF NOT EXISTS import_issues (
		import_id TEXT NOT NULL,
		line_number INTEGER NOT NULL,
		reason TEXT NOT NULL,
		FOREIGN KEY(import_id) REFERENCES imports(id)
	);
	CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		debt_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		amount TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS processed_events (
		event_id TEXT PRIMARY KEY
	);
	CREATE INDEX IF NOT EXISTS idx_debts_lender ON debts(lender_id);
	CREATE INDEX IF NOT EXISTS idx_debts_debtor ON debts(debtor_id);
	CREATE INDEX IF NOT EXISTS idx_payments_debt ON payments(debt_id);
	CREATE INDEX IF NOT EXISTS idx_activities_user ON activities(user_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

const debtColumns = `id, lender_id, debtor_id, debtor_phone, debtor_name, is_external, external_lender_name,
	principal, interest_rate, calculated_interest, total_amount, outstanding_balance,
	due_date, status, notes, created_at, paid_at`

func (s *SQLiteStore) CreateDebt(ctx context.Context, debt *domain.Debt) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO debts (`+debtColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		debt.ID, debt.LenderID, debt.DebtorID, debt.DebtorPhone, debt.DebtorName,
		boolToInt(debt.IsExternal), debt.ExternalLenderName,
		debt.Principal.String(), debt.InterestRate.String(), debt.CalculatedInterest.String(),
		debt.TotalAmount.String(), debt.OutstandingBalance.String(),
		debt.DueDate, debt.Status, debt.Notes, debt.CreatedAt, debt.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create debt: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetDebt(ctx context.Context, debtID string) (*domain.Debt, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+debtColumns+` FROM debts WHERE id = ?`, debtID)

	debt, err := scanDebt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrDebtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	return debt, nil
}

func (s *SQLiteStore) ListDebtsByUser(ctx context.Context, userID string) ([]*domain.Debt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+debtColumns+` FROM debts WHERE lender_id = ? OR (debtor_id != '' AND debtor_id = ?)`,
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []*domain.Debt
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, debt)
	}
	return debts, rows.Err()
}

func (s *SQLiteStore) RecordPayment(ctx context.Context, payment *domain.Payment, updated *domain.Debt, expectedBalance decimal.Decimal) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE debts SET outstanding_balance = ?, status = ?, paid_at = ?
		WHERE id = ? AND outstanding_balance = ?`,
		updated.OutstandingBalance.String(), updated.Status, updated.PaidAt,
		updated.ID, expectedBalance.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update debt balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		// Either the debt is gone or another payment moved the balance.
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM debts WHERE id = ?`, updated.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check debt existence: %w", err)
		}
		if exists == 0 {
			return domain.ErrDebtNotFound
		}
		return domain.ErrBalanceConflict
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO payments (id, debt_id, amount, reference, gateway, status, notes, paid_at, recorded_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.ID, payment.DebtID, payment.Amount.String(), payment.Reference,
		payment.Gateway, payment.Status, payment.Notes, payment.PaidAt, payment.RecordedBy,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) ListPayments(ctx context.Context, debtID string) ([]*domain.Payment, error) {
	if _, err := s.GetDebt(ctx, debtID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, debt_id, amount, reference, gateway, status, notes, paid_at, recorded_by
		FROM payments WHERE debt_id = ? ORDER BY paid_at, id`,
		debtID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := []*domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		var amount string
		if err := rows.Scan(&p.ID, &p.DebtID, &amount, &p.Reference, &p.Gateway, &p.Status, &p.Notes, &p.PaidAt, &p.RecordedBy); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("corrupt payment amount %q: %w", amount, err)
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}

func (s *SQLiteStore) CreateImport(ctx context.Context, imp *domain.Import) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO imports (id, user_id, status, processed_rows, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		imp.ID, imp.UserID, imp.Status, imp.ProcessedRows, imp.CreatedAt, imp.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create import: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetImport(ctx context.Context, importID string) (*domain.Import, error) {
	var imp domain.Import
	var completedAt sql.NullTime

	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, status, processed_rows, created_at, completed_at FROM imports WHERE id = ?`,
		importID,
	).Scan(&imp.ID, &imp.UserID, &imp.Status, &imp.ProcessedRows, &imp.CreatedAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrImportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get import: %w", err)
	}

	if completedAt.Valid {
		imp.CompletedAt = &completedAt.Time
	}
	return &imp, nil
}

func (s *SQLiteStore) UpdateImportStatus(ctx context.Context, importID string, status domain.ImportStatus) error {
	var completedAt interface{}
	if status == domain.ImportStatusCompleted || status == domain.ImportStatusFailed {
		completedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE imports SET status = ?, completed_at = COALESCE(?, completed_at) WHERE id = ?`,
		status, completedAt, importID,
	)
	if err != nil {
		return fmt.Errorf("failed to update import status: %w", err)
	}
	return ensureFound(res, domain.ErrImportNotFound)
}

func (s *SQLiteStore) IncrementProcessedRows(ctx context.Context, importID string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE imports SET processed_rows = processed_rows + 1 WHERE id = ?`,
		importID,
	)
	if err != nil {
		return fmt.Errorf("failed to increment processed rows: %w", err)
	}
	return ensureFound(res, domain.ErrImportNotFound)
}

func (s *SQLiteStore) AddImportIssue(ctx context.Context, importID string, issue domain.ImportIssue) error {
	if _, err := s.GetImport(ctx, importID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO import_issues (import_id, line_number, reason) VALUES (?, ?, ?)`,
		importID, issue.LineNumber, issue.Reason,
	)
	if err != nil {
		return fmt.Errorf("failed to add import issue: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetImportIssues(ctx context.Context, importID string, page, perPage int) ([]domain.ImportIssue, int, error) {
	if _, err := s.GetImport(ctx, importID); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM import_issues WHERE import_id = ?`, importID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count import issues: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT line_number, reason FROM import_issues WHERE import_id = ?
		ORDER BY line_number LIMIT ? OFFSET ?`,
		importID, perPage, (page-1)*perPage,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list import issues: %w", err)
	}
	defer rows.Close()

	issues := []domain.ImportIssue{}
	for rows.Next() {
		var issue domain.ImportIssue
		if err := rows.Scan(&issue.LineNumber, &issue.Reason); err != nil {
			return nil, 0, fmt.Errorf("failed to scan import issue: %w", err)
		}
		issues = append(issues, issue)
	}
	return issues, total, rows.Err()
}

func (s *SQLiteStore) AppendActivity(ctx context.Context, activity *domain.Activity) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO activities (id, user_id, debt_id, kind, amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		activity.ID, activity.UserID, activity.DebtID, activity.Kind,
		activity.Amount.String(), activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListActivity(ctx context.Context, userID string, limit int) ([]*domain.Activity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, debt_id, kind, amount, created_at FROM activities
		WHERE user_id = ? ORDER BY created_at DESC, id LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	activities := []*domain.Activity{}
	for rows.Next() {
		var a domain.Activity
		var amount string
		if err := rows.Scan(&a.ID, &a.UserID, &a.DebtID, &a.Kind, &amount, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		if a.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("corrupt activity amount %q: %w", amount, err)
		}
		activities = append(activities, &a)
	}
	return activities, rows.Err()
}

func (s *SQLiteStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM processed_events WHERE event_id = ?`, eventID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check processed event: %w", err)
	}
	return count > 0, nil
}

func (s *SQLiteStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO processed_events (event_id) VALUES (?)`, eventID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark event processed: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDebt(row rowScanner) (*domain.Debt, error) {
	var d domain.Debt
	var isExternal int
	var principal, rate, interest, total, outstanding string
	var paidAt sql.NullTime

	err := row.Scan(
		&d.ID, &d.LenderID, &d.DebtorID, &d.DebtorPhone, &d.DebtorName,
		&isExternal, &d.ExternalLenderName,
		&principal, &rate, &interest, &total, &outstanding,
		&d.DueDate, &d.Status, &d.Notes, &d.CreatedAt, &paidAt,
	)
	if err != nil {
		return nil, err
	}

	d.IsExternal = isExternal != 0
	if paidAt.Valid {
		d.PaidAt = &paidAt.Time
	}

	for _, field := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&d.Principal, principal},
		{&d.InterestRate, rate},
		{&d.CalculatedInterest, interest},
		{&d.TotalAmount, total},
		{&d.OutstandingBalance, outstanding},
	} {
		v, err := decimal.NewFromString(field.src)
		if err != nil {
			return nil, fmt.Errorf("corrupt decimal %q: %w", field.src, err)
		}
		*field.dst = v
	}

	return &d, nil
}

func ensureFound(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
