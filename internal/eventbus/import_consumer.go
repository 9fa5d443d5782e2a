package eventbus

import (
	"context"
	"fmt"

	"github.com/x17green/debtledger/internal/domain"
	"github.com/x17green/debtledger/pkg/logger"
)

// ImportedDebtCreator applies one import row through the full debt-creation
// validation path. Implemented by the ledger service.
type ImportedDebtCreator interface {
	CreateImportedDebt(ctx context.Context, row ImportRowEvent) (*domain.Debt, error)
}

// ImportConsumer turns published import rows into external debts. Rows that
// fail validation become import issues and are not retried; everything else
// is retried by the bus.
type ImportConsumer struct {
	repo        domain.Repository
	creator     ImportedDebtCreator
	logger      *logger.Logger
	workerCount int
}

func NewImportConsumer(repo domain.Repository, creator ImportedDebtCreator, log *logger.Logger, workerCount int) *ImportConsumer {
	return &ImportConsumer{
		repo:        repo,
		creator:     creator,
		logger:      log,
		workerCount: workerCount,
	}
}

func (ic *ImportConsumer) Consume(ctx context.Context, event Event) error {
	processed, err := ic.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		return err
	}

	if processed {
		ic.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	row, ok := event.Payload.(ImportRowEvent)
	if !ok {
		ic.logger.Error(ctx, "Invalid payload type for import row event",
			"event_id", event.ID,
		)
		return fmt.Errorf("invalid payload type")
	}

	ctx = logger.WithActorID(ctx, row.UserID)

	debt, err := ic.creator.CreateImportedDebt(ctx, row)
	if err != nil {
		if domain.IsValidation(err) {
			issue := domain.ImportIssue{
				LineNumber: row.LineNumber,
				Reason:     err.Error(),
			}
			if issueErr := ic.repo.AddImportIssue(ctx, row.ImportID, issue); issueErr != nil {
				return issueErr
			}
			ic.logger.Warn(ctx, "Import row rejected",
				"import_id", row.ImportID,
				"line_number", row.LineNumber,
				"reason", err.Error(),
			)
			return ic.repo.MarkEventProcessed(ctx, event.ID)
		}

		ic.logger.Error(ctx, "Failed to create imported debt",
			"import_id", row.ImportID,
			"line_number", row.LineNumber,
			"error", err,
		)
		return err
	}

	if err := ic.repo.MarkEventProcessed(ctx, event.ID); err != nil {
		return err
	}

	if err := ic.repo.IncrementProcessedRows(ctx, row.ImportID); err != nil {
		ic.logger.Error(ctx, "Failed to increment processed rows",
			"import_id", row.ImportID,
			"error", err,
		)
	}

	ic.logger.Debug(ctx, "Import row applied",
		"import_id", row.ImportID,
		"line_number", row.LineNumber,
		"debt_id", debt.ID,
	)

	return nil
}

func (ic *ImportConsumer) GetWorkerCount() int {
	return ic.workerCount
}
