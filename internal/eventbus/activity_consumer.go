package eventbus

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/x17green/debtledger/internal/domain"
	"github.com/x17green/debtledger/pkg/logger"
)

// ActivityConsumer appends audit-trail records for committed ledger writes.
type ActivityConsumer struct {
	repo        domain.Repository
	logger      *logger.Logger
	workerCount int
}

func NewActivityConsumer(repo domain.Repository, log *logger.Logger, workerCount int) *ActivityConsumer {
	return &ActivityConsumer{
		repo:        repo,
		logger:      log,
		workerCount: workerCount,
	}
}

func (ac *ActivityConsumer) Consume(ctx context.Context, event Event) error {
	processed, err := ac.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		ac.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		ac.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(ActivityEvent)
	if !ok {
		ac.logger.Error(ctx, "Invalid payload type for activity event",
			"event_id", event.ID,
		)
		return fmt.Errorf("invalid payload type")
	}

	ctx = logger.WithDebtID(ctx, payload.DebtID)

	activity := &domain.Activity{
		ID:        uuid.New().String(),
		UserID:    payload.UserID,
		DebtID:    payload.DebtID,
		Kind:      payload.Kind,
		Amount:    payload.Amount,
		CreatedAt: event.Timestamp,
	}

	if err := ac.repo.AppendActivity(ctx, activity); err != nil {
		ac.logger.Error(ctx, "Failed to append activity",
			"event_id", event.ID,
			"kind", payload.Kind,
			"error", err,
		)
		return err
	}

	if err := ac.repo.MarkEventProcessed(ctx, event.ID); err != nil {
		ac.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	ac.logger.Debug(ctx, "Activity recorded",
		"event_id", event.ID,
		"kind", payload.Kind,
	)

	return nil
}

func (ac *ActivityConsumer) GetWorkerCount() int {
	return ac.workerCount
}
