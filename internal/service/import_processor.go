package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/x17green/debtledger/internal/domain"
	"github.com/x17green/debtledger/internal/eventbus"
	"github.com/x17green/debtledger/pkg/logger"
)

const importRowFields = 5 // external_lender_name, principal, interest_rate, due_date, notes

type ImportService interface {
	StartImport(ctx context.Context, actorID string, reader io.Reader) (string, error)
	GetImport(ctx context.Context, actorID, importID string) (*domain.Import, error)
	GetImportIssues(ctx context.Context, actorID, importID string, page, perPage int) ([]domain.ImportIssue, int, error)
}

// importService streams external-debt CSV rows into the event pipeline. Each
// row goes through the ledger service's normal validation; row failures
// become import issues instead of failing the whole file.
type importService struct {
	repo   domain.Repository
	bus    eventbus.EventBus
	logger *logger.Logger
}

func NewImportService(repo domain.Repository, bus eventbus.EventBus, log *logger.Logger) ImportService {
	return &importService{
		repo:   repo,
		bus:    bus,
		logger: log,
	}
}

func (s *importService) StartImport(ctx context.Context, actorID string, reader io.Reader) (string, error) {
	importID := uuid.New().String()

	ctx = logger.WithActorID(ctx, actorID)

	imp := &domain.Import{
		ID:        importID,
		UserID:    actorID,
		Status:    domain.ImportStatusProcessing,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateImport(ctx, imp); err != nil {
		s.logger.Error(ctx, "Failed to create import",
			"error", err,
		)
		return "", err
	}

	go func() {
		processCtx := logger.WithActorID(context.Background(), actorID)
		s.processStream(processCtx, importID, actorID, reader)
	}()

	s.logger.Info(ctx, "Import created, processing started",
		"import_id", importID,
	)

	return importID, nil
}

func (s *importService) processStream(ctx context.Context, importID, actorID string, reader io.Reader) {
	s.logger.Info(ctx, "Starting import processing",
		"import_id", importID,
	)

	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	lineNumber := 0
	publishedCount := 0
	issueCount := 0

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}

		lineNumber++

		if err != nil {
			s.addIssue(ctx, importID, lineNumber, fmt.Sprintf("unreadable row: %v", err))
			issueCount++
			continue
		}

		row, err := parseImportRow(record, importID, actorID, lineNumber)
		if err != nil {
			s.addIssue(ctx, importID, lineNumber, err.Error())
			issueCount++
			continue
		}

		event := eventbus.Event{
			ID:        fmt.Sprintf("%s-%d", importID, lineNumber),
			Type:      eventbus.EventTypeImportRow,
			Payload:   row,
			Timestamp: time.Now().UTC(),
		}

		if err := s.bus.Publish(ctx, event); err != nil {
			s.addIssue(ctx, importID, lineNumber, "could not queue row for processing")
			issueCount++
			continue
		}

		publishedCount++
	}

	status := domain.ImportStatusCompleted
	if publishedCount == 0 && issueCount > 0 {
		status = domain.ImportStatusFailed
	}

	if err := s.repo.UpdateImportStatus(ctx, importID, status); err != nil {
		s.logger.Error(ctx, "Failed to update import status",
			"import_id", importID,
			"error", err,
		)
	}

	s.logger.Info(ctx, "Import processing completed",
		"import_id", importID,
		"total_lines", lineNumber,
		"published_count", publishedCount,
		"issue_count", issueCount,
	)
}

func (s *importService) addIssue(ctx context.Context, importID string, lineNumber int, reason string) {
	issue := domain.ImportIssue{
		LineNumber: lineNumber,
		Reason:     reason,
	}
	if err := s.repo.AddImportIssue(ctx, importID, issue); err != nil {
		s.logger.Error(ctx, "Failed to record import issue",
			"import_id", importID,
			"line_number", lineNumber,
			"error", err,
		)
	}
}

func parseImportRow(record []string, importID, actorID string, lineNumber int) (eventbus.ImportRowEvent, error) {
	if len(record) != importRowFields {
		return eventbus.ImportRowEvent{}, fmt.Errorf("invalid row format: expected %d fields, got %d", importRowFields, len(record))
	}

	name := strings.TrimSpace(record[0])
	if name == "" {
		return eventbus.ImportRowEvent{}, fmt.Errorf("external lender name is required")
	}

	return eventbus.ImportRowEvent{
		ImportID:           importID,
		UserID:             actorID,
		LineNumber:         lineNumber,
		ExternalLenderName: name,
		Principal:          strings.TrimSpace(record[1]),
		InterestRate:       strings.TrimSpace(record[2]),
		DueDate:            strings.TrimSpace(record[3]),
		Notes:              strings.TrimSpace(record[4]),
	}, nil
}

func (s *importService) GetImport(ctx context.Context, actorID, importID string) (*domain.Import, error) {
	ctx = logger.WithActorID(ctx, actorID)

	imp, err := s.repo.GetImport(ctx, importID)
	if err != nil {
		return nil, err
	}

	if imp.UserID != actorID {
		return nil, &domain.AuthorizationError{Message: "not the owner of this import"}
	}

	return imp, nil
}

func (s *importService) GetImportIssues(ctx context.Context, actorID, importID string, page, perPage int) ([]domain.ImportIssue, int, error) {
	if _, err := s.GetImport(ctx, actorID, importID); err != nil {
		return nil, 0, err
	}

	return s.repo.GetImportIssues(ctx, importID, page, perPage)
}
