package applystream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/mrled/suns/numcheck/internal/adapter/dynamostream"
	"github.com/mrled/suns/numcheck/internal/model"
	"github.com/mrled/suns/numcheck/internal/repository/memrepo"
)

// View loads and saves the materialized snapshot of check records
type View interface {
	Load(ctx context.Context) (*memrepo.MemoryRepository, error)
	Save(ctx context.Context, repo model.CheckRepository) error
}

// Service applies DynamoDB stream batches to a materialized snapshot
type Service struct {
	view View
}

// New creates a new applystream service
func New(view View) *Service {
	return &Service{
		view: view,
	}
}

// BatchResult counts the outcome of one batch
type BatchResult struct {
	Processed int
	Failed    int
	Total     int
}

// ProcessStreamBatch loads the snapshot, applies every stream record to it
// and saves it back. Records that cannot be applied are logged and skipped.
//
// The read-modify-write is only safe with a single concurrent invocation
// (reservedConcurrentExecutions=1 on the Lambda function).
func (s *Service) ProcessStreamBatch(ctx context.Context, records []events.DynamoDBEventRecord) (BatchResult, error) {
	result := BatchResult{Total: len(records)}
	slog.Info("Processing batch from DynamoDB stream", slog.Int("record_count", len(records)))

	memRepo, err := s.view.Load(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to load snapshot: %w", err)
	}

	for _, record := range records {
		if err := s.processRecord(ctx, memRepo, record); err != nil {
			slog.Error("Error processing record",
				slog.String("event_id", record.EventID),
				slog.String("error", err.Error()))
			result.Failed++
			continue
		}
		result.Processed++
	}

	if err := s.view.Save(ctx, memRepo); err != nil {
		return result, fmt.Errorf("failed to save snapshot: %w", err)
	}

	allRecords, _ := memRepo.List(ctx)
	slog.Info("Successfully processed stream batch",
		slog.Int("processed", result.Processed),
		slog.Int("failed", result.Failed),
		slog.Int("total", result.Total),
		slog.Int("snapshot_record_count", len(allRecords)))

	return result, nil
}

func (s *Service) processRecord(ctx context.Context, repo model.CheckRepository, record events.DynamoDBEventRecord) error {
	slog.Debug("Processing record",
		slog.String("event_id", record.EventID),
		slog.String("event_name", record.EventName))

	switch record.EventName {
	case "INSERT", "MODIFY":
		return s.handleInsertOrModify(ctx, repo, record)
	case "REMOVE":
		return s.handleRemove(ctx, repo, record)
	default:
		return fmt.Errorf("unknown event type: %s", record.EventName)
	}
}

func (s *Service) handleInsertOrModify(ctx context.Context, repo model.CheckRepository, record events.DynamoDBEventRecord) error {
	checkRecord, err := dynamostream.ConvertToCheckRecord(record.Change.NewImage)
	if err != nil {
		return fmt.Errorf("failed to convert stream record: %w", err)
	}

	// replace any earlier version of the record
	if err := repo.Delete(ctx, checkRecord.ID); err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to replace record: %w", err)
	}
	if err := repo.Store(ctx, checkRecord); err != nil {
		return fmt.Errorf("failed to store record: %w", err)
	}

	slog.Debug("Stored record",
		slog.String("kind", string(checkRecord.Kind)),
		slog.String("id", checkRecord.ID))
	return nil
}

func (s *Service) handleRemove(ctx context.Context, repo model.CheckRepository, record events.DynamoDBEventRecord) error {
	id := dynamostream.ExtractStringAttribute(record.Change.Keys, "sk")
	if id == "" {
		return fmt.Errorf("missing required key: sk")
	}

	if err := repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("failed to delete record: %w", err)
		}
		// Record not found is not an error for delete operations
		slog.Debug("Record not found for deletion", slog.String("id", id))
		return nil
	}

	slog.Debug("Removed record", slog.String("id", id))
	return nil
}
