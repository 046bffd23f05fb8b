package streamer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mrled/suns/numcheck/internal/adapter/s3materializedview"
	"github.com/mrled/suns/numcheck/internal/logger"
	"github.com/mrled/suns/numcheck/internal/service/applystream"
)

// DefaultDataKey is the S3 key of the snapshot when S3_DATA_KEY is unset
const DefaultDataKey = "records/checks.json"

// Handler holds the dependencies for the streamer Lambda handler
type Handler struct {
	streamerService *applystream.Service
	log             *slog.Logger
}

// NewHandler creates a streamer handler configured from the environment
func NewHandler() (*Handler, error) {
	log := logger.NewDefaultLogger()
	log = logger.WithExecutable(log, "streamer")
	logger.SetDefault(log)

	s3BucketName := os.Getenv("S3_BUCKET")
	if s3BucketName == "" {
		return nil, fmt.Errorf("S3_BUCKET environment variable is required")
	}

	s3DataKey := os.Getenv("S3_DATA_KEY")
	if s3DataKey == "" {
		s3DataKey = DefaultDataKey
	}

	ctx := context.Background()

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Error("Failed to load AWS config", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3View := s3materializedview.New(s3.NewFromConfig(cfg), s3BucketName, s3DataKey)
	log.Info("S3 materialized view initialized",
		slog.String("bucket", s3BucketName),
		slog.String("key", s3DataKey))

	return NewHandlerWithService(applystream.New(s3View), log), nil
}

// NewHandlerWithService creates a handler around an existing service
func NewHandlerWithService(svc *applystream.Service, log *slog.Logger) *Handler {
	return &Handler{
		streamerService: svc,
		log:             log,
	}
}

// Handle processes DynamoDB stream events
func (h *Handler) Handle(ctx context.Context, event events.DynamoDBEvent) error {
	result, err := h.streamerService.ProcessStreamBatch(ctx, event.Records)
	if err != nil {
		h.log.Error("Stream processing failed",
			slog.String("error", err.Error()),
			slog.Bool("notify", true))
		return err
	}
	if result.Failed > 0 {
		h.log.Warn("Some stream records were skipped",
			slog.Int("failed", result.Failed),
			slog.Int("total", result.Total))
	}
	return nil
}
