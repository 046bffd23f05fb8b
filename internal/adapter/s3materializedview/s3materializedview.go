package s3materializedview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/mrled/suns/numcheck/internal/model"
	"github.com/mrled/suns/numcheck/internal/repository/memrepo"
)

// ObjectStore is the subset of the S3 client used by the view.
// *s3.Client satisfies it.
type ObjectStore interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3MaterializedView loads and saves a snapshot of check records as one JSON object in S3.
// The object uses the same format as a memrepo JSON file.
type S3MaterializedView struct {
	s3Client     ObjectStore
	bucketName   string
	key          string
	contentType  string
	cacheControl string
}

// New creates a new S3MaterializedView adapter
func New(s3Client ObjectStore, bucketName, key string) *S3MaterializedView {
	return &S3MaterializedView{
		s3Client:     s3Client,
		bucketName:   bucketName,
		key:          key,
		contentType:  "application/json",
		cacheControl: "max-age=60", // Cache for 1 minute
	}
}

// Load loads the snapshot from S3 into a new MemoryRepository.
// A missing object yields an empty repository.
func (s *S3MaterializedView) Load(ctx context.Context) (*memrepo.MemoryRepository, error) {
	result, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			slog.Info("Snapshot does not exist yet, starting empty",
				slog.String("bucket", s.bucketName),
				slog.String("key", s.key))
			return memrepo.NewMemoryRepository(), nil
		}
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer result.Body.Close()

	bodyBytes, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}

	repo, err := memrepo.NewMemoryRepositoryFromJsonString(string(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create repository from JSON: %w", err)
	}

	return repo, nil
}

// Save writes every record in repo to S3, ordered by kind then ID
func (s *S3MaterializedView) Save(ctx context.Context, repo model.CheckRepository) error {
	records, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list records from repository: %w", err)
	}
	model.SortRecords(records, string(model.SortByDefault))

	jsonData, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	// Upload to S3 with appropriate headers for public access
	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucketName),
		Key:          aws.String(s.key),
		Body:         bytes.NewReader(jsonData),
		ContentType:  aws.String(s.contentType),
		CacheControl: aws.String(s.cacheControl),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	slog.Info("Successfully updated S3 snapshot",
		slog.String("bucket", s.bucketName),
		slog.String("key", s.key),
		slog.Int("record_count", len(records)))
	return nil
}
