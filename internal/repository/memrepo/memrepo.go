package memrepo

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mrled/suns/numcheck/internal/model"
)

// MemoryRepository is an in-memory implementation of CheckRepository optionally backed by a JSON file
type MemoryRepository struct {
	mu       sync.RWMutex
	data     map[string]*model.CheckRecord
	filePath string
}

// NewMemoryRepository creates a new in-memory repository without persistence.
// Data is stored only in memory and will be lost when the process terminates.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		data:     make(map[string]*model.CheckRecord),
		filePath: "",
	}
}

// NewMemoryRepositoryWithPersistence creates a new in-memory repository backed by a JSON file.
// The repository will load existing data from the file on initialization and persist
// all changes (Store, Delete) to the file automatically.
func NewMemoryRepositoryWithPersistence(filePath string) (*MemoryRepository, error) {
	repo := &MemoryRepository{
		data:     make(map[string]*model.CheckRecord),
		filePath: filePath,
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	if err := repo.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return repo, nil
}

// NewMemoryRepositoryFromJsonString creates a new in-memory repository initialized with data from a JSON string.
// The repository will not be backed by a file and will not persist changes.
func NewMemoryRepositoryFromJsonString(jsonString string) (*MemoryRepository, error) {
	repo := NewMemoryRepository()
	if err := repo.loadFromReader(strings.NewReader(jsonString)); err != nil {
		return nil, err
	}
	return repo, nil
}

// loadFromReader reads a JSON array of records and replaces the in-memory data
func (r *MemoryRepository) loadFromReader(reader io.Reader) error {
	var dataSlice []*model.CheckRecord
	if err := json.NewDecoder(reader).Decode(&dataSlice); err != nil {
		return err
	}

	r.data = make(map[string]*model.CheckRecord)
	for _, d := range dataSlice {
		// DynamoDB would silently overwrite here, so keep the last one too
		if _, exists := r.data[d.ID]; exists {
			slog.Warn("Duplicate check record in JSON data, keeping last occurrence", slog.String("id", d.ID))
		}
		r.data[d.ID] = d
	}

	return nil
}

func (r *MemoryRepository) load() error {
	file, err := os.Open(r.filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return err
	}
	if stat.Size() == 0 {
		return nil
	}

	return r.loadFromReader(file)
}

// save writes the in-memory data to the JSON file, ordered by ID.
// If filePath is empty, this is a no-op.
func (r *MemoryRepository) save() error {
	if r.filePath == "" {
		return nil
	}

	dataSlice := make([]*model.CheckRecord, 0, len(r.data))
	for _, d := range r.data {
		dataSlice = append(dataSlice, d)
	}
	sort.Slice(dataSlice, func(i, j int) bool {
		return dataSlice[i].ID < dataSlice[j].ID
	})

	file, err := os.Create(r.filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dataSlice)
}

// Store saves a check record
func (r *MemoryRepository) Store(ctx context.Context, record *model.CheckRecord) error {
	if record == nil {
		return errors.New("check record cannot be nil")
	}
	if record.ID == "" {
		return errors.New("check record ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[record.ID]; exists {
		return model.ErrAlreadyExists
	}

	r.data[record.ID] = record
	return r.save()
}

// Get retrieves a check record by ID
func (r *MemoryRepository) Get(ctx context.Context, id string) (*model.CheckRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.data[id]
	if !exists {
		return nil, model.ErrNotFound
	}

	return record, nil
}

// List retrieves all check records
func (r *MemoryRepository) List(ctx context.Context) ([]*model.CheckRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.CheckRecord, 0, len(r.data))
	for _, record := range r.data {
		result = append(result, record)
	}

	return result, nil
}

// Delete removes a check record by ID
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return model.ErrNotFound
	}

	delete(r.data, id)
	return r.save()
}
