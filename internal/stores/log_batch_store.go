package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"api-log-analytics/internal/models"
	"api-log-analytics/internal/shared/filestorages"
)

var (
	ErrLogBatchAlreadyExist = errors.New("log batch already exists")
)

// LogBatchStore keeps the raw records of every ingested batch under
// raw-batches/<datasetID>/<batchID>.json. Put is a create-if-not-exists, so a batch ID is
// accepted at most once per dataset.
//
// Example scenario:
//   - Two requests carry idempotency key "batch-123" for dataset "ds-checkout" at the same time
//   - The first Put stores the batch
//   - The second Put fails with ErrLogBatchAlreadyExist and its records are never rolled up
//
//go:generate mockgen -source=log_batch_store.go -destination=./mocks/log_batch_store_mock.go -package=mocks
type LogBatchStore interface {
	Put(ctx context.Context, logBatch *models.LogBatch) error
}

type logBatchStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewLogBatchStore(fileStorage filestorages.FileStorage) LogBatchStore {
	return &logBatchStore{fileStorage: fileStorage, dir: "raw-batches"}
}

func (s *logBatchStore) Put(ctx context.Context, logBatch *models.LogBatch) error {
	jsonData, err := json.Marshal(logBatch)
	if err != nil {
		return fmt.Errorf("failed to marshal log batch: %w", err)
	}
	reader := bytes.NewReader(jsonData)

	key := fmt.Sprintf("%s/%s/%s.json", s.dir, logBatch.DatasetID, logBatch.BatchID)

	_, err = s.fileStorage.Put(ctx, key, reader, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrLogBatchAlreadyExist
		}
		return fmt.Errorf("failed to put log batch: %w", err)
	}
	return nil
}
