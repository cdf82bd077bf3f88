package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"api-log-analytics/internal/models"
	"api-log-analytics/internal/shared/filestorages"
)

//go:generate mockgen -source=accumulation_store.go -destination=./mocks/accumulation_store_mock.go -package=mocks
type AccumulationStore interface {
	Upsert(ctx context.Context, datasetAccumulation *models.DatasetAccumulation) error
	// Get returns the stored accumulation of datasetID, or a new empty one built with
	// windowSize and sizeTiers when nothing was stored yet.
	Get(ctx context.Context, datasetID string, windowSize models.WindowSize, sizeTiers models.SizeTiers) (*models.DatasetAccumulation, error)
	// ListDatasetIDs returns the IDs of every dataset with a stored accumulation, sorted.
	ListDatasetIDs(ctx context.Context) ([]string, error)
}

type accumulationStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewAccumulationStore(fileStorage filestorages.FileStorage) AccumulationStore {
	return &accumulationStore{fileStorage: fileStorage, dir: "accumulations"}
}

func (s *accumulationStore) Upsert(ctx context.Context, datasetAccumulation *models.DatasetAccumulation) error {
	jsonData, err := json.Marshal(datasetAccumulation)
	if err != nil {
		return fmt.Errorf("failed to marshal dataset accumulation: %w", err)
	}
	reader := bytes.NewReader(jsonData)
	key := s.getKey(datasetAccumulation.DatasetID)
	_, err = s.fileStorage.Put(ctx, key, reader, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put dataset accumulation: %w", err)
	}
	return nil
}

func (s *accumulationStore) Get(ctx context.Context, datasetID string, windowSize models.WindowSize, sizeTiers models.SizeTiers) (*models.DatasetAccumulation, error) {
	key := s.getKey(datasetID)
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return models.NewEmptyDatasetAccumulation(datasetID, windowSize, sizeTiers), nil
		}
		return nil, fmt.Errorf("failed to get dataset accumulation: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset accumulation: %w", err)
	}
	var datasetAccumulation models.DatasetAccumulation
	if err := json.Unmarshal(data, &datasetAccumulation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset accumulation: %w", err)
	}
	if datasetAccumulation.Accumulation == nil {
		datasetAccumulation.Accumulation = models.NewAccumulation(windowSize, sizeTiers)
	}
	return &datasetAccumulation, nil
}

func (s *accumulationStore) ListDatasetIDs(ctx context.Context) ([]string, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list dataset accumulations: %w", err)
	}
	datasetIDs := make([]string, 0, len(keys))
	for _, key := range keys {
		name := path.Base(key)
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		datasetIDs = append(datasetIDs, strings.TrimSuffix(name, ".json"))
	}
	return datasetIDs, nil
}

func (s *accumulationStore) getKey(datasetID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, datasetID)
}
