package cli

import (
	"fmt"
	"os"

	"api-log-analytics/internal/ingestors"
	"api-log-analytics/internal/models"
)

// RecordLoader reads the raw records of one report.
type RecordLoader interface {
	Load(path string) ([]models.RawRecord, error)
}

type fileRecordLoader struct {
	batchDecoder ingestors.BatchDecoder
}

// NewFileRecordLoader loads a JSON array file with the same decoder the HTTP service uses.
func NewFileRecordLoader(batchDecoder ingestors.BatchDecoder) RecordLoader {
	return &fileRecordLoader{batchDecoder: batchDecoder}
}

func (l *fileRecordLoader) Load(path string) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	records, err := l.batchDecoder.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", path, err)
	}
	return records, nil
}
