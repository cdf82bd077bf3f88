package ingestors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"api-log-analytics/internal/models"
)

//go:generate mockgen -source=batch_decoder.go -destination=./mocks/batch_decoder_mock.go -package=mocks
type BatchDecoder interface {
	// Decode reads a JSON array of records from r. Individual records are not validated here;
	// only a body that is not a JSON array, or that exceeds the size limit, is rejected.
	Decode(r io.Reader) ([]models.RawRecord, error)
}

type batchDecoder struct {
	maxBatchBytes int64
}

func NewBatchDecoder(maxBatchBytes int64) BatchDecoder {
	return &batchDecoder{maxBatchBytes: maxBatchBytes}
}

func (d *batchDecoder) Decode(r io.Reader) ([]models.RawRecord, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := d.readWithLimit(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(buf)) == 0 {
		return nil, errValidationFailed("empty request body", nil)
	}

	// UseNumber keeps integral values such as status codes exact
	decoder := json.NewDecoder(bytes.NewReader(buf))
	decoder.UseNumber()

	var records []models.RawRecord
	if err := decoder.Decode(&records); err != nil {
		return nil, errValidationFailed("invalid json: body must be an array of records", err)
	}
	if decoder.More() {
		return nil, errValidationFailed("invalid json: trailing data after the array", nil)
	}
	if records == nil {
		records = []models.RawRecord{}
	}
	return records, nil
}

// readWithLimit reads up to max+1 bytes from r and rejects bodies larger than max.
func (d *batchDecoder) readWithLimit(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, d.maxBatchBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if int64(len(buf)) > d.maxBatchBytes {
		return nil, errValidationFailed(fmt.Sprintf("batch too large: must be <= %d bytes", d.maxBatchBytes), nil)
	}
	return buf, nil
}
