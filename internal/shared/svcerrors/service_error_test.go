package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("ING_1000", "validation failed", nil),
			wantErr: NewInvalidArgumentError("ING_1000", "validation failed", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped not found",
			err:     fmt.Errorf("report: %w", NewNotFoundError("RPT_1000", "dataset not found", nil)),
			wantErr: NewNotFoundError("RPT_1000", "dataset not found", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("AGG_9000", nil)),
			wantErr: NewInternalError("AGG_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestNewNotFoundError(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such file")
	err := NewNotFoundError("RPT_1000", "dataset not found", cause)

	assert.Equal(t, "not_found", err.Category)
	assert.Equal(t, 404, err.HttpStatusCode)
	assert.False(t, err.IsInternalError())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "RPT_1000: dataset not found", err.Error())
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	tests := []struct {
		name         string
		err          *ServiceError
		wantCategory string
		wantStatus   int
		wantMessage  string
		wantInternal bool
		wantClient   bool
	}{
		{"invalid argument", NewInvalidArgumentError("ING_1000", "bad input", cause), "invalid_argument", 400, "bad input", false, true},
		{"conflict", NewResourceConflictError("ING_1001", "log batch already processed", cause), "resource_conflict", 409, "log batch already processed", false, true},
		{"not found", NewNotFoundError("RPT_1000", "no logs", cause), "not_found", 404, "no logs", false, true},
		{"internal", NewInternalError("RPT_9000", cause), "internal", 500, "internal server error", true, false},
		{"undefined", NewInternalErrorUndefined(cause), "internal", 500, "internal server error", true, false},
		{"panic", NewInternalErrorPanic(cause), "internal", 500, "internal server error", true, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.Equal(t, tt.wantStatus, tt.err.HttpStatusCode)
			assert.Equal(t, tt.wantMessage, tt.err.Message)
			assert.Equal(t, tt.wantInternal, tt.err.IsInternalError())
			assert.Equal(t, tt.wantClient, tt.err.IsClientError())
			assert.ErrorIs(t, tt.err, cause)
			assert.NotContains(t, tt.err.Error(), "boom", "cause must not leak into the message")
		})
	}

	assert.Equal(t, "SYS_9001", NewInternalErrorUndefined(nil).Code)
	assert.Equal(t, "SYS_9000", NewInternalErrorPanic(nil).Code)
}
