package httpclient

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/avatax/errors"
)

func TestClassifyResponse(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode errors.ErrorCode
	}{
		{"object", 200, `{"id": 1}`, ""},
		{"array", 200, `[1, 2]`, ""},
		{"scalar", 200, `"pong"`, ""},
		{"empty success", 204, ``, ""},
		{"null error field", 200, `{"error": null, "value": []}`, ""},
		{"non-2xx json without error", 404, `{"message": "gone"}`, ""},
		{"error on 200", 200, `{"error": {"code": "EntityNotFoundError", "message": "Company not found"}}`, errors.ErrCodeEntityNotFound},
		{"error on 400", 400, `{"error": {"code": "InvalidAddress", "message": "bad"}}`, errors.ErrCodeInvalidAddress},
		{"html", 502, `<html>Bad Gateway</html>`, errors.ErrCodeParseFailure},
		{"truncated", 200, `{"id": 1`, errors.ErrCodeParseFailure},
		{"empty failure", 500, ``, errors.ErrCodeParseFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyResponse(tt.status, []byte(tt.body))
			if tt.wantCode == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.status, err.StatusCode)
		})
	}
}

func TestClassifyResponseCarriesServiceFields(t *testing.T) {
	body := `{"error": {"code": "InvalidAddress", "message": "The address is not deliverable.", "target": "IncorrectData",
		"details": [
			{"code": "InvalidAddress", "number": 309, "message": "The address is not deliverable.", "severity": "Error", "refersTo": "Address"},
			{"code": "AddressNotGeocoded", "number": 313, "message": "Address cannot be geocoded.", "severity": "Error"}
		]}}`

	err := classifyResponse(200, []byte(body))
	require.NotNil(t, err)
	assert.Equal(t, errors.KindService, err.Kind())
	assert.Equal(t, "IncorrectData", err.Target)
	require.Len(t, err.Details, 2)
	assert.Equal(t, 309, err.Details[0].Number)
	assert.Equal(t, "AddressNotGeocoded", err.Details[1].Code)

	again := classifyResponse(200, []byte(body))
	assert.Equal(t, err, again)
}

func TestClassifyResponseNonObjectErrorField(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"string", `{"error": "bad input"}`, "bad input"},
		{"number", `{"error": 42}`, "42"},
		{"mistyped object", `{"error": {"code": 5}}`, `{"code": 5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyResponse(400, []byte(tt.body))
			require.NotNil(t, err)
			assert.Equal(t, errors.KindService, err.Kind())
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, 400, err.StatusCode)
		})
	}

	err := classifyResponse(200, []byte(`{"error": "bad input"}`))
	require.NotNil(t, err)
	assert.True(t, errors.IsServiceError(err))
}

func TestClassifyResponseParseKeepsRawBody(t *testing.T) {
	err := classifyResponse(503, []byte("Service Unavailable"))
	require.NotNil(t, err)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "Service Unavailable", err.Details[0].Description)
}

func TestClassifyFailure(t *testing.T) {
	t.Run("deadline", func(t *testing.T) {
		err := classifyFailure(context.Background(), 10*time.Millisecond, ErrDeadlineExceeded)
		assert.Equal(t, errors.ErrCodeTimeout, err.Code)
		assert.Empty(t, err.Details)
		assert.ErrorIs(t, err, ErrDeadlineExceeded)
	})

	t.Run("caller deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()
		<-ctx.Done()
		err := classifyFailure(ctx, 0, context.DeadlineExceeded)
		assert.Equal(t, errors.ErrCodeTimeout, err.Code)
	})

	t.Run("caller cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := classifyFailure(ctx, time.Second, context.Canceled)
		assert.Equal(t, errors.ErrCodeNetworkFailure, err.Code)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("network", func(t *testing.T) {
		cause := stderrors.New("dial tcp: connection refused")
		err := classifyFailure(context.Background(), time.Second, cause)
		assert.Equal(t, errors.ErrCodeNetworkFailure, err.Code)
		require.Len(t, err.Details, 1)
		assert.Equal(t, "dial tcp: connection refused", err.Details[0].Message)
	})
}
