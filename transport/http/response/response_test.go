package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"summit/shared/constant"
	"summit/shared/failure"
	"summit/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantError  string
		wantReason string
	}{
		{
			name:       "failure passes through",
			err:        failure.NotCancellable("booking BK-2026-000001 is already completed"),
			wantCode:   http.StatusUnprocessableEntity,
			wantError:  "booking BK-2026-000001 is already completed",
			wantReason: failure.ReasonNotCancellable,
		},
		{
			name:       "wrapped failure keeps its code",
			err:        fmt.Errorf("submit: %w", failure.NotFound("booking")),
			wantCode:   http.StatusNotFound,
			wantReason: failure.ReasonNotFound,
		},
		{
			name:       "plain error is hidden",
			err:        errors.New(`pq: relation "bookings" does not exist`),
			wantCode:   http.StatusInternalServerError,
			wantError:  constant.ResponseErrorInternal,
			wantReason: failure.ReasonInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Reason)
			assert.Equal(t, tt.wantReason, *body.Reason)

			if tt.wantError != "" {
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.wantError, *body.Error)
			}
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"booking_number": "BK-2026-000001"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"booking_number":"BK-2026-000001"}}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.ResponseErrorRequestLimitExceeded)
}
