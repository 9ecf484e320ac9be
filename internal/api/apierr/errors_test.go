package apierr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefall/leaderboard-go/internal/model"
)

func writeAndDecode(t *testing.T, err error) (int, APIError) {
	t.Helper()

	rr := httptest.NewRecorder()
	WriteError(rr, err)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return rr.Code, resp.Error
}

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"name required", model.ErrNameRequired, http.StatusBadRequest, CodeInvalidRequest},
		{"name taken", model.ErrNameTaken, http.StatusConflict, CodeNameTaken},
		{"invalid key", model.ErrInvalidPlayerKey, http.StatusBadRequest, CodeInvalidPlayerKey},
		{"invalid record", model.ErrInvalidSessionRecord, http.StatusBadRequest, CodeInvalidSessionRecord},
		{"not found", model.ErrPlayerNotFound, http.StatusNotFound, CodePlayerNotFound},
		{"deadline exceeded", context.DeadlineExceeded, http.StatusGatewayTimeout, CodeStorageTimeout},
		{"unknown error", errors.New("connection refused"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiErr := writeAndDecode(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, apiErr.Code)
		})
	}
}

func TestWriteErrorHidesStorageDetail(t *testing.T) {
	_, apiErr := writeAndDecode(t, errors.New("dial tcp 10.0.0.1:6379: i/o timeout"))
	assert.NotContains(t, apiErr.Message, "6379")
	assert.Empty(t, apiErr.Details)
}

func TestWrappedErrorsStillMap(t *testing.T) {
	status, apiErr := writeAndDecode(t, errors.Join(errors.New("storage: get"), context.DeadlineExceeded))
	assert.Equal(t, http.StatusGatewayTimeout, status)
	assert.Equal(t, CodeStorageTimeout, apiErr.Code)
}
