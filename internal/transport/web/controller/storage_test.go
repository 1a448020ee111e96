package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BotGJ16/ContentVault/internal/command"
	cmdmocks "github.com/BotGJ16/ContentVault/internal/command/mocks"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStorageStatus_ServeHTTP(t *testing.T) {
	statusCmd := cmdmocks.NewMockCommand[command.Empty, json.RawMessage](t)
	statusCmd.EXPECT().Execute(mock.Anything, command.Empty{}).Return(json.RawMessage(`{"epoch": 42}`), nil)

	rec := httptest.NewRecorder()
	StorageStatus{StatusCmd: statusCmd}.ServeHTTP(rec, testRequest(http.MethodGet, "/v1/storage/status", nil, ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"epoch":42}`, rec.Body.String())
}

func TestStorageCost_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantSize   int64
		cmdErr     error
		wantStatus int
	}{
		{name: "quoted", query: "?size=1048576", wantSize: 1048576, wantStatus: http.StatusOK},
		{name: "missing_size", query: "", wantStatus: http.StatusBadRequest},
		{name: "not_a_number", query: "?size=big", wantStatus: http.StatusBadRequest},
		{
			name:       "out_of_range",
			query:      "?size=0",
			wantSize:   0,
			cmdErr:     fmt.Errorf("%w: size must be between 1 and 104857600 bytes", domain.ErrInvalidArgument),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "network_down",
			query:      "?size=10",
			wantSize:   10,
			cmdErr:     errors.New("circuit breaker is open"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			costCmd := cmdmocks.NewMockCommand[int64, json.RawMessage](t)
			if tc.wantStatus != http.StatusBadRequest || tc.cmdErr != nil {
				costCmd.EXPECT().Execute(mock.Anything, tc.wantSize).Return(json.RawMessage(`{"cost":7}`), tc.cmdErr)
			}

			rec := httptest.NewRecorder()
			StorageCost{CostCmd: costCmd}.ServeHTTP(rec, testRequest(http.MethodGet, "/v1/storage/cost"+tc.query, nil, ""))

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestContentAvailability_ServeHTTP(t *testing.T) {
	availabilityCmd := cmdmocks.NewMockCommand[string, bool](t)
	availabilityCmd.EXPECT().Execute(mock.Anything, "c1").Return(false, nil)

	req := testRequest(http.MethodGet, "/v1/content/c1/availability", nil, "")
	rec := httptest.NewRecorder()

	ContentAvailability{AvailabilityCmd: availabilityCmd}.ServeHTTP(rec, withContentID(req, "c1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"content_id":"c1","available":false}`, rec.Body.String())
}
