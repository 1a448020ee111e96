package controller

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BotGJ16/ContentVault/internal/command"
	cmdmocks "github.com/BotGJ16/ContentVault/internal/command/mocks"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func withContentID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"content_id": id})
}

func TestContentUpdate_ServeHTTP(t *testing.T) {
	price := 3.0

	cases := []struct {
		name       string
		body       string
		wantReq    *command.UpdateContentRequest
		cmdErr     error
		wantStatus int
	}{
		{
			name: "partial_update",
			body: `{"price":3}`,
			wantReq: &command.UpdateContentRequest{
				ContentID:   "c1",
				UserAddress: "0xcreator",
				Price:       &price,
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed_body",
			body:       `{"price":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "not_owner",
			body: `{"price":3}`,
			wantReq: &command.UpdateContentRequest{
				ContentID:   "c1",
				UserAddress: "0xcreator",
				Price:       &price,
			},
			cmdErr:     domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			updateCmd := cmdmocks.NewMockCommand[command.UpdateContentRequest, domain.Content](t)
			if tc.wantReq != nil {
				updateCmd.EXPECT().Execute(mock.Anything, *tc.wantReq).Return(domain.Content{ID: "c1", Price: 3}, tc.cmdErr)
			}

			req := testRequest(http.MethodPut, "/v1/content/c1", bytes.NewBufferString(tc.body), "0xcreator")
			rec := httptest.NewRecorder()

			ContentUpdate{UpdateCmd: updateCmd}.ServeHTTP(rec, withContentID(req, "c1"))

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestContentDelete_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		cmdErr     error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "forbidden", cmdErr: domain.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "not_found", cmdErr: domain.ErrContentNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deleteCmd := cmdmocks.NewMockCommand[command.DeleteContentRequest, command.Empty](t)
			deleteCmd.EXPECT().
				Execute(mock.Anything, command.DeleteContentRequest{ContentID: "c1", UserAddress: "0xcreator"}).
				Return(command.Empty{}, tc.cmdErr)

			req := testRequest(http.MethodDelete, "/v1/content/c1", nil, "0xcreator")
			rec := httptest.NewRecorder()

			ContentDelete{DeleteCmd: deleteCmd}.ServeHTTP(rec, withContentID(req, "c1"))

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestContentPurchase_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		resp       command.PurchaseContentResponse
		cmdErr     error
		skipCmd    bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "returns_key",
			body:       `{"price":2}`,
			resp:       command.PurchaseContentResponse{EncryptionKey: "abc123"},
			wantStatus: http.StatusOK,
			wantBody:   `{"content_id":"c1","encryption_key":"abc123"}`,
		},
		{
			name:       "free_content",
			body:       `{"price":2}`,
			cmdErr:     domain.ErrContentIsFree,
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"content is free"}`,
		},
		{
			name:       "own_content",
			body:       `{"price":2}`,
			cmdErr:     domain.ErrOwnContent,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"cannot purchase own content"}`,
		},
		{
			name:       "not_json",
			body:       `price=2`,
			skipCmd:    true,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			purchaseCmd := cmdmocks.NewMockCommand[command.PurchaseContentRequest, command.PurchaseContentResponse](t)
			if !tc.skipCmd {
				purchaseCmd.EXPECT().
					Execute(mock.Anything, command.PurchaseContentRequest{ContentID: "c1", UserAddress: "0xbuyer", Price: 2}).
					Return(tc.resp, tc.cmdErr)
			}

			req := testRequest(http.MethodPost, "/v1/content/c1/purchase", bytes.NewBufferString(tc.body), "0xbuyer")
			rec := httptest.NewRecorder()

			ContentPurchase{PurchaseCmd: purchaseCmd}.ServeHTTP(rec, withContentID(req, "c1"))

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestContentTip_ServeHTTP(t *testing.T) {
	t.Run("tipped", func(t *testing.T) {
		tipCmd := cmdmocks.NewMockCommand[command.TipContentRequest, command.Empty](t)
		tipCmd.EXPECT().
			Execute(mock.Anything, command.TipContentRequest{ContentID: "c1", UserAddress: "0xfan", Amount: 5}).
			Return(command.Empty{}, nil)

		req := testRequest(http.MethodPost, "/v1/content/c1/tip", bytes.NewBufferString(`{"amount":5}`), "0xfan")
		rec := httptest.NewRecorder()

		ContentTip{TipCmd: tipCmd}.ServeHTTP(rec, withContentID(req, "c1"))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("invalid_amount", func(t *testing.T) {
		tipCmd := cmdmocks.NewMockCommand[command.TipContentRequest, command.Empty](t)
		tipCmd.EXPECT().
			Execute(mock.Anything, mock.Anything).
			Return(command.Empty{}, errors.Join(domain.ErrInvalidArgument, errors.New("amount must be greater than 0")))

		req := testRequest(http.MethodPost, "/v1/content/c1/tip", bytes.NewBufferString(`{"amount":0}`), "0xfan")
		rec := httptest.NewRecorder()

		ContentTip{TipCmd: tipCmd}.ServeHTTP(rec, withContentID(req, "c1"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestContentInteraction_ServeHTTP(t *testing.T) {
	recordCmd := cmdmocks.NewMockCommand[command.RecordInteractionRequest, command.Empty](t)
	recordCmd.EXPECT().
		Execute(mock.Anything, command.RecordInteractionRequest{
			ContentID:   "c1",
			UserAddress: "0xuser",
			Type:        domain.InteractionTypeLike,
		}).
		Return(command.Empty{}, nil)

	req := testRequest(http.MethodPost, "/v1/content/c1/interactions/like", nil, "0xuser")
	req = mux.SetURLVars(req, map[string]string{"content_id": "c1", "type": "like"})
	rec := httptest.NewRecorder()

	ContentInteraction{RecordCmd: recordCmd}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
