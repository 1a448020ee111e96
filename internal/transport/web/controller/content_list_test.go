package controller

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BotGJ16/ContentVault/internal/command"
	cmdmocks "github.com/BotGJ16/ContentVault/internal/command/mocks"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRequest(method, target string, body io.Reader, userAddress string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := domain.ContextWithLogger(req.Context(), slog.New(slog.DiscardHandler))
	if userAddress != "" {
		ctx = domain.ContextWithUserAddress(ctx, userAddress)
	}
	return req.WithContext(ctx)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func TestContentList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name        string
		query       string
		wantReq     *command.ListContentRequest
		page        command.ContentPage
		cmdErr      error
		wantStatus  int
		wantErrText string
	}{
		{
			name:  "defaults",
			query: "",
			wantReq: &command.ListContentRequest{
				Options: domain.ContentListOptions{Ordering: domain.ContentOrderingNewest, Page: 1, PageSize: 12},
			},
			page: command.ContentPage{
				Data:        []domain.Content{{ID: "c1"}, {ID: "c2"}},
				Total:       14,
				TotalPages:  2,
				CurrentPage: 1,
				HasMore:     true,
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "filters_and_sort",
			query: "?category=Video&search=+cats+&sort_by=popular&page=2&page_size=20",
			wantReq: &command.ListContentRequest{
				Filters: domain.ContentFilters{Type: domain.ContentTypeVideo, Search: "cats"},
				Options: domain.ContentListOptions{Ordering: domain.ContentOrderingPopular, Page: 2, PageSize: 20},
			},
			page:       command.ContentPage{Data: []domain.Content{}, CurrentPage: 2},
			wantStatus: http.StatusOK,
		},
		{
			name:  "category_all",
			query: "?category=all",
			wantReq: &command.ListContentRequest{
				Options: domain.ContentListOptions{Ordering: domain.ContentOrderingNewest, Page: 1, PageSize: 12},
			},
			page:       command.ContentPage{Data: []domain.Content{}, CurrentPage: 1},
			wantStatus: http.StatusOK,
		},
		{
			name:        "unknown_category",
			query:       "?category=books",
			wantStatus:  http.StatusBadRequest,
			wantErrText: "invalid argument: unrecognised content category: books",
		},
		{
			name:        "unknown_sort",
			query:       "?sort_by=rating",
			wantStatus:  http.StatusBadRequest,
			wantErrText: "invalid argument: unrecognised content ordering: rating",
		},
		{
			name:        "page_size_too_large",
			query:       "?page_size=500",
			wantStatus:  http.StatusBadRequest,
			wantErrText: "invalid argument: page size [500] exceeds limit [100]",
		},
		{
			name:  "command_error_hidden",
			query: "",
			wantReq: &command.ListContentRequest{
				Options: domain.ContentListOptions{Ordering: domain.ContentOrderingNewest, Page: 1, PageSize: 12},
			},
			cmdErr:      errors.New("mongo: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantErrText: "internal server error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			listCmd := cmdmocks.NewMockCommand[command.ListContentRequest, command.ContentPage](t)
			if tc.wantReq != nil {
				listCmd.EXPECT().Execute(mock.Anything, *tc.wantReq).Return(tc.page, tc.cmdErr)
			}

			ctrl := ContentList{ListCmd: listCmd, CacheMaxAge: time.Minute}

			rec := httptest.NewRecorder()
			ctrl.ServeHTTP(rec, testRequest(http.MethodGet, "/v1/content"+tc.query, nil, ""))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tc.wantErrText != "" {
				assert.Equal(t, tc.wantErrText, decodeError(t, rec))
				return
			}

			assert.Equal(t, "max-age=60", rec.Header().Get("Cache-Control"))

			var resp ContentListResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Len(t, resp.Data, len(tc.page.Data))
			assert.Equal(t, ContentListMetadata{
				Total:       tc.page.Total,
				TotalPages:  tc.page.TotalPages,
				CurrentPage: tc.page.CurrentPage,
				HasMore:     tc.page.HasMore,
			}, resp.Metadata)
		})
	}
}

func TestContentList_ServeHTTP_AuthenticatedNotCached(t *testing.T) {
	listCmd := cmdmocks.NewMockCommand[command.ListContentRequest, command.ContentPage](t)
	listCmd.EXPECT().Execute(mock.Anything, mock.Anything).Return(command.ContentPage{Data: []domain.Content{}}, nil)

	rec := httptest.NewRecorder()
	ContentList{ListCmd: listCmd, CacheMaxAge: time.Minute}.
		ServeHTTP(rec, testRequest(http.MethodGet, "/v1/content", nil, "0xuser"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Cache-Control"))
}

func TestCreatorContentList_ServeHTTP(t *testing.T) {
	listCmd := cmdmocks.NewMockCommand[command.ListContentRequest, command.ContentPage](t)
	listCmd.EXPECT().
		Execute(mock.Anything, command.ListContentRequest{
			Filters: domain.ContentFilters{CreatorAddress: "0xabcdef"},
			Options: domain.ContentListOptions{Ordering: domain.ContentOrderingNewest, Page: 3, PageSize: 12},
		}).
		Return(command.ContentPage{Data: []domain.Content{{ID: "c9"}}, Total: 25, TotalPages: 3, CurrentPage: 3}, nil)

	req := testRequest(http.MethodGet, "/v1/creators/0xABCDEF/content?page=3", nil, "")
	req = mux.SetURLVars(req, map[string]string{"address": "0xABCDEF"})
	rec := httptest.NewRecorder()

	CreatorContentList{ListCmd: listCmd}.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ContentListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "c9", resp.Data[0].ID)
	assert.False(t, resp.Metadata.HasMore)
}
