package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/BotGJ16/ContentVault/internal/command"
	cmdmocks "github.com/BotGJ16/ContentVault/internal/command/mocks"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeTestRouter(t *testing.T, cmds Commands, config Config) http.Handler {
	t.Helper()

	r, err := MakeRouter(cmds, config, NewAuthMiddleware([]AuthValidator{NewJWTValidator(testSecret)}))
	require.NoError(t, err)
	return r
}

func authHeader(t *testing.T, address string) string {
	return "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, walletClaims{Address: address})
}

func TestMakeRouter_FixedPathsBeforeContentID(t *testing.T) {
	featured := cmdmocks.NewMockCommand[command.Empty, []domain.Content](t)
	featured.EXPECT().Execute(mock.Anything, command.Empty{}).Return([]domain.Content{}, nil)

	trending := cmdmocks.NewMockCommand[command.GetTrendingContentRequest, []domain.Content](t)
	trending.EXPECT().Execute(mock.Anything, command.GetTrendingContentRequest{Limit: 10}).Return([]domain.Content{}, nil)

	get := cmdmocks.NewMockCommand[string, domain.Content](t)
	get.EXPECT().Execute(mock.Anything, "c1").Return(domain.Content{ID: "c1"}, nil)

	r := makeTestRouter(t, Commands{
		ListFeaturedContent: featured,
		GetTrendingContent:  trending,
		GetContent:          get,
	}, Config{})

	for _, path := range []string{"/v1/content/featured", "/v1/content/trending", "/v1/content/c1"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestMakeRouter_RequiresAuth(t *testing.T) {
	r := makeTestRouter(t, Commands{}, Config{})

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/content/recommended"},
		{http.MethodPost, "/v1/content"},
		{http.MethodPut, "/v1/content/c1"},
		{http.MethodDelete, "/v1/content/c1"},
		{http.MethodPost, "/v1/content/c1/purchase"},
		{http.MethodPost, "/v1/content/c1/tip"},
		{http.MethodPost, "/v1/content/c1/interactions/like"},
		{http.MethodGet, "/v1/content/c1/download"},
		{http.MethodGet, "/v1/users/0xabc/purchased"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"authentication required"}`, rec.Body.String())
		})
	}
}

func TestMakeRouter_WriteRateLimit(t *testing.T) {
	tip := cmdmocks.NewMockCommand[command.TipContentRequest, command.Empty](t)
	tip.EXPECT().
		Execute(mock.Anything, command.TipContentRequest{ContentID: "c1", UserAddress: "0xfan", Amount: 1}).
		Return(command.Empty{}, nil).
		Once()

	r := makeTestRouter(t, Commands{TipContent: tip}, Config{WriteRateLimit: 1, WriteRateWindow: time.Minute})

	var codes []int
	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/v1/content/c1/tip", strings.NewReader(`{"amount":1}`))
		req.Header.Set("Authorization", authHeader(t, "0xFAN"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestMakeRouter_CORSPreflight(t *testing.T) {
	r := makeTestRouter(t, Commands{}, Config{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/content/c1/purchase", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestMakeRouter_Metrics(t *testing.T) {
	r := makeTestRouter(t, Commands{}, Config{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
