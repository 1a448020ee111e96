package walrus

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/BotGJ16/ContentVault/internal/domain"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config := DefaultConfig()
	config.RPCURL = srv.URL + "/rpc"
	config.PublisherURL = srv.URL + "/publisher"
	config.AggregatorURL = srv.URL + "/aggregator"
	config.APIKey = "test-key"
	config.BreakerFailures = 2
	config.BreakerCooldown = time.Minute

	return NewClient(config, srv.Client())
}

func TestClient_StoreBlob(t *testing.T) {
	cases := []struct {
		name         string
		response     string
		expected     domain.StoredBlob
		expectedErr  error
		expectAnyErr bool
	}{
		{
			name:     "newly_created",
			response: `{"newlyCreated":{"blobObject":{"blobId":"blob-1","registeredEpoch":12,"storageResource":{"id":"x"}}}}`,
			expected: domain.StoredBlob{BlobID: "blob-1", RegisteredEpoch: 12},
		},
		{
			name:     "already_certified",
			response: `{"alreadyCertified":{"blobId":"blob-2","registeredEpoch":7}}`,
			expected: domain.StoredBlob{BlobID: "blob-2", RegisteredEpoch: 7, AlreadyCertified: true},
		},
		{
			name:        "unexpected_format",
			response:    `{"somethingElse":{}}`,
			expectedErr: ErrUnexpectedResponse,
		},
		{
			name:         "invalid_json",
			response:     `not json`,
			expectAnyErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/publisher/v1/store", r.URL.Path)
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

				assert.NoError(t, r.ParseMultipartForm(1<<20))
				file, header, err := r.FormFile("file")
				if assert.NoError(t, err) {
					data, _ := io.ReadAll(file)
					assert.Equal(t, "sealed bytes", string(data))
					assert.Equal(t, "photo.png", header.Filename)
				}

				var metadata domain.BlobMetadata
				assert.NoError(t, json.Unmarshal([]byte(r.FormValue("metadata")), &metadata))
				assert.Equal(t, domain.BlobMetadata{OriginalName: "photo.png", OriginalSize: 10, Encrypted: true}, metadata)

				_, _ = w.Write([]byte(tc.response))
			})

			result, err := client.StoreBlob(context.Background(), []byte("sealed bytes"), domain.BlobMetadata{
				OriginalName: "photo.png",
				OriginalSize: 10,
				Encrypted:    true,
			})

			switch {
			case tc.expectedErr != nil:
				assert.ErrorIs(t, err, tc.expectedErr)
			case tc.expectAnyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.expected, result)
			}
		})
	}
}

func TestClient_ReadBlob(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/aggregator/v1/blob-1":
			_, _ = w.Write([]byte("payload"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	data, err := client.ReadBlob(context.Background(), "blob-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	_, err = client.ReadBlob(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
}

func TestClient_BlobExists(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		switch r.URL.Path {
		case "/rpc/v1/present/metadata":
			w.WriteHeader(http.StatusOK)
		case "/rpc/v1/broken/metadata":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	exists, err := client.BlobExists(context.Background(), "present")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.BlobExists(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = client.BlobExists(context.Background(), "broken")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestClient_DeleteBlob(t *testing.T) {
	var called atomic.Bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/publisher/v1/blob-1", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.DeleteBlob(context.Background(), "blob-1"))
	assert.True(t, called.Load())
}

func TestClient_StatusAndCost(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rpc/v1/system/status":
			_, _ = w.Write([]byte(`{"epoch":42}`))
		case "/publisher/v1/cost":
			var body map[string]int64
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, int64(2048), body["size"])
			_, _ = w.Write([]byte(`{"cost":"0.001"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	status, err := client.StorageStatus(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"epoch":42}`, string(status))

	cost, err := client.EstimateStorageCost(context.Background(), 2048)
	require.NoError(t, err)
	assert.JSONEq(t, `{"cost":"0.001"}`, string(cost))
}

func TestClient_CircuitBreaker(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path == "/aggregator/v1/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	t.Run("not_found_does_not_trip", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := client.ReadBlob(context.Background(), "missing")
			assert.ErrorIs(t, err, domain.ErrBlobNotFound)
		}
		assert.Equal(t, gobreaker.StateClosed, client.breaker.State())
	})

	t.Run("opens_after_consecutive_failures", func(t *testing.T) {
		calls.Store(0)
		for i := 0; i < 2; i++ {
			_, err := client.ReadBlob(context.Background(), "blob")
			var statusErr *StatusError
			assert.ErrorAs(t, err, &statusErr)
		}
		assert.Equal(t, gobreaker.StateOpen, client.breaker.State())

		_, err := client.ReadBlob(context.Background(), "blob")
		assert.ErrorIs(t, err, gobreaker.ErrOpenState)
		assert.Equal(t, int32(2), calls.Load(), "open circuit does not reach the server")
	})
}
