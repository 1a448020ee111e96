package walrus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/BotGJ16/ContentVault/internal/metrics"
	gobreaker "github.com/sony/gobreaker/v2"
)

var (
	_ datasources.BlobStore        = (*Client)(nil)
	_ datasources.StorageInspector = (*Client)(nil)
)

const breakerName = "walrus"

// ErrUnexpectedResponse is returned when a store response has neither a new nor an existing blob.
var ErrUnexpectedResponse = errors.New("unexpected response format from walrus")

type Config struct {
	// RPCURL serves blob metadata and system status.
	RPCURL string
	// PublisherURL accepts writes and deletes.
	PublisherURL string
	// AggregatorURL serves blob reads.
	AggregatorURL string
	// APIKey, if set, is sent as a bearer token to the publisher.
	APIKey string

	StoreTimeout    time.Duration
	ReadTimeout     time.Duration
	MetadataTimeout time.Duration

	// BreakerFailures is how many consecutive failures open the circuit.
	BreakerFailures uint32
	// BreakerCooldown is how long the circuit stays open before a trial request.
	BreakerCooldown time.Duration
}

func DefaultConfig() Config {
	return Config{
		RPCURL:          "https://walrus-testnet.rpc.mystenlabs.com",
		PublisherURL:    "https://walrus-testnet.publisher.mystenlabs.com",
		AggregatorURL:   "https://walrus-testnet.aggr.mystenlabs.com",
		StoreTimeout:    5 * time.Minute,
		ReadTimeout:     time.Minute,
		MetadataTimeout: 10 * time.Second,
		BreakerFailures: 5,
		BreakerCooldown: 30 * time.Second,
	}
}

// Client talks to a Walrus publisher, aggregator and RPC node. Calls are not
// retried; repeated failures open a circuit breaker that fails fast.
type Client struct {
	config     Config
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(config Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     config.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
		// A missing blob is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrBlobNotFound)
		},
	})

	return &Client{
		config:     config,
		httpClient: httpClient,
		breaker:    breaker,
	}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("walrus API error (status %d): %s", e.StatusCode, e.Body)
}

type blobObject struct {
	BlobID          string          `json:"blobId"`
	RegisteredEpoch int64           `json:"registeredEpoch"`
	StorageResource json.RawMessage `json:"storageResource,omitempty"`
}

type storeResponse struct {
	NewlyCreated *struct {
		BlobObject blobObject `json:"blobObject"`
	} `json:"newlyCreated"`
	AlreadyCertified *blobObject `json:"alreadyCertified"`
}

func (c *Client) StoreBlob(
	ctx context.Context,
	data []byte,
	metadata domain.BlobMetadata,
) (domain.StoredBlob, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	filePart, err := form.CreateFormFile("file", metadata.OriginalName)
	if err != nil {
		return domain.StoredBlob{}, fmt.Errorf("creating file part: %w", err)
	}
	if _, err := filePart.Write(data); err != nil {
		return domain.StoredBlob{}, fmt.Errorf("writing file part: %w", err)
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return domain.StoredBlob{}, fmt.Errorf("marshalling metadata: %w", err)
	}
	if err := form.WriteField("metadata", string(metadataJSON)); err != nil {
		return domain.StoredBlob{}, fmt.Errorf("writing metadata part: %w", err)
	}
	if err := form.Close(); err != nil {
		return domain.StoredBlob{}, fmt.Errorf("closing multipart body: %w", err)
	}

	respBody, err := c.do(ctx, "store", c.config.StoreTimeout, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(
			ctx, http.MethodPost, c.config.PublisherURL+"/v1/store", bytes.NewReader(body.Bytes()),
		)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", form.FormDataContentType())
		c.authorize(req)
		return req, nil
	})
	if err != nil {
		return domain.StoredBlob{}, fmt.Errorf("uploading to walrus: %w", err)
	}

	var result storeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return domain.StoredBlob{}, fmt.Errorf("decoding store response: %w", err)
	}

	switch {
	case result.NewlyCreated != nil && result.NewlyCreated.BlobObject.BlobID != "":
		return domain.StoredBlob{
			BlobID:          result.NewlyCreated.BlobObject.BlobID,
			RegisteredEpoch: result.NewlyCreated.BlobObject.RegisteredEpoch,
		}, nil
	case result.AlreadyCertified != nil && result.AlreadyCertified.BlobID != "":
		return domain.StoredBlob{
			BlobID:           result.AlreadyCertified.BlobID,
			RegisteredEpoch:  result.AlreadyCertified.RegisteredEpoch,
			AlreadyCertified: true,
		}, nil
	default:
		return domain.StoredBlob{}, ErrUnexpectedResponse
	}
}

func (c *Client) ReadBlob(ctx context.Context, blobID string) ([]byte, error) {
	data, err := c.do(ctx, "read", c.config.ReadTimeout, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, c.config.AggregatorURL+"/v1/"+blobID, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("reading blob [%s] from walrus: %w", blobID, err)
	}
	return data, nil
}

func (c *Client) BlobExists(ctx context.Context, blobID string) (bool, error) {
	_, err := c.do(ctx, "exists", c.config.MetadataTimeout, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodHead, c.config.RPCURL+"/v1/"+blobID+"/metadata", nil)
	})
	if errors.Is(err, domain.ErrBlobNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking blob [%s] exists: %w", blobID, err)
	}
	return true, nil
}

func (c *Client) DeleteBlob(ctx context.Context, blobID string) error {
	_, err := c.do(ctx, "delete", c.config.ReadTimeout, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.config.PublisherURL+"/v1/"+blobID, nil)
		if err != nil {
			return nil, err
		}
		c.authorize(req)
		return req, nil
	})
	if err != nil {
		return fmt.Errorf("deleting blob [%s]: %w", blobID, err)
	}
	return nil
}

func (c *Client) StorageStatus(ctx context.Context) (json.RawMessage, error) {
	data, err := c.do(ctx, "status", c.config.MetadataTimeout, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, c.config.RPCURL+"/v1/system/status", nil)
	})
	if err != nil {
		return nil, fmt.Errorf("getting storage status: %w", err)
	}
	return json.RawMessage(data), nil
}

func (c *Client) EstimateStorageCost(ctx context.Context, size int64) (json.RawMessage, error) {
	reqBody, err := json.Marshal(map[string]int64{"size": size})
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	data, err := c.do(ctx, "cost", c.config.MetadataTimeout, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(
			ctx, http.MethodPost, c.config.PublisherURL+"/v1/cost", bytes.NewReader(reqBody),
		)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("estimating storage cost: %w", err)
	}
	return json.RawMessage(data), nil
}

func (c *Client) authorize(req *http.Request) {
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}
}

// do sends one request through the circuit breaker and returns the response body.
// A 404 is reported as domain.ErrBlobNotFound.
func (c *Client) do(
	ctx context.Context,
	operation string,
	timeout time.Duration,
	newRequest func(ctx context.Context) (*http.Request, error),
) ([]byte, error) {
	start := time.Now()

	body, err := c.breaker.Execute(func() ([]byte, error) {
		reqCtx := ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			reqCtx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		req, err := newRequest(reqCtx)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("executing request: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading response body: %w", err)
		}

		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrBlobNotFound
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
		}
		return data, nil
	})

	metrics.RecordWalrusRequest(operation, time.Since(start), err)
	return body, err
}
