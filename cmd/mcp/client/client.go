// Package client provides an HTTP client for the ContentVault API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/BotGJ16/ContentVault/internal/domain"
)

// ErrAuthRequired is returned by calls that need a session token when none was configured.
var ErrAuthRequired = errors.New("this operation requires CONTENTVAULT_API_TOKEN")

// ListMetadata describes the page returned by a paginated listing.
type ListMetadata struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	HasMore     bool  `json:"has_more"`
}

// ContentPage is a page of catalogue results.
type ContentPage struct {
	Data     []domain.Content `json:"data"`
	Metadata ListMetadata     `json:"metadata"`
}

type contentItems struct {
	Data []domain.Content `json:"data"`
}

type scoredItems struct {
	Data []domain.ScoredContent `json:"data"`
}

type apiError struct {
	Error string `json:"error"`
}

// SearchFilters contains search parameters for listing content.
type SearchFilters struct {
	Search   string
	Category string
	Creator  string
	SortBy   string
	Page     int
	PageSize int
}

// Client is an HTTP client for the ContentVault API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new API client. An empty token restricts the client to public endpoints.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Authenticated reports whether the client carries a session token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	return c.handleResponse(resp, result)
}

func limitParams(limit int) url.Values {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return params
}

func pageParams(page, pageSize int) url.Values {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	return params
}

func (f SearchFilters) queryParams() url.Values {
	params := pageParams(f.Page, f.PageSize)

	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Creator != "" {
		params.Set("creator", f.Creator)
	}
	if f.SortBy != "" {
		params.Set("sort_by", f.SortBy)
	}

	return params
}

// SearchContent lists public catalogue content matching the given filters.
func (c *Client) SearchContent(ctx context.Context, filters SearchFilters) (ContentPage, error) {
	var page ContentPage
	if err := c.get(ctx, "/v1/content", filters.queryParams(), &page); err != nil {
		return ContentPage{}, err
	}
	return page, nil
}

// ListFeatured retrieves the featured content shelf.
func (c *Client) ListFeatured(ctx context.Context) ([]domain.Content, error) {
	var result contentItems
	if err := c.get(ctx, "/v1/content/featured", nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ListTrending retrieves currently trending content.
func (c *Client) ListTrending(ctx context.Context, limit int) ([]domain.Content, error) {
	var result contentItems
	if err := c.get(ctx, "/v1/content/trending", limitParams(limit), &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// GetContent retrieves a single content item by ID.
func (c *Client) GetContent(ctx context.Context, contentID string) (domain.Content, error) {
	var content domain.Content
	if err := c.get(ctx, "/v1/content/"+url.PathEscape(contentID), nil, &content); err != nil {
		return domain.Content{}, err
	}
	return content, nil
}

// GetSimilarContent finds content similar to the given item.
func (c *Client) GetSimilarContent(ctx context.Context, contentID string, limit int) ([]domain.Content, error) {
	var result contentItems
	path := "/v1/content/" + url.PathEscape(contentID) + "/similar"
	if err := c.get(ctx, path, limitParams(limit), &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ListCreatorContent lists content uploaded by a creator.
func (c *Client) ListCreatorContent(ctx context.Context, address string, page, pageSize int) (ContentPage, error) {
	var result ContentPage
	path := "/v1/creators/" + url.PathEscape(address) + "/content"
	if err := c.get(ctx, path, pageParams(page, pageSize), &result); err != nil {
		return ContentPage{}, err
	}
	return result, nil
}

// GetUser retrieves a user's public profile.
func (c *Client) GetUser(ctx context.Context, address string) (domain.User, error) {
	var user domain.User
	if err := c.get(ctx, "/v1/users/"+url.PathEscape(address), nil, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetRecommendations retrieves personalized recommendations for the token's wallet.
func (c *Client) GetRecommendations(ctx context.Context, limit int) ([]domain.ScoredContent, error) {
	if !c.Authenticated() {
		return nil, ErrAuthRequired
	}

	var result scoredItems
	if err := c.get(ctx, "/v1/content/recommended", limitParams(limit), &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// RecordInteraction records a like, share, bookmark or view for the token's wallet.
func (c *Client) RecordInteraction(ctx context.Context, contentID string, interactionType domain.InteractionType) error {
	if !c.Authenticated() {
		return ErrAuthRequired
	}

	path := "/v1/content/" + url.PathEscape(contentID) + "/interactions/" + url.PathEscape(string(interactionType))
	resp, err := c.doRequest(ctx, http.MethodPost, path)
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}

// StorageStatus retrieves the Walrus network status reported by the API.
func (c *Client) StorageStatus(ctx context.Context) (json.RawMessage, error) {
	var status json.RawMessage
	if err := c.get(ctx, "/v1/storage/status", nil, &status); err != nil {
		return nil, err
	}
	return status, nil
}
