package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/gorilla/mux"
)

// ContentList serves the public, filterable content catalogue.
type ContentList struct {
	ListCmd     command.Command[command.ListContentRequest, command.ContentPage]
	CacheMaxAge time.Duration
}

type ContentListResponse struct {
	Data     []domain.Content    `json:"data"`
	Metadata ContentListMetadata `json:"metadata"`
}

type ContentListMetadata struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	HasMore     bool  `json:"has_more"`
}

func newContentListResponse(page command.ContentPage) ContentListResponse {
	return ContentListResponse{
		Data: page.Data,
		Metadata: ContentListMetadata{
			Total:       page.Total,
			TotalPages:  page.TotalPages,
			CurrentPage: page.CurrentPage,
			HasMore:     page.HasMore,
		},
	}
}

func (c ContentList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filters, err := contentFiltersFromQuery(r.URL.Query())
	if err != nil {
		writeBadRequest(w, r, "unable to parse content filters in query string", err)
		return
	}

	options, err := listOptionsFromQuery(r.URL.Query())
	if err != nil {
		writeBadRequest(w, r, "unable to parse content list options in query string", err)
		return
	}

	page, err := c.ListCmd.Execute(r.Context(), command.ListContentRequest{
		Filters: filters,
		Options: options,
	})
	if err != nil {
		writeError(w, r, "unable to list content", err)
		return
	}

	setPublicCacheControl(w, r, c.CacheMaxAge)
	writeJSON(w, r, http.StatusOK, newContentListResponse(page))
}

// CreatorContentList serves one creator's active content, newest first.
type CreatorContentList struct {
	ListCmd     command.Command[command.ListContentRequest, command.ContentPage]
	CacheMaxAge time.Duration
}

func (c CreatorContentList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	logger := domain.LoggerFromContext(r.Context())
	r = r.WithContext(domain.ContextWithLogger(r.Context(), logger.With("creator_address", address)))

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		writeBadRequest(w, r, "unable to parse pagination in query string", err)
		return
	}

	result, err := c.ListCmd.Execute(r.Context(), command.ListContentRequest{
		Filters: domain.ContentFilters{CreatorAddress: strings.ToLower(address)},
		Options: domain.ContentListOptions{
			Ordering: domain.ContentOrderingNewest,
			Page:     page,
			PageSize: pageSize,
		},
	})
	if err != nil {
		writeError(w, r, "unable to list creator content", err)
		return
	}

	setPublicCacheControl(w, r, c.CacheMaxAge)
	writeJSON(w, r, http.StatusOK, newContentListResponse(result))
}

func contentFiltersFromQuery(q url.Values) (domain.ContentFilters, error) {
	var filters domain.ContentFilters

	if category := q.Get("category"); category != "" && category != "all" {
		contentType := domain.ContentType(strings.ToLower(category))
		if !slices.Contains(domain.ValidContentTypes, contentType) {
			return domain.ContentFilters{}, fmt.Errorf("unrecognised content category: %s", category)
		}
		filters.Type = contentType
	}

	filters.Search = strings.TrimSpace(q.Get("search"))

	if creator := q.Get("creator"); creator != "" {
		filters.CreatorAddress = strings.ToLower(creator)
	}

	return filters, nil
}

func listOptionsFromQuery(q url.Values) (domain.ContentListOptions, error) {
	page, pageSize, err := parsePagination(q)
	if err != nil {
		return domain.ContentListOptions{}, err
	}

	options := domain.ContentListOptions{
		Ordering: domain.ContentOrderingNewest,
		Page:     page,
		PageSize: pageSize,
	}

	if q.Has("sort_by") {
		ordering := domain.ContentOrdering(q.Get("sort_by"))
		if !slices.Contains(domain.ValidContentOrderings, ordering) {
			return domain.ContentListOptions{}, fmt.Errorf("unrecognised content ordering: %s", ordering)
		}
		options.Ordering = ordering
	}

	return options, nil
}
