package controller

import (
	"net/http"
	"time"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

type ContentTrendingList struct {
	TrendingCmd command.Command[command.GetTrendingContentRequest, []domain.Content]
	CacheMaxAge time.Duration
}

func (c ContentTrendingList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		writeBadRequest(w, r, "unable to parse limit in query string", err)
		return
	}

	contents, err := c.TrendingCmd.Execute(r.Context(), command.GetTrendingContentRequest{Limit: limit})
	if err != nil {
		writeError(w, r, "unable to list trending content", err)
		return
	}

	setPublicCacheControl(w, r, c.CacheMaxAge)
	writeJSON(w, r, http.StatusOK, ContentItemsResponse{Data: contents})
}
