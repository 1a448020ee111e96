package controller

import (
	"net/http"
	"time"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/gorilla/mux"
)

type SimilarContentList struct {
	SimilarCmd  command.Command[command.ListSimilarContentRequest, []domain.Content]
	CacheMaxAge time.Duration
}

func (c SimilarContentList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["content_id"]
	logger := domain.LoggerFromContext(r.Context())
	r = r.WithContext(domain.ContextWithLogger(r.Context(), logger.With("content_id", id)))

	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		writeBadRequest(w, r, "unable to parse limit in query string", err)
		return
	}

	contents, err := c.SimilarCmd.Execute(r.Context(), command.ListSimilarContentRequest{
		ContentID: id,
		Limit:     limit,
	})
	if err != nil {
		writeError(w, r, "unable to list similar content", err)
		return
	}

	setPublicCacheControl(w, r, c.CacheMaxAge)
	writeJSON(w, r, http.StatusOK, ContentItemsResponse{Data: contents})
}
