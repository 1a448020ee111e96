package controller

import (
	"net/http"
	"time"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

type ContentFeaturedList struct {
	ListCmd     command.Command[command.Empty, []domain.Content]
	CacheMaxAge time.Duration
}

func (c ContentFeaturedList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	contents, err := c.ListCmd.Execute(r.Context(), command.Empty{})
	if err != nil {
		writeError(w, r, "unable to list featured content", err)
		return
	}

	setPublicCacheControl(w, r, c.CacheMaxAge)
	writeJSON(w, r, http.StatusOK, ContentItemsResponse{Data: contents})
}
