package controller

import (
	"net/http"
	"time"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/gorilla/mux"
)

type ContentGet struct {
	GetCmd      command.Command[string, domain.Content]
	CacheMaxAge time.Duration
}

func (c ContentGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["content_id"]

	content, err := c.GetCmd.Execute(r.Context(), id)
	if err != nil {
		writeError(w, r, "unable to fetch content", err)
		return
	}

	setPublicCacheControl(w, r, c.CacheMaxAge)
	writeJSON(w, r, http.StatusOK, content)
}
