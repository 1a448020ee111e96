package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/gorilla/mux"
)

type StorageStatus struct {
	StatusCmd command.Command[command.Empty, json.RawMessage]
}

func (c StorageStatus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status, err := c.StatusCmd.Execute(r.Context(), command.Empty{})
	if err != nil {
		writeError(w, r, "unable to fetch storage status", err)
		return
	}

	writeJSON(w, r, http.StatusOK, status)
}

type StorageCost struct {
	CostCmd command.Command[int64, json.RawMessage]
}

func (c StorageCost) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("size") {
		writeBadRequest(w, r, "no size in query string", errors.New("size is required"))
		return
	}

	size, err := strconv.ParseInt(q.Get("size"), 10, 64)
	if err != nil {
		writeBadRequest(w, r, "unable to parse size in query string", err)
		return
	}

	cost, err := c.CostCmd.Execute(r.Context(), size)
	if err != nil {
		writeError(w, r, "unable to estimate storage cost", err)
		return
	}

	writeJSON(w, r, http.StatusOK, cost)
}

type ContentAvailability struct {
	AvailabilityCmd command.Command[string, bool]
}

type ContentAvailabilityResponse struct {
	ContentID string `json:"content_id"`
	Available bool   `json:"available"`
}

func (c ContentAvailability) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["content_id"]
	logger := domain.LoggerFromContext(r.Context())
	r = r.WithContext(domain.ContextWithLogger(r.Context(), logger.With("content_id", id)))

	available, err := c.AvailabilityCmd.Execute(r.Context(), id)
	if err != nil {
		writeError(w, r, "unable to check content availability", err)
		return
	}

	writeJSON(w, r, http.StatusOK, ContentAvailabilityResponse{ContentID: id, Available: available})
}
