package controller

import (
	"encoding/json"
	"net/http"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/gorilla/mux"
)

const boolTrue = "true"

const maxJSONBodyBytes = 64 * 1024

type ContentUpdate struct {
	UpdateCmd command.Command[command.UpdateContentRequest, domain.Content]
}

type contentUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	IsPublic    *bool    `json:"is_public"`
}

func (c ContentUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["content_id"]
	logger := domain.LoggerFromContext(r.Context())
	r = r.WithContext(domain.ContextWithLogger(r.Context(), logger.With("content_id", id)))

	var body contentUpdateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)).Decode(&body); err != nil {
		writeBadRequest(w, r, "unable to decode update body", err)
		return
	}

	content, err := c.UpdateCmd.Execute(r.Context(), command.UpdateContentRequest{
		ContentID:   id,
		UserAddress: domain.UserAddressFromContext(r.Context()),
		Title:       body.Title,
		Description: body.Description,
		Price:       body.Price,
		IsPublic:    body.IsPublic,
	})
	if err != nil {
		writeError(w, r, "unable to update content", err)
		return
	}

	writeJSON(w, r, http.StatusOK, content)
}

type ContentDelete struct {
	DeleteCmd command.Command[command.DeleteContentRequest, command.Empty]
}

func (c ContentDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["content_id"]
	logger := domain.LoggerFromContext(r.Context())
	r = r.WithContext(domain.ContextWithLogger(r.Context(), logger.With("content_id", id)))

	if _, err := c.DeleteCmd.Execute(r.Context(), command.DeleteContentRequest{
		ContentID:   id,
		UserAddress: domain.UserAddressFromContext(r.Context()),
	}); err != nil {
		writeError(w, r, "unable to delete content", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
