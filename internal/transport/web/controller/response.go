package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/BotGJ16/ContentVault/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// ContentItemsResponse is an unpaginated list of content.
type ContentItemsResponse struct {
	Data []domain.Content `json:"data"`
}

func statusForError(err error) int {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrOwnContent):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrContentNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBlobNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrContentIsFree):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTooLarge), errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes it as a JSON error body. Unexpected errors
// are reported to the client without detail.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	status := statusForError(err)
	body := errorResponse{Error: err.Error()}
	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
		body.Error = "internal server error"
	} else {
		logger.InfoContext(ctx, msg, "error", err, "status", status)
	}

	writeJSON(w, r, status, body)
}

// writeBadRequest reports a malformed request that never reached a command.
func writeBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error) {
	writeError(w, r, msg, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// setPublicCacheControl marks anonymous responses cacheable. Authenticated
// responses may carry per-user data and are never cached.
func setPublicCacheControl(w http.ResponseWriter, r *http.Request, maxAge time.Duration) {
	if domain.UserAddressFromContext(r.Context()) != "" {
		return
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(maxAge.Seconds())))
}
