package controller

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/gorilla/mux"
)

type ContentDownload struct {
	DownloadCmd command.Command[command.DownloadContentRequest, command.DownloadContentResponse]
}

func (c ContentDownload) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["content_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("content_id", id))
	r = r.WithContext(ctx)

	file, err := c.DownloadCmd.Execute(ctx, command.DownloadContentRequest{
		ContentID:   id,
		UserAddress: domain.UserAddressFromContext(ctx),
	})
	if err != nil {
		writeError(w, r, "unable to download content", err)
		return
	}

	contentType := file.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.Header().Set("Cache-Control", "private, no-store")
	if file.FileName != "" {
		w.Header().Set("Content-Disposition",
			mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))
	}

	if _, err := w.Write(file.Data); err != nil {
		logger.ErrorContext(ctx, "unable to write download to response", "error", err)
	}
}
