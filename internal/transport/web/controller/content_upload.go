package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

const (
	uploadFormField = "file"

	// Form fields and multipart framing on top of the file itself.
	uploadOverheadBytes = 1 << 20
	uploadMemoryBytes   = 32 << 20
)

// ContentUpload accepts a multipart upload from the authenticated user.
type ContentUpload struct {
	UploadCmd command.Command[command.UploadContentRequest, domain.Content]
}

func (c ContentUpload) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, command.MaxUploadSize+uploadOverheadBytes)
	if err := r.ParseMultipartForm(uploadMemoryBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "upload too large", err)
			return
		}
		writeBadRequest(w, r, "unable to parse multipart form", err)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to remove multipart temp files", "error", err)
		}
	}()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeBadRequest(w, r, "no file in upload", fmt.Errorf("no file uploaded: %w", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, "unable to read uploaded file", err)
		return
	}

	price := 0.0
	if v := r.FormValue("price"); v != "" {
		price, err = strconv.ParseFloat(v, 64)
		if err != nil {
			writeBadRequest(w, r, "unable to parse price", fmt.Errorf("invalid price: %w", err))
			return
		}
	}

	var tags []string
	if v := r.FormValue("tags"); v != "" {
		tags = strings.Split(v, ",")
	}

	content, err := c.UploadCmd.Execute(ctx, command.UploadContentRequest{
		CreatorAddress: domain.UserAddressFromContext(ctx),
		Title:          strings.TrimSpace(r.FormValue("title")),
		Description:    strings.TrimSpace(r.FormValue("description")),
		Price:          price,
		IsPublic:       r.FormValue("is_public") == boolTrue,
		Tags:           tags,
		Thumbnail:      r.FormValue("thumbnail"),
		FileName:       header.Filename,
		MimeType:       header.Header.Get("Content-Type"),
		Data:           data,
	})
	if err != nil {
		writeError(w, r, "unable to upload content", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, content)
}
