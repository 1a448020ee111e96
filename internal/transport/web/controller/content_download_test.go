package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BotGJ16/ContentVault/internal/command"
	cmdmocks "github.com/BotGJ16/ContentVault/internal/command/mocks"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContentDownload_ServeHTTP(t *testing.T) {
	cases := []struct {
		name            string
		resp            command.DownloadContentResponse
		cmdErr          error
		wantStatus      int
		wantContentType string
		wantDisposition string
	}{
		{
			name: "streams_file",
			resp: command.DownloadContentResponse{
				Data:     []byte("%PDF-1.7"),
				FileName: "report final.pdf",
				MimeType: "application/pdf",
			},
			wantStatus:      http.StatusOK,
			wantContentType: "application/pdf",
			wantDisposition: `attachment; filename="report final.pdf"`,
		},
		{
			name:            "unknown_type",
			resp:            command.DownloadContentResponse{Data: []byte{0x01}},
			wantStatus:      http.StatusOK,
			wantContentType: "application/octet-stream",
		},
		{
			name:            "not_purchased",
			cmdErr:          domain.ErrForbidden,
			wantStatus:      http.StatusForbidden,
			wantContentType: "application/json",
		},
		{
			name:            "blob_gone",
			cmdErr:          domain.ErrBlobNotFound,
			wantStatus:      http.StatusNotFound,
			wantContentType: "application/json",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			downloadCmd := cmdmocks.NewMockCommand[command.DownloadContentRequest, command.DownloadContentResponse](t)
			downloadCmd.EXPECT().
				Execute(mock.Anything, command.DownloadContentRequest{ContentID: "c1", UserAddress: "0xbuyer"}).
				Return(tc.resp, tc.cmdErr)

			req := testRequest(http.MethodGet, "/v1/content/c1/download", nil, "0xbuyer")
			rec := httptest.NewRecorder()

			ContentDownload{DownloadCmd: downloadCmd}.ServeHTTP(rec, withContentID(req, "c1"))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantContentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, tc.wantDisposition, rec.Header().Get("Content-Disposition"))
			if tc.cmdErr == nil {
				assert.Equal(t, tc.resp.Data, rec.Body.Bytes())
			}
		})
	}
}
