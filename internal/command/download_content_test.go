package command

import (
	"errors"
	"testing"

	"github.com/BotGJ16/ContentVault/internal/datasources/mocks"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDownloadContent_Execute(t *testing.T) {
	private := domain.Content{
		ID:             "c1",
		CreatorAddress: "0xcreator",
		WalrusBlobID:   "blob1",
		EncryptionKey:  "key",
		Metadata:       domain.ContentMetadata{OriginalName: "song.mp3", MimeType: "audio/mpeg"},
	}
	public := private
	public.IsPublic = true

	cases := []struct {
		name         string
		content      domain.Content
		userAddress  string
		checkBuyer   bool
		purchased    bool
		purchaseErr  error
		readErr      error
		wantDownload bool
		wantErr      error
	}{
		{name: "public_anonymous", content: public, wantDownload: true},
		{name: "creator", content: private, userAddress: "0xcreator", wantDownload: true},
		{name: "buyer", content: private, userAddress: "0xbuyer", checkBuyer: true, purchased: true, wantDownload: true},
		{name: "not_purchased", content: private, userAddress: "0xbuyer", checkBuyer: true, wantErr: domain.ErrForbidden},
		{name: "anonymous_private", content: private, wantErr: domain.ErrForbidden},
		{name: "blob_missing", content: public, readErr: domain.ErrBlobNotFound, wantErr: domain.ErrBlobNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockContentFetcher(t)
			purchases := mocks.NewMockPurchaseChecker(t)
			blobs := mocks.NewMockBlobReader(t)
			encrypter := mocks.NewMockContentEncrypter(t)

			fetcher.EXPECT().FetchContent(mock.Anything, "c1").Return(tc.content, nil)

			if tc.checkBuyer {
				purchases.EXPECT().HasPurchased(mock.Anything, tc.userAddress, "c1").Return(tc.purchased, tc.purchaseErr)
			}

			if tc.wantDownload || tc.readErr != nil {
				blobs.EXPECT().ReadBlob(mock.Anything, "blob1").Return([]byte("sealed"), tc.readErr)
			}
			if tc.wantDownload {
				encrypter.EXPECT().Decrypt("key", []byte("sealed")).Return([]byte("plain"), nil)
			}

			resp, err := NewDownloadContent(fetcher, purchases, blobs, encrypter).Execute(testContext(), DownloadContentRequest{
				ContentID:   "c1",
				UserAddress: tc.userAddress,
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, DownloadContentResponse{
				Data:     []byte("plain"),
				FileName: "song.mp3",
				MimeType: "audio/mpeg",
			}, resp)
		})
	}

	t.Run("decrypt_failure", func(t *testing.T) {
		fetcher := mocks.NewMockContentFetcher(t)
		blobs := mocks.NewMockBlobReader(t)
		encrypter := mocks.NewMockContentEncrypter(t)

		fetcher.EXPECT().FetchContent(mock.Anything, "c1").Return(public, nil)
		blobs.EXPECT().ReadBlob(mock.Anything, "blob1").Return([]byte("sealed"), nil)
		encrypter.EXPECT().Decrypt("key", []byte("sealed")).Return(nil, errors.New("message authentication failed"))

		_, err := NewDownloadContent(fetcher, mocks.NewMockPurchaseChecker(t), blobs, encrypter).
			Execute(testContext(), DownloadContentRequest{ContentID: "c1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decrypting content")
	})
}
