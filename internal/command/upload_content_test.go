package command

import (
	"context"
	"errors"
	"testing"

	"github.com/BotGJ16/ContentVault/internal/datasources/mocks"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckFileType(t *testing.T) {
	cases := []struct {
		name     string
		fileName string
		mimeType string
		wantErr  bool
	}{
		{name: "jpeg", fileName: "photo.JPG", mimeType: "image/jpeg"},
		{name: "png", fileName: "art.png", mimeType: "image/png"},
		{name: "mp3", fileName: "song.mp3", mimeType: "audio/mpeg"},
		{name: "mp4", fileName: "clip.mp4", mimeType: "video/mp4"},
		{name: "pdf", fileName: "paper.pdf", mimeType: "application/pdf"},
		{
			name:     "docx",
			fileName: "essay.docx",
			mimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
		{name: "mime_parameters_ignored", fileName: "a.pdf", mimeType: "application/pdf; charset=binary"},
		{name: "extension_not_allowed", fileName: "run.exe", mimeType: "application/pdf", wantErr: true},
		{name: "no_extension", fileName: "photo", mimeType: "image/jpeg", wantErr: true},
		{name: "mime_mismatch", fileName: "photo.jpg", mimeType: "application/x-msdownload", wantErr: true},
		{name: "disguised_extension", fileName: "photo.png.exe", mimeType: "image/png", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkFileType(tc.fileName, tc.mimeType)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type uploadMocks struct {
	encrypter     *mocks.MockContentEncrypter
	blobStore     *mocks.MockBlobStore
	creator       *mocks.MockContentCreator
	creatorMarker *mocks.MockCreatorMarker
	vectorIndexer *mocks.MockContentVectorIndexer
}

func newUploadMocks(t *testing.T) uploadMocks {
	return uploadMocks{
		encrypter:     mocks.NewMockContentEncrypter(t),
		blobStore:     mocks.NewMockBlobStore(t),
		creator:       mocks.NewMockContentCreator(t),
		creatorMarker: mocks.NewMockCreatorMarker(t),
		vectorIndexer: mocks.NewMockContentVectorIndexer(t),
	}
}

func (m uploadMocks) command() *UploadContent {
	cmd := NewUploadContent(m.encrypter, m.blobStore, m.creator, m.creatorMarker, m.vectorIndexer)
	cmd.Clock = testClock
	return cmd
}

func validUploadRequest() UploadContentRequest {
	return UploadContentRequest{
		CreatorAddress: "0xCreator",
		Title:          "Sunset",
		Description:    "A photo of a sunset",
		Price:          0.05,
		Tags:           []string{" Nature ", "PHOTOGRAPHY", ""},
		FileName:       "sunset.jpg",
		MimeType:       "image/jpeg",
		Data:           []byte("jpeg bytes"),
	}
}

func TestUploadContent_Execute(t *testing.T) {
	blobMetadata := domain.BlobMetadata{OriginalName: "sunset.jpg", OriginalSize: 10, Encrypted: true}

	t.Run("stores_and_records", func(t *testing.T) {
		m := newUploadMocks(t)

		m.encrypter.EXPECT().GenerateKey().Return("key", nil)
		m.encrypter.EXPECT().Encrypt("key", []byte("jpeg bytes")).Return([]byte("sealed"), nil)
		m.blobStore.EXPECT().
			StoreBlob(mock.Anything, []byte("sealed"), blobMetadata).
			Return(domain.StoredBlob{BlobID: "blob1"}, nil)

		var created domain.Content
		m.creator.EXPECT().
			CreateContent(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, c domain.Content) (domain.Content, error) {
				created = c
				c.ID = "content1"
				return c, nil
			})
		m.creatorMarker.EXPECT().MarkCreator(mock.Anything, "0xcreator").Return(nil)
		m.vectorIndexer.EXPECT().
			IndexContentVector(mock.Anything, mock.MatchedBy(func(c domain.Content) bool {
				return c.ID == "content1"
			}), mock.Anything).
			Return(nil)

		result, err := m.command().Execute(testContext(), validUploadRequest())
		require.NoError(t, err)

		assert.Equal(t, "content1", result.ID)
		assert.Equal(t, "0xcreator", created.CreatorAddress)
		assert.Equal(t, domain.ContentTypeImage, created.Type)
		assert.Equal(t, "blob1", created.WalrusBlobID)
		assert.Equal(t, "key", created.EncryptionKey)
		assert.Equal(t, []string{"nature", "photography"}, created.Tags)
		assert.Equal(t, testNow, created.UploadedAt)
		assert.True(t, created.IsActive)
		assert.Equal(t, domain.ContentMetadata{
			OriginalName: "sunset.jpg",
			OriginalSize: 10,
			MimeType:     "image/jpeg",
		}, created.Metadata)
	})

	t.Run("best_effort_steps_do_not_fail_upload", func(t *testing.T) {
		m := newUploadMocks(t)

		m.encrypter.EXPECT().GenerateKey().Return("key", nil)
		m.encrypter.EXPECT().Encrypt("key", mock.Anything).Return([]byte("sealed"), nil)
		m.blobStore.EXPECT().StoreBlob(mock.Anything, mock.Anything, mock.Anything).
			Return(domain.StoredBlob{BlobID: "blob1"}, nil)
		m.creator.EXPECT().CreateContent(mock.Anything, mock.Anything).
			Return(domain.Content{ID: "content1", CreatorAddress: "0xcreator"}, nil)
		m.creatorMarker.EXPECT().MarkCreator(mock.Anything, "0xcreator").Return(errors.New("database error"))
		m.vectorIndexer.EXPECT().IndexContentVector(mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("index unavailable"))

		result, err := m.command().Execute(testContext(), validUploadRequest())
		require.NoError(t, err)
		assert.Equal(t, "content1", result.ID)
	})

	t.Run("record_failure_deletes_new_blob", func(t *testing.T) {
		m := newUploadMocks(t)

		m.encrypter.EXPECT().GenerateKey().Return("key", nil)
		m.encrypter.EXPECT().Encrypt("key", mock.Anything).Return([]byte("sealed"), nil)
		m.blobStore.EXPECT().StoreBlob(mock.Anything, mock.Anything, mock.Anything).
			Return(domain.StoredBlob{BlobID: "blob1"}, nil)
		m.creator.EXPECT().CreateContent(mock.Anything, mock.Anything).
			Return(domain.Content{}, errors.New("duplicate key"))
		m.blobStore.EXPECT().DeleteBlob(mock.Anything, "blob1").Return(nil)

		_, err := m.command().Execute(testContext(), validUploadRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "creating content")
	})

	t.Run("record_failure_keeps_already_certified_blob", func(t *testing.T) {
		m := newUploadMocks(t)

		m.encrypter.EXPECT().GenerateKey().Return("key", nil)
		m.encrypter.EXPECT().Encrypt("key", mock.Anything).Return([]byte("sealed"), nil)
		m.blobStore.EXPECT().StoreBlob(mock.Anything, mock.Anything, mock.Anything).
			Return(domain.StoredBlob{BlobID: "blob1", AlreadyCertified: true}, nil)
		m.creator.EXPECT().CreateContent(mock.Anything, mock.Anything).
			Return(domain.Content{}, errors.New("duplicate key"))

		_, err := m.command().Execute(testContext(), validUploadRequest())
		require.Error(t, err)
	})

	t.Run("store_failure", func(t *testing.T) {
		m := newUploadMocks(t)

		m.encrypter.EXPECT().GenerateKey().Return("key", nil)
		m.encrypter.EXPECT().Encrypt("key", mock.Anything).Return([]byte("sealed"), nil)
		m.blobStore.EXPECT().StoreBlob(mock.Anything, mock.Anything, mock.Anything).
			Return(domain.StoredBlob{}, errors.New("circuit breaker is open"))

		_, err := m.command().Execute(testContext(), validUploadRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storing blob")
	})
}

func TestUploadContent_Execute_Validation(t *testing.T) {
	cases := []struct {
		name        string
		modify      func(r *UploadContentRequest)
		errContains string
	}{
		{
			name:        "missing_title",
			modify:      func(r *UploadContentRequest) { r.Title = "" },
			errContains: "title is required",
		},
		{
			name: "title_too_long",
			modify: func(r *UploadContentRequest) {
				r.Title = string(make([]byte, 201))
			},
			errContains: "title must be at most 200",
		},
		{
			name:        "missing_description",
			modify:      func(r *UploadContentRequest) { r.Description = "" },
			errContains: "description is required",
		},
		{
			name:        "negative_price",
			modify:      func(r *UploadContentRequest) { r.Price = -1 },
			errContains: "price must be at least 0",
		},
		{
			name:        "empty_file",
			modify:      func(r *UploadContentRequest) { r.Data = nil },
			errContains: "file is empty",
		},
		{
			name:        "disallowed_type",
			modify:      func(r *UploadContentRequest) { r.FileName = "script.js"; r.MimeType = "text/javascript" },
			errContains: "not allowed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validUploadRequest()
			tc.modify(&req)

			_, err := newUploadMocks(t).command().Execute(testContext(), req)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestUploadContent_Execute_TooLarge(t *testing.T) {
	req := validUploadRequest()
	req.Data = make([]byte, MaxUploadSize+1)

	_, err := newUploadMocks(t).command().Execute(testContext(), req)
	require.ErrorIs(t, err, domain.ErrTooLarge)
	assert.NotErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "file exceeds")
}
