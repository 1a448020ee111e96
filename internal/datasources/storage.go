package datasources

import (
	"context"
	"encoding/json"
)

// ContentEncrypter seals content payloads with per-content keys.
type ContentEncrypter interface {
	GenerateKey() (string, error)
	Encrypt(key string, plaintext []byte) ([]byte, error)
	Decrypt(key string, ciphertext []byte) ([]byte, error)
}

// StorageInspector reports on the storage network itself. Responses are passed through as-is.
type StorageInspector interface {
	BlobExists(ctx context.Context, blobID string) (bool, error)
	StorageStatus(ctx context.Context) (json.RawMessage, error)
	EstimateStorageCost(ctx context.Context, size int64) (json.RawMessage, error)
}
