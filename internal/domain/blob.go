package domain

// BlobMetadata is attached to a blob when it is stored.
type BlobMetadata struct {
	OriginalName string `json:"originalName"`
	OriginalSize int64  `json:"originalSize"`
	Encrypted    bool   `json:"encrypted"`
}

// StoredBlob describes a blob accepted by the storage network.
type StoredBlob struct {
	BlobID          string
	RegisteredEpoch int64
	// AlreadyCertified is set when identical bytes were stored before.
	AlreadyCertified bool
}
