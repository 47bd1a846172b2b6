package contract

import "context"

// StoredFile references an object persisted in external storage.
type StoredFile struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type IFileStorage interface {
	// Upload stores the bytes under a name derived from proposedName and
	// returns the public URL and storage key.
	Upload(ctx context.Context, data []byte, proposedName, mimeType string) (*StoredFile, error)
	Delete(ctx context.Context, key string) error
}
