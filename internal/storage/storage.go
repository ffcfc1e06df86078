package storage

import (
	"context"
	"fmt"

	"careervector/internal/config"
)

// Uploader persists a byte buffer to external object storage and returns a
// publicly resolvable URL. One blocking transfer per call; no retry, no
// chunking.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType, bucket, name string) (string, error)
}

// New selects the storage driver from configuration.
func New(cfg *config.Config) (Uploader, error) {
	switch cfg.StorageDriver {
	case "supabase":
		return NewSupabaseClient(cfg.StorageURL, cfg.StorageKey)
	case "cloudinary":
		return NewCloudinaryUploader(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
