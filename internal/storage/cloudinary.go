package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader stores objects in Cloudinary. The logical bucket maps to
// a folder and the returned URL is the CDN-backed secure URL.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader builds a Cloudinary-backed uploader.
func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("initialize cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// Upload pushes data into the bucket folder under the given name.
func (u *CloudinaryUploader) Upload(ctx context.Context, data []byte, contentType, bucket, name string) (string, error) {
	publicID := strings.TrimSuffix(name, path.Ext(name))

	res, err := u.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       bucket,
		PublicID:     publicID,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("upload to cloudinary: %w", err)
	}
	return res.SecureURL, nil
}
