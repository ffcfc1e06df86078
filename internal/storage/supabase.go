package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SupabaseClient writes objects to Supabase storage over its raw HTTP object
// API. The public URL is composed deterministically from the object path;
// buckets are expected to allow public reads.
type SupabaseClient struct {
	baseURL string // .../storage/v1/object
	apiKey  string
	client  *http.Client
}

// NewSupabaseClient builds a storage client for the given object endpoint.
func NewSupabaseClient(baseURL, apiKey string) (*SupabaseClient, error) {
	if baseURL == "" {
		return nil, errors.New("STORAGE_URL not set")
	}
	return &SupabaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Upload performs a single blocking transfer of data into bucket/name.
func (c *SupabaseClient) Upload(ctx context.Context, data []byte, contentType, bucket, name string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, bucket, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("storage api status %d: %s", resp.StatusCode, detail)
	}

	return c.publicURL(bucket, name), nil
}

// publicURL maps the authenticated object endpoint onto the public one.
func (c *SupabaseClient) publicURL(bucket, name string) string {
	return fmt.Sprintf("%s/%s/%s", strings.Replace(c.baseURL, "/object", "/object/public", 1), bucket, name)
}
