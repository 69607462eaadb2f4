package helpers

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// NewGCSClient opens the Cloud Storage client used for product images. With
// an empty credsPath it falls back to Application Default Credentials.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// UploadObject streams r into bucket/objectPath and returns the object's
// public URL. Product images are small, so chunked resumable uploads are
// disabled.
func UploadObject(ctx context.Context, client *storage.Client, bucket, objectPath, contentType string, r io.Reader) (string, error) {
	w := client.Bucket(bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	w.ChunkSize = 0
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return PublicURL(bucket, objectPath), nil
}

// PublicURL assumes the bucket grants public read on product images.
func PublicURL(bucket, objectPath string) string {
	return "https://storage.googleapis.com/" + bucket + "/" + objectPath
}
