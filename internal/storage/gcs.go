package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const gcsPublicHost = "https://storage.googleapis.com/"

// GCS stores images in a Google Cloud Storage bucket under products/.
type GCS struct {
	client *gcs.Client
	bucket string
}

type GCSConfig struct {
	Bucket          string
	CredentialsFile string
}

func NewGCS(ctx context.Context, cfg GCSConfig) (*GCS, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("gcs bucket is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	return &GCS{client: client, bucket: cfg.Bucket}, nil
}

func (g *GCS) Store(ctx context.Context, data []byte, name string) (string, error) {
	object := objectPrefix + name

	w := g.client.Bucket(g.bucket).Object(object).NewWriter(ctx)
	w.ContentType = http.DetectContentType(data)
	w.CacheControl = "public, max-age=31536000"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", object, err)
	}

	return g.publicURL(object), nil
}

func (g *GCS) Delete(ctx context.Context, url string) error {
	object, ok := strings.CutPrefix(url, g.publicURL(""))
	if !ok || !strings.HasPrefix(object, objectPrefix) {
		return nil
	}
	if err := g.client.Bucket(g.bucket).Object(object).Delete(ctx); err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("delete %s: %w", object, err)
	}
	return nil
}

func (g *GCS) Close() error {
	return g.client.Close()
}

func (g *GCS) publicURL(object string) string {
	return gcsPublicHost + g.bucket + "/" + object
}
