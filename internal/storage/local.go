package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultLocalURLPrefix is where the API serves the local upload directory.
const DefaultLocalURLPrefix = "/uploads/"

// Local keeps images on disk below root/products and returns URLs below
// urlPrefix.
type Local struct {
	root      string
	urlPrefix string
}

func NewLocal(root, urlPrefix string) (*Local, error) {
	if urlPrefix == "" {
		urlPrefix = DefaultLocalURLPrefix
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	if err := os.MkdirAll(filepath.Join(root, objectPrefix), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{root: root, urlPrefix: urlPrefix}, nil
}

func (l *Local) Root() string {
	return l.root
}

func (l *Local) Store(_ context.Context, data []byte, name string) (string, error) {
	name = filepath.Base(name)
	if err := os.WriteFile(filepath.Join(l.root, objectPrefix, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return l.urlPrefix + path.Join(objectPrefix, name), nil
}

func (l *Local) Delete(_ context.Context, url string) error {
	rel, ok := strings.CutPrefix(url, l.urlPrefix)
	if !ok || !strings.HasPrefix(rel, objectPrefix) {
		return nil
	}
	name := path.Base(rel)
	err := os.Remove(filepath.Join(l.root, objectPrefix, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}
