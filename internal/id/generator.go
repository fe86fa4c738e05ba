package id

import (
	"path/filepath"
	"strings"

	"github.com/segmentio/ksuid"
)

// GenerateIDWithPrefix creates a new KSUID with the given prefix.
// KSUIDs are time-ordered, collision-resistant, and URL-safe.
//
// Format: <prefix><27-char-ksuid>
// Example: product-2ArTLVPddDx8vZk7CqEbiYp1
func GenerateIDWithPrefix(prefix string) string {
	return prefix + ksuid.New().String()
}

// GenerateFilename names an uploaded file, keeping only the lower-cased
// extension of the client supplied name.
//
// Example: product-2ArTLVPddDx8vZk7CqEbiYp1.jpg
func GenerateFilename(prefix, originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return GenerateIDWithPrefix(prefix) + ext
}
