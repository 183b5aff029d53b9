// Package core defines the interfaces shared between the normalization
// pipeline and the serving harness around it.
package core

import (
	"context"

	"github.com/book-expert/text-normalizer/internal/normalizer"
)

// ObjectStore defines the interface for interacting with a key-value blob store.
type ObjectStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Upload(ctx context.Context, key string, data []byte) error
}

// TextNormalizer defines the interface for the text normalization pipeline.
// Implementations must be safe for unlimited concurrent callers.
type TextNormalizer interface {
	Normalize(text string, opts normalizer.Options) string
}
