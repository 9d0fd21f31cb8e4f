package service

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrDocumentNotFound is returned when the referenced object does not exist.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrInvalidDocumentLink is returned when a retrieval link is malformed, tampered or expired.
	ErrInvalidDocumentLink = errors.New("invalid document link")
)

// DocumentStorage stores uploaded print documents.
type DocumentStorage interface {
	// Upload stores r under key and returns the reference to persist on the order.
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)

	// TemporaryLink returns a URL that grants read access to ref for ttl.
	TemporaryLink(ctx context.Context, ref string, ttl time.Duration) (string, error)

	// Open verifies a link produced by TemporaryLink and opens the object it points to.
	Open(ctx context.Context, link string) (io.ReadCloser, string, error)

	// Delete removes ref. Deleting a missing object is not an error.
	Delete(ctx context.Context, ref string) error

	// Close releases the underlying bucket.
	Close() error
}
