package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"

	"printhub/config"
	"printhub/internal/domain/service"
	"printhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestStorage(t *testing.T, bucketURL string) service.DocumentStorage {
	t.Helper()

	storage, err := Open(context.Background(), &config.StorageConfig{
		BucketURL:     bucketURL,
		KeyPrefix:     "print_documents/",
		PublicBaseURL: "http://localhost:8080/documents",
		SigningKey:    "test-signing-key",
	}, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	return storage
}

func TestBlobStorage_UploadLinkOpen(t *testing.T) {
	backends := map[string]string{
		"file": t.TempDir(),
		"mem":  "mem://",
	}

	for name, bucketURL := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			storage := openTestStorage(t, bucketURL)

			ref, err := storage.Upload(ctx, "user-1/1700000000000.pdf", strings.NewReader("%PDF-1.4"), "application/pdf")
			require.NoError(t, err)
			assert.Equal(t, "user-1/1700000000000.pdf", ref)

			link, err := storage.TemporaryLink(ctx, ref, time.Hour)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(link, "http://localhost:8080/documents"), link)

			reader, contentType, err := storage.Open(ctx, link)
			require.NoError(t, err)
			defer reader.Close()

			body, err := io.ReadAll(reader)
			require.NoError(t, err)
			assert.Equal(t, "%PDF-1.4", string(body))
			assert.Equal(t, "application/pdf", contentType)
		})
	}
}

func TestBlobStorage_TamperedLink(t *testing.T) {
	ctx := context.Background()
	storage := openTestStorage(t, "mem://")

	ref, err := storage.Upload(ctx, "user-1/a.pdf", strings.NewReader("a"), "application/pdf")
	require.NoError(t, err)
	_, err = storage.Upload(ctx, "user-2/b.pdf", strings.NewReader("b"), "application/pdf")
	require.NoError(t, err)

	link, err := storage.TemporaryLink(ctx, ref, time.Hour)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	q.Set("obj", "user-2/b.pdf")
	u.RawQuery = q.Encode()

	_, _, err = storage.Open(ctx, u.String())
	assert.True(t, errors.Is(err, service.ErrInvalidDocumentLink))
}

func TestBlobStorage_ExpiredLink(t *testing.T) {
	ctx := context.Background()
	storage := openTestStorage(t, "mem://")

	ref, err := storage.Upload(ctx, "user-1/a.pdf", strings.NewReader("a"), "")
	require.NoError(t, err)

	link, err := storage.TemporaryLink(ctx, ref, time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, _, err = storage.Open(ctx, link)
	assert.True(t, errors.Is(err, service.ErrInvalidDocumentLink))
}

func TestBlobStorage_LinkForMissingObject(t *testing.T) {
	storage := openTestStorage(t, "mem://")

	_, err := storage.TemporaryLink(context.Background(), "nobody/none.pdf", time.Hour)
	assert.True(t, errors.Is(err, service.ErrDocumentNotFound))
}

func TestBlobStorage_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	storage := openTestStorage(t, t.TempDir())

	ref, err := storage.Upload(ctx, "user-1/a.pdf", strings.NewReader("a"), "application/pdf")
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, ref))
	require.NoError(t, storage.Delete(ctx, ref))

	_, err = storage.TemporaryLink(ctx, ref, time.Hour)
	assert.True(t, errors.Is(err, service.ErrDocumentNotFound))
}

func TestOpen_SelfSignedBucketRequiresSigningConfig(t *testing.T) {
	_, err := Open(context.Background(), &config.StorageConfig{BucketURL: "mem://"}, testLogger())
	assert.Error(t, err)
}
