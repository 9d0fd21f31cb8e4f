package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"printhub/config"
	"printhub/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentHandler_Serve(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{
		BucketURL:     "mem://",
		PublicBaseURL: "http://localhost:8080/documents",
		SigningKey:    "test-signing-key",
	}}
	docs, err := storage.Open(context.Background(), cfg.Storage, newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = docs.Close() })

	ref, err := docs.Upload(context.Background(), "user-1/1700000000000.pdf", strings.NewReader("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)
	link, err := docs.TemporaryLink(context.Background(), ref, time.Hour)
	require.NoError(t, err)
	signed, err := url.Parse(link)
	require.NoError(t, err)

	h := NewDocumentHandler(DocumentHandlerParams{Storage: docs, Config: cfg, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.GET("/documents", h.Serve)

	rec := serve(e, http.MethodGet, "/documents?"+signed.RawQuery, nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "%PDF-1.4", rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))

	tampered := strings.Replace(signed.RawQuery, "user-1", "user-2", 1)
	rec = serve(e, http.MethodGet, "/documents?"+tampered, nil)
	requireStatus(t, rec, http.StatusForbidden)
}
