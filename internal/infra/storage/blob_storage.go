// Package storage implements document storage on gocloud.dev blob buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"printhub/config"
	"printhub/internal/domain/service"
	"printhub/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/driver"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob" // registers gs://
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const defaultContentType = "application/octet-stream"

// blobStorage implements service.DocumentStorage. Buckets that cannot sign URLs
// themselves (file and memory) get HMAC-signed links served by this process.
type blobStorage struct {
	bucket *blob.Bucket
	signer *fileblob.URLSignerHMAC // nil when the bucket signs its own URLs
	logger *slog.Logger
}

// Params holds dependencies for the document storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and registers its shutdown.
func New(params Params) (service.DocumentStorage, error) {
	storage, err := Open(context.Background(), params.Config.Storage, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing document storage")

			return storage.Close()
		},
	})

	return storage, nil
}

// Open opens the bucket described by cfg. An empty bucket URL opens an in-memory bucket.
func Open(ctx context.Context, cfg *config.StorageConfig, logger *slog.Logger) (service.DocumentStorage, error) {
	if cfg == nil {
		cfg = &config.StorageConfig{}
	}

	bucket, selfSigned, err := openBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, err
	}
	if cfg.KeyPrefix != "" {
		bucket = blob.PrefixedBucket(bucket, cfg.KeyPrefix)
	}

	storage := &blobStorage{bucket: bucket, logger: logger}
	if selfSigned {
		signer, err := newSigner(cfg.PublicBaseURL, cfg.SigningKey)
		if err != nil {
			bucket.Close()

			return nil, err
		}
		storage.signer = signer
	}

	logger.Info("Document storage opened",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("key_prefix", cfg.KeyPrefix),
		slog.Bool("self_signed_links", selfSigned),
	)

	return storage, nil
}

func openBucket(ctx context.Context, bucketURL string) (*blob.Bucket, bool, error) {
	switch {
	case bucketURL == "" || strings.HasPrefix(bucketURL, "mem://"):
		return memblob.OpenBucket(nil), true, nil

	case strings.HasPrefix(bucketURL, "file://") || !strings.Contains(bucketURL, "://"):
		dir := strings.TrimPrefix(bucketURL, "file://")
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, false, errors.Wrapf(err, "invalid storage directory %s", dir)
		}

		bucket, err := fileblob.OpenBucket(abs, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, false, errors.Wrapf(err, "failed to open file bucket %s", abs)
		}

		return bucket, true, nil

	default:
		bucket, err := blob.OpenBucket(ctx, bucketURL)
		if err != nil {
			return nil, false, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
		}

		return bucket, false, nil
	}
}

func newSigner(publicBaseURL, signingKey string) (*fileblob.URLSignerHMAC, error) {
	if publicBaseURL == "" || signingKey == "" {
		return nil, errors.New("storage.publicBaseUrl and storage.signingKey are required for file and memory buckets")
	}

	base, err := url.Parse(publicBaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid storage.publicBaseUrl")
	}

	return fileblob.NewURLSignerHMAC(base, []byte(signingKey)), nil
}

// Upload stores r under key and returns key as the document reference.
func (s *blobStorage) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	if contentType == "" {
		contentType = defaultContentType
	}

	if err := s.bucket.Upload(ctx, key, r, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", key)
	}

	return key, nil
}

// TemporaryLink returns a URL granting read access to ref for ttl.
func (s *blobStorage) TemporaryLink(ctx context.Context, ref string, ttl time.Duration) (string, error) {
	exists, err := s.bucket.Exists(ctx, ref)
	if err != nil {
		return "", errors.Wrapf(err, "failed to stat %s", ref)
	}
	if !exists {
		return "", errors.Wrap(service.ErrDocumentNotFound, ref)
	}

	if s.signer == nil {
		link, err := s.bucket.SignedURL(ctx, ref, &blob.SignedURLOptions{Expiry: ttl, Method: "GET"})
		if err != nil {
			return "", errors.Wrapf(err, "failed to sign %s", ref)
		}

		return link, nil
	}

	u, err := s.signer.URLFromKey(ctx, ref, &driver.SignedURLOptions{Expiry: ttl, Method: "GET"})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign %s", ref)
	}

	return u.String(), nil
}

// Open verifies a self-signed link and opens the referenced object.
func (s *blobStorage) Open(ctx context.Context, link string) (io.ReadCloser, string, error) {
	if s.signer == nil {
		return nil, "", errors.Wrap(service.ErrInvalidDocumentLink, "bucket links are served by the storage provider")
	}

	u, err := url.Parse(link)
	if err != nil {
		return nil, "", errors.Wrap(service.ErrInvalidDocumentLink, err.Error())
	}

	key, err := s.signer.KeyFromURL(ctx, u)
	if err != nil {
		return nil, "", errors.Wrap(service.ErrInvalidDocumentLink, err.Error())
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", errors.Wrap(service.ErrDocumentNotFound, key)
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	return reader, reader.ContentType(), nil
}

// Delete removes ref. A missing object is not an error.
func (s *blobStorage) Delete(ctx context.Context, ref string) error {
	if err := s.bucket.Delete(ctx, ref); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", ref)
	}

	return nil
}

// Close releases the bucket.
func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
