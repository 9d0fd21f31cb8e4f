package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"printhub/config"
	"printhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		want    any
		wantErr string
	}{
		{name: "nil config is a no-op", cfg: nil, want: &noopPublisher{}},
		{name: "empty provider is a no-op", cfg: &config.PubSubConfig{}, want: &noopPublisher{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}, want: &localHTTPPublisher{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "localEndpoint"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "printhub"}, wantErr: "topicId"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider: kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, logger)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestNoopPublisher_AcceptsEvents(t *testing.T) {
	p := &noopPublisher{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	assert.NoError(t, p.PublishOrderEvent(context.Background(), &service.OrderEvent{OrderID: "o-1"}))
}
