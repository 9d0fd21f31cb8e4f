package notification

import (
	"context"
	"log/slog"

	"printhub/config"
	"printhub/internal/domain/service"
	"printhub/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewNotificationService returns a Firebase Cloud Messaging service, or a logging
// no-op service when no Firebase project is configured.
func NewNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Info("Firebase not configured, using no-op notification service")

		return &noopService{logger: logger}, nil
	}

	return NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendTopicNotification sends a push notification to all devices subscribed to topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		// Malformed messages and unknown topics never succeed on retry.
		if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) || messaging.IsSenderIDMismatch(err) {
			return errors.Wrapf(service.ErrNotificationRejected, "topic %s: %v", topic, err)
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// noopService logs notifications instead of sending them
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendTopicNotification(ctx context.Context, topic, title, body string, _ map[string]string) error {
	s.logger.InfoContext(ctx, "[NoopNotification] Skipping push notification",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
	)

	return nil
}
