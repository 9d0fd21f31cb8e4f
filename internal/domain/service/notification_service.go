package service

import (
	"context"
	"errors"
)

// ErrNotificationRejected is returned when the push provider permanently refuses a message.
var ErrNotificationRejected = errors.New("notification rejected")

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendTopicNotification sends a push notification to every device subscribed to topic
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
