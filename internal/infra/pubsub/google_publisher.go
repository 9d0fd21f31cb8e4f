package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"printhub/internal/domain/service"
	"printhub/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePublisher sends order events to a Cloud Pub/Sub topic. The order ID is the ordering
// key, so a subscriber sees one order's status changes in the order they happened.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "look up topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Order events publish to Cloud Pub/Sub", slog.String("topic", topic))

	return &googlePublisher{client: client, publisher: publisher, logger: logger}, nil
}

func (p *googlePublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode order event")
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.OrderID,
	})
	serverID, err := result.Get(ctx)
	if err != nil {
		// Publishing for a key pauses after a failure until it is resumed.
		p.publisher.ResumePublish(event.OrderID)

		return errors.Wrapf(err, "publish %s for order %s", event.Type, event.OrderID)
	}

	p.logger.DebugContext(ctx, "Order event published",
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
		slog.String("message_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
