package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"printhub/config"
	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/domain/constants"
	"printhub/internal/domain/service"
	"printhub/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the push message format from Google Pub/Sub
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError marks an error where Pub/Sub should redeliver the message
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// tokenValidator validates a Google-signed OIDC token for the given audience
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns order events pushed by Pub/Sub into Firebase topic notifications
type PushHandler struct {
	notificationSvc service.NotificationService
	logger          *slog.Logger
	verifyPushAuth  bool
	audience        string
	validateToken   tokenValidator
}

// PushHandlerParams holds dependencies for PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewPushHandler creates a new push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
		validateToken:   idtoken.Validate,
	}
	if params.Config.PubSub != nil {
		h.verifyPushAuth = params.Config.PubSub.VerifyPushToken
		h.audience = params.Config.PubSub.PushAudience
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// 200 acknowledges the message, 503 asks Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Rejected unauthenticated push", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to decode push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to unmarshal order event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
		slog.String("status", event.Status),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the incoming request
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OrderEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.OrderEvent) error {
	notice, err := buildNotice(event)
	if err != nil {
		return err
	}

	if err := h.notificationSvc.SendTopicNotification(ctx, notice.topic, notice.title, notice.body, notice.data); err != nil {
		if errors.Is(err, service.ErrNotificationRejected) {
			return err
		}

		return newRetryableError(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Notification sent",
		slog.String("topic", notice.topic),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

type notice struct {
	topic string
	title string
	body  string
	data  map[string]string
}

// buildNotice maps an order event to its audience and message.
// New orders notify the shop; status changes notify the customer.
func buildNotice(event *service.OrderEvent) (*notice, error) {
	if _, err := uuid.Parse(event.OrderID); err != nil {
		return nil, errors.Wrapf(err, "invalid order id %q", event.OrderID)
	}

	data := map[string]string{
		"type":     event.Type,
		"order_id": event.OrderID,
		"status":   event.Status,
	}
	orderRef := shortRef(event.OrderID)

	switch event.Type {
	case constants.EventOrderCreated:
		if event.ShopID == "" {
			return nil, errors.New("order.created event without shop id")
		}
		body := fmt.Sprintf("Order %s is waiting for review", orderRef)
		if event.FileName != "" {
			body = fmt.Sprintf("Order %s (%s) is waiting for review", orderRef, event.FileName)
		}
		if event.TotalPrice != "" {
			data["total_price"] = event.TotalPrice
		}

		return &notice{
			topic: constants.TopicShopPrefix + event.ShopID,
			title: "New print order",
			body:  body,
			data:  data,
		}, nil
	case constants.EventOrderStatusChanged:
		if event.UserID == "" {
			return nil, errors.New("order.status_changed event without user id")
		}
		shop := "Your print shop"
		if event.ShopName != "" {
			shop = event.ShopName
		}
		data["prev_status"] = event.PrevStatus

		return &notice{
			topic: constants.TopicUserPrefix + event.UserID,
			title: "Order " + event.Status,
			body:  fmt.Sprintf("%s moved order %s from %s to %s", shop, orderRef, event.PrevStatus, event.Status),
			data:  data,
		}, nil
	default:
		return nil, errors.Errorf("unknown event type %q", event.Type)
	}
}

func shortRef(orderID string) string {
	if len(orderID) < 8 {
		return orderID
	}

	return strings.ToUpper(orderID[:8])
}

// verifyPubSubToken verifies the OIDC token Google Pub/Sub attaches to push requests.
// See https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
