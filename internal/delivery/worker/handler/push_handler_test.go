package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"printhub/config"
	"printhub/internal/domain/constants"
	"printhub/internal/domain/service"
	"printhub/internal/errors"
	mockService "printhub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T, pubsub *config.PubSubConfig) (*PushHandler, *mockService.MockNotificationService) {
	t.Helper()

	notifier := mockService.NewMockNotificationService(t)
	h := NewPushHandler(PushHandlerParams{
		Config:          &config.Config{PubSub: pubsub},
		NotificationSvc: notifier,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, notifier
}

func pushBody(t *testing.T, event *service.OrderEvent) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-42"}
	msg.Subscription = "projects/local/subscriptions/order-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func doPush(t *testing.T, h *PushHandler, body []byte, header http.Header) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec.Code
}

func createdEvent() *service.OrderEvent {
	return &service.OrderEvent{
		Type:       constants.EventOrderCreated,
		OrderID:    "3f2a9c1e-7b44-4f7e-9a51-2d4c8e0b1a77",
		UserID:     uuid.NewString(),
		ShopID:     "9e7b1c2d-0000-4000-8000-000000000001",
		FileName:   "thesis.pdf",
		Status:     "pending",
		TotalPrice: "10.00",
		OccurredAt: time.Now(),
	}
}

func TestHandlePush_OrderCreatedNotifiesShop(t *testing.T) {
	h, notifier := newTestHandler(t, nil)
	event := createdEvent()

	notifier.EXPECT().
		SendTopicNotification(mock.Anything, "shop-"+event.ShopID, "New print order", "Order 3F2A9C1E (thesis.pdf) is waiting for review",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["order_id"] == event.OrderID && data["total_price"] == "10.00"
			})).
		Return(nil).
		Once()

	assert.Equal(t, http.StatusOK, doPush(t, h, pushBody(t, event), nil))
}

func TestHandlePush_StatusChangedNotifiesCustomer(t *testing.T) {
	h, notifier := newTestHandler(t, nil)
	event := createdEvent()
	event.Type = constants.EventOrderStatusChanged
	event.ShopName = "Corner Copies"
	event.PrevStatus = "pending"
	event.Status = "approved"

	notifier.EXPECT().
		SendTopicNotification(mock.Anything, "user-"+event.UserID, "Order approved",
			"Corner Copies moved order 3F2A9C1E from pending to approved",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["prev_status"] == "pending" && data["status"] == "approved"
			})).
		Return(nil).
		Once()

	assert.Equal(t, http.StatusOK, doPush(t, h, pushBody(t, event), nil))
}

func TestHandlePush_DeliveryFailures(t *testing.T) {
	tests := []struct {
		name       string
		sendErr    error
		wantStatus int
	}{
		{
			name:       "rejected message is acknowledged",
			sendErr:    errors.Wrap(service.ErrNotificationRejected, "topic unknown"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "transient failure is redelivered",
			sendErr:    errors.New("connection reset"),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifier := newTestHandler(t, nil)
			notifier.EXPECT().
				SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(tt.sendErr).
				Once()

			assert.Equal(t, tt.wantStatus, doPush(t, h, pushBody(t, createdEvent()), nil))
		})
	}
}

func TestHandlePush_MalformedPayloads(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	assert.Equal(t, http.StatusBadRequest, doPush(t, h, []byte("{not json"), nil))

	var msg PubSubMessage
	msg.Message.Data = "%%%not-base64"
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, doPush(t, h, body, nil))

	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte("[1,2,3]"))
	body, err = json.Marshal(msg)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, doPush(t, h, body, nil))
}

func TestHandlePush_UndeliverableEventsAreAcknowledged(t *testing.T) {
	unknown := createdEvent()
	unknown.Type = "order.deleted"

	noShop := createdEvent()
	noShop.ShopID = ""

	badID := createdEvent()
	badID.OrderID = "not-a-uuid"

	for name, event := range map[string]*service.OrderEvent{
		"unknown type":     unknown,
		"missing shop id":  noShop,
		"invalid order id": badID,
	} {
		t.Run(name, func(t *testing.T) {
			h, notifier := newTestHandler(t, nil)

			assert.Equal(t, http.StatusOK, doPush(t, h, pushBody(t, event), nil))
			notifier.AssertNotCalled(t, "SendTopicNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandlePush_VerifiesPushToken(t *testing.T) {
	h, notifier := newTestHandler(t, &config.PubSubConfig{
		VerifyPushToken: true,
		PushAudience:    "https://notifier.example.com/push",
	})

	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good-token" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	body := pushBody(t, createdEvent())

	assert.Equal(t, http.StatusUnauthorized, doPush(t, h, body, nil))
	assert.Equal(t, http.StatusUnauthorized, doPush(t, h, body, http.Header{"Authorization": {"Bearer forged"}}))
	assert.Equal(t, "https://notifier.example.com/push", gotAudience)

	notifier.EXPECT().
		SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Once()
	assert.Equal(t, http.StatusOK, doPush(t, h, body, http.Header{"Authorization": {"Bearer good-token"}}))
}

func TestVerifyPubSubToken_RejectsForeignIssuer(t *testing.T) {
	h, _ := newTestHandler(t, &config.PubSubConfig{VerifyPushToken: true})
	h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
	}

	req := httptest.NewRequest(http.MethodPost, "http://worker.local/push", nil)
	req.Header.Set("Authorization", "Bearer token")

	err := h.verifyPubSubToken(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid issuer")
}
