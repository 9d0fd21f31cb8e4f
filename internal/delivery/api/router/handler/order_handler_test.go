package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"printhub/config"
	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/errors"
	mockUsecase "printhub/internal/mocks/usecase"
	"printhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderTestEcho(t *testing.T, principal *entity.Principal, role entity.Role, maxDocumentSize int64) (*echo.Echo, *mockUsecase.MockOrderUsecase) {
	t.Helper()

	e, orders, _ := newOrderTestEchoWithGuard(t, principal, role, maxDocumentSize)

	return e, orders
}

func newOrderTestEchoWithGuard(
	t *testing.T, principal *entity.Principal, role entity.Role, maxDocumentSize int64,
) (*echo.Echo, *mockUsecase.MockOrderUsecase, *mockUsecase.MockRouteGuard) {
	t.Helper()

	orders := mockUsecase.NewMockOrderUsecase(t)
	guard := mockUsecase.NewMockRouteGuard(t)
	h := NewOrderHandler(OrderHandlerParams{
		Orders: orders,
		Guard:  guard,
		Config: &config.Config{Orders: &config.OrdersConfig{MaxDocumentSize: maxDocumentSize}},
		Logger: newDiscardLogger(),
	})

	e := newTestEcho()
	auth := as(principal, role)
	e.POST("/new-order", h.CreateOrder, auth)
	e.POST("/new-order/quote", h.Quote, auth)
	e.GET("/new-order/shops/:id/pricing", h.ShopPricing, auth)
	e.GET("/order/:id", h.GetOrder, auth)
	e.GET("/order/:id/document", h.Document, auth)
	e.GET("/order/:id/pickup-qr", h.PickupQR, auth)

	return e, orders, guard
}

func multipartOrder(t *testing.T, fields map[string]string, fileName string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("document", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/new-order", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	principal := &entity.Principal{ID: uuid.New()}
	e, orders := newOrderTestEcho(t, principal, entity.RoleUser, 0)
	shopID := uuid.New()

	orders.EXPECT().CreateOrder(mock.Anything, principal, mock.AnythingOfType("usecase.CreateOrderInput")).
		RunAndReturn(func(_ context.Context, _ *entity.Principal, in usecase.CreateOrderInput) (*entity.Order, error) {
			doc, err := io.ReadAll(in.Document)
			require.NoError(t, err)
			assert.Equal(t, "%PDF-1.7", string(doc))
			assert.Equal(t, shopID, in.ShopID)
			assert.Equal(t, "thesis.pdf", in.FileName)
			assert.Equal(t, entity.OrderConfig{
				PaperSize: entity.PaperSizeA4, ColorMode: entity.ColorModeColor, Copies: 5, Stapled: true,
			}, in.Config)
			require.NotNil(t, in.SpecialInstructions)

			return &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending, TotalPrice: decimal.RequireFromString("12.50")}, nil
		})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartOrder(t, map[string]string{
		"shop_id":              shopID.String(),
		"paper_size":           "a4",
		"color_mode":           "color",
		"copies":               "5",
		"stapled":              "true",
		"special_instructions": "bind on the left",
	}, "thesis.pdf", []byte("%PDF-1.7")))

	requireStatus(t, rec, http.StatusCreated)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestOrderHandler_CreateOrder_Rejections(t *testing.T) {
	valid := map[string]string{"shop_id": uuid.NewString(), "paper_size": "a4", "color_mode": "color", "copies": "1"}

	tests := []struct {
		name     string
		fields   map[string]string
		fileName string
		content  []byte
	}{
		{name: "missing document", fields: valid},
		{
			name:     "missing shop",
			fields:   map[string]string{"paper_size": "a4", "color_mode": "color", "copies": "1"},
			fileName: "a.pdf", content: []byte("x"),
		},
		{name: "document too large", fields: valid, fileName: "big.pdf", content: bytes.Repeat([]byte("x"), 2048)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newOrderTestEcho(t, &entity.Principal{ID: uuid.New()}, entity.RoleUser, 1024)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, multipartOrder(t, tt.fields, tt.fileName, tt.content))

			requireStatus(t, rec, http.StatusBadRequest)
			assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
		})
	}
}

func TestOrderHandler_Quote(t *testing.T) {
	e, orders := newOrderTestEcho(t, &entity.Principal{ID: uuid.New()}, entity.RoleUser, 0)
	shopID := uuid.New()

	orders.EXPECT().Quote(mock.Anything, usecase.QuoteInput{
		ShopID: shopID,
		Config: entity.OrderConfig{PaperSize: entity.PaperSizeA4, ColorMode: entity.ColorModeColor, Copies: 2, DoubleSided: true, Stapled: true},
	}).Return(&usecase.QuoteOutput{Total: decimal.RequireFromString("8"), Priced: true}, nil)

	rec := serve(e, http.MethodPost, "/new-order/quote", QuoteRequest{
		ShopID: shopID.String(), PaperSize: "a4", ColorMode: "color", Copies: 2, DoubleSided: true, Stapled: true,
	})

	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"total":"8.00","priced":true}`, string(decode(t, rec).Data))
}

func TestOrderHandler_GetOrder_DeniedGoesToLanding(t *testing.T) {
	principal := &entity.Principal{ID: uuid.New()}
	e, orders := newOrderTestEcho(t, principal, entity.RoleShopkeeper, 0)
	orderID := uuid.New()

	orders.EXPECT().GetOrder(mock.Anything, principal, orderID).
		Return(nil, errors.Wrap(domainerrors.ErrAuthorizationDenied, "order belongs to another account"))

	rec := serve(e, http.MethodGet, "/order/"+orderID.String(), nil)

	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, entity.RouteShopDashboard, rec.Header().Get(echo.HeaderLocation))
	env := decode(t, rec)
	require.NotNil(t, env.Notice)
	assert.Equal(t, "Access Denied", env.Notice.Title)
}

func TestOrderHandler_GetOrder_DeniedResolvesLandingWithoutStoredRole(t *testing.T) {
	principal := &entity.Principal{ID: uuid.New()}
	e, orders, guard := newOrderTestEchoWithGuard(t, principal, entity.RoleUnknown, 0)
	orderID := uuid.New()

	orders.EXPECT().GetOrder(mock.Anything, principal, orderID).
		Return(nil, errors.Wrap(domainerrors.ErrAuthorizationDenied, "order belongs to another account"))
	guard.EXPECT().LandingRoute(mock.Anything, principal).Return(entity.RouteAdminDashboard).Once()

	rec := serve(e, http.MethodGet, "/order/"+orderID.String(), nil)

	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, entity.RouteAdminDashboard, rec.Header().Get(echo.HeaderLocation))
}

func TestOrderHandler_GetOrder(t *testing.T) {
	principal := &entity.Principal{ID: uuid.New()}
	e, orders := newOrderTestEcho(t, principal, entity.RoleUser, 0)
	order := &entity.Order{ID: uuid.New(), TotalPrice: decimal.RequireFromString("10.00")}

	orders.EXPECT().GetOrder(mock.Anything, principal, order.ID).
		Return(&usecase.OrderDetail{Order: order, Shop: &entity.Shop{ID: uuid.New(), Name: "Campus Prints"}}, nil)

	rec := serve(e, http.MethodGet, "/order/"+order.ID.String(), nil)

	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "Campus Prints")
	assert.Contains(t, rec.Body.String(), `"total_price"`)
}

func TestOrderHandler_GetOrder_BadID(t *testing.T) {
	e, _ := newOrderTestEcho(t, &entity.Principal{ID: uuid.New()}, entity.RoleUser, 0)

	rec := serve(e, http.MethodGet, "/order/not-a-uuid", nil)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestOrderHandler_Document(t *testing.T) {
	principal := &entity.Principal{ID: uuid.New()}
	e, orders := newOrderTestEcho(t, principal, entity.RoleUser, 0)
	orderID := uuid.New()
	link := "http://localhost:8080/documents?obj=u%2F1.pdf&expiry=1&signature=abc"

	orders.EXPECT().DocumentLink(mock.Anything, principal, orderID).Return(link, nil)

	rec := serve(e, http.MethodGet, "/order/"+orderID.String()+"/document", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "signature=abc")

	rec = serve(e, http.MethodGet, "/order/"+orderID.String()+"/document?redirect=true", nil)
	requireStatus(t, rec, http.StatusTemporaryRedirect)
	assert.Equal(t, link, rec.Header().Get(echo.HeaderLocation))
}

func TestOrderHandler_PickupQR(t *testing.T) {
	principal := &entity.Principal{ID: uuid.New()}
	e, orders := newOrderTestEcho(t, principal, entity.RoleUser, 0)
	orderID := uuid.New()

	orders.EXPECT().PickupQR(mock.Anything, principal, orderID).Return([]byte("\x89PNG"), nil)

	rec := serve(e, http.MethodGet, "/order/"+orderID.String()+"/pickup-qr", nil)

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}
