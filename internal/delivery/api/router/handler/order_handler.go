package handler

import (
	"log/slog"
	"net/http"

	"printhub/config"
	"printhub/internal/delivery/api/response"
	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/errors"
	"printhub/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultMaxDocumentSize = 25 << 20

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	Orders usecase.OrderUsecase
	Guard  usecase.RouteGuard
	Config *config.Config
	Logger *slog.Logger
}

// OrderHandler serves order placement and order pages.
type OrderHandler struct {
	orders          usecase.OrderUsecase
	guard           usecase.RouteGuard
	maxDocumentSize int64
	logger          *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	maxDocumentSize := int64(defaultMaxDocumentSize)
	if params.Config.Orders != nil && params.Config.Orders.MaxDocumentSize > 0 {
		maxDocumentSize = params.Config.Orders.MaxDocumentSize
	}

	return &OrderHandler{
		orders:          params.Orders,
		guard:           params.Guard,
		maxDocumentSize: maxDocumentSize,
		logger:          params.Logger,
	}
}

// QuoteRequest represents the request body for pricing a configuration.
type QuoteRequest struct {
	ShopID      string `json:"shop_id" validate:"required,uuid"`
	PaperSize   string `json:"paper_size" validate:"required,paper_size"`
	ColorMode   string `json:"color_mode" validate:"required,color_mode"`
	Copies      int    `json:"copies" validate:"min=1"`
	DoubleSided bool   `json:"double_sided"`
	Stapled     bool   `json:"stapled"`
}

// CreateOrderRequest holds the form fields of a new order. The document arrives as the
// "document" multipart file.
type CreateOrderRequest struct {
	ShopID              string `form:"shop_id" validate:"required,uuid"`
	PaperSize           string `form:"paper_size" validate:"required,paper_size"`
	ColorMode           string `form:"color_mode" validate:"required,color_mode"`
	Copies              int    `form:"copies" validate:"min=1"`
	DoubleSided         bool   `form:"double_sided"`
	Stapled             bool   `form:"stapled"`
	SpecialInstructions string `form:"special_instructions" validate:"max=2000"`
}

// QuoteResponse is a price quote. Priced is false when the shop has no price for the
// paper size and color mode.
type QuoteResponse struct {
	Total  string `json:"total"`
	Priced bool   `json:"priced"`
}

// ListShops returns the shops accepting orders.
func (h *OrderHandler) ListShops(c echo.Context) error {
	shops, err := h.orders.ListActiveShops(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"shops": shops})
}

// ShopPricing returns the price list of a shop.
func (h *OrderHandler) ShopPricing(c echo.Context) error {
	shopID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	prices, err := h.orders.ShopPricing(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"pricing": prices})
}

// Quote prices a configuration without placing an order.
func (h *OrderHandler) Quote(c echo.Context) error {
	var req QuoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	quote, err := h.orders.Quote(c.Request().Context(), usecase.QuoteInput{
		ShopID: uuid.MustParse(req.ShopID),
		Config: entity.OrderConfig{
			PaperSize:   entity.PaperSize(req.PaperSize),
			ColorMode:   entity.ColorMode(req.ColorMode),
			Copies:      req.Copies,
			DoubleSided: req.DoubleSided,
			Stapled:     req.Stapled,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, QuoteResponse{Total: quote.Total.StringFixed(2), Priced: quote.Priced})
}

// CreateOrder places an order from a multipart form.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	file, err := c.FormFile("document")
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("missing document"), err.Error())
	}
	if file.Size > h.maxDocumentSize {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			"document exceeds the " + humanize.IBytes(uint64(h.maxDocumentSize)) + " limit",
		))
	}

	src, err := file.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded document")
	}
	defer src.Close()

	var instructions *string
	if req.SpecialInstructions != "" {
		instructions = &req.SpecialInstructions
	}

	order, err := h.orders.CreateOrder(c.Request().Context(), deliverycontext.GetPrincipal(c), usecase.CreateOrderInput{
		ShopID:      uuid.MustParse(req.ShopID),
		FileName:    file.Filename,
		ContentType: file.Header.Get(echo.HeaderContentType),
		Document:    src,
		Config: entity.OrderConfig{
			PaperSize:   entity.PaperSize(req.PaperSize),
			ColorMode:   entity.ColorMode(req.ColorMode),
			Copies:      req.Copies,
			DoubleSided: req.DoubleSided,
			Stapled:     req.Stapled,
		},
		SpecialInstructions: instructions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// GetOrder returns an order with its shop.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.orders.GetOrder(c.Request().Context(), deliverycontext.GetPrincipal(c), orderID)
	if err != nil {
		return denyOrFail(c, h.guard, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// Document returns a temporary link to the order's document, or redirects to it with
// ?redirect=true.
func (h *OrderHandler) Document(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	link, err := h.orders.DocumentLink(c.Request().Context(), deliverycontext.GetPrincipal(c), orderID)
	if err != nil {
		return denyOrFail(c, h.guard, err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, link)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": link})
}

// PickupQR returns the pickup QR code of an order as a PNG.
func (h *OrderHandler) PickupQR(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.orders.PickupQR(c.Request().Context(), deliverycontext.GetPrincipal(c), orderID)
	if err != nil {
		return denyOrFail(c, h.guard, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
