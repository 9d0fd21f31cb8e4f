package handler

import (
	"log/slog"
	"net/http"

	"printhub/config"
	"printhub/internal/delivery/api/response"
	"printhub/internal/domain/service"
	"printhub/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DocumentHandlerParams holds dependencies for DocumentHandler, injected by Fx.
type DocumentHandlerParams struct {
	fx.In

	Storage service.DocumentStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// DocumentHandler streams documents behind signed links of file and memory buckets.
type DocumentHandler struct {
	storage       service.DocumentStorage
	publicBaseURL string
	logger        *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler.
func NewDocumentHandler(params DocumentHandlerParams) *DocumentHandler {
	var publicBaseURL string
	if params.Config.Storage != nil {
		publicBaseURL = params.Config.Storage.PublicBaseURL
	}

	return &DocumentHandler{
		storage:       params.Storage,
		publicBaseURL: publicBaseURL,
		logger:        params.Logger,
	}
}

// Serve verifies the link signature and streams the object.
func (h *DocumentHandler) Serve(c echo.Context) error {
	link := h.publicBaseURL + "?" + c.Request().URL.RawQuery

	reader, contentType, err := h.storage.Open(c.Request().Context(), link)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDocumentLink):
			return response.Error(c, http.StatusForbidden, "INVALID_DOCUMENT_LINK", "This document link is invalid or has expired", nil)
		case errors.Is(err, service.ErrDocumentNotFound):
			return response.Error(c, http.StatusNotFound, "NOT_FOUND", "Document not found", nil)
		default:
			h.logger.Error("Failed to open document", slog.Any("error", err))

			return errors.WithStack(err)
		}
	}
	defer reader.Close()

	return c.Stream(http.StatusOK, contentType, reader)
}
