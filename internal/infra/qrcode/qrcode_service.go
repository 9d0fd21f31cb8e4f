package qrcode

import (
	"net/url"
	"path"
	"strings"

	"printhub/config"
	"printhub/internal/domain/service"
	"printhub/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	orderPathRoute = "order"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              *url.URL
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section
func NewQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	return newQRCodeService(qrCfg.Size, qrCfg.ErrorCorrectionLevel, qrCfg.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) (*qrcodeService, error) {
	if size <= 0 {
		size = defaultSize
	}

	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid qrcode base url")
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              base,
	}, nil
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "m", "medium":
		return qrcode.Medium
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePickupQR generates a PNG QR code that opens the order detail page
func (s *qrcodeService) GeneratePickupQR(orderID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.orderURL(orderID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePickupQR parses scanned QR data and returns the order ID
func (s *qrcodeService) ParsePickupQR(qrData string) (uuid.UUID, error) {
	u, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code data")
	}

	dir, last := path.Split(strings.TrimRight(u.Path, "/"))
	if path.Base(dir) != orderPathRoute {
		return uuid.Nil, errors.Errorf("invalid pickup QR code path: %s", u.Path)
	}

	orderID, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse order ID")
	}

	return orderID, nil
}

func (s *qrcodeService) orderURL(orderID uuid.UUID) string {
	u := *s.baseURL
	u.Path = path.Join("/", u.Path, orderPathRoute, orderID.String())

	return u.String()
}
