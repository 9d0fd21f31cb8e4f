package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR generates a QR code that opens the order detail page
	GeneratePickupQR(orderID uuid.UUID) ([]byte, error)

	// ParsePickupQR parses scanned QR data and returns the order ID
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
