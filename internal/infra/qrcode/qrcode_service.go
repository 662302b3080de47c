package qrcode

import (
	"encoding/json"

	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	"github.com/skip2/go-qrcode"
)

const orderQRType = "order"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Type string `json:"type"`
	service.OrderQRPayload
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateOrderQR renders the order hand-over payload as a PNG QR code.
func (s *qrcodeService) GenerateOrderQR(payload service.OrderQRPayload) ([]byte, error) {
	if payload.OrderNumber == "" {
		return nil, errors.New("order number is required")
	}

	jsonData, err := json.Marshal(QRCodeData{Type: orderQRType, OrderQRPayload: payload})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderQR decodes scanned QR text back into the order payload.
func (s *qrcodeService) ParseOrderQR(qrData string) (*service.OrderQRPayload, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != orderQRType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OrderNumber == "" {
		return nil, errors.New("QR code carries no order number")
	}

	return &data.OrderQRPayload, nil
}
