package qrcode

import (
	"encoding/json"
	"testing"

	"bazaar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() service.OrderQRPayload {
	return service.OrderQRPayload{
		OrderNumber:  "ORD-20250131-7KQ2MX",
		Total:        "64.98",
		CustomerName: "Priya Patel",
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateOrderQR(samplePayload())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateOrderQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateOrderQR(samplePayload())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateOrderQR_MissingOrderNumber(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateOrderQR(service.OrderQRPayload{Total: "1.00"})
	assert.Error(t, err)
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	jsonData, err := json.Marshal(QRCodeData{Type: orderQRType, OrderQRPayload: samplePayload()})
	require.NoError(t, err)

	parsed, err := svc.ParseOrderQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, samplePayload(), *parsed)
}

func TestQRCodeService_ParseOrderQR_InvalidJSON(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseOrderQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseOrderQR_InvalidType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	jsonData, err := json.Marshal(QRCodeData{Type: "coupon", OrderQRPayload: samplePayload()})
	require.NoError(t, err)

	_, err = svc.ParseOrderQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseOrderQR_MissingOrderNumber(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseOrderQR(`{"type":"order","total":"1.00"}`)
	assert.Error(t, err)
}
