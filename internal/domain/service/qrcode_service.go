package service

// OrderQRPayload is the data encoded in an order's QR code, scanned at hand-over.
type OrderQRPayload struct {
	OrderNumber  string `json:"order_number"`
	Total        string `json:"total"`
	CustomerName string `json:"customer_name"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderQR renders the payload as a PNG QR code.
	GenerateOrderQR(payload OrderQRPayload) ([]byte, error)

	// ParseOrderQR decodes scanned QR text back into a payload.
	ParseOrderQR(qrData string) (*OrderQRPayload, error)
}
