package service

// TrackingQRPayload is encoded into shipping-label QR codes.
type TrackingQRPayload struct {
	PurchaseID      string `json:"purchaseId"`
	TransactionHash string `json:"transactionHash"`
	URL             string `json:"url"`
}

// QRCodeService renders QR codes.
type QRCodeService interface {
	// GenerateTrackingQR returns a PNG encoding payload.
	GenerateTrackingQR(payload TrackingQRPayload) ([]byte, error)
}
