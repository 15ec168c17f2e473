package qrcode

import (
	"encoding/json"
	"strings"

	"chaintrace/config"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := 256, "M", ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
		baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		baseURL:              baseURL,
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateTrackingQR renders payload as a PNG. A missing URL is derived from the
// configured base URL.
func (s *qrcodeService) GenerateTrackingQR(payload service.TrackingQRPayload) ([]byte, error) {
	if payload.PurchaseID == "" {
		return nil, errors.New("purchase id is required")
	}
	if payload.URL == "" && s.baseURL != "" {
		payload.URL = s.baseURL + "/track/" + payload.PurchaseID
	}

	content, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	code, err := qrcode.New(string(content), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}
