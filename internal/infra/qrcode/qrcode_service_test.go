package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"chaintrace/config"
	"chaintrace/internal/domain/service"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, BaseURL: "https://trace.example/"}})

	pngBytes, err := svc.GenerateTrackingQR(service.TrackingQRPayload{
		PurchaseID:      "PUR-1700000000000-ABCDEF12",
		TransactionHash: "0xTX1",
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, "https://trace.example", svc.(*qrcodeService).baseURL)
}

func TestQRCodeService_RequiresPurchaseID(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.GenerateTrackingQR(service.TrackingQRPayload{})
	assert.Error(t, err)
}
