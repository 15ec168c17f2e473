package impl

import (
	"io"
	"log/slog"
	"time"

	"chaintrace/config"
	"chaintrace/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	testCustomerWallet = "0x1111111111111111111111111111111111111111"
	testProducerWallet = "0x2222222222222222222222222222222222222222"
	testSupplierWallet = "0x3333333333333333333333333333333333333333"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

var testDeliveryAddress = entity.PostalAddress{Street: "1 Main St", City: "Lisbon", Country: "PT"}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(enforce bool) *config.Config {
	return &config.Config{
		Tracking: &config.TrackingConfig{
			EnforceTransitions:    &enforce,
			EstimatedDeliveryDays: 7,
		},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testUser(role entity.Role, wallet string) *entity.User {
	return &entity.User{
		ID:            uuid.New(),
		Username:      string(role) + "-user",
		Email:         string(role) + "@example.com",
		WalletAddress: wallet,
		Role:          role,
		Profile:       entity.Profile{DisplayName: "Test " + string(role)},
		IsActive:      true,
	}
}

func sessionOf(u *entity.User) entity.Session {
	return u.Session()
}
