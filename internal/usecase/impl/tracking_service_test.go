package impl

import (
	"context"
	"testing"
	"time"

	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/domain/service"
	mockRepo "chaintrace/internal/mocks/repository"
	mockSvc "chaintrace/internal/mocks/service"
	"chaintrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type trackingServiceFixtures struct {
	service         *trackingService
	userRepo        *mockRepo.MockUserRepository
	purchaseRepo    *mockRepo.MockPurchaseRepository
	rawMaterialRepo *mockRepo.MockRawMaterialRepository
	geocoder        *mockSvc.MockGeocoder
	publisher       *mockSvc.MockEventPublisher
	qrService       *mockSvc.MockQRCodeService
	metrics         *mockSvc.MockMetricsRecorder
}

func createTestTrackingService(t *testing.T, enforce bool) trackingServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	rawMaterialRepo := mockRepo.NewMockRawMaterialRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	svc := NewTrackingService(TrackingServiceParams{
		Config:          newTestConfig(enforce),
		UserRepo:        userRepo,
		PurchaseRepo:    purchaseRepo,
		RawMaterialRepo: rawMaterialRepo,
		Geocoder:        geocoder,
		Publisher:       publisher,
		QRService:       qrService,
		Metrics:         metrics,
		Logger:          newDiscardLogger(),
	}).(*trackingService)
	svc.now = fixedClock(testNow)

	return trackingServiceFixtures{
		service:         svc,
		userRepo:        userRepo,
		purchaseRepo:    purchaseRepo,
		rawMaterialRepo: rawMaterialRepo,
		geocoder:        geocoder,
		publisher:       publisher,
		qrService:       qrService,
		metrics:         metrics,
	}
}

// seededPurchase returns an order placed 90 minutes before testNow.
func seededPurchase(t *testing.T) *entity.Purchase {
	t.Helper()

	placedAt := testNow.Add(-90 * time.Minute)
	p := &entity.Purchase{
		PurchaseID:      "PUR-1700000000000-ABCDEF12",
		ProductName:     "Roasted beans",
		CustomerWallet:  testCustomerWallet,
		ProducerWallet:  testProducerWallet,
		TransactionHash: "0xTX1",
		Version:         1,
	}
	_, err := p.Tracking.Append(seedEvent(entity.Updater{WalletAddress: testCustomerWallet}, entity.PostalAddress{City: "Lisbon"}, placedAt), placedAt, true)
	require.NoError(t, err)

	return p
}

func (fx trackingServiceFixtures) expectAnnounce(ctx context.Context, target string, status entity.TrackingStatus) {
	fx.metrics.EXPECT().TrackingEventAppended(target, string(status)).Return()
	fx.publisher.EXPECT().PublishTrackingEvent(ctx, mock.MatchedBy(func(m *service.TrackingEventMessage) bool {
		return m.Target == target && m.Status == string(status)
	})).Return(nil)
}

func TestTrackingService_AppendPurchaseEvent_DerivesDurationAndGeocodes(t *testing.T) {
	fx := createTestTrackingService(t, true)

	ctx := context.Background()
	producer := testUser(entity.RoleProducer, testProducerWallet)
	producer.Profile.Company = "Alice Farms Ltd"
	purchase := seededPurchase(t)
	coords := &entity.Coordinates{Latitude: 41.15, Longitude: -8.61}

	fx.purchaseRepo.EXPECT().FindByPurchaseID(ctx, purchase.PurchaseID).Return(purchase, nil)
	fx.geocoder.EXPECT().ReverseGeocode(ctx, *coords).Return("Porto, Portugal", nil)
	fx.userRepo.EXPECT().FindByID(ctx, producer.ID).Return(producer, nil)
	fx.purchaseRepo.EXPECT().Update(ctx, purchase).Return(nil)
	fx.expectAnnounce(ctx, service.TrackingTargetPurchase, entity.StatusProcessing)

	view, err := fx.service.AppendPurchaseEvent(ctx, sessionOf(producer), purchase.PurchaseID, &usecase.AppendTrackingInput{
		Status:   entity.StatusProcessing,
		Location: entity.Location{Coordinates: coords},
	})

	require.NoError(t, err)
	require.Len(t, view.Timeline, 2)
	last := view.Timeline[1]
	require.NotNil(t, last.ActualDuration)
	assert.Equal(t, int64(90), *last.ActualDuration)
	assert.Equal(t, "1h 30m", last.DurationHuman)
	assert.Equal(t, "Porto, Portugal", last.Location.Address)
	assert.Equal(t, "Status updated to processing", last.Description)
	assert.Equal(t, "Alice Farms Ltd", last.HandledBy.Company)
	assert.Equal(t, testProducerWallet, last.UpdatedBy.WalletAddress)
	assert.Equal(t, entity.StatusProcessing, purchase.Tracking.CurrentStatus)
}

func TestTrackingService_AppendPurchaseEvent_GeocoderFallback(t *testing.T) {
	fx := createTestTrackingService(t, true)

	ctx := context.Background()
	producer := testUser(entity.RoleProducer, testProducerWallet)
	purchase := seededPurchase(t)
	coords := &entity.Coordinates{Latitude: 1.5, Longitude: 2.25}

	fx.purchaseRepo.EXPECT().FindByPurchaseID(ctx, purchase.PurchaseID).Return(purchase, nil)
	fx.geocoder.EXPECT().ReverseGeocode(ctx, *coords).Return("", errors.New("timeout"))
	fx.userRepo.EXPECT().FindByID(ctx, producer.ID).Return(nil, repository.ErrUserNotFound)
	fx.purchaseRepo.EXPECT().Update(ctx, purchase).Return(nil)
	fx.expectAnnounce(ctx, service.TrackingTargetPurchase, entity.StatusShipped)

	view, err := fx.service.AppendPurchaseEvent(ctx, sessionOf(producer), purchase.PurchaseID, &usecase.AppendTrackingInput{
		Status:   entity.StatusShipped,
		Location: entity.Location{Coordinates: coords},
	})

	require.NoError(t, err)
	assert.Equal(t, "1.500000, 2.250000", view.Timeline[1].Location.Address)
}

func TestTrackingService_AppendPurchaseEvent_Rejections(t *testing.T) {
	ctx := context.Background()
	customer := testUser(entity.RoleCustomer, testCustomerWallet)
	producer := testUser(entity.RoleProducer, testProducerWallet)
	located := entity.Location{Address: "Warehouse 4"}

	t.Run("customer cannot append", func(t *testing.T) {
		fx := createTestTrackingService(t, true)
		purchase := seededPurchase(t)
		fx.purchaseRepo.EXPECT().FindByPurchaseID(ctx, purchase.PurchaseID).Return(purchase, nil)

		_, err := fx.service.AppendPurchaseEvent(ctx, sessionOf(customer), purchase.PurchaseID, &usecase.AppendTrackingInput{
			Status: entity.StatusShipped, Location: located,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrTrackingUpdateForbidden))
	})

	t.Run("raw-material status on a purchase", func(t *testing.T) {
		fx := createTestTrackingService(t, true)
		purchase := seededPurchase(t)
		fx.purchaseRepo.EXPECT().FindByPurchaseID(ctx, purchase.PurchaseID).Return(purchase, nil)

		_, err := fx.service.AppendPurchaseEvent(ctx, sessionOf(producer), purchase.PurchaseID, &usecase.AppendTrackingInput{
			Status: entity.StatusQualityCheck, Location: located,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("missing location", func(t *testing.T) {
		fx := createTestTrackingService(t, true)
		purchase := seededPurchase(t)
		fx.purchaseRepo.EXPECT().FindByPurchaseID(ctx, purchase.PurchaseID).Return(purchase, nil)

		_, err := fx.service.AppendPurchaseEvent(ctx, sessionOf(producer), purchase.PurchaseID, &usecase.AppendTrackingInput{
			Status: entity.StatusShipped,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("nothing after delivered", func(t *testing.T) {
		fx := createTestTrackingService(t, true)
		purchase := seededPurchase(t)
		_, err := purchase.Tracking.Append(entity.TrackingEvent{Status: entity.StatusDelivered}, testNow.Add(-time.Minute), false)
		require.NoError(t, err)
		fx.purchaseRepo.EXPECT().FindByPurchaseID(ctx, purchase.PurchaseID).Return(purchase, nil)
		fx.userRepo.EXPECT().FindByID(ctx, producer.ID).Return(producer, nil)

		_, err = fx.service.AppendPurchaseEvent(ctx, sessionOf(producer), purchase.PurchaseID, &usecase.AppendTrackingInput{
			Status: entity.StatusProcessing, Location: located,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
		assert.Len(t, purchase.Tracking.Events, 2)
	})

	t.Run("lost race", func(t *testing.T) {
		fx := createTestTrackingService(t, true)
		purchase := seededPurchase(t)
		fx.purchaseRepo.EXPECT().FindByPurchaseID(ctx, purchase.PurchaseID).Return(purchase, nil)
		fx.userRepo.EXPECT().FindByID(ctx, producer.ID).Return(producer, nil)
		fx.purchaseRepo.EXPECT().Update(ctx, purchase).Return(repository.ErrVersionConflict)

		_, err := fx.service.AppendPurchaseEvent(ctx, sessionOf(producer), purchase.PurchaseID, &usecase.AppendTrackingInput{
			Status: entity.StatusShipped, Location: located,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrConcurrentUpdate))
	})
}

func TestTrackingService_AppendPurchaseEvent_UnenforcedAllowsBackwards(t *testing.T) {
	fx := createTestTrackingService(t, false)

	ctx := context.Background()
	logistics := testUser(entity.RoleLogistics, "0x4444444444444444444444444444444444444444")
	purchase := seededPurchase(t)
	_, err := purchase.Tracking.Append(entity.TrackingEvent{Status: entity.StatusShipped}, testNow.Add(-time.Hour), true)
	require.NoError(t, err)

	fx.purchaseRepo.EXPECT().FindByPurchaseID(ctx, purchase.PurchaseID).Return(purchase, nil)
	fx.userRepo.EXPECT().FindByID(ctx, logistics.ID).Return(logistics, nil)
	fx.purchaseRepo.EXPECT().Update(ctx, purchase).Return(nil)
	fx.expectAnnounce(ctx, service.TrackingTargetPurchase, entity.StatusProcessing)

	_, err = fx.service.AppendPurchaseEvent(ctx, sessionOf(logistics), purchase.PurchaseID, &usecase.AppendTrackingInput{
		Status: entity.StatusProcessing, Location: entity.Location{Address: "Depot"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusProcessing, purchase.Tracking.CurrentStatus)
}

func TestTrackingService_GetPurchaseTracking_Distances(t *testing.T) {
	fx := createTestTrackingService(t, true)

	ctx := context.Background()
	purchase := seededPurchase(t)
	lisbon := &entity.Coordinates{Latitude: 38.7223, Longitude: -9.1393}
	porto := &entity.Coordinates{Latitude: 41.1579, Longitude: -8.6291}
	for i, step := range []struct {
		status entity.TrackingStatus
		coords *entity.Coordinates
	}{
		{entity.StatusShipped, lisbon},
		{entity.StatusInTransit, nil},
		{entity.StatusOutForDelivery, porto},
	} {
		_, err := purchase.Tracking.Append(entity.TrackingEvent{
			Status:   step.status,
			Location: entity.Location{Address: "stop", Coordinates: step.coords},
		}, testNow.Add(time.Duration(i+1)*25*time.Hour), true)
		require.NoError(t, err)
	}

	fx.purchaseRepo.EXPECT().FindByPurchaseID(ctx, purchase.PurchaseID).Return(purchase, nil)

	view, err := fx.service.GetPurchaseTracking(ctx, purchase.PurchaseID)

	require.NoError(t, err)
	require.Len(t, view.Timeline, 4)
	assert.Empty(t, view.Timeline[0].DurationHuman)
	assert.Nil(t, view.Timeline[1].DistanceFromPreviousKm, "first geotagged event has nothing to measure from")
	assert.Equal(t, "1d 1h", view.Timeline[2].DurationHuman)
	require.NotNil(t, view.Timeline[3].DistanceFromPreviousKm)
	assert.InDelta(t, 274, *view.Timeline[3].DistanceFromPreviousKm, 5)
	assert.Equal(t, purchase.Tracking.Progress(), view.Progress)
}

func TestTrackingService_GetPurchaseTracking_NotFound(t *testing.T) {
	fx := createTestTrackingService(t, true)

	ctx := context.Background()
	fx.purchaseRepo.EXPECT().FindByPurchaseID(ctx, "PUR-missing").Return(nil, repository.ErrPurchaseNotFound)

	_, err := fx.service.GetPurchaseTracking(ctx, "PUR-missing")

	assert.True(t, errors.Is(err, domainerrors.ErrPurchaseNotFound))
}

func TestTrackingService_GetTrackingQR(t *testing.T) {
	fx := createTestTrackingService(t, true)

	ctx := context.Background()
	purchase := seededPurchase(t)
	fx.purchaseRepo.EXPECT().FindByPurchaseID(ctx, purchase.PurchaseID).Return(purchase, nil)
	fx.qrService.EXPECT().
		GenerateTrackingQR(service.TrackingQRPayload{PurchaseID: purchase.PurchaseID, TransactionHash: "0xTX1"}).
		Return([]byte("png"), nil)

	png, err := fx.service.GetTrackingQR(ctx, purchase.PurchaseID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func materialWithPayment(t *testing.T) (*entity.RawMaterial, *entity.MaterialPayment) {
	t.Helper()

	placedAt := testNow.Add(-2 * time.Hour)
	payment := entity.MaterialPayment{
		ID:                 uuid.New(),
		BuyerWalletAddress: testProducerWallet,
		Quantity:           5,
		TransactionHash:    "0xRAW1",
		Date:               placedAt,
	}
	_, err := payment.Tracking.Append(seedEvent(entity.Updater{WalletAddress: testProducerWallet}, entity.PostalAddress{}, placedAt), placedAt, true)
	require.NoError(t, err)

	material := &entity.RawMaterial{
		ID:       uuid.New(),
		Name:     "Green coffee",
		AddedBy:  testSupplierWallet,
		Payments: []entity.MaterialPayment{payment},
		Version:  3,
	}

	return material, &material.Payments[0]
}

func TestTrackingService_AppendMaterialEvent_BySupplier(t *testing.T) {
	fx := createTestTrackingService(t, true)

	ctx := context.Background()
	supplier := testUser(entity.RoleSupplier, testSupplierWallet)
	material, _ := materialWithPayment(t)

	fx.rawMaterialRepo.EXPECT().FindByID(ctx, material.ID).Return(material, nil)
	fx.userRepo.EXPECT().FindByID(ctx, supplier.ID).Return(supplier, nil)
	fx.rawMaterialRepo.EXPECT().Update(ctx, material).Return(nil)
	fx.expectAnnounce(ctx, service.TrackingTargetMaterialPayment, entity.StatusQualityCheck)

	result, err := fx.service.AppendMaterialEvent(ctx, sessionOf(supplier), material.ID, "0xRAW1", &usecase.AppendTrackingInput{
		Status:   entity.StatusQualityCheck,
		Location: entity.Location{Address: "Mill"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusQualityCheck, result.Payment.Tracking.CurrentStatus)
	require.NotNil(t, result.Event.ActualDuration)
	assert.Equal(t, int64(120), *result.Event.ActualDuration)
	assert.Len(t, material.Payments[0].Tracking.Events, 2)
}

func TestTrackingService_AppendMaterialEvent_NotFoundReasons(t *testing.T) {
	ctx := context.Background()
	supplier := testUser(entity.RoleSupplier, testSupplierWallet)
	input := &usecase.AppendTrackingInput{Status: entity.StatusShipped, Location: entity.Location{Address: "Mill"}}

	t.Run("material", func(t *testing.T) {
		fx := createTestTrackingService(t, true)
		id := uuid.New()
		fx.rawMaterialRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRawMaterialNotFound)

		_, err := fx.service.AppendMaterialEvent(ctx, sessionOf(supplier), id, "0xRAW1", input)

		assert.True(t, errors.Is(err, domainerrors.ErrMaterialNotFound))
	})

	t.Run("payment", func(t *testing.T) {
		fx := createTestTrackingService(t, true)
		material, _ := materialWithPayment(t)
		fx.rawMaterialRepo.EXPECT().FindByID(ctx, material.ID).Return(material, nil)

		_, err := fx.service.AppendMaterialEvent(ctx, sessionOf(supplier), material.ID, "0xNOPE", input)

		assert.True(t, errors.Is(err, domainerrors.ErrPaymentNotFound))
	})
}

func TestTrackingService_AppendMaterialEvent_NonOwnerRejected(t *testing.T) {
	fx := createTestTrackingService(t, true)

	ctx := context.Background()
	otherSupplier := testUser(entity.RoleSupplier, "0x5555555555555555555555555555555555555555")
	material, payment := materialWithPayment(t)
	fx.rawMaterialRepo.EXPECT().FindByID(ctx, material.ID).Return(material, nil)

	_, err := fx.service.AppendMaterialEvent(ctx, sessionOf(otherSupplier), material.ID, payment.ID.String(), &usecase.AppendTrackingInput{
		Status: entity.StatusShipped, Location: entity.Location{Address: "Mill"},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrListingOwnershipViolation))
	assert.Len(t, material.Payments[0].Tracking.Events, 1)
}
