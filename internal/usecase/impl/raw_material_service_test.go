package impl

import (
	"context"
	"testing"

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

type rawMaterialServiceFixtures struct {
	service         *rawMaterialService
	userRepo        *mockRepo.MockUserRepository
	rawMaterialRepo *mockRepo.MockRawMaterialRepository
	verifier        *mockSvc.MockTransactionVerifier
	publisher       *mockSvc.MockEventPublisher
	metrics         *mockSvc.MockMetricsRecorder
}

func createTestRawMaterialService(t *testing.T) rawMaterialServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	rawMaterialRepo := mockRepo.NewMockRawMaterialRepository(t)
	verifier := mockSvc.NewMockTransactionVerifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	svc := NewRawMaterialService(RawMaterialServiceParams{
		Config:          newTestConfig(true),
		UserRepo:        userRepo,
		RawMaterialRepo: rawMaterialRepo,
		Verifier:        verifier,
		Geocoder:        mockSvc.NewMockGeocoder(t),
		Publisher:       publisher,
		Metrics:         metrics,
		Logger:          newDiscardLogger(),
	}).(*rawMaterialService)
	svc.now = fixedClock(testNow)

	return rawMaterialServiceFixtures{
		service:         svc,
		userRepo:        userRepo,
		rawMaterialRepo: rawMaterialRepo,
		verifier:        verifier,
		publisher:       publisher,
		metrics:         metrics,
	}
}

func TestRawMaterialService_CreateRawMaterial(t *testing.T) {
	ctx := context.Background()
	supplier := testUser(entity.RoleSupplier, testSupplierWallet)

	t.Run("supplier lists under own wallet", func(t *testing.T) {
		fx := createTestRawMaterialService(t)
		fx.userRepo.EXPECT().FindByID(ctx, supplier.ID).Return(supplier, nil)
		fx.rawMaterialRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RawMaterial")).Return(nil)

		material, err := fx.service.CreateRawMaterial(ctx, sessionOf(supplier), &usecase.CreateRawMaterialInput{
			Name: " Green coffee ", Price: 4.5, Location: "Huila",
		})

		require.NoError(t, err)
		assert.Equal(t, "Green coffee", material.Name)
		assert.Equal(t, testSupplierWallet, material.AddedBy)
		assert.Equal(t, "Test supplier", material.SupplierName)
		assert.Empty(t, material.Payments)
	})

	t.Run("producers cannot list materials", func(t *testing.T) {
		fx := createTestRawMaterialService(t)
		producer := testUser(entity.RoleProducer, testProducerWallet)

		_, err := fx.service.CreateRawMaterial(ctx, sessionOf(producer), &usecase.CreateRawMaterialInput{Name: "x", Price: 1})

		assert.True(t, errors.Is(err, domainerrors.ErrRoleNotAllowed))
	})
}

func TestRawMaterialService_RecordPayment_SeedsTimeline(t *testing.T) {
	fx := createTestRawMaterialService(t)

	ctx := context.Background()
	producer := testUser(entity.RoleProducer, testProducerWallet)
	stock := 100
	material := &entity.RawMaterial{ID: uuid.New(), Name: "Green coffee", Price: 2.5, AddedBy: testSupplierWallet, AvailableQuantity: &stock}

	fx.rawMaterialRepo.EXPECT().FindByID(ctx, material.ID).Return(material, nil)
	fx.verifier.EXPECT().VerifyTransaction(ctx, "0xRAW1").Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, producer.ID).Return(producer, nil)
	fx.rawMaterialRepo.EXPECT().Update(ctx, material).Return(nil)
	fx.metrics.EXPECT().MaterialPaymentRecorded().Return()
	fx.metrics.EXPECT().TrackingEventAppended(service.TrackingTargetMaterialPayment, string(entity.StatusOrderPlaced)).Return()
	fx.publisher.EXPECT().PublishTrackingEvent(ctx, mock.MatchedBy(func(m *service.TrackingEventMessage) bool {
		return m.MaterialID == material.ID.String() && m.RecipientWallet == testProducerWallet
	})).Return(nil)

	payment, err := fx.service.RecordPayment(ctx, sessionOf(producer), &usecase.RecordMaterialPaymentInput{
		MaterialID:      material.ID,
		Quantity:        4,
		TransactionHash: "0xRAW1",
		DeliveryAddress: testDeliveryAddress,
	})

	require.NoError(t, err)
	assert.Equal(t, 10.0, payment.Amount)
	assert.Equal(t, "Test producer", payment.BuyerName)
	assert.Equal(t, entity.StatusOrderPlaced, payment.Tracking.CurrentStatus)
	assert.Equal(t, testProducerWallet, payment.Tracking.Events[0].UpdatedBy.WalletAddress)
	assert.Equal(t, 96, *material.AvailableQuantity)
	require.NotNil(t, payment.EstimatedDelivery)
	assert.Equal(t, testNow.AddDate(0, 0, 7), *payment.EstimatedDelivery)
}

func TestRawMaterialService_RecordPayment_Rejections(t *testing.T) {
	ctx := context.Background()
	producer := testUser(entity.RoleProducer, testProducerWallet)

	t.Run("duplicate hash on the material", func(t *testing.T) {
		fx := createTestRawMaterialService(t)
		material := &entity.RawMaterial{
			ID:       uuid.New(),
			Payments: []entity.MaterialPayment{{ID: uuid.New(), TransactionHash: "0xRAW1"}},
		}
		fx.rawMaterialRepo.EXPECT().FindByID(ctx, material.ID).Return(material, nil)

		_, err := fx.service.RecordPayment(ctx, sessionOf(producer), &usecase.RecordMaterialPaymentInput{
			MaterialID: material.ID, Quantity: 1, TransactionHash: "0xRAW1",
			DeliveryAddress: testDeliveryAddress,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrDuplicateTransaction))
	})

	t.Run("insufficient stock", func(t *testing.T) {
		fx := createTestRawMaterialService(t)
		stock := 1
		material := &entity.RawMaterial{ID: uuid.New(), Price: 1, AvailableQuantity: &stock}
		fx.rawMaterialRepo.EXPECT().FindByID(ctx, material.ID).Return(material, nil)
		fx.verifier.EXPECT().VerifyTransaction(ctx, "0xRAW2").Return(nil)

		_, err := fx.service.RecordPayment(ctx, sessionOf(producer), &usecase.RecordMaterialPaymentInput{
			MaterialID: material.ID, Quantity: 2, TransactionHash: "0xRAW2", BuyerName: "Acme",
			DeliveryAddress: testDeliveryAddress,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrInsufficientAvailability))
		assert.Empty(t, material.Payments)
	})

	t.Run("customers cannot buy materials", func(t *testing.T) {
		fx := createTestRawMaterialService(t)
		customer := testUser(entity.RoleCustomer, testCustomerWallet)

		_, err := fx.service.RecordPayment(ctx, sessionOf(customer), &usecase.RecordMaterialPaymentInput{
			MaterialID: uuid.New(), Quantity: 1, TransactionHash: "0xRAW3",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrRoleNotAllowed))
	})

	t.Run("delivery address required", func(t *testing.T) {
		fx := createTestRawMaterialService(t)

		_, err := fx.service.RecordPayment(ctx, sessionOf(producer), &usecase.RecordMaterialPaymentInput{
			MaterialID: uuid.New(), Quantity: 1, TransactionHash: "0xRAW5",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("material not found", func(t *testing.T) {
		fx := createTestRawMaterialService(t)
		id := uuid.New()
		fx.rawMaterialRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRawMaterialNotFound)

		_, err := fx.service.RecordPayment(ctx, sessionOf(producer), &usecase.RecordMaterialPaymentInput{
			MaterialID: id, Quantity: 1, TransactionHash: "0xRAW4",
			DeliveryAddress: testDeliveryAddress,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrMaterialNotFound))
	})
}
