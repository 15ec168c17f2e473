package impl

import (
	"context"
	"testing"
	"time"

	"chaintrace/internal/domain/entity"
	"chaintrace/internal/domain/repository"
	mockRepo "chaintrace/internal/mocks/repository"
	"chaintrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationService_Recommend_ScoresAndOrders(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	rawMaterialRepo := mockRepo.NewMockRawMaterialRepository(t)
	service := NewRecommendationService(userRepo, productRepo, rawMaterialRepo, newDiscardLogger())

	ctx := context.Background()
	customer := testUser(entity.RoleCustomer, testCustomerWallet)
	customer.Profile.Address.City = "Ghent"
	customer.Preferences = entity.Preferences{
		FavoriteCategories: []string{"Sweets"},
		PriceRange:         entity.PriceRange{Min: 1, Max: 5},
	}

	favourite := &entity.Product{ID: uuid.New(), Name: "Praline", Category: "sweets", Price: 3, Location: "Ghent, BE", AddedBy: testProducerWallet, IsActive: true, CreatedAt: testNow}
	customer.Preferences.Wishlist = []string{favourite.ID.String()}
	older := &entity.Product{ID: uuid.New(), Name: "Tea", Price: 50, AddedBy: testProducerWallet, IsActive: true, CreatedAt: testNow.Add(-time.Hour)}
	newer := &entity.Product{ID: uuid.New(), Name: "Soap", Price: 50, AddedBy: testProducerWallet, IsActive: true, CreatedAt: testNow}
	popular := &entity.Product{
		ID: uuid.New(), Name: "Bread", Price: 50, AddedBy: testProducerWallet, IsActive: true, CreatedAt: testNow.Add(-2 * time.Hour),
		Payments: make([]entity.ListingPayment, 25),
	}
	own := &entity.Product{ID: uuid.New(), Name: "Mine", Category: "sweets", AddedBy: testCustomerWallet, IsActive: true}
	inactive := &entity.Product{ID: uuid.New(), Name: "Gone", Category: "sweets", AddedBy: testProducerWallet}

	userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	productRepo.EXPECT().List(ctx, repository.ProductFilter{}).Return([]*entity.Product{older, own, popular, inactive, favourite, newer}, nil)

	recs, err := service.Recommend(ctx, customer.ID.String(), 0)

	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, favourite, recs[0].Product)
	assert.Equal(t, 8.0, recs[0].Score)
	assert.ElementsMatch(t, []string{"favorite category", "within price range", "on wishlist", "near you"}, recs[0].Reasons)
	assert.Equal(t, popular, recs[1].Product)
	assert.Equal(t, 1.0, recs[1].Score, "popularity is capped")
	assert.Equal(t, newer, recs[2].Product, "ties go to the newest listing")
	assert.Equal(t, older, recs[3].Product)
	assert.Equal(t, usecase.RecommendationProduct, recs[0].Kind)
}

func TestRecommendationService_Recommend_ProducerSeesMaterials(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	rawMaterialRepo := mockRepo.NewMockRawMaterialRepository(t)
	service := NewRecommendationService(userRepo, productRepo, rawMaterialRepo, newDiscardLogger())

	ctx := context.Background()
	producer := testUser(entity.RoleProducer, testProducerWallet)
	producer.CompanyProfile = &entity.CompanyProfile{Industry: "coffee"}
	beans := &entity.RawMaterial{ID: uuid.New(), Name: "Green coffee beans", AddedBy: testSupplierWallet}

	userRepo.EXPECT().FindByWallet(ctx, testProducerWallet).Return(producer, nil)
	productRepo.EXPECT().List(ctx, repository.ProductFilter{}).Return(nil, nil)
	rawMaterialRepo.EXPECT().List(ctx, repository.RawMaterialFilter{}).Return([]*entity.RawMaterial{beans}, nil)

	recs, err := service.Recommend(ctx, testProducerWallet, 5)

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, usecase.RecommendationRawMaterial, recs[0].Kind)
	assert.Equal(t, beans, recs[0].RawMaterial)
	assert.Equal(t, 2.0, recs[0].Score)
}
