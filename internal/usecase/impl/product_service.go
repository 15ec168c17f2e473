package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "chaintrace/internal/delivery/context"
	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/errors"
	"chaintrace/internal/usecase"

	"github.com/google/uuid"
)

type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
	now         func() time.Time
}

func NewProductService(productRepo repository.ProductRepository, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateProduct lists a product under the session wallet. Only producers list
// finished goods.
func (srv *productService) CreateProduct(ctx context.Context, session entity.Session, input *usecase.CreateProductInput) (*entity.Product, error) {
	if session.Role != entity.RoleProducer {
		return nil, domainerrors.ErrRoleNotAllowed.WithDetails("only producers can list products")
	}

	kind := input.Kind
	if kind == "" {
		kind = entity.ProductKindSimple
	}
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown product kind " + string(kind))
	}

	name := strings.TrimSpace(input.Name)
	location := strings.TrimSpace(input.Location)
	switch {
	case name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	case location == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("location is required")
	case input.Price <= 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	case input.AvailableQuantity != nil && *input.AvailableQuantity < 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("availableQuantity must not be negative")
	}

	now := srv.now()
	product := &entity.Product{
		ID:        uuid.New(),
		Kind:      kind,
		Name:      name,
		Price:     input.Price,
		Location:  location,
		AddedBy:   entity.NormalizeWallet(session.WalletAddress),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if kind == entity.ProductKindEnhanced {
		product.Description = strings.TrimSpace(input.Description)
		product.Category = strings.TrimSpace(input.Category)
		product.Images = input.Images
		product.Specifications = input.Specifications
		product.SKU = strings.TrimSpace(input.SKU)
		product.AvailableQuantity = input.AvailableQuantity
		product.Unit = strings.TrimSpace(input.Unit)
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Product listed",
		slog.Any("productID", product.ID),
		slog.String("kind", string(kind)),
		slog.String("addedBy", product.AddedBy),
	)

	return product, nil
}

func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	filter.AddedBy = entity.NormalizeWallet(filter.AddedBy)
	if filter.Kind != "" && !filter.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown product kind " + string(filter.Kind))
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}
