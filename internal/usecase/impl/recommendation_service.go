package impl

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	deliverycontext "chaintrace/internal/delivery/context"
	"chaintrace/internal/domain/entity"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/errors"
	"chaintrace/internal/usecase"
)

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 50
)

// Score weights.
const (
	weightFavoriteCategory = 3.0
	weightPriceRange       = 2.0
	weightWishlist         = 2.0
	weightSameCity         = 1.0
	weightIndustryKeyword  = 2.0
	weightPerPayment       = 0.1
	maxPopularity          = 1.0
)

type recommendationService struct {
	userRepo        repository.UserRepository
	productRepo     repository.ProductRepository
	rawMaterialRepo repository.RawMaterialRepository
	logger          *slog.Logger
}

func NewRecommendationService(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	rawMaterialRepo repository.RawMaterialRepository,
	logger *slog.Logger,
) usecase.RecommendationUsecase {
	return &recommendationService{
		userRepo:        userRepo,
		productRepo:     productRepo,
		rawMaterialRepo: rawMaterialRepo,
		logger:          logger,
	}
}

// candidate is a listing reduced to the fields the scorer looks at.
type candidate struct {
	id          string
	name        string
	category    string
	description string
	location    string
	addedBy     string
	price       float64
	payments    int
	createdAt   time.Time
}

// Recommend ranks products for buyers of finished goods and, for producers, raw
// materials as well. Suppliers buy nothing and get an empty list.
func (srv *recommendationService) Recommend(ctx context.Context, userRef string, limit int) ([]usecase.Recommendation, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	limit = min(limit, maxRecommendationLimit)

	user, err := resolveUser(ctx, srv.userRepo, userRef)
	if err != nil {
		return nil, err
	}

	var recs []usecase.Recommendation
	if user.Role.CanBuyProducts() {
		products, err := srv.productRepo.List(ctx, repository.ProductFilter{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list products")
		}
		for _, p := range products {
			if !p.IsActive {
				continue
			}
			c := candidate{
				id: p.ID.String(), name: p.Name, category: p.Category, description: p.Description,
				location: p.Location, addedBy: p.AddedBy, price: p.Price, payments: len(p.Payments), createdAt: p.CreatedAt,
			}
			if rec, ok := score(user, c); ok {
				rec.Kind = usecase.RecommendationProduct
				rec.Product = p
				recs = append(recs, rec)
			}
		}
	}
	if user.Role == entity.RoleProducer {
		materials, err := srv.rawMaterialRepo.List(ctx, repository.RawMaterialFilter{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list raw materials")
		}
		for _, m := range materials {
			c := candidate{
				id: m.ID.String(), name: m.Name, category: m.Category, description: m.Description,
				location: m.Location, addedBy: m.AddedBy, price: m.Price, payments: len(m.Payments), createdAt: m.CreatedAt,
			}
			if rec, ok := score(user, c); ok {
				rec.Kind = usecase.RecommendationRawMaterial
				rec.RawMaterial = m
				recs = append(recs, rec)
			}
		}
	}

	slices.SortStableFunc(recs, func(a, b usecase.Recommendation) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}

			return 1
		}

		return createdAt(b).Compare(createdAt(a))
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Recommendations computed",
		slog.Any("userID", user.ID),
		slog.Int("count", len(recs)),
	)

	return recs, nil
}

// score rates one listing for user. Own listings are never recommended.
func score(user *entity.User, c candidate) (usecase.Recommendation, bool) {
	if entity.SameWallet(c.addedBy, user.WalletAddress) {
		return usecase.Recommendation{}, false
	}

	rec := usecase.Recommendation{Reasons: []string{}}
	add := func(points float64, reason string) {
		rec.Score += points
		rec.Reasons = append(rec.Reasons, reason)
	}

	prefs := user.Preferences
	if c.category != "" && slices.ContainsFunc(prefs.FavoriteCategories, func(fav string) bool {
		return strings.EqualFold(fav, c.category)
	}) {
		add(weightFavoriteCategory, "favorite category")
	}
	if !prefs.PriceRange.IsZero() && prefs.PriceRange.Contains(c.price) {
		add(weightPriceRange, "within price range")
	}
	if slices.Contains(prefs.Wishlist, c.id) {
		add(weightWishlist, "on wishlist")
	}
	if city := strings.TrimSpace(user.Profile.Address.City); city != "" && strings.Contains(strings.ToLower(c.location), strings.ToLower(city)) {
		add(weightSameCity, "near you")
	}
	if user.CompanyProfile != nil && matchesKeyword(user.CompanyProfile.Industry, c.name, c.category, c.description) {
		add(weightIndustryKeyword, "matches your industry")
	}
	if c.payments > 0 {
		add(math.Min(float64(c.payments)*weightPerPayment, maxPopularity), "popular")
	}
	rec.Score = math.Round(rec.Score*100) / 100

	return rec, true
}

func matchesKeyword(keyword string, fields ...string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return false
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), keyword) {
			return true
		}
	}

	return false
}

func createdAt(r usecase.Recommendation) time.Time {
	if r.Product != nil {
		return r.Product.CreatedAt
	}
	if r.RawMaterial != nil {
		return r.RawMaterial.CreatedAt
	}

	return time.Time{}
}
