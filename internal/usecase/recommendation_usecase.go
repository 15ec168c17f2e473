package usecase

import (
	"context"

	"chaintrace/internal/domain/entity"
)

// Recommendation kinds.
const (
	RecommendationProduct     = "product"
	RecommendationRawMaterial = "raw_material"
)

// Recommendation is one scored listing. Exactly one of Product and RawMaterial is set.
type Recommendation struct {
	Kind        string
	Score       float64
	Reasons     []string
	Product     *entity.Product
	RawMaterial *entity.RawMaterial
}

// RecommendationUsecase ranks listings for a user.
type RecommendationUsecase interface {
	Recommend(ctx context.Context, userRef string, limit int) ([]Recommendation, error)
}
