package handler

import (
	"log/slog"

	"chaintrace/internal/delivery/http/response"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecommendationHandlerParams holds dependencies for RecommendationHandler, injected by Fx.
type RecommendationHandlerParams struct {
	fx.In

	RecommendationUC usecase.RecommendationUsecase
	Logger           *slog.Logger
}

type RecommendationHandler struct {
	uc     usecase.RecommendationUsecase
	logger *slog.Logger
}

func NewRecommendationHandler(params RecommendationHandlerParams) *RecommendationHandler {
	return &RecommendationHandler{
		uc:     params.RecommendationUC,
		logger: params.Logger,
	}
}

// Recommend handles GET /api/recommendations?userId&limit.
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	userRef := c.QueryParam("userId")
	if userRef == "" {
		return domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	recs, err := h.uc.Recommend(c.Request().Context(), userRef, limit)
	if err != nil {
		return err
	}

	return response.OK(c, newRecommendationViews(recs), "")
}
