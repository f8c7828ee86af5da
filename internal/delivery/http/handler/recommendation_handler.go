package handler

import (
	"synerh/internal/delivery/http/middleware"
	"synerh/internal/pkg/response"
	"synerh/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc *usecase.Catalog
}

func NewRecommendationHandler(uc *usecase.Catalog) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommendations", h.Get)
}

func (h *RecommendationHandler) Get(c fiber.Ctx) error {
	quests, err := h.uc.RecommendedQuests(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	courses, err := h.uc.RecommendedCourses(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	data := map[string]any{
		"quests":  quests,
		"courses": courses,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
