package handler

import (
	"synerh/internal/content"
	"synerh/internal/domain/reputation"
	"synerh/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// ContentHandler serves the static platform content: onboarding slides,
// category lists, the skills catalog and the reputation tier table.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/onboarding", h.OnboardingSlides)
	r.Get("/categories", h.Categories)
	r.Get("/skills", h.Skills)
	r.Get("/reputation-tiers", h.ReputationTiers)
}

func (h *ContentHandler) OnboardingSlides(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, content.OnboardingSlides())
}

func (h *ContentHandler) Categories(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, content.CategoryLists())
}

func (h *ContentHandler) Skills(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, content.SkillsCatalog())
}

func (h *ContentHandler) ReputationTiers(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, reputation.Tiers())
}
