package handler

import (
	"errors"

	"synerh/internal/delivery/http/middleware"
	"synerh/internal/domain/quest"
	"synerh/internal/pkg/response"
	"synerh/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type QuestHandler struct {
	uc *usecase.Catalog
}

func NewQuestHandler(uc *usecase.Catalog) *QuestHandler {
	return &QuestHandler{uc: uc}
}

func (h *QuestHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/:id/accept", h.Accept)
}

func (h *QuestHandler) List(c fiber.Ctx) error {
	quests, err := h.uc.ListQuests(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, quests)
}

func (h *QuestHandler) Get(c fiber.Ctx) error {
	q, err := h.uc.GetQuest(c.Context(), c.Params("id"))
	if err != nil {
		return mapQuestError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, q)
}

func (h *QuestHandler) Accept(c fiber.Ctx) error {
	q, err := h.uc.AcceptQuest(c.Context(), c.Params("id"))
	if err != nil {
		return mapQuestError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, q)
}

func mapQuestError(err error) error {
	if errors.Is(err, quest.ErrNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Quest not found", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
