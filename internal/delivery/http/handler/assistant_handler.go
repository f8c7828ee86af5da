package handler

import (
	"errors"

	"synerh/internal/delivery/http/middleware"
	"synerh/internal/domain/profile"
	"synerh/internal/pkg/response"
	ucassistant "synerh/internal/usecase/assistant"
	ucprofile "synerh/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssistantHandler struct {
	assistant *ucassistant.Service
	profiles  *ucprofile.Service
}

type chatRequest struct {
	Message string `json:"message"`
}

func NewAssistantHandler(assistant *ucassistant.Service, profiles *ucprofile.Service) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, profiles: profiles}
}

func (h *AssistantHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/chat", h.Chat)
	r.Get("/history", h.History)
}

func (h *AssistantHandler) Chat(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req chatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	// A missing profile is not fatal for the chat: the prompt falls back
	// to an empty snapshot.
	prof, err := h.profiles.Get(c.Context(), userID)
	if err != nil && !errors.Is(err, profile.ErrNotFound) {
		prof = profile.Profile{}
	}

	reply, err := h.assistant.GetChatResponse(c.Context(), userID, req.Message, prof)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, reply)
}

func (h *AssistantHandler) History(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	msgs, err := h.assistant.History(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, msgs)
}
