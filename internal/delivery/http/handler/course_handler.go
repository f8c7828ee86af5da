package handler

import (
	"errors"

	"synerh/internal/delivery/http/middleware"
	"synerh/internal/domain/course"
	"synerh/internal/pkg/response"
	"synerh/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CourseHandler struct {
	uc *usecase.Catalog
}

type updateProgressRequest struct {
	Progress *int `json:"progress"`
}

func NewCourseHandler(uc *usecase.Catalog) *CourseHandler {
	return &CourseHandler{uc: uc}
}

func (h *CourseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/:id/enroll", h.Enroll)
	r.Put("/:id/progress", h.UpdateProgress)
}

func (h *CourseHandler) List(c fiber.Ctx) error {
	courses, err := h.uc.ListCourses(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, courses)
}

func (h *CourseHandler) Get(c fiber.Ctx) error {
	crs, err := h.uc.GetCourse(c.Context(), c.Params("id"))
	if err != nil {
		return mapCourseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, crs)
}

func (h *CourseHandler) Enroll(c fiber.Ctx) error {
	crs, err := h.uc.EnrollCourse(c.Context(), c.Params("id"))
	if err != nil {
		return mapCourseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, crs)
}

func (h *CourseHandler) UpdateProgress(c fiber.Ctx) error {
	var req updateProgressRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.Progress == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Progress is required", nil, nil)
	}

	crs, err := h.uc.UpdateCourseProgress(c.Context(), c.Params("id"), *req.Progress)
	if err != nil {
		return mapCourseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, crs)
}

func mapCourseError(err error) error {
	if errors.Is(err, course.ErrNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Course not found", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
