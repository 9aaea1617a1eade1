package handlers

import (
	"errors"

	"github.com/SOrtizRamirez/empleabilidad-api/internal/authz"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/dto"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	service *services.ApplicationService
}

func NewApplicationHandler(service *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	actor, err := authz.ActorFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	application, err := h.service.Apply(&req, actor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVacancyNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrAlreadyApplied):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}

func (h *ApplicationHandler) FindAll(c *fiber.Ctx) error {
	query := dto.ApplicationQuery{
		Status:    c.Query("status"),
		VacancyID: uint(c.QueryInt("vacancyId", 0)),
		UserID:    uint(c.QueryInt("userId", 0)),
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 10),
	}

	resp, err := h.service.FindAll(&query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list applications",
		})
	}
	return c.JSON(resp)
}

func (h *ApplicationHandler) FindMine(c *fiber.Ctx) error {
	actor, err := authz.ActorFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	query := dto.ApplicationQuery{
		Status:    c.Query("status"),
		VacancyID: uint(c.QueryInt("vacancyId", 0)),
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 10),
	}

	resp, err := h.service.FindMine(&query, actor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list applications",
		})
	}
	return c.JSON(resp)
}

func (h *ApplicationHandler) FindOne(c *fiber.Ctx) error {
	actor, err := authz.ActorFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	application, err := h.service.FindOne(uint(id), actor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNotApplicationOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to load application",
			})
		}
	}
	return c.JSON(application)
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	application, err := h.service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
	}
	return c.JSON(application)
}
