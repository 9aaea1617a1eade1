package handlers

import (
	"errors"

	"github.com/SOrtizRamirez/empleabilidad-api/internal/authz"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/dto"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type VacancyHandler struct {
	service *services.VacancyService
}

func NewVacancyHandler(service *services.VacancyService) *VacancyHandler {
	return &VacancyHandler{service: service}
}

func (h *VacancyHandler) Create(c *fiber.Ctx) error {
	actor, err := authz.ActorFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateVacancyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	vacancy, err := h.service.Create(&req, actor)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(vacancy)
}

func (h *VacancyHandler) FindAll(c *fiber.Ctx) error {
	resp, err := h.service.Search(&dto.VacancyQuery{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list vacancies",
		})
	}
	return c.JSON(resp)
}

func (h *VacancyHandler) Search(c *fiber.Ctx) error {
	query := dto.VacancyQuery{
		Status:    c.Query("status"),
		Seniority: c.Query("seniority"),
		Tech:      c.Query("tech"),
		Q:         c.Query("q"),
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 10),
	}

	resp, err := h.service.Search(&query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to search vacancies",
		})
	}
	return c.JSON(resp)
}

func (h *VacancyHandler) FindOne(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid vacancy ID",
		})
	}

	vacancy, err := h.service.FindOne(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrVacancyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load vacancy",
		})
	}
	return c.JSON(vacancy)
}

func (h *VacancyHandler) Update(c *fiber.Ctx) error {
	actor, err := authz.ActorFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid vacancy ID",
		})
	}

	var req dto.UpdateVacancyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	vacancy, err := h.service.Update(uint(id), &req, actor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVacancyNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNotVacancyOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
	}
	return c.JSON(vacancy)
}

func (h *VacancyHandler) Remove(c *fiber.Ctx) error {
	actor, err := authz.ActorFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid vacancy ID",
		})
	}

	if err := h.service.Remove(uint(id), actor); err != nil {
		switch {
		case errors.Is(err, services.ErrVacancyNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNotVacancyOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to delete vacancy",
			})
		}
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}
