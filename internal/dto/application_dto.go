package dto

import "github.com/SOrtizRamirez/empleabilidad-api/internal/models"

type CreateApplicationRequest struct {
	VacancyID   uint    `json:"vacancyId"`
	CoverLetter *string `json:"coverLetter"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

type ApplicationQuery struct {
	Status    string
	VacancyID uint
	UserID    uint
	Page      int
	Limit     int
}

type ApplicationListResponse struct {
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
	Total int64                `json:"total"`
	Data  []models.Application `json:"data"`
}
