package dto

import "github.com/SOrtizRamirez/empleabilidad-api/internal/models"

type CreateVacancyRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Company      string   `json:"company"`
	Location     *string  `json:"location"`
	SalaryMin    *float64 `json:"salaryMin"`
	SalaryMax    *float64 `json:"salaryMax"`
	Status       string   `json:"status"`
	Seniority    *string  `json:"seniority"`
	Technologies []string `json:"technologies"`
}

// UpdateVacancyRequest is a partial patch: nil means "leave as is". A
// non-nil empty technologies slice clears the set.
type UpdateVacancyRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Company      *string  `json:"company"`
	Location     *string  `json:"location"`
	SalaryMin    *float64 `json:"salaryMin"`
	SalaryMax    *float64 `json:"salaryMax"`
	Status       *string  `json:"status"`
	Seniority    *string  `json:"seniority"`
	Technologies []string `json:"technologies"`
}

// VacancyQuery carries the search filters. Tech is a comma-separated
// list matched with overlap semantics against the stored set.
type VacancyQuery struct {
	Status    string
	Seniority string
	Tech      string
	Q         string
	Page      int
	Limit     int
}

type VacancyListResponse struct {
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Total int64            `json:"total"`
	Data  []models.Vacancy `json:"data"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
