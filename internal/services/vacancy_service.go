package services

import (
	"errors"
	"strings"

	"github.com/SOrtizRamirez/empleabilidad-api/internal/authz"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/dto"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrVacancyNotFound = errors.New("vacancy not found")
	ErrNotVacancyOwner = errors.New("you are not allowed to modify this vacancy")
	ErrSalaryRange     = errors.New("salaryMin cannot be greater than salaryMax")
)

type VacancyService struct {
	db *gorm.DB
}

func NewVacancyService(db *gorm.DB) *VacancyService {
	return &VacancyService{db: db}
}

func (s *VacancyService) Create(req *dto.CreateVacancyRequest, actor authz.Actor) (*models.Vacancy, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	company := strings.TrimSpace(req.Company)

	if title == "" || description == "" || company == "" {
		return nil, errors.New("title, description and company are required")
	}
	if len(title) > 140 || len(company) > 140 {
		return nil, errors.New("title and company must be at most 140 characters")
	}
	if err := validateSalaryBounds(req.SalaryMin, req.SalaryMax); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.VacancyOpen
	}
	if !models.ValidVacancyStatus(status) {
		return nil, errors.New("status must be OPEN or CLOSED")
	}
	if req.Seniority != nil && !models.ValidSeniority(*req.Seniority) {
		return nil, errors.New("seniority must be JUNIOR, MID or SENIOR")
	}

	vacancy := models.Vacancy{
		Title:        title,
		Description:  description,
		Company:      company,
		Location:     trimOptional(req.Location),
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Status:       status,
		Seniority:    req.Seniority,
		Technologies: normalizeTechnologies(req.Technologies),
		CreatedByID:  actor.ID,
	}

	if err := s.db.Create(&vacancy).Error; err != nil {
		return nil, err
	}
	return &vacancy, nil
}

// Search lists vacancies newest-first. Every filter narrows both the
// result page and the total count.
func (s *VacancyService) Search(q *dto.VacancyQuery) (*dto.VacancyListResponse, error) {
	page, limit := normalizePagination(q.Page, q.Limit)

	query := s.db.Model(&models.Vacancy{})

	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Seniority != "" {
		query = query.Where("seniority = ?", q.Seniority)
	}
	if q.Tech != "" {
		techs := normalizeTechnologies(strings.Split(q.Tech, ","))
		if len(techs) > 0 {
			query = query.Where("technologies && ?", techs)
		}
	}
	if needle := strings.ToLower(strings.TrimSpace(q.Q)); needle != "" {
		like := "%" + needle + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(COALESCE(location, '')) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var vacancies []models.Vacancy
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&vacancies).Error
	if err != nil {
		return nil, err
	}

	return &dto.VacancyListResponse{Page: page, Limit: limit, Total: total, Data: vacancies}, nil
}

func (s *VacancyService) FindOne(id uint) (*models.Vacancy, error) {
	var vacancy models.Vacancy
	if err := s.db.First(&vacancy, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVacancyNotFound
		}
		return nil, err
	}
	return &vacancy, nil
}

// Update applies a partial patch. The ownership check runs before any
// field is touched.
func (s *VacancyService) Update(id uint, req *dto.UpdateVacancyRequest, actor authz.Actor) (*models.Vacancy, error) {
	vacancy, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	if !authz.CanManage(actor, vacancy.CreatedByID) {
		return nil, ErrNotVacancyOwner
	}

	if err := validateSalaryBounds(req.SalaryMin, req.SalaryMax); err != nil {
		return nil, err
	}
	if req.Status != nil && !models.ValidVacancyStatus(*req.Status) {
		return nil, errors.New("status must be OPEN or CLOSED")
	}
	if req.Seniority != nil && !models.ValidSeniority(*req.Seniority) {
		return nil, errors.New("seniority must be JUNIOR, MID or SENIOR")
	}

	if req.Title != nil {
		vacancy.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		vacancy.Description = strings.TrimSpace(*req.Description)
	}
	if req.Company != nil {
		vacancy.Company = strings.TrimSpace(*req.Company)
	}
	if req.Location != nil {
		vacancy.Location = trimOptional(req.Location)
	}
	if req.SalaryMin != nil {
		vacancy.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		vacancy.SalaryMax = req.SalaryMax
	}
	if req.Status != nil {
		vacancy.Status = *req.Status
	}
	if req.Seniority != nil {
		vacancy.Seniority = req.Seniority
	}
	if req.Technologies != nil {
		vacancy.Technologies = normalizeTechnologies(req.Technologies)
	}

	if err := s.db.Save(vacancy).Error; err != nil {
		return nil, err
	}
	return vacancy, nil
}

func (s *VacancyService) Remove(id uint, actor authz.Actor) error {
	vacancy, err := s.FindOne(id)
	if err != nil {
		return err
	}

	if !authz.CanManage(actor, vacancy.CreatedByID) {
		return ErrNotVacancyOwner
	}

	return s.db.Delete(vacancy).Error
}

func validateSalaryBounds(min, max *float64) error {
	if min != nil && *min < 0 || max != nil && *max < 0 {
		return errors.New("salary bounds must be non-negative")
	}
	if min != nil && max != nil && *min > *max {
		return ErrSalaryRange
	}
	return nil
}

// normalizeTechnologies trims, lowercases, drops empties and duplicates
// (first occurrence wins) and caps the set size.
func normalizeTechnologies(techs []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(techs))
	seen := make(map[string]struct{}, len(techs))
	for _, t := range techs {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == models.MaxTechnologies {
			break
		}
	}
	return out
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return page, limit
}
