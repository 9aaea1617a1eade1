package services

import (
	"errors"
	"strings"

	"github.com/SOrtizRamirez/empleabilidad-api/internal/authz"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/dto"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrVacancyNotOpen      = errors.New("vacancy is not open")
	ErrAlreadyApplied      = errors.New("you already applied to this vacancy")
	ErrNotApplicationOwner = errors.New("you are not allowed to view this application")
	ErrPendingRollback     = errors.New("status cannot be set back to PENDING")
)

// pgUniqueViolation is the Postgres error code for a unique-constraint
// breach.
const pgUniqueViolation = "23505"

type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// Apply files a PENDING application for the actor. The duplicate
// pre-check is best effort; the unique index on (user_id, vacancy_id) is
// what actually guarantees at most one application per pair, so a
// constraint breach on insert is reported as the same conflict.
func (s *ApplicationService) Apply(req *dto.CreateApplicationRequest, actor authz.Actor) (*models.Application, error) {
	var vacancy models.Vacancy
	if err := s.db.First(&vacancy, req.VacancyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVacancyNotFound
		}
		return nil, err
	}

	if vacancy.Status != models.VacancyOpen {
		return nil, ErrVacancyNotOpen
	}

	var existing models.Application
	err := s.db.Where("user_id = ? AND vacancy_id = ?", actor.ID, req.VacancyID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyApplied
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	coverLetter := trimOptional(req.CoverLetter)
	if coverLetter != nil && *coverLetter != "" {
		if len(*coverLetter) < 10 || len(*coverLetter) > 2000 {
			return nil, errors.New("coverLetter must be 10-2000 characters")
		}
	}

	application := models.Application{
		UserID:      actor.ID,
		VacancyID:   req.VacancyID,
		Status:      models.ApplicationPending,
		CoverLetter: coverLetter,
	}

	if err := s.db.Create(&application).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return &application, nil
}

// FindAll lists every application with its vacancy and applicant joined
// in. Reserved for reviewers; the route gate enforces that.
func (s *ApplicationService) FindAll(q *dto.ApplicationQuery) (*dto.ApplicationListResponse, error) {
	page, limit := normalizePagination(q.Page, q.Limit)

	query := s.db.Model(&models.Application{})
	query = applyApplicationFilters(query, q)
	if q.UserID != 0 {
		query = query.Where("user_id = ?", q.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var applications []models.Application
	err := query.
		Preload("Vacancy").
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&applications).Error
	if err != nil {
		return nil, err
	}

	return &dto.ApplicationListResponse{Page: page, Limit: limit, Total: total, Data: applications}, nil
}

// FindMine is FindAll scoped to the actor, with the vacancy joined in.
func (s *ApplicationService) FindMine(q *dto.ApplicationQuery, actor authz.Actor) (*dto.ApplicationListResponse, error) {
	page, limit := normalizePagination(q.Page, q.Limit)

	query := s.db.Model(&models.Application{}).Where("user_id = ?", actor.ID)
	query = applyApplicationFilters(query, q)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var applications []models.Application
	err := query.
		Preload("Vacancy").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&applications).Error
	if err != nil {
		return nil, err
	}

	return &dto.ApplicationListResponse{Page: page, Limit: limit, Total: total, Data: applications}, nil
}

func (s *ApplicationService) FindOne(id uint, actor authz.Actor) (*models.Application, error) {
	var application models.Application
	err := s.db.Preload("Vacancy").Preload("User").First(&application, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	if !authz.CanReview(actor.Role) && application.UserID != actor.ID {
		return nil, ErrNotApplicationOwner
	}

	return &application, nil
}

// UpdateStatus moves an application forward. PENDING is the initial
// state only; once reviewed, an application never returns to it, not
// even from PENDING itself.
func (s *ApplicationService) UpdateStatus(id uint, status string) (*models.Application, error) {
	var application models.Application
	if err := s.db.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	if status == models.ApplicationPending {
		return nil, ErrPendingRollback
	}
	if !models.ValidApplicationStatus(status) {
		return nil, errors.New("status must be ACCEPTED or REJECTED")
	}

	application.Status = status
	if err := s.db.Save(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func applyApplicationFilters(query *gorm.DB, q *dto.ApplicationQuery) *gorm.DB {
	if status := strings.TrimSpace(q.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if q.VacancyID != 0 {
		query = query.Where("vacancy_id = ?", q.VacancyID)
	}
	return query
}
