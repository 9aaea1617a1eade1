package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	VacancyOpen   = "OPEN"
	VacancyClosed = "CLOSED"
)

const (
	SeniorityJunior = "JUNIOR"
	SeniorityMid    = "MID"
	SenioritySenior = "SENIOR"
)

// MaxTechnologies caps the technology set stored per vacancy.
const MaxTechnologies = 30

// Vacancy is a job posting owned by the creating user.
type Vacancy struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"size:140;not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Company      string         `gorm:"size:140;not null" json:"company"`
	Location     *string        `gorm:"size:140" json:"location"`
	SalaryMin    *float64       `gorm:"type:numeric(12,2)" json:"salaryMin"`
	SalaryMax    *float64       `gorm:"type:numeric(12,2)" json:"salaryMax"`
	Status       string         `gorm:"size:10;not null;default:'OPEN';index" json:"status"`
	Seniority    *string        `gorm:"size:10" json:"seniority"`
	Technologies pq.StringArray `gorm:"type:text[];default:'{}'" json:"technologies"`
	CreatedByID  uint           `gorm:"column:created_by;not null;index" json:"createdById"`
	CreatedBy    *User          `gorm:"foreignKey:CreatedByID;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func ValidVacancyStatus(status string) bool {
	return status == VacancyOpen || status == VacancyClosed
}

func ValidSeniority(seniority string) bool {
	switch seniority {
	case SeniorityJunior, SeniorityMid, SenioritySenior:
		return true
	}
	return false
}
