package models

import "time"

const (
	ApplicationPending  = "PENDING"
	ApplicationAccepted = "ACCEPTED"
	ApplicationRejected = "REJECTED"
)

// Application links a coder to a vacancy. The (user_id, vacancy_id) pair
// is unique at the storage layer; rows go away with their parent user or
// vacancy via FK cascade.
type Application struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:uq_applications_user_vacancy" json:"userId"`
	User        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	VacancyID   uint      `gorm:"not null;uniqueIndex:uq_applications_user_vacancy" json:"vacancyId"`
	Vacancy     *Vacancy  `gorm:"foreignKey:VacancyID;constraint:OnDelete:CASCADE" json:"vacancy,omitempty"`
	Status      string    `gorm:"size:10;not null;default:'PENDING';index" json:"status"`
	CoverLetter *string   `gorm:"type:text" json:"coverLetter"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}
