package services

import (
	"testing"

	"github.com/SOrtizRamirez/empleabilidad-api/internal/dto"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/models"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func TestVacancyService_Create(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVacancyService(db)
	gestor := createTestUser(t, db, "gestor@x.com", models.RoleGestor)

	vacancy, err := svc.Create(&dto.CreateVacancyRequest{
		Title:        "  Backend Developer ",
		Description:  " Build APIs ",
		Company:      " Acme ",
		Location:     strPtr(" Medellín "),
		SalaryMin:    floatPtr(1000),
		SalaryMax:    floatPtr(2000),
		Seniority:    strPtr(models.SeniorityMid),
		Technologies: []string{"NestJS", " Postgres ", "nestjs"},
	}, actorFor(gestor))
	require.NoError(t, err)

	require.Equal(t, "Backend Developer", vacancy.Title)
	require.Equal(t, "Build APIs", vacancy.Description)
	require.Equal(t, "Acme", vacancy.Company)
	require.Equal(t, "Medellín", *vacancy.Location)
	require.Equal(t, models.VacancyOpen, vacancy.Status)
	require.Equal(t, gestor.ID, vacancy.CreatedByID)
	require.Equal(t, []string{"nestjs", "postgres"}, []string(vacancy.Technologies))
}

func TestVacancyService_Create_SalaryBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVacancyService(db)
	gestor := createTestUser(t, db, "gestor@x.com", models.RoleGestor)

	_, err := svc.Create(&dto.CreateVacancyRequest{
		Title: "Dev", Description: "d", Company: "c",
		SalaryMin: floatPtr(3000), SalaryMax: floatPtr(2000),
	}, actorFor(gestor))
	require.ErrorIs(t, err, ErrSalaryRange)

	_, err = svc.Create(&dto.CreateVacancyRequest{
		Title: "Dev", Description: "d", Company: "c",
		SalaryMin: floatPtr(-1),
	}, actorFor(gestor))
	require.Error(t, err)

	// Only one bound set is fine
	_, err = svc.Create(&dto.CreateVacancyRequest{
		Title: "Dev", Description: "d", Company: "c",
		SalaryMin: floatPtr(3000),
	}, actorFor(gestor))
	require.NoError(t, err)
}

func TestVacancyService_Create_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVacancyService(db)
	gestor := createTestUser(t, db, "gestor@x.com", models.RoleGestor)

	_, err := svc.Create(&dto.CreateVacancyRequest{Title: " ", Description: "d", Company: "c"}, actorFor(gestor))
	require.Error(t, err)

	_, err = svc.Create(&dto.CreateVacancyRequest{
		Title: "Dev", Description: "d", Company: "c", Status: "ARCHIVED",
	}, actorFor(gestor))
	require.Error(t, err)

	_, err = svc.Create(&dto.CreateVacancyRequest{
		Title: "Dev", Description: "d", Company: "c", Seniority: strPtr("LEAD"),
	}, actorFor(gestor))
	require.Error(t, err)
}

func TestNormalizeTechnologies(t *testing.T) {
	got := normalizeTechnologies([]string{"NestJS", " Postgres ", "nestjs", "", "  "})
	require.Equal(t, []string{"nestjs", "postgres"}, []string(got))

	// Cap at the stored maximum
	many := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		many = append(many, string(rune('a'+i%26))+string(rune('a'+i/26)))
	}
	require.Len(t, normalizeTechnologies(many), models.MaxTechnologies)
}

func TestVacancyService_FindOne(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVacancyService(db)
	gestor := createTestUser(t, db, "gestor@x.com", models.RoleGestor)
	vacancy := createTestVacancy(t, db, gestor.ID, models.VacancyOpen)

	found, err := svc.FindOne(vacancy.ID)
	require.NoError(t, err)
	require.Equal(t, vacancy.ID, found.ID)

	// Repeated reads return identical data absent writes
	again, err := svc.FindOne(vacancy.ID)
	require.NoError(t, err)
	require.Equal(t, found.Title, again.Title)
	require.Equal(t, found.UpdatedAt, again.UpdatedAt)

	_, err = svc.FindOne(9999)
	require.ErrorIs(t, err, ErrVacancyNotFound)
}

func TestVacancyService_Update_Ownership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVacancyService(db)
	owner := createTestUser(t, db, "owner@x.com", models.RoleGestor)
	admin := createTestUser(t, db, "admin@x.com", models.RoleAdmin)
	otherGestor := createTestUser(t, db, "other@x.com", models.RoleGestor)
	coder := createTestUser(t, db, "coder@x.com", models.RoleCoder)
	vacancy := createTestVacancy(t, db, owner.ID, models.VacancyOpen)

	patch := &dto.UpdateVacancyRequest{Title: strPtr("Updated title")}

	// A coder who is not the owner is rejected without side effects
	_, err := svc.Update(vacancy.ID, patch, actorFor(coder))
	require.ErrorIs(t, err, ErrNotVacancyOwner)

	// GESTOR does not inherit the admin override
	_, err = svc.Update(vacancy.ID, patch, actorFor(otherGestor))
	require.ErrorIs(t, err, ErrNotVacancyOwner)

	var unchanged models.Vacancy
	require.NoError(t, db.First(&unchanged, vacancy.ID).Error)
	require.Equal(t, vacancy.Title, unchanged.Title)

	updated, err := svc.Update(vacancy.ID, patch, actorFor(owner))
	require.NoError(t, err)
	require.Equal(t, "Updated title", updated.Title)

	updated, err = svc.Update(vacancy.ID, &dto.UpdateVacancyRequest{Title: strPtr("Admin edit")}, actorFor(admin))
	require.NoError(t, err)
	require.Equal(t, "Admin edit", updated.Title)
}

func TestVacancyService_Update_Partial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVacancyService(db)
	owner := createTestUser(t, db, "owner@x.com", models.RoleGestor)
	vacancy := createTestVacancy(t, db, owner.ID, models.VacancyOpen)

	updated, err := svc.Update(vacancy.ID, &dto.UpdateVacancyRequest{
		Status:       strPtr(models.VacancyClosed),
		Technologies: []string{"Go", "GO", " postgres "},
	}, actorFor(owner))
	require.NoError(t, err)

	require.Equal(t, vacancy.Title, updated.Title)
	require.Equal(t, models.VacancyClosed, updated.Status)
	require.Equal(t, []string{"go", "postgres"}, []string(updated.Technologies))

	_, err = svc.Update(vacancy.ID, &dto.UpdateVacancyRequest{
		SalaryMin: floatPtr(5000), SalaryMax: floatPtr(1000),
	}, actorFor(owner))
	require.ErrorIs(t, err, ErrSalaryRange)
}

func TestVacancyService_Remove(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVacancyService(db)
	owner := createTestUser(t, db, "owner@x.com", models.RoleGestor)
	admin := createTestUser(t, db, "admin@x.com", models.RoleAdmin)
	coder := createTestUser(t, db, "coder@x.com", models.RoleCoder)

	vacancy := createTestVacancy(t, db, owner.ID, models.VacancyOpen)

	require.ErrorIs(t, svc.Remove(vacancy.ID, actorFor(coder)), ErrNotVacancyOwner)
	require.NoError(t, svc.Remove(vacancy.ID, actorFor(owner)))
	require.ErrorIs(t, svc.Remove(vacancy.ID, actorFor(owner)), ErrVacancyNotFound)

	other := createTestVacancy(t, db, owner.ID, models.VacancyOpen)
	require.NoError(t, svc.Remove(other.ID, actorFor(admin)))
}

func TestVacancyService_Search_Basic(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVacancyService(db)
	gestor := createTestUser(t, db, "gestor@x.com", models.RoleGestor)

	open := createTestVacancy(t, db, gestor.ID, models.VacancyOpen)
	createTestVacancy(t, db, gestor.ID, models.VacancyClosed)

	resp, err := svc.Search(&dto.VacancyQuery{Status: models.VacancyOpen})
	require.NoError(t, err)
	require.EqualValues(t, 1, resp.Total)
	require.Len(t, resp.Data, 1)
	require.Equal(t, open.ID, resp.Data[0].ID)

	// q matches title/company case-insensitively
	resp, err = svc.Search(&dto.VacancyQuery{Q: "ACME"})
	require.NoError(t, err)
	require.EqualValues(t, 2, resp.Total)

	resp, err = svc.Search(&dto.VacancyQuery{Q: "no-such-term"})
	require.NoError(t, err)
	require.EqualValues(t, 0, resp.Total)
	require.Empty(t, resp.Data)
}

func TestVacancyService_Search_Pagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVacancyService(db)
	gestor := createTestUser(t, db, "gestor@x.com", models.RoleGestor)

	for i := 0; i < 15; i++ {
		createTestVacancy(t, db, gestor.ID, models.VacancyOpen)
	}

	resp, err := svc.Search(&dto.VacancyQuery{Page: 2, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Page)
	require.Equal(t, 10, resp.Limit)
	require.EqualValues(t, 15, resp.Total)
	require.Len(t, resp.Data, 5)

	// Out-of-range values fall back to defaults
	resp, err = svc.Search(&dto.VacancyQuery{Page: 0, Limit: 500})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Page)
	require.Equal(t, 10, resp.Limit)
}
