package database

import (
	"errors"
	"strings"

	"github.com/gharkhoj/gharkhoj-backend/models"
	"gorm.io/gorm"
)

// Pagination bounds for project listings. Limits outside [1, MaxLimit]
// are clamped rather than rejected; a missing limit becomes DefaultLimit.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Sort keys accepted by project listings.
const (
	SortByPriceMin        = "price_min"
	SortByEstablishedYear = "established_year"
)

// ProjectFilter carries an already-validated filter/sort/pagination
// request. Zero values mean "not set".
type ProjectFilter struct {
	Location    string
	BuilderName string
	Status      models.ProjectStatus
	SortBy      string
	SortOrder   string
	Limit       int
	Offset      int
}

// Normalized returns a copy with pagination clamped and sort fields
// reduced to their allowed values.
func (f ProjectFilter) Normalized() ProjectFilter {
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.SortOrder != "desc" {
		f.SortOrder = "asc"
	}
	if f.SortBy != SortByPriceMin && f.SortBy != SortByEstablishedYear {
		f.SortBy = ""
	}
	return f
}

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

// buildQuery translates a normalized filter into predicates and the
// join against builders. A builder_name filter makes the join an inner
// join, excluding projects whose builder name does not match; sorting
// by established_year needs the join too but must not exclude rows, so
// it joins LEFT.
func (r *ProjectRepo) buildQuery(f ProjectFilter) *gorm.DB {
	query := r.db.Model(&models.Project{})

	switch {
	case f.BuilderName != "":
		query = query.
			Joins("INNER JOIN builders ON builders.id = projects.builder_id").
			Where("LOWER(builders.name) LIKE ?", "%"+strings.ToLower(f.BuilderName)+"%")
	case f.SortBy == SortByEstablishedYear:
		query = query.Joins("LEFT JOIN builders ON builders.id = projects.builder_id")
	}

	if f.Location != "" {
		query = query.Where("LOWER(projects.location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if f.Status != "" {
		query = query.Where("projects.status = ?", f.Status)
	}

	return query
}

// FindAndCount returns one page of projects matching the filter, each
// with its builder attached, plus the total count of matching rows
// ignoring the pagination window. Ordering always ends with
// projects.id ascending so identical queries page identically.
func (r *ProjectRepo) FindAndCount(f ProjectFilter) ([]models.Project, int64, error) {
	f = f.Normalized()

	var total int64
	if err := r.buildQuery(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.buildQuery(f)
	switch f.SortBy {
	case SortByPriceMin:
		query = query.Order("projects.price_min_inr " + f.SortOrder)
	case SortByEstablishedYear:
		query = query.Order("builders.established_year " + f.SortOrder)
	}
	query = query.Order("projects.id asc")

	var projects []models.Project
	err := query.
		Limit(f.Limit).
		Offset(f.Offset).
		Preload("Builder").
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// FindByID returns a project with its builder attached, or (nil, nil)
// when no row matches.
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Builder").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}
