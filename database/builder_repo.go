package database

import (
	"errors"

	"github.com/gharkhoj/gharkhoj-backend/models"
	"gorm.io/gorm"
)

type BuilderRepo struct {
	db *gorm.DB
}

func NewBuilderRepo(db *gorm.DB) *BuilderRepo {
	return &BuilderRepo{db}
}

// Add inserts a new builder into the database. A duplicate name
// surfaces as the driver's unique-constraint error.
func (r *BuilderRepo) Add(builder *models.Builder) error {
	return r.db.Create(builder).Error
}

// FindByID returns a builder by its ID, or (nil, nil) when absent.
func (r *BuilderRepo) FindByID(id uint) (*models.Builder, error) {
	var builder models.Builder
	err := r.db.First(&builder, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &builder, nil
}
