package database

import (
	"github.com/gharkhoj/gharkhoj-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	builderRepo *BuilderRepo
	projectRepo *ProjectRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		builderRepo: NewBuilderRepo(db),
		projectRepo: NewProjectRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BuilderRepo() *BuilderRepo {
	return d.builderRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

// Migrate creates or updates the schema, parent tables before children
// so the builder_id foreign key can be established.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Builder{}, &models.Project{})
}
