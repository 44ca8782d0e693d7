package models

// ProjectStatus enumerates the lifecycle states a listing can be in.
type ProjectStatus string

const (
	StatusOngoing     ProjectStatus = "Ongoing"
	StatusReadyToMove ProjectStatus = "Ready to Move"
	StatusCompleted   ProjectStatus = "Completed"
	StatusPaused      ProjectStatus = "Paused"
)

// Valid reports whether s is one of the four enumerated statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusOngoing, StatusReadyToMove, StatusCompleted, StatusPaused:
		return true
	}
	return false
}

// Project is a real-estate development listing owned by a Builder.
// PriceMinINR/PriceMaxINR are whole INR amounts derived from PriceRange
// at creation time when not supplied explicitly; they are never
// recomputed afterward.
type Project struct {
	ID          uint          `json:"id" gorm:"primaryKey;autoIncrement"`
	BuilderID   uint          `json:"builder_id" gorm:"column:builder_id;not null;index"`
	Name        string        `json:"name" gorm:"type:text;not null"`
	Location    string        `json:"location" gorm:"type:text;not null"`
	PriceRange  *string       `json:"price_range,omitempty" gorm:"column:price_range;type:text"`
	PriceMinINR *int64        `json:"price_min_inr,omitempty" gorm:"column:price_min_inr"`
	PriceMaxINR *int64        `json:"price_max_inr,omitempty" gorm:"column:price_max_inr"`
	Status      ProjectStatus `json:"status" gorm:"type:text;not null;default:Ongoing"`

	Builder Builder `json:"builder,omitempty" gorm:"foreignKey:BuilderID;references:ID"`
}

func (Project) TableName() string {
	return "projects"
}
