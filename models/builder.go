package models

// Builder is the real-estate developer that owns one or more projects.
// Rows are immutable once created; there is no update path.
type Builder struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string    `json:"name" gorm:"type:text;not null;unique"`
	HQLocation      *string   `json:"hq_location,omitempty" gorm:"column:hq_location;type:text"`
	EstablishedYear *int      `json:"established_year,omitempty" gorm:"column:established_year"`
	Projects        []Project `json:"projects,omitempty" gorm:"foreignKey:BuilderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Builder) TableName() string {
	return "builders"
}
