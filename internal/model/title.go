package model

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Title is a reviewable work. Its rating is never stored here; it is
// aggregated from review scores at read time.
type Title struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"size:256;not null" json:"name"`
	Year        int        `gorm:"not null" json:"year"`
	Description string     `gorm:"type:text;not null" json:"description"`
	CategoryID  *uuid.UUID `gorm:"type:uuid" json:"-"`
	Category    *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	Genres      []Genre    `gorm:"many2many:genre_titles" json:"genre"`
}

func (t *Title) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID, err = uuid.NewV7()
	}
	return
}

func (t *Title) BeforeSave(tx *gorm.DB) error {
	if t.Name == "" {
		return fieldRequired("name")
	}
	if utf8.RuneCountInString(t.Name) > FieldMaxLength {
		return fieldTooLong("name", FieldMaxLength)
	}
	return ValidateYear(t.Year)
}

func (t *Title) String() string {
	return displayName(t.Name)
}

// GenreTitle is the association row between a title and a genre. It has
// no identity beyond the pair and goes away with either side.
type GenreTitle struct {
	TitleID uuid.UUID `gorm:"type:uuid;primaryKey" json:"title_id"`
	Title   Title     `gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE" json:"-"`
	GenreID uuid.UUID `gorm:"type:uuid;primaryKey" json:"genre_id"`
	Genre   Genre     `gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE" json:"-"`
}
