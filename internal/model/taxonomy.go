package model

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category and Genre are two unrelated taxonomy types that share one
// name/slug policy. The shared rules live in validateTaxonomy and
// displayName rather than a common base type.

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:256;not null" json:"name"`
	Slug string    `gorm:"size:50;uniqueIndex;not null" json:"slug"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	return validateTaxonomy(c.Name, c.Slug)
}

func (c *Category) String() string {
	return displayName(c.Name)
}

type Genre struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:256;not null" json:"name"`
	Slug string    `gorm:"size:50;uniqueIndex;not null" json:"slug"`
}

func (g *Genre) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID, err = uuid.NewV7()
	}
	return
}

func (g *Genre) BeforeSave(tx *gorm.DB) error {
	return validateTaxonomy(g.Name, g.Slug)
}

func (g *Genre) String() string {
	return displayName(g.Name)
}

func validateTaxonomy(name, slug string) error {
	if name == "" {
		return fieldRequired("name")
	}
	if utf8.RuneCountInString(name) > FieldMaxLength {
		return fieldTooLong("name", FieldMaxLength)
	}
	return ValidateSlug(slug)
}

// displayName truncates a name for string representations. Cosmetic only,
// not a storage bound.
func displayName(name string) string {
	runes := []rune(name)
	if len(runes) <= LengthToDisplay {
		return name
	}
	return string(runes[:LengthToDisplay])
}
