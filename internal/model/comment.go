package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a remark on a review. Unlike reviews there is no
// uniqueness rule: an author may comment on the same review repeatedly.
type Comment struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReviewID uuid.UUID `gorm:"type:uuid;not null" json:"review_id"`
	Review   Review    `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	PubDate  time.Time `gorm:"autoCreateTime" json:"pub_date"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}

func (c *Comment) BeforeSave(tx *gorm.DB) error {
	if c.Text == "" {
		return fieldRequired("text")
	}
	return nil
}

func (c *Comment) String() string {
	return displayName(c.Text)
}
