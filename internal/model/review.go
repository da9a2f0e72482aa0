package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is one user's scored opinion on a title. The (title, author)
// pair is unique at the database level, so a concurrent duplicate loses
// on the index instead of slipping past an application-side check.
type Review struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TitleID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_reviews_title_author" json:"title_id"`
	Title    Title     `gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE" json:"-"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_reviews_title_author" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Score    int       `gorm:"not null;check:score >= 1 AND score <= 10" json:"score"`
	PubDate  time.Time `gorm:"autoCreateTime" json:"pub_date"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID, err = uuid.NewV7()
	}
	return
}

func (r *Review) BeforeSave(tx *gorm.DB) error {
	if r.Text == "" {
		return fieldRequired("text")
	}
	return ValidateScore(r.Score)
}

func (r *Review) String() string {
	return displayName(r.Text)
}
