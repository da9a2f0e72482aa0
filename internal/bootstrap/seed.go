package bootstrap

import (
	"log"

	"gorm.io/gorm"

	"github.com/yamdb-team/yamdb-api/internal/model"
)

func Migrate(db *gorm.DB) error {
	// The genre/title association migrates through the explicit join
	// model so its composite key and cascade rules are ours, not the
	// generated ones.
	if err := db.SetupJoinTable(&model.Title{}, "Genres", &model.GenreTitle{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Genre{},
		&model.Title{},
		&model.GenreTitle{},
		&model.Review{},
		&model.Comment{},
	)
}

// SeedAdminUser guarantees one superuser account exists so a fresh
// deploy can reach the admin-only endpoints. Sign-in still goes through
// the usual confirmation-code flow.
func SeedAdminUser(db *gorm.DB, username, email string) error {
	if username == "" || email == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	admin := model.User{
		Username:    username,
		Email:       email,
		Role:        model.RoleAdmin,
		IsSuperuser: true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Admin user %q seeded successfully", username)
	return nil
}
