package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of authorization roles a user can hold.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleModerator:
		return true
	}
	return false
}

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username    string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	FirstName   string    `gorm:"size:150" json:"first_name"`
	LastName    string    `gorm:"size:150" json:"last_name"`
	Bio         string    `gorm:"type:text" json:"bio"`
	Role        Role      `gorm:"size:16;not null;default:user" json:"role"`
	IsSuperuser bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		var err error
		u.ID, err = uuid.NewV7()
		return err
	}
	return nil
}

// BeforeSave applies the field-level username and role rules. Like any hook
// it does not guard raw SQL writes; the unique indexes do.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if err := ValidateUsername(u.Username); err != nil {
		return err
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if !u.Role.Valid() {
		return ErrUnknownRole
	}
	return nil
}

// IsAdmin reports whether the user holds admin rights. Superusers count as
// admins regardless of their stored role. Recomputed on every call, never
// stored.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.IsSuperuser
}

// IsModerator reports whether the user holds the moderator role.
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}

func (u *User) String() string {
	return u.Username
}
