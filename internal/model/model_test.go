package model

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamdb-team/yamdb-api/pkg/apperror"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleModerator.Valid())
	assert.False(t, Role("owner").Valid())
	assert.False(t, Role("").Valid())
}

func TestUserRolePredicates(t *testing.T) {
	admin := User{Username: "boss", Role: RoleAdmin}
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsModerator())

	moderator := User{Username: "mod", Role: RoleModerator}
	assert.False(t, moderator.IsAdmin())
	assert.True(t, moderator.IsModerator())

	plain := User{Username: "reader", Role: RoleUser}
	assert.False(t, plain.IsAdmin())
	assert.False(t, plain.IsModerator())

	// Superusers act as admins whatever their stored role says.
	super := User{Username: "root", Role: RoleUser, IsSuperuser: true}
	assert.True(t, super.IsAdmin())
}

func TestUserBeforeSave(t *testing.T) {
	u := User{Username: "reader", Email: "reader@example.com"}
	require.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, RoleUser, u.Role)

	reserved := User{Username: "me", Email: "me@example.com"}
	assert.ErrorIs(t, reserved.BeforeSave(nil), apperror.ErrInvalidInput)

	badPattern := User{Username: "two words", Email: "x@example.com"}
	assert.ErrorIs(t, badPattern.BeforeSave(nil), apperror.ErrInvalidInput)

	badRole := User{Username: "reader", Email: "reader@example.com", Role: "owner"}
	assert.ErrorIs(t, badRole.BeforeSave(nil), apperror.ErrInvalidInput)
}

func TestUserString(t *testing.T) {
	u := User{Username: "reader"}
	assert.Equal(t, "reader", u.String())
}

func TestBeforeCreateAssignsID(t *testing.T) {
	u := User{Username: "reader", Email: "reader@example.com"}
	require.NoError(t, u.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, u.ID)

	keep := u.ID
	require.NoError(t, u.BeforeCreate(nil))
	assert.Equal(t, keep, u.ID)
}

func TestCategoryBeforeSave(t *testing.T) {
	ok := Category{Name: "Movies", Slug: "movies"}
	assert.NoError(t, ok.BeforeSave(nil))

	noName := Category{Slug: "movies"}
	assert.ErrorIs(t, noName.BeforeSave(nil), apperror.ErrInvalidInput)

	longName := Category{Name: strings.Repeat("a", FieldMaxLength+1), Slug: "movies"}
	assert.ErrorIs(t, longName.BeforeSave(nil), apperror.ErrInvalidInput)

	// The bound counts characters, so a multibyte name at the limit fits.
	wideName := Category{Name: strings.Repeat("ж", FieldMaxLength), Slug: "movies"}
	assert.NoError(t, wideName.BeforeSave(nil))

	badSlug := Category{Name: "Movies", Slug: "mov ies"}
	assert.ErrorIs(t, badSlug.BeforeSave(nil), apperror.ErrInvalidInput)
}

func TestGenreBeforeSave(t *testing.T) {
	ok := Genre{Name: "Science Fiction", Slug: "sci-fi"}
	assert.NoError(t, ok.BeforeSave(nil))

	badSlug := Genre{Name: "Science Fiction", Slug: "sci.fi"}
	assert.ErrorIs(t, badSlug.BeforeSave(nil), apperror.ErrInvalidInput)
}

func TestTaxonomyString(t *testing.T) {
	long := Category{Name: strings.Repeat("Documentary ", 5)}
	assert.Len(t, []rune(long.String()), LengthToDisplay)

	short := Genre{Name: "Jazz"}
	assert.Equal(t, "Jazz", short.String())
}

func TestTitleBeforeSave(t *testing.T) {
	ok := Title{Name: "Interstellar", Year: 2014, Description: "Space farming drama."}
	assert.NoError(t, ok.BeforeSave(nil))

	future := Title{Name: "Unreleased", Year: time.Now().Year() + 1}
	assert.ErrorIs(t, future.BeforeSave(nil), apperror.ErrInvalidInput)

	unnamed := Title{Year: 2000}
	assert.ErrorIs(t, unnamed.BeforeSave(nil), apperror.ErrInvalidInput)
}

func TestReviewBeforeSave(t *testing.T) {
	ok := Review{Text: "Holds up on rewatch.", Score: 8}
	assert.NoError(t, ok.BeforeSave(nil))

	empty := Review{Score: 8}
	assert.ErrorIs(t, empty.BeforeSave(nil), apperror.ErrInvalidInput)

	tooHigh := Review{Text: "x", Score: MaxScoreValue + 1}
	assert.ErrorIs(t, tooHigh.BeforeSave(nil), apperror.ErrInvalidInput)

	tooLow := Review{Text: "x", Score: MinScoreValue - 1}
	assert.ErrorIs(t, tooLow.BeforeSave(nil), apperror.ErrInvalidInput)
}

func TestCommentBeforeSave(t *testing.T) {
	ok := Comment{Text: "Agreed."}
	assert.NoError(t, ok.BeforeSave(nil))

	empty := Comment{}
	assert.ErrorIs(t, empty.BeforeSave(nil), apperror.ErrInvalidInput)
}
