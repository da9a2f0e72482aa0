package model

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/yamdb-team/yamdb-api/pkg/apperror"
)

// ReservedUsername is the token the API uses to address the current user
// (/users/me/), so no account may claim it.
const ReservedUsername = "me"

var (
	usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)
	slugRe     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

// ErrUnknownRole rejects roles outside the declared enumeration.
var ErrUnknownRole = apperror.NewFieldError("role", "role must be one of user, admin, moderator")

func fieldRequired(field string) error {
	return apperror.NewFieldError(field, field+" is required")
}

func fieldTooLong(field string, max int) error {
	return apperror.NewFieldError(field, fmt.Sprintf("%s must not exceed %d characters", field, max))
}

// ValidateYear rejects publication years later than the current calendar
// year. There is no lower bound.
func ValidateYear(value int) error {
	if current := time.Now().Year(); value > current {
		return apperror.NewFieldError("year", fmt.Sprintf("year %d is in the future (current year is %d)", value, current))
	}
	return nil
}

// ValidateUsername rejects the reserved self-reference token and anything
// outside the allowed pattern or length.
func ValidateUsername(value string) error {
	if value == "" {
		return apperror.NewFieldError("username", "username is required")
	}
	if value == ReservedUsername {
		return apperror.NewFieldError("username", fmt.Sprintf("username %q is reserved", ReservedUsername))
	}
	if utf8.RuneCountInString(value) > UsernameMaxLength {
		return apperror.NewFieldError("username", fmt.Sprintf("username must not exceed %d characters", UsernameMaxLength))
	}
	if !usernameRe.MatchString(value) {
		return apperror.NewFieldError("username", "username may contain only letters, digits and @/./+/-/_ characters")
	}
	return nil
}

// ValidateSlug applies the shared taxonomy slug policy: URL-safe characters
// only, bounded length. Category and Genre both validate through here.
func ValidateSlug(value string) error {
	if value == "" {
		return apperror.NewFieldError("slug", "slug is required")
	}
	if utf8.RuneCountInString(value) > SlugMaxLength {
		return apperror.NewFieldError("slug", fmt.Sprintf("slug must not exceed %d characters", SlugMaxLength))
	}
	if !slugRe.MatchString(value) {
		return apperror.NewFieldError("slug", "slug may contain only letters, digits, hyphens and underscores")
	}
	return nil
}

// ValidateScore bounds a review score to [MinScoreValue, MaxScoreValue].
func ValidateScore(value int) error {
	if value < MinScoreValue || value > MaxScoreValue {
		return apperror.NewFieldError("score", fmt.Sprintf("score must be between %d and %d", MinScoreValue, MaxScoreValue))
	}
	return nil
}
