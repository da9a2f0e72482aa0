package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yamdb-team/yamdb-api/pkg/apperror"
)

// translate maps gorm sentinels onto the API error taxonomy. Duplicate
// keys surface from the unique indexes themselves, so of two racing
// writers exactly one loses and lands here. A foreign key violation
// means the referenced row does not exist.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperror.ErrNotFound
	}
	return err
}
