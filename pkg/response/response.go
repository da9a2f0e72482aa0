package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yamdb-team/yamdb-api/pkg/apperror"
	"github.com/yamdb-team/yamdb-api/pkg/validator"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	return userID, nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	var fieldErr *apperror.FieldError
	if errors.As(err, &fieldErr) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{fieldErr.Field: fieldErr.Message}})
		return
	}

	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// ResponseValidationError renders request binding failures as a
// per-field message map.
func ResponseValidationError(c *gin.Context, err error) {
	if msgs, ok := validator.FieldMessages(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
