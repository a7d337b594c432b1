package handler

import (
	"errors"
	"net/http"
	"strconv"

	"uninest-housing-api/internal/middleware"
	"uninest-housing-api/internal/repository"
	"uninest-housing-api/internal/service"
	"uninest-housing-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// parseIDParam parses the :id path parameter
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

// currentUserID returns the authenticated caller's user ID from the context
func currentUserID(c *gin.Context) uint {
	value, _ := c.Get(middleware.ContextUserID)
	userID, _ := value.(uint)
	return userID
}

// bindJSON binds the request body and, on validation failure, responds with
// field-level messages
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = validationMessage(fe)
			}
			utils.ValidationErrorResponse(c, fields)
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		}
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "invalid value"
}

// respondServiceError maps service and repository errors to HTTP statuses.
// Domain rule violations are 400s, missing entities 404s, everything else
// a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrBuildingNotFound),
		errors.Is(err, repository.ErrRoomNotFound),
		errors.Is(err, repository.ErrResidentNotFound),
		errors.Is(err, repository.ErrRequestNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, service.ErrNotHoused):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBuildingFull),
		errors.Is(err, service.ErrRoomFull),
		errors.Is(err, service.ErrRoomNotOccupied),
		errors.Is(err, service.ErrEmailConflict),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidStatus):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
