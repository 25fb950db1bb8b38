package api

import (
	"errors"
	"net/http"

	resdto "lesson-booking/internal/handler/dto/response"
	"lesson-booking/internal/handler/httperr"
	"lesson-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps the usecase error taxonomy onto HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error) {
	var (
		valErr *errs.ValidationError
		nfErr  *errs.NotFoundError
		capErr *errs.CapacityError
	)

	switch {
	case errors.As(err, &capErr):
		httperr.AbortWithError(c, http.StatusConflict, err, capErr.Error(), resdto.CapacityDetail{
			LessonID:  capErr.LessonID,
			Requested: capErr.Requested,
			Available: capErr.Available,
		})
	case errors.As(err, &valErr):
		httperr.AbortWithError(c, http.StatusBadRequest, err, valErr.Error(), nil)
	case errors.As(err, &nfErr):
		httperr.AbortWithError(c, http.StatusNotFound, err, nfErr.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
