package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/server/http/dto"
)

// draftErrors are rejected with 422 on routes that accept a form draft.
var draftErrors = []error{
	domainErrors.ErrUnknownClient,
	domainErrors.ErrUnknownService,
	domainErrors.ErrEmptyServices,
	domainErrors.ErrInvalidDate,
	domainErrors.ErrInvalidStatus,
	domainErrors.ErrInvalidTimeRange,
}

var queryErrors = []error{
	domainErrors.ErrInvalidStatus,
	domainErrors.ErrInvalidSortField,
	domainErrors.ErrInvalidSortOrder,
	domainErrors.ErrInvalidSlot,
	domainErrors.ErrInvalidTimeRange,
	domainErrors.ErrInvalidDate,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func statusFor(err error, draft bool) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case draft && isAny(err, draftErrors):
		return http.StatusUnprocessableEntity
	case isAny(err, queryErrors):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error, draft bool) {
	status := statusFor(err, draft)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: http.StatusText(status)})
		return
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
}

// timeQuery parses an optional RFC 3339 query parameter.
func timeQuery(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC 3339", domainErrors.ErrInvalidDate, name)
	}
	return t, nil
}
