package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/authsvc/internal/common"
)

// errorResponse is the body returned for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// statusFromError maps service sentinels to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrorBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorWrongCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorSomethingWentWrong):
		// the generic downstream-failure kind is a 400-class result,
		// 500 stays reserved for unmapped infrastructure errors
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := statusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "something went wrong"
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}
