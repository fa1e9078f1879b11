package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
)

// ErrorResponse is the uniform error body: a short category, the human
// message and the machine-readable error type.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func HandleError(c *gin.Context, err error) {
	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		status := mapKindToHTTP(svcErr.Kind)
		c.JSON(status, ErrorResponse{
			Error:   http.StatusText(status),
			Message: svcErr.Message,
			Type:    svcErr.Kind.String(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   http.StatusText(http.StatusInternalServerError),
		Message: err.Error(),
		Type:    "internal",
	})
}

func mapKindToHTTP(kind serviceerrors.ErrorKind) int {
	switch kind {
	case serviceerrors.KindNotFound:
		return http.StatusNotFound
	case serviceerrors.KindConflict:
		return http.StatusConflict
	case serviceerrors.KindUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case serviceerrors.KindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
