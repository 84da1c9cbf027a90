package api

import (
	"errors"
	"net/http"

	"library-lending/internal/handler/httperr"
	"library-lending/internal/registry"

	"github.com/gin-gonic/gin"
)

// respondEngineError translates an engine failure into the transport's
// vocabulary: empty store or empty result becomes 204, a missing key
// 404, a uniqueness conflict 409, and a business-rule violation 422.
// The engine itself knows nothing about status codes.
func respondEngineError(c *gin.Context, err error) {
	var engineErr registry.Error
	if !errors.As(err, &engineErr) {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	switch engineErr.Kind {
	case registry.KindEmptyStore, registry.KindEmptyResult:
		c.Status(http.StatusNoContent)
	case registry.KindNotFound:
		httperr.AbortWithError(c, http.StatusNotFound, err, engineErr.Reason(), nil)
	case registry.KindDuplicateKey:
		httperr.AbortWithError(c, http.StatusConflict, err, engineErr.Reason(), nil)
	case registry.KindStateViolation:
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, engineErr.Reason(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
