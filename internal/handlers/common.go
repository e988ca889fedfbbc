// internal/handlers/common.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tiendago/tienda-backend/internal/services"
	"github.com/tiendago/tienda-backend/internal/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP status
// codes: ValidationError -> 400, NotFoundError -> 404, anything else
// is treated as an infrastructure failure.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		utils.BadRequestResponse(c, validationErr.Message, nil)
		return
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		utils.NotFoundResponse(c, notFoundErr.Error())
		return
	}

	utils.InternalErrorResponse(c, err.Error())
}
