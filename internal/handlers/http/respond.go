package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/userdash/dashboard-backend/internal/domain/errors"
	"github.com/userdash/dashboard-backend/internal/handlers/dto"
)

// respondError translates a core error into its problem response.
// Validation failures keep their ordered message list under "errors";
// everything else maps onto the sentinel taxonomy.
func respondError(c *gin.Context, err error) {
	if verrs, ok := domainerrors.AsValidation(err); ok {
		p := dto.ValidationProblem(c, verrs.Messages)
		dto.Respond(c, p)
		return
	}

	switch {
	case errors.Is(err, domainerrors.ErrUserNotFound):
		dto.Respond(c, dto.NotFoundProblem(c, "User"))
	case errors.Is(err, domainerrors.ErrMessageNotFound):
		dto.Respond(c, dto.NotFoundProblem(c, "Message"))
	case errors.Is(err, domainerrors.ErrUnauthorized):
		dto.Respond(c, dto.UnauthorizedProblem(c))
	case errors.Is(err, domainerrors.ErrForbidden), errors.Is(err, domainerrors.ErrSelfDelete):
		dto.Respond(c, dto.ForbiddenProblem(c))
	default:
		dto.Respond(c, dto.InternalProblem(c))
	}
}
