package api

import (
	"errors"
	"net/http"

	"rental-market/internal/handler/httperr"
	"rental-market/internal/usecase/commands"
	"rental-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Market guard failures map onto one status each; every rejected call left
// the state untouched, so the body only needs to say which guard fired.
func respondMarketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidRange), errors.Is(err, queries.ErrInvalidRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid range: start must be before end", nil)
	case errors.Is(err, commands.ErrPropertyNotFound), errors.Is(err, queries.ErrPropertyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
	case errors.Is(err, commands.ErrBookingNotFound), errors.Is(err, queries.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrNotAuthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Caller is not authorized for this operation", nil)
	case errors.Is(err, commands.ErrOwnProperty):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Owners cannot book their own property", nil)
	case errors.Is(err, commands.ErrDaysUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested days are not available", nil)
	case errors.Is(err, commands.ErrInvalidState):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking status does not allow this transition", nil)
	case errors.Is(err, commands.ErrNotYetDue):
		httperr.AbortWithError(c, http.StatusConflict, err, "Stay has not ended yet", nil)
	case errors.Is(err, commands.ErrPaymentFailed):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment failed", nil)
	case errors.Is(err, commands.ErrNegativePrice):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Price cannot be negative", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
