package api

import (
	"context"
	"net/http"
	"strconv"

	reqdto "rental-market/internal/handler/dto/request"
	resdto "rental-market/internal/handler/dto/response"
	"rental-market/internal/handler/middleware"
	"rental-market/internal/usecase/commands"
	"rental-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	marketCommands commands.MarketCommands
	marketQueries  queries.MarketQueries
}

func NewBookingHandler(marketCommands commands.MarketCommands, marketQueries queries.MarketQueries) *BookingHandler {
	return &BookingHandler{
		marketCommands: marketCommands,
		marketQueries:  marketQueries,
	}
}

// @Summary Request a booking
// @Description Create a pending booking for [start, end) on an open property
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	snap, err := h.marketCommands.RequestBooking(c.Request.Context(), actorID, req.PropertyID, req.Start, req.End)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.Header("Location", "/api/bookings/"+strconv.FormatUint(snap.ID, 10))
	c.JSON(http.StatusCreated, resdto.FromBookingSnapshot(snap))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	view, err := h.marketQueries.Booking(c.Request.Context(), id)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Pre-approve a booking
// @Description Owner accepts a pending booking and closes its days
// @Tags bookings
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/pre-approve [post]
func (h *BookingHandler) PreApprove(c *gin.Context) {
	h.transition(c, h.marketCommands.PreApproveBooking)
}

// @Summary Confirm a booking
// @Description Renter pays; funds move into market custody
// @Tags bookings
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Failure 402 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.marketCommands.ConfirmBooking)
}

// @Summary Complete a booking
// @Description Settle escrow to the owner once the stay has ended; any caller may trigger it
// @Tags bookings
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.marketCommands.CompleteBooking)
}

// @Summary Cancel a booking
// @Description Renter or owner cancels before confirmation
// @Tags bookings
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.marketCommands.CancelBooking)
}

func (h *BookingHandler) transition(c *gin.Context, op func(ctx context.Context, caller uuid.UUID, bookingID uint64) error) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := op(c.Request.Context(), actorID, id); err != nil {
		respondMarketError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
