package api

import (
	"net/http"
	"strconv"

	reqdto "rental-market/internal/handler/dto/request"
	resdto "rental-market/internal/handler/dto/response"
	"rental-market/internal/handler/middleware"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/usecase/commands"
	"rental-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	marketCommands commands.MarketCommands
	marketQueries  queries.MarketQueries
}

func NewPropertyHandler(marketCommands commands.MarketCommands, marketQueries queries.MarketQueries) *PropertyHandler {
	return &PropertyHandler{
		marketCommands: marketCommands,
		marketQueries:  marketQueries,
	}
}

// @Summary List a property
// @Description Create a listing owned by the caller with an all-closed calendar
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePropertyRequest true "Listing request"
// @Success 201 {object} resdto.PropertyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.marketCommands.ListProperty(c.Request.Context(), actorID, *req.PricePerNight)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	view, err := h.marketQueries.Property(c.Request.Context(), id)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.Header("Location", "/api/properties/"+strconv.FormatUint(id, 10))
	c.JSON(http.StatusCreated, resdto.FromPropertyView(view))
}

// @Summary Get property
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	view, err := h.marketQueries.Property(c.Request.Context(), id)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}

// @Summary My properties
// @Description Property ids listed by the caller, in listing order
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PropertyIDsResponse
// @Router /properties/mine [get]
func (h *PropertyHandler) Mine(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ids, err := h.marketQueries.MyProperties(c.Request.Context(), actorID)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.PropertyIDsResponse{PropertyIDs: ids})
}

// @Summary Set availability
// @Description Open or close every day in [start, end); owner only
// @Tags properties
// @Accept json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body reqdto.SetAvailabilityRequest true "Availability window"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/availability [put]
func (h *PropertyHandler) SetAvailability(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req reqdto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.marketCommands.SetAvailability(c.Request.Context(), actorID, id, req.Start, req.End, *req.Open)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Check a single instant
// @Description Whether the day containing the timestamp is open
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Param at query int true "Instant (unix seconds)"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/available [get]
func (h *PropertyHandler) Available(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	at, err := strconv.ParseInt(c.Query("at"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid at"})
		return
	}

	open, err := h.marketQueries.IsAvailable(c.Request.Context(), id, at)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": open})
}

// @Summary Availability range
// @Description One boolean per whole day in [start, end)
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Param start query int true "Range start (unix seconds)"
// @Param end query int true "Range end (unix seconds)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/availability [get]
func (h *PropertyHandler) AvailabilityRange(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	days, err := h.marketQueries.AvailabilityRange(c.Request.Context(), id, start, end)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		PropertyID: id,
		StartDay:   clock.DayIndex(start),
		Days:       days,
	})
}

// @Summary Quote total cost
// @Description Price for [start, end): nightly price times whole nights
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Param start query int true "Range start (unix seconds)"
// @Param end query int true "Range end (unix seconds)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/quote [get]
func (h *PropertyHandler) Quote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	cost, err := h.marketQueries.TotalCost(c.Request.Context(), id, start, end)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.QuoteResponse{PropertyID: id, TotalCost: cost})
}

// @Summary Search available properties
// @Description Ascending-id scan of listings fully open in [start, end) within budget
// @Tags properties
// @Produce json
// @Param start query int true "Range start (unix seconds)"
// @Param end query int true "Range end (unix seconds)"
// @Param max_price query int true "Maximum nightly price"
// @Success 200 {object} resdto.PropertyIDsResponse
// @Failure 400 {object} map[string]string
// @Router /properties [get]
func (h *PropertyHandler) Search(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}
	maxPrice, err := strconv.ParseInt(c.Query("max_price"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
		return
	}

	ids, err := h.marketQueries.AvailableProperties(c.Request.Context(), start, end, maxPrice)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.PropertyIDsResponse{PropertyIDs: ids})
}

// @Summary Property bookings
// @Description Booking ids for a property in insertion order
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param only_open query bool false "Only Pending and PreApproved bookings"
// @Success 200 {object} resdto.BookingIDsResponse
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/bookings [get]
func (h *PropertyHandler) Bookings(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	onlyOpen := c.Query("only_open") == "true"

	ids, err := h.marketQueries.PropertyBookings(c.Request.Context(), id, onlyOpen)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.BookingIDsResponse{BookingIDs: ids})
}

func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return 0, false
	}
	return id, true
}

func parseRange(c *gin.Context) (int64, int64, bool) {
	start, err := strconv.ParseInt(c.Query("start"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start"})
		return 0, 0, false
	}
	end, err := strconv.ParseInt(c.Query("end"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end"})
		return 0, 0, false
	}
	return start, end, true
}
