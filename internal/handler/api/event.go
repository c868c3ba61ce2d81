package api

import (
	"net/http"
	"strconv"

	resdto "rental-market/internal/handler/dto/response"
	"rental-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	marketQueries queries.MarketQueries
}

func NewEventHandler(marketQueries queries.MarketQueries) *EventHandler {
	return &EventHandler{marketQueries: marketQueries}
}

// @Summary List market events
// @Description Events with seq greater than "after", in append order
// @Tags events
// @Produce json
// @Param after query int false "Return events after this sequence number"
// @Param limit query int false "Maximum number of events (default 100)"
// @Success 200 {object} resdto.EventsResponse
// @Failure 400 {object} map[string]string
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	var afterSeq uint64
	if raw := c.Query("after"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid after"})
			return
		}
		afterSeq = parsed
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	events, err := h.marketQueries.Events(c.Request.Context(), afterSeq, limit)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEvents(events, afterSeq))
}
