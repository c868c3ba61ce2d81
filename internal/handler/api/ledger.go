package api

import (
	"net/http"

	reqdto "rental-market/internal/handler/dto/request"
	resdto "rental-market/internal/handler/dto/response"
	"rental-market/internal/handler/middleware"
	"rental-market/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// LedgerHandler exposes the faucet surface of the ledger adapter, used in
// development and tests. A production deployment fronts a real token
// ledger where minting is out of the market's hands.
type LedgerHandler struct {
	faucet shared.Faucet
}

func NewLedgerHandler(faucet shared.Faucet) *LedgerHandler {
	return &LedgerHandler{faucet: faucet}
}

// @Summary Mint tokens to the caller
// @Description Dev faucet; optionally approves the market custody for the same amount
// @Tags ledger
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.FaucetRequest true "Faucet request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /ledger/faucet [post]
func (h *LedgerHandler) Faucet(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.FaucetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.faucet.Mint(c.Request.Context(), actorID, req.Amount); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if req.Approve {
		if err := h.faucet.Approve(c.Request.Context(), actorID, req.Amount); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// @Summary Caller's token balance
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Failure 401 {object} map[string]string
// @Router /ledger/balance [get]
func (h *LedgerHandler) Balance(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	balance, err := h.faucet.BalanceOf(c.Request.Context(), actorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.BalanceResponse{Account: actorID, Balance: balance})
}
