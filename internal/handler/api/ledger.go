package api

import (
	"errors"
	"net/http"

	reqdto "github.com/nivekneved/travellounge-sub002/internal/handler/dto/request"
	resdto "github.com/nivekneved/travellounge-sub002/internal/handler/dto/response"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	ledgerCommands commands.LedgerCommands
}

func NewLedgerHandler(ledgerCommands commands.LedgerCommands) *LedgerHandler {
	return &LedgerHandler{
		ledgerCommands: ledgerCommands,
	}
}

// @Summary Upsert ledger range
// @Description Write per-day availability rows for a resource over [from, to)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertLedgerRequest true "Ledger range payload"
// @Success 200 {object} resdto.LedgerUpsertResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/ledger [put]
func (h *LedgerHandler) UpsertRange(c *gin.Context) {
	var req reqdto.UpsertLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	days, err := h.ledgerCommands.UpsertRange(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidLedgerRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid ledger date range",
			})
		case errors.Is(err, commands.ErrLedgerRangeTooWide):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Ledger date range too wide",
			})
		case errors.Is(err, commands.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LedgerUpsertResponse{DaysWritten: days})
}
