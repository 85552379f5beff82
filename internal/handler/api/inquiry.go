package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "github.com/nivekneved/travellounge-sub002/internal/handler/dto/request"
	resdto "github.com/nivekneved/travellounge-sub002/internal/handler/dto/response"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/errs"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/commands"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InquiryHandler struct {
	inquiryQueries  queries.InquiryQueries
	inquiryCommands commands.InquiryCommands
}

func NewInquiryHandler(inquiryQueries queries.InquiryQueries, inquiryCommands commands.InquiryCommands) *InquiryHandler {
	return &InquiryHandler{
		inquiryQueries:  inquiryQueries,
		inquiryCommands: inquiryCommands,
	}
}

// @Summary Submit inquiry
// @Description Submit a guest inquiry for a catalog entry
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitInquiryRequest true "Inquiry payload"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /inquiries [post]
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.inquiryCommands.Submit(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Entry not found",
			})
		case errors.Is(err, commands.ErrInvalidInquiry):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Inquiry validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List inquiries
// @Description List guest inquiries, optionally filtered by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (pending, contacted, confirmed, cancelled)"
// @Param limit query int false "Max results (default 50)"
// @Success 200 {array} resdto.InquiryResponse
// @Router /admin/inquiries [get]
func (h *InquiryHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	views, err := h.inquiryQueries.ListInquiries(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInquiryViews(views))
}

// @Summary Get inquiry
// @Description Get a guest inquiry by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 200 {object} resdto.InquiryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/inquiries/{id} [get]
func (h *InquiryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid inquiry ID format",
		})
		return
	}

	view, err := h.inquiryQueries.GetInquiry(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInquiryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Inquiry not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInquiryView(view))
}

// @Summary Update inquiry status
// @Description Move an inquiry through its follow-up workflow
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Param request body reqdto.UpdateInquiryStatusRequest true "Status payload"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/inquiries/{id}/status [put]
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid inquiry ID format",
		})
		return
	}

	var req reqdto.UpdateInquiryStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.inquiryCommands.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid inquiry status",
			})
		case errors.Is(err, commands.ErrInquiryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Inquiry not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
