package api

import (
	"errors"
	"net/http"

	reqdto "github.com/nivekneved/travellounge-sub002/internal/handler/dto/request"
	resdto "github.com/nivekneved/travellounge-sub002/internal/handler/dto/response"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/errs"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/commands"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries  queries.CatalogQueries
	catalogCommands commands.CatalogCommands
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries, catalogCommands commands.CatalogCommands) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries:  catalogQueries,
		catalogCommands: catalogCommands,
	}
}

// @Summary List catalog entries
// @Description List all published catalog entries
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.EntryResponse
// @Router /catalog [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	entries, err := h.catalogQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEntryViews(entries))
}

// @Summary Get catalog entry
// @Description Get a catalog entry by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} resdto.EntryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /catalog/{id} [get]
func (h *CatalogHandler) GetEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid entry ID format",
		})
		return
	}

	entry, err := h.catalogQueries.GetEntry(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Entry not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEntryView(entry))
}

// @Summary List categories
// @Description List logical category filters for the storefront filter bar
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.CategoriesResponse
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.CategoriesResponse{
		Categories: h.catalogQueries.ListCategories(),
	})
}

// @Summary Create catalog entry
// @Description Create a new catalog entry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertEntryRequest true "Entry payload"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/catalog [post]
func (h *CatalogHandler) CreateEntry(c *gin.Context) {
	var req reqdto.UpsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateEntry(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidEntry):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Entry validation failed",
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

// @Summary Update catalog entry
// @Description Replace a catalog entry's content
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body reqdto.UpsertEntryRequest true "Entry payload"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/catalog/{id} [put]
func (h *CatalogHandler) UpdateEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid entry ID format",
		})
		return
	}

	var req reqdto.UpsertEntryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogCommands.UpdateEntry(c.Request.Context(), id, req.ToParams()); err != nil {
		switch {
		case errors.Is(err, commands.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Entry not found",
			})
		case errors.Is(err, commands.ErrInvalidEntry):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Entry validation failed",
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

// @Summary Delete catalog entry
// @Description Delete a catalog entry and its resources
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/catalog/{id} [delete]
func (h *CatalogHandler) DeleteEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid entry ID format",
		})
		return
	}

	if err := h.catalogCommands.DeleteEntry(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Entry not found",
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

// @Summary Add bookable resource
// @Description Attach a bookable resource to a catalog entry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body reqdto.AddResourceRequest true "Resource payload"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/catalog/{id}/resources [post]
func (h *CatalogHandler) AddResource(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid entry ID format",
		})
		return
	}

	var req reqdto.AddResourceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.AddResource(c.Request.Context(), req.ToParams(entryID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Entry not found",
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

// @Summary Delete bookable resource
// @Description Remove a bookable resource and its ledger rows
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/resources/{id} [delete]
func (h *CatalogHandler) DeleteResource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	if err := h.catalogCommands.DeleteResource(c.Request.Context(), id); err != nil {
		switch {
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

	c.Status(http.StatusNoContent)
}
