package api

import (
	"net/http"

	reqdto "github.com/nivekneved/travellounge-sub002/internal/handler/dto/request"
	resdto "github.com/nivekneved/travellounge-sub002/internal/handler/dto/response"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchQueries queries.SearchQueries
}

func NewSearchHandler(searchQueries queries.SearchQueries) *SearchHandler {
	return &SearchHandler{
		searchQueries: searchQueries,
	}
}

// @Summary Search the catalog
// @Description Search catalog entries by category, free text and stay dates
// @Tags search
// @Produce json
// @Param category query string false "Logical category filter (e.g. hotels)"
// @Param q query string false "Free-text term matched against name and description"
// @Param check_in query string false "Check-in day (YYYY-MM-DD)"
// @Param check_out query string false "Check-out day (YYYY-MM-DD), exclusive"
// @Success 200 {object} resdto.SearchResponse
// @Failure 400 {object} map[string]string
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req reqdto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid search parameters",
		})
		return
	}

	result, err := h.searchQueries.Search(c.Request.Context(), req.ToQuery())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSearchResult(result))
}
