package request

import (
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/usecase/queries"
)

// SearchRequest binds the storefront's query string. Dates use the plain
// calendar-day form the date pickers emit; anything else fails binding.
type SearchRequest struct {
	Category string     `form:"category"`
	Term     string     `form:"q"`
	CheckIn  *time.Time `form:"check_in" time_format:"2006-01-02"`
	CheckOut *time.Time `form:"check_out" time_format:"2006-01-02"`
}

func (r SearchRequest) ToQuery() queries.SearchRequest {
	return queries.SearchRequest{
		Category: r.Category,
		Term:     r.Term,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
	}
}
