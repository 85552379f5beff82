package api

import (
	"io"

	"github.com/nivekneved/travellounge-sub002/internal/infra/notify"

	"github.com/gin-gonic/gin"
)

type EventsHandler struct {
	feed *notify.LedgerFeed
}

func NewEventsHandler(feed *notify.LedgerFeed) *EventsHandler {
	return &EventsHandler{
		feed: feed,
	}
}

// @Summary Ledger change feed
// @Description Server-sent event stream of resource ids whose ledger changed
// @Tags events
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /ledger/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	events, cancel := h.feed.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case resourceID, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("ledger", resourceID)
			return true
		}
	})
}
