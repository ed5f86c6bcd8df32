package events

import (
	"fmt"
	"net/http"

	"garage/backend/foundation/web"
	"garage/backend/internal/pkg/notify"
)

type Controller struct {
	notify *notify.Redis
}

func NewController(notify *notify.Redis) *Controller {
	return &Controller{notify: notify}
}

// Stream bridges the redis reload channel to the client over SSE. Events are
// hints only, clients refetch whatever view they are showing. The stream
// stays open until the client goes away.
func (ec Controller) Stream(c *web.Context) error {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	pubsub := ec.notify.Subscribe(c.Ctx)
	defer pubsub.Close()

	fmt.Fprint(c.Writer, ": connected\n\n")
	c.Writer.Flush()

	ch := pubsub.Channel()
	for {
		select {
		case <-c.Request.Context().Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			fmt.Fprintf(c.Writer, "event: reload\ndata: %s\n\n", msg.Payload)
			c.Writer.Flush()
		}
	}
}
