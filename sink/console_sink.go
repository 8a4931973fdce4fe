package sink

import (
	"chat-gateway/domain/notification"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"
)

// Console prints forwarded messages, one line each.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	colour bool
}

func NewConsole(out io.Writer, colour bool) *Console {
	return &Console{out: out, colour: colour}
}

func (c *Console) Deliver(ctx context.Context, msg notification.ChannelMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	header := fmt.Sprintf("[#%d %s] %s:", msg.ChannelID, msg.At.Format("15:04:05"), msg.Author)
	if c.colour {
		header = color.New(color.FgCyan, color.OpBold).Render(header)
	}
	_, err := fmt.Fprintf(c.out, "%s %s\n", header, msg.Body)
	return err
}
