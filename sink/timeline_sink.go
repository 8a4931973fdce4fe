package sink

import (
	"chat-gateway/domain/channel"
	"chat-gateway/domain/notification"
	"context"
	"sync"
)

// Timeline keeps the forwarded messages of every channel, in delivery order.
type Timeline struct {
	mu       sync.RWMutex
	messages map[channel.ID][]notification.ChannelMessage
}

func NewTimeline() *Timeline {
	return &Timeline{
		messages: make(map[channel.ID][]notification.ChannelMessage),
	}
}

func (t *Timeline) Deliver(_ context.Context, msg notification.ChannelMessage) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.messages[msg.ChannelID] = append(t.messages[msg.ChannelID], msg)
	return nil
}

func (t *Timeline) Messages(id channel.ID) []notification.ChannelMessage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]notification.ChannelMessage(nil), t.messages[id]...)
}
