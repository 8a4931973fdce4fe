package workers

import (
	"chat-gateway/domain/notification"
	"context"
	"log/slog"
)

type notificationHandler interface {
	HandleChannelMessage(ctx context.Context, msg notification.ChannelMessage) error
}

// NotificationConsumer drains the bus channel into the notification guard.
// A delivery error is logged and the next message is processed.
type NotificationConsumer struct {
	log     *slog.Logger
	inbox   <-chan notification.ChannelMessage
	handler notificationHandler
}

func NewNotificationConsumer(log *slog.Logger, inbox <-chan notification.ChannelMessage, handler notificationHandler) *NotificationConsumer {
	return &NotificationConsumer{log: log, inbox: inbox, handler: handler}
}

func (c *NotificationConsumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-c.inbox:
			if !ok {
				return nil
			}
			if err := c.handler.HandleChannelMessage(ctx, msg); err != nil {
				c.log.Warn("Channel message not delivered",
					"channel", msg.ChannelID,
					"message", msg.ID,
					"error", err)
			}
		}
	}
}
