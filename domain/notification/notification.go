// Package notification defines the messages pushed by the host bus.
package notification

import (
	"chat-gateway/domain/channel"
	"time"

	"github.com/google/uuid"
)

// ChannelMessage is a message posted in a channel, as announced on the bus.
type ChannelMessage struct {
	ID        uuid.UUID
	ChannelID channel.ID
	Author    string
	Body      string
	At        time.Time
}

func NewChannelMessage(channelID channel.ID, author, body string, at time.Time) ChannelMessage {
	return ChannelMessage{
		ID:        uuid.New(),
		ChannelID: channelID,
		Author:    author,
		Body:      body,
		At:        at,
	}
}
