package internal

import (
	"chat-gateway/domain/channel"
	"fmt"
	"time"
)

type Config struct {
	BadgerFilepath   string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath    string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
	Locale           string        `env:"LOCALE,default=en_US"`
	SelfPersonaID    string        `env:"SELF_PERSONA_ID,required=true"`
	FetchTimeout     time.Duration `env:"FETCH_TIMEOUT,default=5s"`
	ChannelsCategory string        `env:"CHANNELS_CATEGORY_NAME,default=Channels"`
	ChatsCategory    string        `env:"CHATS_CATEGORY_NAME,default=Direct Messages"`
	Colours          bool          `env:"COLOURS,default=true"`
	InboxSize        int           `env:"INBOX_SIZE,default=64"`
	RestartInterval  time.Duration `env:"RESTART_INTERVAL,default=200ms"`
}

func (c Config) Validate() error {
	if c.FetchTimeout < 0 {
		return fmt.Errorf("FETCH_TIMEOUT must not be negative, got %s", c.FetchTimeout)
	}
	if c.InboxSize < 0 {
		return fmt.Errorf("INBOX_SIZE must not be negative, got %d", c.InboxSize)
	}
	if c.SelfPersonaID == "" {
		return fmt.Errorf("SELF_PERSONA_ID must not be empty")
	}
	return nil
}

func (c Config) Self() channel.PersonaID {
	return channel.PersonaID(c.SelfPersonaID)
}

func (c Config) Separator() string {
	return channel.ListSeparator(c.Locale)
}

func (c Config) Defaults() channel.Defaults {
	return channel.Defaults{
		Channels: channel.Category{ID: channel.CategoryChannels, Name: c.ChannelsCategory},
		Chats:    channel.Category{ID: channel.CategoryChats, Name: c.ChatsCategory},
	}
}
