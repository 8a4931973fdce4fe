package internal

import (
	"chat-gateway/domain/channel"
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_FromEnviron(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", "/tmp/badger")
	t.Setenv("BLUGE_FILEPATH", "/tmp/bluge")
	t.Setenv("SELF_PERSONA_ID", "partner_3")
	t.Setenv("LOCALE", "ja_JP")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)
	req.NoError(config.Validate())

	req.Equal("INFO", config.LogLevel)
	req.Equal(5*time.Second, config.FetchTimeout)
	req.Equal(64, config.InboxSize)
	req.Equal(200*time.Millisecond, config.RestartInterval)
	req.Equal(channel.PersonaID("partner_3"), config.Self())
	req.Equal("、", config.Separator())
	req.Equal("Channels", config.Defaults().Channels.Name)
	req.Equal(channel.CategoryChats, config.Defaults().Chats.ID)
}

func TestConfig_Validate(t *testing.T) {
	req := require.New(t)
	req.Error(Config{SelfPersonaID: "me", FetchTimeout: -time.Second}.Validate())
	req.Error(Config{SelfPersonaID: "me", InboxSize: -1}.Validate())
	req.Error(Config{}.Validate())
	req.NoError(Config{SelfPersonaID: "me"}.Validate())
}
