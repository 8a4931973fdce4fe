package services

import (
	"chat-gateway/domain/channel"
	"chat-gateway/errors"
	infrasearch "chat-gateway/infrastructure/search"
	"chat-gateway/projection"
	"chat-gateway/repositories"
	"context"
	"log/slog"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const me = channel.PersonaID("me")

func setupSidebar(t *testing.T) (*SidebarService, *repositories.ChannelRepository) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	index := infrasearch.NewChannelIndex(writer, slog.Default())
	t.Cleanup(func() { _ = index.Close() })

	channels := repositories.NewChannelRepository(db, slog.Default(), me)
	gateways := repositories.NewGatewayRepository(db, slog.Default())
	whatsapp := channel.GatewayID(1)

	req.NoError(gateways.Save(repositories.Gateway{ID: whatsapp, Name: "WhatsApp", Kind: "whatsapp"}))
	for _, record := range []repositories.ChannelRecord{
		{ID: 1, Type: channel.TypeChannel, ThreadName: "general"},
		{ID: 2, Type: channel.TypeChat, ThreadName: "Alice, Me", Members: []repositories.MemberRecord{
			{ID: 1, PersonaID: me, PersonaName: "Me"},
			{ID: 2, PersonaID: "alice", PersonaName: "Alice"},
		}},
		{ID: 3, Type: channel.TypeGroup, Members: []repositories.MemberRecord{
			{ID: 1, PersonaID: "bob", PersonaName: "Bob"},
			{ID: 2},
			{ID: 3, PersonaID: "carol", PersonaName: "Carol"},
		}},
		{ID: 4, Type: channel.TypeGateway, ThreadName: "+34 600", Gateway: &whatsapp, Members: []repositories.MemberRecord{
			{ID: 1, PersonaID: me, PersonaName: "Me"},
		}},
	} {
		req.NoError(channels.Save(record))
	}

	defaults := channel.Defaults{
		Channels: channel.Category{ID: channel.CategoryChannels, Name: "Channels"},
		Chats:    channel.Category{ID: channel.CategoryChats, Name: "Direct Messages"},
	}
	svc := NewSidebarService(slog.Default(), channels, gateways, index, channel.DefaultSeparator, defaults, me)
	return svc, channels
}

func sectionNames(sections []projection.Section) map[string][]string {
	return lo.SliceToMap(sections, func(s projection.Section) (string, []string) {
		return s.Category.ID, lo.Map(s.Entries, func(e projection.Entry, _ int) string { return e.Name })
	})
}

func TestSidebarService_Sections(t *testing.T) {
	req := require.New(t)
	svc, _ := setupSidebar(t)

	sections, err := svc.Sections(context.Background())
	req.NoError(err)

	req.Equal(map[string][]string{
		"gateway_1":              {"+34 600"},
		channel.CategoryChannels: {"general"},
		channel.CategoryChats:    {"Alice", "Bob, Carol"},
	}, sectionNames(sections))
	req.Equal("gateway_1", sections[0].Category.ID)
}

func TestSidebarService_Search(t *testing.T) {
	req := require.New(t)
	svc, _ := setupSidebar(t)

	sections, err := svc.Search(context.Background(), "car")
	req.NoError(err)
	req.Equal(map[string][]string{channel.CategoryChats: {"Bob, Carol"}}, sectionNames(sections))
}

func TestSidebarService_Rename(t *testing.T) {
	ctx := context.Background()

	t.Run("should persist a chat custom name", func(t *testing.T) {
		req := require.New(t)
		svc, channels := setupSidebar(t)

		action, err := svc.Rename(ctx, 2, "Boss")
		req.NoError(err)
		req.Equal(channel.ActionSetCustomName, action.Kind)

		record, err := channels.Get(2)
		req.NoError(err)
		req.Equal("Boss", record.CustomName)
		req.Equal("Alice, Me", record.ThreadName)

		sections, err := svc.Search(ctx, "boss")
		req.NoError(err)
		req.Equal(map[string][]string{channel.CategoryChats: {"Boss"}}, sectionNames(sections))
	})

	t.Run("should reject an empty gateway name", func(t *testing.T) {
		req := require.New(t)
		svc, channels := setupSidebar(t)

		action, err := svc.Rename(ctx, 4, "")
		req.NoError(err)
		req.Equal(channel.ActionNone, action.Kind)

		record, err := channels.Get(4)
		req.NoError(err)
		req.Equal("+34 600", record.ThreadName)
	})

	t.Run("should clear a group name", func(t *testing.T) {
		req := require.New(t)
		svc, channels := setupSidebar(t)
		_, err := svc.Rename(ctx, 3, "Team X")
		req.NoError(err)

		action, err := svc.Rename(ctx, 3, "")
		req.NoError(err)
		req.Equal(channel.Action{Kind: channel.ActionRenameThread, Name: ""}, action)

		record, err := channels.Get(3)
		req.NoError(err)
		req.Empty(record.ThreadName)
	})

	t.Run("should fail on unknown channels", func(t *testing.T) {
		svc, _ := setupSidebar(t)
		_, err := svc.Rename(ctx, 99, "x")
		require.ErrorIs(t, err, errors.ErrChannelNotFound)
	})
}
