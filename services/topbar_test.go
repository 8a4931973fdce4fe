package services

import (
	"chat-gateway/domain/channel"
	"chat-gateway/errors"
	"chat-gateway/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestThreadViewTopbar_ApplyThreadRename(t *testing.T) {
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	alice := channel.Persona{ID: "alice", Name: "Alice"}

	t.Run("should set the custom name of a chat", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mutator := mocks.NewMockThreadMutator(ctrl)
		c := channel.Channel{ID: 1, Type: channel.TypeChat, Correspondent: &alice}
		topbar := NewThreadViewTopbar(log, mutator, c, &channel.Thread{ID: 1, Name: "Alice, Me"})

		mutator.EXPECT().SetCustomName(gomock.Any(), channel.ID(1), "Boss").Return(nil).Times(1)
		mutator.EXPECT().Rename(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		topbar.StartEditing()
		topbar.SetPendingName("  Boss ")
		action, err := topbar.ApplyThreadRename(ctx)

		req.NoError(err)
		req.Equal(channel.ActionSetCustomName, action.Kind)
		req.False(topbar.IsEditing())
		req.Equal("Boss", topbar.DisplayName(channel.DefaultSeparator))
	})

	t.Run("should rename a channel thread", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mutator := mocks.NewMockThreadMutator(ctrl)
		thread := &channel.Thread{ID: 2, Name: "Old Name"}
		topbar := NewThreadViewTopbar(log, mutator, channel.Channel{ID: 2, Type: channel.TypeChannel}, thread)

		mutator.EXPECT().Rename(gomock.Any(), channel.ID(2), "New Name").Return(nil).Times(1)

		topbar.StartEditing()
		topbar.SetPendingName("New Name")
		action, err := topbar.ApplyThreadRename(ctx)

		req.NoError(err)
		req.Equal(channel.Action{Kind: channel.ActionRenameThread, Name: "New Name"}, action)
		req.Equal("New Name", topbar.DisplayName(channel.DefaultSeparator))
		// The caller's thread is left alone
		req.Equal("Old Name", thread.Name)
	})

	t.Run("should not rename a channel with an empty name", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mutator := mocks.NewMockThreadMutator(ctrl)
		topbar := NewThreadViewTopbar(log, mutator, channel.Channel{ID: 3, Type: channel.TypeChannel}, &channel.Thread{ID: 3, Name: "Old Name"})

		mutator.EXPECT().Rename(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		mutator.EXPECT().SetCustomName(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		topbar.StartEditing()
		topbar.SetPendingName("   ")
		action, err := topbar.ApplyThreadRename(ctx)

		req.NoError(err)
		req.Equal(channel.ActionNone, action.Kind)
		req.False(topbar.IsEditing())
	})

	t.Run("should clear the name of a group", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mutator := mocks.NewMockThreadMutator(ctrl)
		bob := channel.Persona{ID: "bob", Name: "Bob"}
		c := channel.Channel{ID: 4, Type: channel.TypeGroup, Members: []channel.Member{{ID: 1, Persona: &alice}, {ID: 2, Persona: &bob}}}
		topbar := NewThreadViewTopbar(log, mutator, c, &channel.Thread{ID: 4, Name: "Old Name"})

		mutator.EXPECT().Rename(gomock.Any(), channel.ID(4), "").Return(nil).Times(1)

		topbar.StartEditing()
		topbar.SetPendingName("")
		_, err := topbar.ApplyThreadRename(ctx)

		req.NoError(err)
		req.Equal("Alice, Bob", topbar.DisplayName(channel.DefaultSeparator))
	})

	t.Run("should keep the local name when the mutation fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mutator := mocks.NewMockThreadMutator(ctrl)
		gateway := channel.GatewayID(1)
		topbar := NewThreadViewTopbar(log, mutator, channel.Channel{ID: 5, Type: channel.TypeGateway}, &channel.Thread{ID: 5, Name: "+33 6", Gateway: &gateway})
		boom := fmt.Errorf("access denied")

		mutator.EXPECT().Rename(gomock.Any(), channel.ID(5), "Customer").Return(boom)

		topbar.StartEditing()
		topbar.SetPendingName("Customer")
		_, err := topbar.ApplyThreadRename(ctx)

		req.ErrorIs(err, boom)
		req.False(topbar.IsEditing())
		req.Equal("+33 6", topbar.DisplayName(channel.DefaultSeparator))
	})

	t.Run("should refuse to apply outside editing mode", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		topbar := NewThreadViewTopbar(log, mocks.NewMockThreadMutator(ctrl), channel.Channel{ID: 6, Type: channel.TypeGroup}, &channel.Thread{ID: 6})

		_, err := topbar.ApplyThreadRename(ctx)
		req.ErrorIs(err, errors.ErrNotEditing)

	})

	t.Run("should leave editing mode even without a thread", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mutator := mocks.NewMockThreadMutator(ctrl)
		noThread := NewThreadViewTopbar(log, mutator, channel.Channel{ID: 7, Type: channel.TypeGroup}, nil)

		mutator.EXPECT().Rename(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		noThread.StartEditing()
		noThread.SetPendingName("Team Y")
		_, err := noThread.ApplyThreadRename(ctx)

		req.ErrorIs(err, errors.ErrMissingThread)
		req.False(noThread.IsEditing())

		// The pending name was dropped with the editing state
		_, err = noThread.ApplyThreadRename(ctx)
		req.ErrorIs(err, errors.ErrMissingThread)
		req.False(noThread.IsEditing())
	})

	t.Run("should start editing from the current name", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mutator := mocks.NewMockThreadMutator(ctrl)
		topbar := NewThreadViewTopbar(log, mutator, channel.Channel{ID: 8, Type: channel.TypeGroup}, &channel.Thread{ID: 8, Name: "Team X"})

		// Submitting the untouched name is a no-op
		mutator.EXPECT().Rename(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		topbar.StartEditing()
		req.True(topbar.IsEditing())
		action, err := topbar.ApplyThreadRename(ctx)
		req.NoError(err)
		req.Equal(channel.ActionNone, action.Kind)
	})
}
