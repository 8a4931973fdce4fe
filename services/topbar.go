package services

import (
	"chat-gateway/contract"
	"chat-gateway/domain/channel"
	"chat-gateway/errors"
	"context"
	"log/slog"
	"strings"
	"sync"
)

// ThreadViewTopbar holds the name editing state of the topbar of one thread view.
type ThreadViewTopbar struct {
	mu      sync.Mutex
	log     *slog.Logger
	mutator contract.ThreadMutator
	channel channel.Channel
	thread  *channel.Thread
	editing bool
	pending string
}

func NewThreadViewTopbar(log *slog.Logger, mutator contract.ThreadMutator, c channel.Channel, t *channel.Thread) *ThreadViewTopbar {
	topbar := &ThreadViewTopbar{log: log, mutator: mutator, channel: c}
	if t != nil {
		thread := *t
		topbar.thread = &thread
	}
	return topbar
}

// StartEditing enters editing mode with the current name as pending value.
func (t *ThreadViewTopbar) StartEditing() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.editing = true
	switch {
	case t.channel.Type == channel.TypeChat:
		t.pending = t.channel.CustomName
	case t.thread != nil:
		t.pending = t.thread.Name
	}
}

func (t *ThreadViewTopbar) SetPendingName(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending = name
}

func (t *ThreadViewTopbar) IsEditing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.editing
}

// ApplyThreadRename leaves editing mode and requests at most one mutation.
// The local channel and thread follow the mutation once it succeeded.
func (t *ThreadViewTopbar) ApplyThreadRename(ctx context.Context) (channel.Action, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	editing, name := t.editing, strings.TrimSpace(t.pending)
	t.editing = false
	t.pending = ""

	if t.thread == nil {
		return channel.Action{}, errors.ErrMissingThread
	}
	if !editing {
		return channel.Action{}, errors.ErrNotEditing
	}

	action := channel.RenameRequest(t.channel.Type, name, t.thread.Name, t.channel.CustomName)
	if err := action.Apply(ctx, t.mutator, t.channel.ID); err != nil {
		return action, err
	}

	switch action.Kind {
	case channel.ActionSetCustomName:
		t.channel.CustomName = action.Name
	case channel.ActionRenameThread:
		t.thread.Name = action.Name
	}
	t.log.Debug("Thread rename applied",
		"channel", t.channel.ID,
		"type", t.channel.Type,
		"action", action.Kind.String())
	return action, nil
}

// DisplayName is the name currently shown in the topbar.
func (t *ThreadViewTopbar) DisplayName(separator string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return channel.DisplayName(t.channel, t.thread, separator)
}
