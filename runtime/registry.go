package runtime

import (
	"chat-gateway/domain/channel"
	"maps"
	"slices"
	"sync"
)

type entry struct {
	channel channel.Channel
	thread  *channel.Thread
}

// ChannelRegistry is the local view of the channels the host already pushed.
type ChannelRegistry struct {
	mu       sync.RWMutex
	channels map[channel.ID]entry
}

func NewChannelRegistry() *ChannelRegistry {
	return &ChannelRegistry{
		channels: make(map[channel.ID]entry),
	}
}

// Register inserts or replaces a channel and its thread.
// Both are copied so later host mutations don't leak into the registry.
func (r *ChannelRegistry) Register(c channel.Channel, t *channel.Thread) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.channels[c.ID] = entry{channel: cloneChannel(c), thread: cloneThread(t)}
}

// Lookup returns a copy of the channel, its thread (possibly nil) and whether it is known.
func (r *ChannelRegistry) Lookup(id channel.ID) (channel.Channel, *channel.Thread, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.channels[id]
	return cloneChannel(e.channel), cloneThread(e.thread), ok
}

func (r *ChannelRegistry) Forget(id channel.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.channels, id)
}

func (r *ChannelRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.channels)
}

func cloneChannel(c channel.Channel) channel.Channel {
	c.Members = slices.Clone(c.Members)
	return c
}

func cloneThread(t *channel.Thread) *channel.Thread {
	if t == nil {
		return nil
	}
	copied := *t
	copied.Nicknames = maps.Clone(t.Nicknames)
	return &copied
}
