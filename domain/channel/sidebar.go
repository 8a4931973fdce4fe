package channel

import "github.com/samber/lo"

const (
	CategoryChannels = "channels"
	CategoryChats    = "chats"
)

// Defaults holds the categories a host places non-gateway channels in.
type Defaults struct {
	Channels Category
	Chats    Category
}

// SidebarCategory places a gateway thread in the category of its gateway.
// When more than one category matches, the first one in iteration order wins.
// Without thread, gateway or match, fallback is returned unchanged.
func SidebarCategory(t *Thread, categories []Category, fallback *Category) *Category {
	if t == nil || t.Gateway == nil {
		return fallback
	}
	category, ok := lo.Find(categories, func(c Category) bool {
		return c.Gateway != nil && *c.Gateway == *t.Gateway
	})
	if !ok {
		return fallback
	}
	return &category
}

// DefaultCategory is the category a channel goes to when no gateway claims it.
func DefaultCategory(channelType Type, defaults Defaults) *Category {
	switch channelType {
	case TypeChannel:
		return &defaults.Channels
	case TypeChat, TypeGroup:
		return &defaults.Chats
	default:
		return nil
	}
}
