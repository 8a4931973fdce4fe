// Package projection builds the discuss sidebar from the channels known locally.
// It only reads channel data and never mutates it.
package projection

import (
	"chat-gateway/contract"
	"chat-gateway/domain/channel"
	"sort"
	"strings"

	"github.com/samber/lo"
)

type Entry struct {
	ChannelID channel.ID
	Type      channel.Type
	Name      string
}

type Section struct {
	Category channel.Category
	Entries  []Entry
}

type Sidebar struct {
	separator string
	defaults  channel.Defaults
	gateways  []channel.Category
}

func NewSidebar(separator string, defaults channel.Defaults, gateways []channel.Category) *Sidebar {
	return &Sidebar{separator: separator, defaults: defaults, gateways: gateways}
}

// Build groups channels by category: gateway categories first, then channels,
// then direct messages. Entries are sorted by display name, empty sections dropped.
// Channels without thread or category are left out.
func (s *Sidebar) Build(infos []contract.ChannelInfo) []Section {
	order := append(append([]channel.Category{}, s.gateways...), s.defaults.Channels, s.defaults.Chats)
	byCategory := make(map[string][]Entry, len(order))

	for _, info := range infos {
		if info.Channel == nil || info.Thread == nil {
			continue
		}
		fallback := channel.DefaultCategory(info.Channel.Type, s.defaults)
		category := channel.SidebarCategory(info.Thread, s.gateways, fallback)
		if category == nil {
			continue
		}
		byCategory[category.ID] = append(byCategory[category.ID], Entry{
			ChannelID: info.Channel.ID,
			Type:      info.Channel.Type,
			Name:      channel.DisplayName(*info.Channel, info.Thread, s.separator),
		})
	}

	sections := lo.FilterMap(order, func(category channel.Category, _ int) (Section, bool) {
		entries := byCategory[category.ID]
		if len(entries) == 0 {
			return Section{}, false
		}
		sort.SliceStable(entries, func(i, j int) bool {
			left, right := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
			if left == right {
				return entries[i].ChannelID < entries[j].ChannelID
			}
			return left < right
		})
		return Section{Category: category, Entries: entries}, true
	})
	return sections
}

// Filter keeps the entries whose channel is in ids, dropping emptied sections.
func Filter(sections []Section, ids []channel.ID) []Section {
	keep := lo.SliceToMap(ids, func(id channel.ID) (channel.ID, struct{}) {
		return id, struct{}{}
	})
	return lo.FilterMap(sections, func(section Section, _ int) (Section, bool) {
		entries := lo.Filter(section.Entries, func(e Entry, _ int) bool {
			_, ok := keep[e.ChannelID]
			return ok
		})
		return Section{Category: section.Category, Entries: entries}, len(entries) > 0
	})
}

// Entries flattens the sections in display order.
func Entries(sections []Section) []Entry {
	return lo.FlatMap(sections, func(section Section, _ int) []Entry {
		return section.Entries
	})
}
