package services

import (
	"chat-gateway/contract"
	"chat-gateway/domain/channel"
	domainsearch "chat-gateway/domain/search"
	"chat-gateway/projection"
	"chat-gateway/repositories"
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

// ChannelIndex is the quick search backend of the sidebar.
type ChannelIndex interface {
	Index(ctx context.Context, sections []projection.Section) error
	Search(ctx context.Context, q *domainsearch.Query) ([]channel.ID, error)
}

type ISidebarService interface {
	Sections(ctx context.Context) ([]projection.Section, error)
	Search(ctx context.Context, input string) ([]projection.Section, error)
	Rename(ctx context.Context, id channel.ID, name string) (channel.Action, error)
}

type SidebarService struct {
	log       *slog.Logger
	channels  repositories.IChannelRepository
	gateways  repositories.IGatewayRepository
	index     ChannelIndex
	separator string
	defaults  channel.Defaults
	self      channel.PersonaID
}

func NewSidebarService(
	log *slog.Logger,
	channels repositories.IChannelRepository,
	gateways repositories.IGatewayRepository,
	index ChannelIndex,
	separator string,
	defaults channel.Defaults,
	self channel.PersonaID,
) *SidebarService {
	return &SidebarService{
		log:       log,
		channels:  channels,
		gateways:  gateways,
		index:     index,
		separator: separator,
		defaults:  defaults,
		self:      self,
	}
}

// Sections rebuilds the sidebar from the store and refreshes the search index.
func (s *SidebarService) Sections(ctx context.Context) ([]projection.Section, error) {
	records, err := s.channels.List()
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	categories, err := s.gateways.Categories()
	if err != nil {
		return nil, fmt.Errorf("list gateway categories: %w", err)
	}

	infos := lo.Map(records, func(r repositories.ChannelRecord, _ int) contract.ChannelInfo {
		return contract.ChannelInfo{Channel: lo.ToPtr(r.Channel(s.self)), Thread: r.Thread()}
	})
	sections := projection.NewSidebar(s.separator, s.defaults, categories).Build(infos)

	if err = s.index.Index(ctx, sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// Search filters the sidebar with the quick search input, keeping sidebar order.
func (s *SidebarService) Search(ctx context.Context, input string) ([]projection.Section, error) {
	sections, err := s.Sections(ctx)
	if err != nil {
		return nil, err
	}
	query := domainsearch.NewSearchQuery(input)
	ids, err := s.index.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	s.log.Debug("Sidebar search", "input", input, "matches", len(ids))
	return projection.Filter(sections, ids), nil
}

// Rename runs the topbar rename flow against the store.
func (s *SidebarService) Rename(ctx context.Context, id channel.ID, name string) (channel.Action, error) {
	record, err := s.channels.Get(id)
	if err != nil {
		return channel.Action{}, err
	}
	topbar := NewThreadViewTopbar(s.log, s.channels, record.Channel(s.self), record.Thread())
	topbar.StartEditing()
	topbar.SetPendingName(name)
	return topbar.ApplyThreadRename(ctx)
}
