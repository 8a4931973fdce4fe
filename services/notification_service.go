package services

import (
	"chat-gateway/contract"
	"chat-gateway/domain/channel"
	"chat-gateway/domain/notification"
	"chat-gateway/errors"
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

type INotificationService interface {
	HandleChannelMessage(ctx context.Context, msg notification.ChannelMessage) error
	Close()
}

// NotificationService guards channel messages coming from the bus: a message
// is only forwarded once its channel is known with a type.
type NotificationService struct {
	log          *slog.Logger
	registry     contract.IChannelRegistry
	fetcher      contract.ChannelInfoFetcher
	sink         contract.NotificationSink
	fetchTimeout time.Duration
	closed       atomic.Bool
}

func NewNotificationService(
	log *slog.Logger,
	registry contract.IChannelRegistry,
	fetcher contract.ChannelInfoFetcher,
	sink contract.NotificationSink,
	fetchTimeout time.Duration,
) *NotificationService {
	return &NotificationService{
		log:          log,
		registry:     registry,
		fetcher:      fetcher,
		sink:         sink,
		fetchTimeout: fetchTimeout,
	}
}

// HandleChannelMessage forwards msg to the sink. Channels unknown locally are
// fetched first; when that fails the message is dropped without error.
func (s *NotificationService) HandleChannelMessage(ctx context.Context, msg notification.ChannelMessage) error {
	c, _, ok := s.registry.Lookup(msg.ChannelID)
	if !ok || !c.Type.Known() {
		if err := s.fetch(ctx, msg); err != nil {
			s.log.Debug("Channel message dropped",
				"channel", msg.ChannelID,
				"message", msg.ID,
				"reason", err)
			return nil
		}
	}
	if err := s.sink.Deliver(ctx, msg); err != nil {
		return fmt.Errorf("deliver message %s: %w", msg.ID, err)
	}
	return nil
}

// Close marks the handler as destroyed. Lookups still in flight are discarded.
func (s *NotificationService) Close() {
	s.closed.Store(true)
}

func (s *NotificationService) fetch(ctx context.Context, msg notification.ChannelMessage) error {
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}
	infos, err := s.fetcher.FetchChannelInfo(ctx, []channel.ID{msg.ChannelID})
	if s.closed.Load() {
		return errors.ErrHandlerDestroyed
	}
	if err != nil {
		return err
	}
	if len(infos) == 0 || infos[0].Channel == nil {
		return errors.ErrEmptyChannelInfo
	}
	s.registry.Register(*infos[0].Channel, infos[0].Thread)
	return nil
}
