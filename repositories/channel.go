package repositories

import (
	"chat-gateway/contract"
	"chat-gateway/domain/channel"
	"chat-gateway/errors"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const channelPrefix = "channel:"

var validate = validator.New()

type IChannelRepository interface {
	Save(record ChannelRecord) error
	Get(id channel.ID) (ChannelRecord, error)
	List() ([]ChannelRecord, error)
	Rename(ctx context.Context, id channel.ID, name string) error
	SetCustomName(ctx context.Context, id channel.ID, name string) error
	FetchChannelInfo(ctx context.Context, ids []channel.ID) ([]contract.ChannelInfo, error)
}

type ChannelRepository struct {
	db   *badger.DB
	log  *slog.Logger
	self channel.PersonaID
}

// NewChannelRepository needs the persona of the local user to resolve chat correspondents.
func NewChannelRepository(db *badger.DB, log *slog.Logger, self channel.PersonaID) *ChannelRepository {
	return &ChannelRepository{db: db, log: log, self: self}
}

// ChannelRecord is the stored form of a channel and its thread.
type ChannelRecord struct {
	ID         channel.ID                   `json:"id" validate:"required,gt=0"`
	Type       channel.Type                 `json:"type" validate:"required,oneof=chat group channel gateway"`
	CustomName string                       `json:"custom_name,omitempty" validate:"max=255"`
	ThreadName string                       `json:"thread_name" validate:"max=255"`
	Gateway    *channel.GatewayID           `json:"gateway,omitempty" validate:"required_if=Type gateway"`
	Members    []MemberRecord               `json:"members,omitempty" validate:"dive"`
	Nicknames  map[channel.PersonaID]string `json:"nicknames,omitempty"`
}

type MemberRecord struct {
	ID          int               `json:"id" validate:"required"`
	PersonaID   channel.PersonaID `json:"persona_id,omitempty"`
	PersonaName string            `json:"persona_name,omitempty"`
}

// Channel rebuilds the domain channel; the correspondent goes through the naming policy.
func (r ChannelRecord) Channel(self channel.PersonaID) channel.Channel {
	c := channel.Channel{
		ID:         r.ID,
		Type:       r.Type,
		CustomName: r.CustomName,
		Members: lo.Map(r.Members, func(m MemberRecord, _ int) channel.Member {
			member := channel.Member{ID: m.ID}
			if m.PersonaID != "" {
				member.Persona = &channel.Persona{ID: m.PersonaID, Name: m.PersonaName}
			}
			return member
		}),
	}
	c.Correspondent = channel.Correspondent(c.Type, channel.DefaultCorrespondent(c, self))
	return c
}

func (r ChannelRecord) Thread() *channel.Thread {
	return &channel.Thread{
		ID:        r.ID,
		Name:      r.ThreadName,
		Gateway:   r.Gateway,
		Nicknames: r.Nicknames,
	}
}

// Save validates then upserts the record under "channel:{id}".
// The id is zero padded so a prefix scan returns channels in id order.
func (c ChannelRepository) Save(record ChannelRecord) error {
	if err := validate.Struct(record); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidChannel, err)
	}
	bytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(channelKey(record.ID), bytes)
	})
}

func (c ChannelRepository) Get(id channel.ID) (ChannelRecord, error) {
	var record ChannelRecord
	err := c.db.View(func(txn *badger.Txn) error {
		var err error
		record, err = getChannel(txn, id)
		return err
	})
	return record, err
}

func (c ChannelRepository) List() ([]ChannelRecord, error) {
	var records []ChannelRecord
	err := c.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(channelPrefix)
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var record ChannelRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Rename changes the thread name. Emptiness rules belong to channel.RenameRequest.
func (c ChannelRepository) Rename(_ context.Context, id channel.ID, name string) error {
	return c.update(id, func(record *ChannelRecord) {
		record.ThreadName = name
	})
}

func (c ChannelRepository) SetCustomName(_ context.Context, id channel.ID, name string) error {
	return c.update(id, func(record *ChannelRecord) {
		record.CustomName = name
	})
}

// FetchChannelInfo answers in the order of ids. Unknown ids get an entry without channel.
func (c ChannelRepository) FetchChannelInfo(ctx context.Context, ids []channel.ID) ([]contract.ChannelInfo, error) {
	infos := make([]contract.ChannelInfo, 0, len(ids))
	err := c.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, err := getChannel(txn, id)
			if stderrors.Is(err, errors.ErrChannelNotFound) {
				c.log.Debug("Channel info not found", "channel", id)
				infos = append(infos, contract.ChannelInfo{})
				continue
			}
			if err != nil {
				return err
			}
			infos = append(infos, contract.ChannelInfo{
				Channel: lo.ToPtr(record.Channel(c.self)),
				Thread:  record.Thread(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

func (c ChannelRepository) update(id channel.ID, mutate func(record *ChannelRecord)) error {
	return c.db.Update(func(txn *badger.Txn) error {
		record, err := getChannel(txn, id)
		if err != nil {
			return err
		}
		mutate(&record)
		if err = validate.Struct(record); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrInvalidChannel, err)
		}
		bytes, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		return txn.Set(channelKey(id), bytes)
	})
}

func getChannel(txn *badger.Txn, id channel.ID) (ChannelRecord, error) {
	var record ChannelRecord
	item, err := txn.Get(channelKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return record, fmt.Errorf("%w: %d", errors.ErrChannelNotFound, id)
	}
	if err != nil {
		return record, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &record)
	})
	return record, err
}

func channelKey(id channel.ID) []byte {
	return []byte(fmt.Sprintf("%s%019d", channelPrefix, id))
}
