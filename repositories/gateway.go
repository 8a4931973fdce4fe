package repositories

import (
	"chat-gateway/domain/channel"
	"chat-gateway/errors"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const gatewayPrefix = "gateway:"

type IGatewayRepository interface {
	Save(gateway Gateway) error
	Get(id channel.GatewayID) (Gateway, error)
	Categories() ([]channel.Category, error)
}

type GatewayRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewGatewayRepository(db *badger.DB, log *slog.Logger) *GatewayRepository {
	return &GatewayRepository{db: db, log: log}
}

// Gateway is an external messaging integration (whatsapp, telegram, ...).
type Gateway struct {
	ID   channel.GatewayID `json:"id" validate:"required,gt=0"`
	Name string            `json:"name" validate:"required,max=255"`
	Kind string            `json:"kind" validate:"required,alphanum"`
}

func (g GatewayRepository) Save(gateway Gateway) error {
	if err := validate.Struct(gateway); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidGateway, err)
	}
	bytes, err := json.Marshal(gateway)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return g.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gatewayKey(gateway.ID), bytes)
	})
}

func (g GatewayRepository) Get(id channel.GatewayID) (Gateway, error) {
	var gateway Gateway
	err := g.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gatewayKey(id))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %d", errors.ErrGatewayNotFound, id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &gateway)
		})
	})
	return gateway, err
}

// Categories returns one sidebar category per gateway, in gateway id order.
func (g GatewayRepository) Categories() ([]channel.Category, error) {
	var gateways []Gateway
	err := g.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(gatewayPrefix)
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var gateway Gateway
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &gateway)
			}); err != nil {
				return err
			}
			gateways = append(gateways, gateway)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	g.log.Debug("Gateway categories loaded", "count", len(gateways))
	return lo.Map(gateways, func(gw Gateway, _ int) channel.Category {
		return channel.Category{
			ID:      fmt.Sprintf("gateway_%d", gw.ID),
			Name:    gw.Name,
			Gateway: lo.ToPtr(gw.ID),
		}
	}), nil
}

func gatewayKey(id channel.GatewayID) []byte {
	return []byte(fmt.Sprintf("%s%019d", gatewayPrefix, id))
}
