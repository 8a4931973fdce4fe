//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-gateway/domain/channel"
	"chat-gateway/domain/notification"
	"context"
	"reflect"
)

// ChannelInfo is what the host answers when asked about a channel it did not
// push yet. Channel is nil when the host does not know the id.
type ChannelInfo struct {
	Channel *channel.Channel
	Thread  *channel.Thread
}

// ChannelInfoFetcher asks the host for the data of channels unknown locally.
type ChannelInfoFetcher interface {
	FetchChannelInfo(ctx context.Context, ids []channel.ID) ([]ChannelInfo, error)
}

// NotificationSink receives the channel messages that passed the guard.
type NotificationSink interface {
	Deliver(ctx context.Context, n notification.ChannelMessage) error
}

// ThreadMutator owns renames. Only ever called with the outcome of channel.RenameRequest.
type ThreadMutator interface {
	Rename(ctx context.Context, id channel.ID, name string) error
	SetCustomName(ctx context.Context, id channel.ID, name string) error
}

type IChannelRegistry interface {
	Register(c channel.Channel, t *channel.Thread)
	Lookup(id channel.ID) (channel.Channel, *channel.Thread, bool)
	Forget(id channel.ID)
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Stop()
}

// Worker runs until ctx is done or its input is exhausted.
// Returning nil means finished, an error asks for a restart.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName returns the type name of the worker, for logs.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
