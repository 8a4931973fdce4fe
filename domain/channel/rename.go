package channel

import (
	"context"
	"fmt"
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSetCustomName
	ActionRenameThread
)

func (k ActionKind) String() string {
	switch k {
	case ActionSetCustomName:
		return "set-custom-name"
	case ActionRenameThread:
		return "rename-thread"
	default:
		return "none"
	}
}

// Action is the single mutation a rename request resolves to.
type Action struct {
	Kind ActionKind
	Name string
}

// Mutator is implemented by whoever owns the thread records.
type Mutator interface {
	Rename(ctx context.Context, id ID, name string) error
	SetCustomName(ctx context.Context, id ID, name string) error
}

// RenameRequest decides which mutation a submitted name triggers.
// A group accepts an empty name, channel and gateway do not.
func RenameRequest(channelType Type, pending, threadName, customName string) Action {
	switch channelType {
	case TypeChat:
		if pending != customName {
			return Action{Kind: ActionSetCustomName, Name: pending}
		}
	case TypeGateway, TypeChannel:
		if pending != "" && pending != threadName {
			return Action{Kind: ActionRenameThread, Name: pending}
		}
	case TypeGroup:
		if pending != threadName {
			return Action{Kind: ActionRenameThread, Name: pending}
		}
	}
	return Action{Kind: ActionNone}
}

// Apply executes the action on the channel identified by id.
func (a Action) Apply(ctx context.Context, m Mutator, id ID) error {
	var err error
	switch a.Kind {
	case ActionSetCustomName:
		err = m.SetCustomName(ctx, id, a.Name)
	case ActionRenameThread:
		err = m.Rename(ctx, id, a.Name)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s on channel %d: %w", a.Kind, id, err)
	}
	return nil
}
