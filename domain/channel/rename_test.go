package channel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenameRequest(t *testing.T) {
	tests := []struct {
		name       string
		typ        Type
		pending    string
		threadName string
		customName string
		expected   Action
	}{
		{"Chat sets a new custom name", TypeChat, "Boss", "Alice, Me", "", Action{ActionSetCustomName, "Boss"}},
		{"Chat clears the custom name", TypeChat, "", "Alice, Me", "Boss", Action{ActionSetCustomName, ""}},
		{"Chat with unchanged custom name does nothing", TypeChat, "Boss", "Alice, Me", "Boss", Action{Kind: ActionNone}},
		{"Chat ignores the thread name", TypeChat, "Alice, Me", "Alice, Me", "", Action{ActionSetCustomName, "Alice, Me"}},
		{"Gateway renames the thread", TypeGateway, "Customer", "+33 6", "", Action{ActionRenameThread, "Customer"}},
		{"Gateway rejects an empty name", TypeGateway, "", "+33 6", "", Action{Kind: ActionNone}},
		{"Gateway with unchanged name does nothing", TypeGateway, "+33 6", "+33 6", "", Action{Kind: ActionNone}},
		{"Channel renames the thread", TypeChannel, "New Name", "Old Name", "", Action{ActionRenameThread, "New Name"}},
		{"Channel rejects an empty name", TypeChannel, "", "Old Name", "", Action{Kind: ActionNone}},
		{"Group renames the thread", TypeGroup, "Team X", "", "", Action{ActionRenameThread, "Team X"}},
		{"Group accepts an empty name", TypeGroup, "", "Old Name", "", Action{ActionRenameThread, ""}},
		{"Group with unchanged name does nothing", TypeGroup, "Team X", "Team X", "", Action{Kind: ActionNone}},
		{"Unknown type does nothing", Type("livechat"), "x", "y", "z", Action{Kind: ActionNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, RenameRequest(tt.typ, tt.pending, tt.threadName, tt.customName))
		})
	}
}

type recordingMutator struct {
	renamed     []string
	customNames []string
	err         error
}

func (r *recordingMutator) Rename(_ context.Context, _ ID, name string) error {
	r.renamed = append(r.renamed, name)
	return r.err
}

func (r *recordingMutator) SetCustomName(_ context.Context, _ ID, name string) error {
	r.customNames = append(r.customNames, name)
	return r.err
}

func TestAction_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("Exactly one mutation per action", func(t *testing.T) {
		req := require.New(t)
		m := &recordingMutator{}

		req.NoError(Action{Kind: ActionRenameThread, Name: "general"}.Apply(ctx, m, 1))
		req.NoError(Action{Kind: ActionSetCustomName, Name: "Boss"}.Apply(ctx, m, 2))
		req.NoError(Action{Kind: ActionNone}.Apply(ctx, m, 3))

		req.Equal([]string{"general"}, m.renamed)
		req.Equal([]string{"Boss"}, m.customNames)
	})

	t.Run("Mutator errors are wrapped", func(t *testing.T) {
		req := require.New(t)
		boom := errors.New("boom")
		m := &recordingMutator{err: boom}

		err := Action{Kind: ActionRenameThread, Name: "x"}.Apply(ctx, m, 4)
		req.ErrorIs(err, boom)
		req.Contains(err.Error(), "rename-thread on channel 4")
	})
}
