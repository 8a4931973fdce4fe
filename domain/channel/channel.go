// Package channel contains the naming rules of chat channels.
// Every function here is pure: callers own the data and perform mutations.
package channel

type Type string

const (
	TypeChat    Type = "chat"
	TypeGroup   Type = "group"
	TypeChannel Type = "channel"
	TypeGateway Type = "gateway"
)

// Known reports whether the type is one of the four channel types.
// The empty type means the channel info has not been fetched yet.
func (t Type) Known() bool {
	switch t {
	case TypeChat, TypeGroup, TypeChannel, TypeGateway:
		return true
	default:
		return false
	}
}

type ID int

type PersonaID string

type GatewayID int

// Persona is the identity behind a member, only used as a lookup key.
type Persona struct {
	ID   PersonaID
	Name string
}

type Member struct {
	ID      int
	Persona *Persona
}

type Channel struct {
	ID            ID
	Type          Type
	CustomName    string
	Correspondent *Persona
	Members       []Member
}

// Thread is the message-bearing side of a channel.
type Thread struct {
	ID        ID
	Name      string
	Gateway   *GatewayID
	Nicknames map[PersonaID]string
}

// MemberName returns the nickname of the persona in this thread, or its own name.
func (t Thread) MemberName(p Persona) string {
	if nickname, ok := t.Nicknames[p.ID]; ok && nickname != "" {
		return nickname
	}
	return p.Name
}

// Category is a sidebar bucket. Gateway categories carry the gateway they group.
type Category struct {
	ID      string
	Name    string
	Gateway *GatewayID
}
