package channel

import (
	"strings"

	"github.com/samber/lo"
)

// DisplayName computes the name shown for a channel. First matching rule wins:
//   - chat with a correspondent: the custom name, else the correspondent member name
//   - gateway: the thread name
//   - group without thread name: member names joined by separator
//   - anything else: the thread name
//
// Nothing is computed without a thread.
func DisplayName(c Channel, t *Thread, separator string) string {
	if t == nil {
		return ""
	}
	if c.Type == TypeChat && c.Correspondent != nil {
		if c.CustomName != "" {
			return c.CustomName
		}
		return t.MemberName(*c.Correspondent)
	}
	if c.Type == TypeGateway {
		return t.Name
	}
	if c.Type == TypeGroup && t.Name == "" {
		names := lo.FilterMap(c.Members, func(m Member, _ int) (string, bool) {
			if m.Persona == nil {
				return "", false
			}
			return t.MemberName(*m.Persona), true
		})
		return strings.Join(names, separator)
	}
	return t.Name
}

// Correspondent clears the correspondent of gateway channels, which would
// otherwise resolve to the current user. Other types keep hostDefault.
func Correspondent(channelType Type, hostDefault *Persona) *Persona {
	if channelType == TypeGateway {
		return nil
	}
	return hostDefault
}

// DefaultCorrespondent is the correspondent of a chat: the first other member,
// or self when self is alone in it.
func DefaultCorrespondent(c Channel, self PersonaID) *Persona {
	if c.Type != TypeChat {
		return nil
	}
	personas := lo.FilterMap(c.Members, func(m Member, _ int) (*Persona, bool) {
		return m.Persona, m.Persona != nil
	})
	if other, ok := lo.Find(personas, func(p *Persona) bool { return p.ID != self }); ok {
		return other
	}
	if len(personas) == 1 {
		return personas[0]
	}
	return nil
}
