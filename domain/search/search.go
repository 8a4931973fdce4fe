package search

import (
	"strconv"
	"strings"
)

const defaultLimit = 20

// Query is the parsed sidebar quick search input.
type Query struct {
	RawInput string // what the user typed
	Terms    []string
	Category string // restricts results to one sidebar category
	Limit    int
}

// NewSearchQuery parses a raw input with optional flags.
// Example: wha sales --category gateway_1 --limit 5
func NewSearchQuery(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    defaultLimit,
	}

	parts := strings.Fields(input)
	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "category":
				query.Category = val
			case "limit":
				if limit, err := strconv.Atoi(val); err == nil && limit > 0 {
					query.Limit = limit
				}
			}
			i++
			continue
		}
		query.Terms = append(query.Terms, strings.ToLower(part))
	}
	return query
}

func (q *Query) Empty() bool {
	return len(q.Terms) == 0
}
