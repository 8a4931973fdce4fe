// Package search indexes sidebar entries in bluge for the quick search.
package search

import (
	"chat-gateway/domain/channel"
	domainsearch "chat-gateway/domain/search"
	"chat-gateway/errors"
	"chat-gateway/projection"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/analysis/analyzer"
)

const (
	fieldID       = "_id"
	fieldName     = "name"
	fieldCategory = "category"
	fieldType     = "type"
)

// nameAnalyzer is the analyzer bluge applies to text fields, so query terms
// are split and lower-cased exactly like indexed names.
var nameAnalyzer = analyzer.NewStandardAnalyzer()

type ChannelIndex struct {
	mu     sync.RWMutex
	writer *bluge.Writer
	log    *slog.Logger
	closed bool
}

func NewChannelIndex(writer *bluge.Writer, log *slog.Logger) *ChannelIndex {
	return &ChannelIndex{writer: writer, log: log}
}

// Index upserts every entry of the sections, keyed by channel id.
func (i *ChannelIndex) Index(ctx context.Context, sections []projection.Section) error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.closed {
		return errors.ErrIndexUnavailable
	}

	batch := bluge.NewBatch()
	count := 0
	for _, section := range sections {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, entry := range section.Entries {
			doc := bluge.NewDocument(strconv.Itoa(int(entry.ChannelID))).
				AddField(bluge.NewTextField(fieldName, entry.Name).StoreValue()).
				AddField(bluge.NewKeywordField(fieldCategory, section.Category.ID).StoreValue()).
				AddField(bluge.NewKeywordField(fieldType, string(entry.Type)))
			batch.Update(doc.ID(), doc)
			count++
		}
	}
	if err := i.writer.Batch(batch); err != nil {
		return fmt.Errorf("index batch failed: %w", err)
	}
	i.log.Debug("Sidebar entries indexed", "count", count)
	return nil
}

// Remove drops channels from the index.
func (i *ChannelIndex) Remove(ids ...channel.ID) error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.closed {
		return errors.ErrIndexUnavailable
	}

	batch := bluge.NewBatch()
	for _, id := range ids {
		batch.Delete(bluge.Identifier(strconv.Itoa(int(id))))
	}
	return i.writer.Batch(batch)
}

// Search returns the ids of channels whose display name has a word starting
// with every term of the query. An empty query matches everything.
func (i *ChannelIndex) Search(ctx context.Context, q *domainsearch.Query) ([]channel.ID, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.closed {
		return nil, errors.ErrIndexUnavailable
	}

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("index reader failed: %w", err)
	}
	defer func() { _ = reader.Close() }()

	matches, err := reader.Search(ctx, bluge.NewTopNSearch(q.Limit, toBlugeQuery(q)))
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	var ids []channel.ID
	match, err := matches.Next()
	for err == nil && match != nil {
		var id int
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field != fieldID {
				return true
			}
			id, err = strconv.Atoi(string(value))
			return false
		})
		if visitErr != nil {
			return nil, visitErr
		}
		if err != nil {
			return nil, fmt.Errorf("corrupted document id: %w", err)
		}
		ids = append(ids, channel.ID(id))
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i *ChannelIndex) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return nil
	}
	i.closed = true
	return i.writer.Close()
}

func toBlugeQuery(q *domainsearch.Query) bluge.Query {
	if q.Empty() && q.Category == "" {
		return bluge.NewMatchAllQuery()
	}
	query := bluge.NewBooleanQuery()
	clauses := 0
	for _, term := range q.Terms {
		// "+34" or "@customer" keep only their word tokens
		for _, token := range nameAnalyzer.Analyze([]byte(term)) {
			query.AddMust(bluge.NewPrefixQuery(string(token.Term)).SetField(fieldName))
			clauses++
		}
	}
	if q.Category != "" {
		query.AddMust(bluge.NewTermQuery(q.Category).SetField(fieldCategory))
		clauses++
	}
	if clauses == 0 {
		return bluge.NewMatchNoneQuery()
	}
	return query
}
