// Package drafts keeps the editor's autosaved graph per workflow name in a
// local badger database. Entries expire after a TTL.
package drafts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/RealZimboGuy/flowbuilder/internal/xjson"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/core"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
)

type Status string

const (
	StatusIdle  Status = "idle"
	StatusSaved Status = "saved"
	StatusError Status = "error"
)

const Version = 1

type Draft struct {
	Nodes     []domain.Node `json:"nodes"`
	Edges     []domain.Edge `json:"edges"`
	Timestamp time.Time     `json:"timestamp"`
	Version   int           `json:"version"`
}

func (d Draft) Graph() domain.Graph {
	return domain.Graph{Nodes: d.Nodes, Edges: d.Edges}
}

type BadgerStore struct {
	db     *badger.DB
	ttl    time.Duration
	clock  core.Clock
	logger *slog.Logger
}

// Open opens (or creates) the draft database in dir.
func Open(dir string, ttl time.Duration, clock core.Clock, logger *slog.Logger) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open drafts db %s: %w", dir, err)
	}
	return NewBadgerStore(db, ttl, clock, logger), nil
}

// OpenInMemory opens a draft store that lives only as long as the process.
func OpenInMemory(ttl time.Duration, clock core.Clock, logger *slog.Logger) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open in-memory drafts db: %w", err)
	}
	return NewBadgerStore(db, ttl, clock, logger), nil
}

func NewBadgerStore(db *badger.DB, ttl time.Duration, clock core.Clock, logger *slog.Logger) *BadgerStore {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = core.NewRealClock()
	}
	return &BadgerStore{
		db:     db,
		ttl:    ttl,
		clock:  clock,
		logger: logger.With("component", "draft-store"),
	}
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func draftKey(name string) []byte {
	return []byte("draft:" + name)
}

// Save writes the draft only when the graph is valid and has nodes. Anything
// else leaves the stored draft untouched and reports StatusIdle.
func (s *BadgerStore) Save(ctx context.Context, name string, g domain.Graph, valid bool) (Status, error) {
	if !valid || len(g.Nodes) == 0 {
		return StatusIdle, nil
	}

	draft := Draft{
		Nodes:     g.Nodes,
		Edges:     g.Edges,
		Timestamp: s.clock.Now().UTC(),
		Version:   Version,
	}
	if draft.Edges == nil {
		draft.Edges = []domain.Edge{}
	}
	data, err := xjson.Marshal(draft)
	if err != nil {
		return StatusError, fmt.Errorf("marshal draft %s: %w", name, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(draftKey(name), data)
		if s.ttl > 0 {
			entry = entry.WithTTL(s.ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to save draft", "name", name, "error", err)
		return StatusError, fmt.Errorf("store draft %s: %w", name, err)
	}

	s.logger.DebugContext(ctx, "saved draft", "name", name, "nodes", len(draft.Nodes), "edges", len(draft.Edges))
	return StatusSaved, nil
}

// Restore returns the stored draft, or (nil, nil) when there is none. An
// entry that no longer decodes is treated as missing.
func (s *BadgerStore) Restore(ctx context.Context, name string) (*Draft, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(draftKey(name))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load draft %s: %w", name, err)
	}

	var draft Draft
	if err := xjson.Unmarshal(data, &draft); err != nil {
		s.logger.WarnContext(ctx, "Failed to restore draft", "name", name, "error", err)
		return nil, nil
	}
	return &draft, nil
}

// Clear removes the draft. Clearing a missing draft is not an error.
func (s *BadgerStore) Clear(ctx context.Context, name string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(draftKey(name))
	})
	if err != nil {
		return fmt.Errorf("clear draft %s: %w", name, err)
	}
	s.logger.DebugContext(ctx, "cleared draft", "name", name)
	return nil
}

