package repository

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gogotex/docstore/internal/document"
	"github.com/google/uuid"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
)

// Option configures a MemoryRepo.
type Option func(*MemoryRepo)

// WithIDGenerator overrides the generator used for documents saved without an id.
func WithIDGenerator(gen func() string) Option {
	return func(m *MemoryRepo) {
		if gen != nil {
			m.newID = gen
		}
	}
}

// WithClock overrides the time source used to stamp new documents.
func WithClock(now func() time.Time) Option {
	return func(m *MemoryRepo) {
		if now != nil {
			m.now = now
		}
	}
}

// MemoryRepo is a concurrency-safe in-memory document store. Stored values
// are treated as immutable: Save swaps in a fresh copy and readers only ever
// receive copies, so no caller observes a partially written record.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]document.Document
	newID func() string
	now   func() time.Time
}

func NewMemoryRepo(opts ...Option) *MemoryRepo {
	m := &MemoryRepo{
		store: make(map[string]document.Document),
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Save upserts doc. A blank id is replaced by a generated one. On update the
// existing creation time is kept and the incoming one is discarded; on insert
// the incoming creation time is used, or the current time when unset.
func (m *MemoryRepo) Save(doc *document.Document) (document.Document, error) {
	saved, _, err := m.Upsert(doc)
	return saved, err
}

// Upsert is Save that also reports whether the document was newly inserted.
func (m *MemoryRepo) Upsert(doc *document.Document) (document.Document, bool, error) {
	if doc == nil {
		return document.Document{}, false, fmt.Errorf("save: document is nil: %w", ErrInvalidArgument)
	}
	in := doc.Clone()
	if strings.TrimSpace(in.ID) == "" {
		in.ID = m.newID()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	rec := document.Document{
		ID:      in.ID,
		Title:   in.Title,
		Content: in.Content,
		Author:  in.Author,
		Created: in.Created,
	}
	existing, found := m.store[in.ID]
	if found {
		rec.Created = existing.Created
	} else if rec.Created.IsZero() {
		rec.Created = m.now()
	}
	m.store[rec.ID] = rec
	return rec.Clone(), !found, nil
}

func (m *MemoryRepo) FindByID(id string) (document.Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.store[id]; ok {
		return d.Clone(), true
	}
	return document.Document{}, false
}

// Search returns every stored document matching req, ordered by creation
// time and then id. The result is never nil.
func (m *MemoryRepo) Search(req document.SearchRequest) []document.Document {
	m.mu.RLock()
	out := make([]document.Document, 0, len(m.store))
	for _, d := range m.store {
		if req.Matches(d) {
			out = append(out, d.Clone())
		}
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Created.Equal(out[j].Created) {
			return out[i].Created.Before(out[j].Created)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
