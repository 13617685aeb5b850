package api

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LizeLing/JSONVisualizer/pkg/jsontree"
)

// Document is one uploaded JSON document held in memory. Documents are never
// persisted; they expire after the configured TTL.
type Document struct {
	ID        string
	Name      string
	Size      int
	Nodes     int
	Value     jsontree.Value
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the document's TTL has elapsed at t.
func (d *Document) Expired(t time.Time) bool { return t.After(d.ExpiresAt) }

// Store is a mutex-guarded in-memory document store keyed by UUID.
type Store struct {
	ttl time.Duration
	now func() time.Time // test hook

	mu   sync.Mutex
	docs map[string]*Document
}

// NewStore creates an empty store whose documents expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:  ttl,
		now:  time.Now,
		docs: make(map[string]*Document),
	}
}

// Put stores a parsed document under a fresh id and returns its record.
func (s *Store) Put(name string, v jsontree.Value, size int) *Document {
	now := s.now()
	doc := &Document{
		ID:        uuid.NewString(),
		Name:      name,
		Size:      size,
		Nodes:     jsontree.Count(v),
		Value:     v,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
	return doc
}

// Get returns the document with the given id. Expired documents are removed
// and reported as absent.
func (s *Store) Get(id string) (*Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, false
	}
	if doc.Expired(s.now()) {
		delete(s.docs, id)
		return nil, false
	}
	return doc, true
}

// Delete removes the document with the given id, reporting whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.docs[id]
	delete(s.docs, id)
	return ok
}

// Len returns the number of stored documents, including any not yet swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// Cleanup removes expired documents and returns how many were dropped.
func (s *Store) Cleanup() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, doc := range s.docs {
		if doc.Expired(now) {
			delete(s.docs, id)
			removed++
		}
	}
	return removed
}

// CleanupLoop sweeps expired documents at the given interval until the
// context is canceled.
func (s *Store) CleanupLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}
