// File: services/session/memory_store.go
package session

import (
	"context"
	"time"

	"staycalc/models"

	"github.com/patrickmn/go-cache"
)

// MemoryStore is the process-local repository. Records are gone after a restart.
type MemoryStore struct {
	c   *cache.Cache
	ttl time.Duration
}

// NewMemoryStore keeps records for ttl after their last write; 0 never expires them.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = 2 * ttl
	}
	return &MemoryStore{c: cache.New(expiration, cleanup), ttl: expiration}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*models.BookingFields, error) {
	v, ok := s.c.Get(sessionID)
	if !ok {
		return &models.BookingFields{}, nil
	}
	// hand out a copy so callers cannot change the stored record in place
	fields := v.(models.BookingFields).Clone()
	return &fields, nil
}

func (s *MemoryStore) Put(_ context.Context, sessionID string, fields *models.BookingFields) error {
	s.c.Set(sessionID, fields.Clone(), s.ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.c.Delete(sessionID)
	return nil
}

// Len reports how many sessions are held.
func (s *MemoryStore) Len() int {
	return s.c.ItemCount()
}
