package repository

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lawai/consult-backend/internal/entity"
)

// SessionStore is the authoritative live store for interview sessions. The
// interview state machine runs entirely against it; the snapshot repository
// is only a durable shadow.
type SessionStore interface {
	Save(session *entity.Session)
	Get(id string) (*entity.Session, bool)
	Delete(id string)
}

var _ SessionStore = &SessionMemory{}

// SessionMemory keeps live sessions in an expiring in-process cache.
// Abandoned interviews age out after the TTL.
type SessionMemory struct {
	cache *gocache.Cache
}

func NewSessionMemory(ttl, cleanupInterval time.Duration) *SessionMemory {
	return &SessionMemory{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Save stores the session and refreshes its TTL.
func (s *SessionMemory) Save(session *entity.Session) {
	s.cache.Set(session.ID, session, gocache.DefaultExpiration)
}

func (s *SessionMemory) Get(id string) (*entity.Session, bool) {
	value, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	session, ok := value.(*entity.Session)
	return session, ok
}

func (s *SessionMemory) Delete(id string) {
	s.cache.Delete(id)
}
