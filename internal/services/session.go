package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated customer login
type Session struct {
	ID            uuid.UUID
	AccountNumber int
	StartedAt     time.Time
}

// AdminSession is an authenticated administrator console
type AdminSession struct {
	ID        uuid.UUID
	StartedAt time.Time
}

// sessionRegistry tracks the live sessions of one kind
type sessionRegistry[T any] struct {
	mu   sync.Mutex
	live map[uuid.UUID]*T
}

func newSessionRegistry[T any]() *sessionRegistry[T] {
	return &sessionRegistry[T]{live: make(map[uuid.UUID]*T)}
}

func (r *sessionRegistry[T]) add(id uuid.UUID, s *T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live[id] = s
}

func (r *sessionRegistry[T]) remove(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.live[id]
	delete(r.live, id)
	return ok
}

func (r *sessionRegistry[T]) has(id uuid.UUID, s *T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live[id] == s
}
