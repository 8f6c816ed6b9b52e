package controller

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Registry holds live controller sessions keyed by id.
type Registry struct {
	opts Options
	ttl  time.Duration

	mu       sync.Mutex
	sessions map[string]*Controller
}

// NewRegistry creates sessions with opts. Sessions idle for longer than ttl
// are dropped by ExpireIdle; ttl <= 0 keeps them forever.
func NewRegistry(opts Options, ttl time.Duration) *Registry {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Registry{
		opts:     opts,
		ttl:      ttl,
		sessions: make(map[string]*Controller),
	}
}

func (r *Registry) Create() *Controller {
	c := New(uuid.NewString(), r.opts)
	r.mu.Lock()
	r.sessions[c.ID()] = c
	r.mu.Unlock()
	return c
}

func (r *Registry) Get(id string) (*Controller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return c, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// ExpireIdle drops sessions whose last command is older than the ttl and
// returns how many were removed.
func (r *Registry) ExpireIdle(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	expired := 0
	for id, c := range r.sessions {
		if now.Sub(c.IdleSince()) > r.ttl {
			delete(r.sessions, id)
			expired++
		}
	}
	return expired
}
