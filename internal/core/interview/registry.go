package interview

import (
	"context"
	"errors"
	"sync"

	"github.com/neilberkman/talentscout/internal/core/models"
)

// ErrSessionNotFound is returned for an unknown or removed session id
var ErrSessionNotFound = errors.New("session not found")

// Registry keeps many independent sessions for servers. Turns on the same
// session are serialized; different sessions proceed in parallel.
type Registry struct {
	engine *Engine

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

type liveSession struct {
	mu      sync.Mutex
	session *models.Session
}

// NewRegistry creates an empty registry backed by engine
func NewRegistry(engine *Engine) *Registry {
	return &Registry{
		engine:   engine,
		sessions: make(map[string]*liveSession),
	}
}

// Create starts a session and returns its id and opening messages
func (r *Registry) Create() (string, []models.Message) {
	s := r.engine.Start()
	greeting := append([]models.Message(nil), s.Transcript...)

	r.mu.Lock()
	r.sessions[s.ID] = &liveSession{session: s}
	r.mu.Unlock()

	return s.ID, greeting
}

// Send handles one user message for session id
func (r *Registry) Send(ctx context.Context, id, text string) ([]models.Message, models.Snapshot, error) {
	live, err := r.lookup(id)
	if err != nil {
		return nil, models.Snapshot{}, err
	}

	live.mu.Lock()
	defer live.mu.Unlock()

	replies := r.engine.Handle(ctx, live.session, text)
	return replies, r.engine.Snapshot(live.session), nil
}

// Get returns the progress snapshot and a copy of the transcript
func (r *Registry) Get(id string) (models.Snapshot, []models.Message, error) {
	live, err := r.lookup(id)
	if err != nil {
		return models.Snapshot{}, nil, err
	}

	live.mu.Lock()
	defer live.mu.Unlock()

	transcript := append([]models.Message(nil), live.session.Transcript...)
	return r.engine.Snapshot(live.session), transcript, nil
}

// Remove forgets session id
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) lookup(id string) (*liveSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	live, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return live, nil
}
