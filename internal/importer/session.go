package importer

// session.go tracks active import sessions. A session is created when a
// CSV is ingested or the user starts manual entry on a console page,
// owns its draft batch exclusively, and is discarded on cancel or on a
// successful submission. Idle sessions are swept after a TTL so an
// abandoned browser tab does not pin memory forever.

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vgarchive/server/internal/catalog"
)

// Session is one active import: a draft batch scoped to a console, plus
// the violations from the most recent failed submit for re-rendering.
type Session struct {
	ID          string
	ConsoleSlug string

	mu         sync.Mutex
	batch      *DraftBatch
	violations catalog.BatchViolations
	touched    time.Time
}

// Update runs fn with exclusive access to the session's batch and marks
// the session as recently used.
func (s *Session) Update(fn func(*DraftBatch)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = time.Now()
	fn(s.batch)
}

// Drafts returns a snapshot of the session's batch.
func (s *Session) Drafts() []catalog.DraftGame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batch.Snapshot()
}

// Violations returns the violations recorded by the last failed submit.
func (s *Session) Violations() catalog.BatchViolations {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.violations
}

func (s *Session) setViolations(v catalog.BatchViolations) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.violations = v
}

// StartSession registers a new import session seeded with the given
// drafts. Manual entry starts with nil and grows through AddBlank.
func (s *Service) StartSession(consoleSlug string, drafts []catalog.DraftGame) *Session {
	session := &Session{
		ID:          uuid.New().String(),
		ConsoleSlug: consoleSlug,
		batch:       NewBatch(drafts),
		touched:     time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Session looks up an active session by ID.
func (s *Service) Session(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Cancel discards a session and its draft batch unconditionally.
// Remote calls already in flight are not interrupted.
func (s *Service) Cancel(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// sweep drops sessions idle past the TTL. Runs until stop is closed.
func (s *Service) sweep(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.sessionTTL)
			s.mu.Lock()
			for id, session := range s.sessions {
				session.mu.Lock()
				idle := session.touched.Before(cutoff)
				session.mu.Unlock()
				if idle {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
