package app

import (
	"sync"

	"eventhub/internal/clock"
	"eventhub/internal/domain"
	"eventhub/internal/storage/memory"
)

// Session is one user's working state: their event collection and their
// event-creation wizard. Both are owned exclusively by the session and
// vanish when it ends.
type Session struct {
	mu     sync.Mutex
	events *memory.EventStore
	wizard *Wizard
}

func newSession(clk clock.Clock) *Session {
	return &Session{
		events: memory.NewEventStore(),
		wizard: NewWizard(clk),
	}
}

// Events returns the session's event store.
func (s *Session) Events() *memory.EventStore {
	return s.events
}

// WizardState returns the wizard's current stage and a copy of the draft.
func (s *Session) WizardState() (Stage, Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.Stage(), s.wizard.Draft()
}

func (s *Session) Advance() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizard.Advance()
	return s.wizard.Stage()
}

func (s *Session) Retreat() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizard.Retreat()
	return s.wizard.Stage()
}

func (s *Session) UpdateDraft(u DraftUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.Update(u)
}

func (s *Session) AddInvitee(name, email string) (domain.Invitee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.AddInvitee(name, email)
}

func (s *Session) RemoveInvitee(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizard.RemoveInvitee(id)
}

func (s *Session) AddImages(images ...domain.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizard.AddImages(images...)
}

// CommitDraft builds the event from the wizard draft and inserts it at
// the front of the session's collection.
func (s *Session) CommitDraft(organizer string) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.wizard.Commit(organizer)
	if err != nil {
		return domain.Event{}, err
	}
	if err := s.events.Create(event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

// SessionManager hands out one session per user, created lazily on
// first use and dropped on logout.
type SessionManager struct {
	clock clock.Clock
	seed  func(*memory.EventStore, clock.Clock)

	mu       sync.Mutex
	sessions map[string]*Session
}

// SessionOption configures a SessionManager.
type SessionOption func(*SessionManager)

// WithSeed runs the given function against every freshly created
// session's store (demo data for new logins).
func WithSeed(seed func(*memory.EventStore, clock.Clock)) SessionOption {
	return func(m *SessionManager) {
		m.seed = seed
	}
}

func NewSessionManager(clk clock.Clock, opts ...SessionOption) *SessionManager {
	m := &SessionManager{
		clock:    clk,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the user's session, creating it if needed.
func (m *SessionManager) Get(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[userID]; ok {
		return session
	}
	session := newSession(m.clock)
	if m.seed != nil {
		m.seed(session.events, m.clock)
	}
	m.sessions[userID] = session
	return session
}

// End discards the user's session and everything it owns.
func (m *SessionManager) End(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
