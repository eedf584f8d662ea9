package telegram

import (
	"sync"

	"rental-planner/internal/advisor"
	"rental-planner/internal/seating"
)

// Session is the planning state of one chat. It lives in memory only and is
// lost on restart.
type Session struct {
	GuestCount int
	Style      seating.TableStyle
	Location   string
	InFlight   bool
	LastAdvice *advisor.Advice
}

func newSession() *Session {
	return &Session{
		GuestCount: seating.DefaultGuestCount,
		Style:      seating.DefaultStyle,
	}
}

// SessionStore holds per-chat sessions.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// Get returns a copy of the chat's session, creating the default one.
func (s *SessionStore) Get(chatID int64) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.get(chatID)
}

// Update applies fn to the chat's session under the store lock.
func (s *SessionStore) Update(chatID int64, fn func(*Session)) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(chatID)
	fn(sess)
	return *sess
}

// TryBegin marks an advice request as in flight. It returns false when the
// chat already has one running.
func (s *SessionStore) TryBegin(chatID int64) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(chatID)
	if sess.InFlight {
		return *sess, false
	}
	sess.InFlight = true
	return *sess, true
}

// Finish clears the in-flight flag and stores advice when it is non-nil.
func (s *SessionStore) Finish(chatID int64, advice *advisor.Advice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(chatID)
	sess.InFlight = false
	if advice != nil {
		sess.LastAdvice = advice
	}
}

func (s *SessionStore) get(chatID int64) *Session {
	sess, ok := s.sessions[chatID]
	if !ok {
		sess = newSession()
		s.sessions[chatID] = sess
	}
	return sess
}
