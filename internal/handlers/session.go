package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/csg33k/employee-manager/internal/shell"
)

const sessionCookie = "employee_manager_session"

// sessions keeps one shell per browser, keyed by cookie. Entries idle for
// longer than ttl are dropped whenever a new session starts.
type sessions struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	newShell func(id string) *shell.Shell
	items    map[string]*session
}

type session struct {
	shell    *shell.Shell
	lastSeen time.Time
}

func newSessions(ttl time.Duration, newShell func(id string) *shell.Shell) *sessions {
	return &sessions{
		ttl:      ttl,
		now:      time.Now,
		newShell: newShell,
		items:    make(map[string]*session),
	}
}

// lookup returns the caller's shell, starting a session if it has none.
func (s *sessions) lookup(w http.ResponseWriter, r *http.Request) *shell.Shell {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if c, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := s.items[c.Value]; ok && now.Sub(sess.lastSeen) < s.ttl {
			sess.lastSeen = now
			return sess.shell
		}
	}
	return s.start(w, now, uuid.NewString())
}

// mount gives the caller a fresh shell, reusing its session id if it has one.
// A full page load starts over from the initial state.
func (s *sessions) mount(w http.ResponseWriter, r *http.Request) *shell.Shell {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, ok := s.items[c.Value]; ok {
			id = c.Value
		}
	}
	return s.start(w, s.now(), id)
}

func (s *sessions) start(w http.ResponseWriter, now time.Time, id string) *shell.Shell {
	s.prune(now)
	sess := &session{shell: s.newShell(id), lastSeen: now}
	s.items[id] = sess
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess.shell
}

func (s *sessions) prune(now time.Time) {
	for id, sess := range s.items {
		if now.Sub(sess.lastSeen) >= s.ttl {
			delete(s.items, id)
		}
	}
}

func (s *sessions) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
