package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vanshika/campusdraw/internal/notify"
	"github.com/vanshika/campusdraw/internal/service"
)

const (
	campusCookieName = "campusdraw_session"
	campusSessionTTL = 30 * time.Minute
)

// campusVisit is one visitor's campus form. The session outlives a single
// request so a failed draw keeps the previous path on screen.
type campusVisit struct {
	session *service.CampusSession
	alerts  *notify.Recorder
	seen    time.Time
}

// campusSessions keeps a campus session per visitor, keyed by a cookie.
type campusSessions struct {
	newSession func(n notify.Notifier) *service.CampusSession
	ttl        time.Duration
	now        func() time.Time

	mu     sync.Mutex
	visits map[string]*campusVisit
}

func newCampusSessions(newSession func(n notify.Notifier) *service.CampusSession) *campusSessions {
	return &campusSessions{
		newSession: newSession,
		ttl:        campusSessionTTL,
		now:        time.Now,
		visits:     make(map[string]*campusVisit),
	}
}

// visit returns the caller's session, creating one and setting the cookie
// when the request carries no live session. fresh reports a new session.
func (s *campusSessions) visit(w http.ResponseWriter, r *http.Request) (visit *campusVisit, fresh bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, v := range s.visits {
		if now.Sub(v.seen) > s.ttl {
			delete(s.visits, id)
		}
	}

	if cookie, err := r.Cookie(campusCookieName); err == nil {
		if v, ok := s.visits[cookie.Value]; ok {
			v.seen = now
			return v, false
		}
	}

	rec := notify.NewRecorder()
	v := &campusVisit{
		session: s.newSession(rec),
		alerts:  rec,
		seen:    now,
	}
	id := uuid.NewString()
	s.visits[id] = v

	http.SetCookie(w, &http.Cookie{
		Name:     campusCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl / time.Second),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return v, true
}

func (s *campusSessions) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visits)
}
