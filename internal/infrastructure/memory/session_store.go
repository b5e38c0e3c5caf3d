// Package memory guarda las sesiones de facturación en memoria del proceso.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/facturador/internal/application/billing"
	"github.com/jhoicas/facturador/internal/domain"
)

// SessionStore implementa billing.SessionStore con un mapa protegido por mutex.
// Las sesiones sin actividad durante ttl caducan; maxSessions limita las vivas.
type SessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*billing.Session
	maxSessions int
	ttl         time.Duration
	now         func() time.Time
}

// NewSessionStore construye el store. maxSessions <= 0 o ttl <= 0 desactivan el límite correspondiente.
func NewSessionStore(maxSessions int, ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*billing.Session),
		maxSessions: maxSessions,
		ttl:         ttl,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (st *SessionStore) WithClock(now func() time.Time) *SessionStore {
	st.now = now
	return st
}

// Save guarda o reemplaza la sesión.
func (st *SessionStore) Save(s *billing.Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := st.now()
	if _, ok := st.sessions[s.ID]; !ok {
		st.purgeLocked(now)
		if st.maxSessions > 0 && len(st.sessions) >= st.maxSessions {
			return domain.ErrSessionLimit
		}
	}
	s.LastSeen = now
	st.sessions[s.ID] = s
	return nil
}

// Get devuelve la sesión y renueva su caducidad.
func (st *SessionStore) Get(id string) (*billing.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := st.now()
	s, ok := st.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if st.expired(s, now) {
		delete(st.sessions, id)
		return nil, domain.ErrNotFound
	}
	s.LastSeen = now
	return s, nil
}

// Delete elimina la sesión.
func (st *SessionStore) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Len número de sesiones guardadas, incluidas las caducadas aún no purgadas.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// PurgeExpired elimina las sesiones caducadas y devuelve cuántas borró.
func (st *SessionStore) PurgeExpired() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.purgeLocked(st.now())
}

func (st *SessionStore) purgeLocked(now time.Time) int {
	n := 0
	for id, s := range st.sessions {
		if st.expired(s, now) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

func (st *SessionStore) expired(s *billing.Session, now time.Time) bool {
	return st.ttl > 0 && now.Sub(s.LastSeen) > st.ttl
}
