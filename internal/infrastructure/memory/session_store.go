// Package memory implementa el almacén de sesiones del asistente en memoria
// del proceso. Las sesiones son efímeras por contrato: un reinicio del
// servicio las descarta y el operador empieza el alta de nuevo.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Altas-api/internal/application/alta"
)

var _ alta.SessionStore = (*SessionStore)(nil)

type entry struct {
	session   alta.Session
	expiresAt time.Time
}

// SessionStore almacén en memoria con TTL por inactividad: cada mutación
// renueva la caducidad. Una sesión caducada se comporta como inexistente.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	stop    chan struct{}
}

// NewSessionStore construye el almacén y arranca la limpieza periódica de
// sesiones caducadas.
func NewSessionStore(ttl time.Duration) *SessionStore {
	s := &SessionStore{
		entries: make(map[string]*entry),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Put guarda la sesión con TTL completo.
func (s *SessionStore) Put(_ context.Context, sess *alta.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sess.ID] = &entry{session: *sess, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

// Get devuelve una copia de la sesión; (nil, nil) si no existe o caducó.
func (s *SessionStore) Get(_ context.Context, id string) (*alta.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.live(id)
	if e == nil {
		return nil, nil
	}
	cp := e.session
	return &cp, nil
}

// Update aplica fn de forma atómica sobre la sesión, renueva el TTL y
// devuelve el estado resultante. Si fn falla la sesión queda como estaba.
func (s *SessionStore) Update(_ context.Context, id string, fn func(sess *alta.Session) error) (*alta.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.live(id)
	if e == nil {
		return nil, nil
	}
	cp := e.session
	if err := fn(&cp); err != nil {
		return nil, err
	}
	e.session = cp
	e.expiresAt = time.Now().Add(s.ttl)
	out := cp
	return &out, nil
}

// Delete descarta la sesión. Borrar una inexistente no es un error.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// Close detiene la limpieza periódica.
func (s *SessionStore) Close() {
	close(s.stop)
}

// live devuelve la entrada vigente o nil, purgando la caducada. Llamar con el
// mutex tomado.
func (s *SessionStore) live(id string) *entry {
	e, ok := s.entries[id]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, id)
		return nil
	}
	return e
}

func (s *SessionStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, e := range s.entries {
				if now.After(e.expiresAt) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
