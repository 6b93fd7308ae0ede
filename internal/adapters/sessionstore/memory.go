package sessionstore

import (
	"findhome-bot/internal/core/domain"
	"findhome-bot/internal/core/port"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	session  *domain.FilterSession
	timer    *time.Timer
	lastSeen time.Time
}

// MemorySessionStore держит сессии фильтров в памяти процесса.
// Каждая сессия истекает после timeout без взаимодействий.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
	timeout  time.Duration
	logger   port.LoggerPort
	now      func() time.Time
}

func NewMemorySessionStore(timeout time.Duration, logger port.LoggerPort) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[uuid.UUID]*entry),
		timeout:  timeout,
		logger:   logger.WithFields(port.Fields{"component": "MemorySessionStore"}),
		now:      time.Now,
	}
}

func (m *MemorySessionStore) Create(ownerID, channelID string) *domain.FilterSession {
	now := m.now()
	session := domain.NewFilterSession(ownerID, channelID, now)

	m.mu.Lock()
	defer m.mu.Unlock()

	id := session.ID
	m.sessions[id] = &entry{
		session:  session,
		lastSeen: now,
		timer:    time.AfterFunc(m.timeout, func() { m.expire(id) }),
	}
	return session
}

// Get возвращает живую сессию, окно неактивности не трогает
func (m *MemorySessionStore) Get(id uuid.UUID) (*domain.FilterSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.session, nil
}

// Touch сдвигает окно неактивности живой сессии
func (m *MemorySessionStore) Touch(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.lastSeen = m.now()
	e.timer.Reset(m.timeout)
	return nil
}

func (m *MemorySessionStore) lookup(id uuid.UUID) (*entry, error) {
	e, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if e.session.State() == domain.SessionExpired {
		return nil, domain.ErrSessionExpired
	}
	return e, nil
}

func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close гасит все таймеры и делает все сессии инертными
func (m *MemorySessionStore) Close() error {
	m.mu.Lock()
	entries := m.sessions
	m.sessions = make(map[uuid.UUID]*entry)
	m.mu.Unlock()

	for _, e := range entries {
		e.timer.Stop()
		e.session.Expire()
	}
	m.logger.Info("Session store closed", port.Fields{"dropped_sessions": len(entries)})
	return nil
}

func (m *MemorySessionStore) expire(id uuid.UUID) {
	m.mu.Lock()
	e, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return
	}
	// Touch успел продлить сессию, пока срабатывал старый таймер
	if m.now().Sub(e.lastSeen) < m.timeout {
		m.mu.Unlock()
		return
	}
	delete(m.sessions, id)
	m.mu.Unlock()

	e.session.Expire()
	m.logger.Debug("Filter session expired", port.Fields{
		"session_id": id.String(),
		"owner_id":   e.session.OwnerID,
		"age_ms":     m.now().Sub(e.session.CreatedAt).Milliseconds(),
	})
}
