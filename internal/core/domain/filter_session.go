package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionState - состояние панели фильтров
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionReady
	SessionSearching
	SessionDone
	SessionExpired
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionReady:
		return "ready"
	case SessionSearching:
		return "searching"
	case SessionDone:
		return "done"
	case SessionExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// FilterSelection - копия выбранных значений; nil означает "не выбрано"
type FilterSelection struct {
	City        *string
	MaxPrice    *int
	MinBedrooms *int
}

// Complete - выбраны ли все три фильтра
func (f FilterSelection) Complete() bool {
	return f.City != nil && f.MaxPrice != nil && f.MinBedrooms != nil
}

// FilterSession хранит выбор одного пользователя в рамках одной панели.
// Обработчики событий чат-платформы вызываются из разных горутин, поэтому поля под мьютексом.
type FilterSession struct {
	ID        uuid.UUID
	OwnerID   string
	ChannelID string
	CreatedAt time.Time

	mu        sync.Mutex
	selection FilterSelection
	state     SessionState
}

// NewFilterSession создает новую сессию в состоянии Idle
func NewFilterSession(ownerID, channelID string, now time.Time) *FilterSession {
	return &FilterSession{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		ChannelID: channelID,
		CreatedAt: now,
		state:     SessionIdle,
	}
}

// CheckOwner - управлять панелью может только тот, кто ее открыл.
// Пустой OwnerID отключает проверку.
func (s *FilterSession) CheckOwner(userID string) error {
	if s.OwnerID != "" && s.OwnerID != userID {
		return ErrNotSessionOwner
	}
	return nil
}

func (s *FilterSession) SetCity(city string) error {
	return s.update(func(sel *FilterSelection) { sel.City = &city })
}

func (s *FilterSession) SetMaxPrice(price int) error {
	return s.update(func(sel *FilterSelection) { sel.MaxPrice = &price })
}

func (s *FilterSession) SetMinBedrooms(n int) error {
	return s.update(func(sel *FilterSelection) { sel.MinBedrooms = &n })
}

func (s *FilterSession) update(apply func(*FilterSelection)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == SessionExpired {
		return ErrSessionExpired
	}
	apply(&s.selection)

	// идущий поиск уже забрал свои критерии, его состояние не трогаем
	if s.state == SessionSearching {
		return nil
	}
	if s.selection.Complete() {
		s.state = SessionReady
	} else {
		s.state = SessionIdle
	}
	return nil
}

// BeginSearch переводит сессию в Searching и возвращает критерии.
// Если какой-то фильтр не выбран, состояние не меняется.
func (s *FilterSession) BeginSearch() (SearchCriteria, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case SessionExpired:
		return SearchCriteria{}, ErrSessionExpired
	case SessionSearching:
		return SearchCriteria{}, ErrSearchInProgress
	}
	if !s.selection.Complete() {
		return SearchCriteria{}, ErrIncompleteFilters
	}

	s.state = SessionSearching
	return SearchCriteria{
		City:        *s.selection.City,
		MaxPrice:    *s.selection.MaxPrice,
		MinBedrooms: *s.selection.MinBedrooms,
	}, nil
}

// FinishSearch завершает поиск; после Done фильтры можно менять и искать снова
func (s *FilterSession) FinishSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == SessionSearching {
		s.state = SessionDone
	}
}

// Expire делает сессию инертной навсегда
func (s *FilterSession) Expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionExpired
}

func (s *FilterSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Selection возвращает копию текущего выбора
func (s *FilterSession) Selection() FilterSelection {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out FilterSelection
	if s.selection.City != nil {
		v := *s.selection.City
		out.City = &v
	}
	if s.selection.MaxPrice != nil {
		v := *s.selection.MaxPrice
		out.MaxPrice = &v
	}
	if s.selection.MinBedrooms != nil {
		v := *s.selection.MinBedrooms
		out.MinBedrooms = &v
	}
	return out
}
