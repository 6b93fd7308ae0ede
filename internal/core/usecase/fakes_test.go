package usecase

import (
	"context"
	"sync"
	"time"

	"findhome-bot/internal/core/domain"

	"github.com/google/uuid"
)

type memStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.FilterSession
	touches  map[uuid.UUID]int
}

func newMemStore() *memStore {
	return &memStore{
		sessions: make(map[uuid.UUID]*domain.FilterSession),
		touches:  make(map[uuid.UUID]int),
	}
}

func (m *memStore) Create(ownerID, channelID string) *domain.FilterSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := domain.NewFilterSession(ownerID, channelID, time.Now())
	m.sessions[s.ID] = s
	return s
}

func (m *memStore) Get(id uuid.UUID) (*domain.FilterSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.State() == domain.SessionExpired {
		return nil, domain.ErrSessionExpired
	}
	return s, nil
}

func (m *memStore) Touch(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	if s.State() == domain.SessionExpired {
		return domain.ErrSessionExpired
	}
	m.touches[id]++
	return nil
}

func (m *memStore) touchCount(id uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.touches[id]
}

func (m *memStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

type fakeFetcher struct {
	mu     sync.Mutex
	calls  []domain.SearchCriteria
	result domain.FetchResult
}

func (f *fakeFetcher) FetchListings(_ context.Context, criteria domain.SearchCriteria) domain.FetchResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, criteria)
	return f.result
}

// recordingResponder запоминает, что и с какой видимостью было отправлено
type recordingResponder struct {
	notices   []string
	announces []string
	cards     []domain.Card
	err       error
}

func (r *recordingResponder) Notice(_ context.Context, text string) error {
	r.notices = append(r.notices, text)
	return r.err
}

func (r *recordingResponder) Announce(_ context.Context, text string) error {
	r.announces = append(r.announces, text)
	return r.err
}

func (r *recordingResponder) SendCard(_ context.Context, card domain.Card) error {
	r.cards = append(r.cards, card)
	return r.err
}

type fakeEvents struct {
	events []domain.SearchPerformedEvent
	err    error
}

func (f *fakeEvents) PublishSearchPerformed(_ context.Context, event domain.SearchPerformedEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func testCatalog() domain.FilterCatalog {
	return domain.FilterCatalog{
		Cities: []string{"Toronto", "Mississauga", "Vancouver", "Ottawa", "Calgary"},
		PriceTiers: []domain.PriceTier{
			{Label: "$500,000", Value: 500000},
			{Label: "$750,000", Value: 750000},
			{Label: "$1,000,000", Value: 1000000},
			{Label: "$1,500,000", Value: 1500000},
		},
		Bedrooms: []int{1, 2, 3, 4, 5},
	}
}
