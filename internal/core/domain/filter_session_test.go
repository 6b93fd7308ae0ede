package domain

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillAll(t *testing.T, s *FilterSession) {
	t.Helper()
	require.NoError(t, s.SetCity("Toronto"))
	require.NoError(t, s.SetMaxPrice(750000))
	require.NoError(t, s.SetMinBedrooms(2))
}

func TestFilterSession_StateTransitions(t *testing.T) {
	s := NewFilterSession("owner", "chan", time.Now())
	assert.Equal(t, SessionIdle, s.State())

	require.NoError(t, s.SetMinBedrooms(2))
	require.NoError(t, s.SetCity("Toronto"))
	assert.Equal(t, SessionIdle, s.State(), "two of three fields")

	require.NoError(t, s.SetMaxPrice(750000))
	assert.Equal(t, SessionReady, s.State())

	criteria, err := s.BeginSearch()
	require.NoError(t, err)
	assert.Equal(t, SearchCriteria{City: "Toronto", MaxPrice: 750000, MinBedrooms: 2}, criteria)
	assert.Equal(t, SessionSearching, s.State())

	_, err = s.BeginSearch()
	assert.ErrorIs(t, err, ErrSearchInProgress)

	s.FinishSearch()
	assert.Equal(t, SessionDone, s.State())

	// после Done можно поменять фильтр и искать снова
	require.NoError(t, s.SetCity("Calgary"))
	assert.Equal(t, SessionReady, s.State())
	criteria, err = s.BeginSearch()
	require.NoError(t, err)
	assert.Equal(t, "Calgary", criteria.City)
}

func TestFilterSession_BeginSearchIncomplete(t *testing.T) {
	s := NewFilterSession("owner", "chan", time.Now())

	_, err := s.BeginSearch()
	assert.ErrorIs(t, err, ErrIncompleteFilters)
	assert.Equal(t, SessionIdle, s.State())

	require.NoError(t, s.SetCity("Toronto"))
	_, err = s.BeginSearch()
	assert.ErrorIs(t, err, ErrIncompleteFilters)
}

func TestFilterSession_LastPickWins(t *testing.T) {
	s := NewFilterSession("owner", "chan", time.Now())
	fillAll(t, s)
	require.NoError(t, s.SetMaxPrice(1500000))

	criteria, err := s.BeginSearch()
	require.NoError(t, err)
	assert.Equal(t, 1500000, criteria.MaxPrice)
}

func TestFilterSession_PickDuringSearchKeepsState(t *testing.T) {
	s := NewFilterSession("owner", "chan", time.Now())
	fillAll(t, s)
	_, err := s.BeginSearch()
	require.NoError(t, err)

	require.NoError(t, s.SetCity("Ottawa"))
	assert.Equal(t, SessionSearching, s.State())
}

func TestFilterSession_ExpiredIsInert(t *testing.T) {
	s := NewFilterSession("owner", "chan", time.Now())
	fillAll(t, s)
	s.Expire()

	assert.ErrorIs(t, s.SetCity("Ottawa"), ErrSessionExpired)
	_, err := s.BeginSearch()
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, SessionExpired, s.State())

	s.FinishSearch()
	assert.Equal(t, SessionExpired, s.State())
}

func TestFilterSession_CheckOwner(t *testing.T) {
	s := NewFilterSession("owner", "chan", time.Now())
	assert.NoError(t, s.CheckOwner("owner"))
	assert.ErrorIs(t, s.CheckOwner("stranger"), ErrNotSessionOwner)

	anyone := NewFilterSession("", "chan", time.Now())
	assert.NoError(t, anyone.CheckOwner("stranger"))
}

func TestFilterSession_SelectionIsCopy(t *testing.T) {
	s := NewFilterSession("owner", "chan", time.Now())
	require.NoError(t, s.SetCity("Toronto"))

	sel := s.Selection()
	require.NotNil(t, sel.City)
	*sel.City = "Mutated"

	again := s.Selection()
	assert.Equal(t, "Toronto", *again.City)
	assert.Nil(t, again.MaxPrice)
	assert.False(t, again.Complete())
}

func TestFilterSession_ConcurrentPicks(t *testing.T) {
	s := NewFilterSession("owner", "chan", time.Now())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() { defer wg.Done(); _ = s.SetCity("Toronto") }()
		go func(n int) { defer wg.Done(); _ = s.SetMaxPrice(500000 + n) }(i)
		go func() { defer wg.Done(); _ = s.SetMinBedrooms(3) }()
	}
	wg.Wait()

	assert.Equal(t, SessionReady, s.State())
	assert.True(t, s.Selection().Complete())
}
