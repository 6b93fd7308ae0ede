package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"findhome-bot/internal/contextkeys"
	"findhome-bot/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePreviewUC struct {
	calls   int
	got     domain.SearchCriteria
	checked domain.SearchCriteria
	result  domain.FetchResult
	err     error
}

func (f *fakePreviewUC) Execute(_ context.Context, criteria domain.SearchCriteria) (domain.SearchCriteria, domain.FetchResult, error) {
	f.calls++
	f.got = criteria
	return f.checked, f.result, f.err
}

type fixedSessions int

func (n fixedSessions) Len() int { return int(n) }

type summaryStub struct{}

func (summaryStub) Summary(c domain.SearchCriteria) string {
	return fmt.Sprintf("%s/%d/%d", c.City, c.MaxPrice, c.MinBedrooms)
}

func newTestRouter(uc *fakePreviewUC) http.Handler {
	catalog := domain.FilterCatalog{
		Cities:     []string{"Toronto"},
		PriceTiers: []domain.PriceTier{{Label: "$750,000", Value: 750000}},
		Bedrooms:   []int{2},
	}
	handler := NewListingsHandler(uc, catalog, fixedSessions(3), summaryStub{})
	return NewRouter(handler, []string{"*"}, contextkeys.LoggerFromContext(context.Background()))
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := doGet(t, newTestRouter(&fakePreviewUC{}), "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, HealthResponse{Status: "ok", ActiveSessions: 3}, body)
}

func TestGetFilters(t *testing.T) {
	rec := doGet(t, newTestRouter(&fakePreviewUC{}), "/api/v1/filters")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"cities": ["Toronto"],
		"price_tiers": [{"label": "$750,000", "value": 750000}],
		"bedrooms": [2]
	}`, rec.Body.String())
}

func TestGetListings_OK(t *testing.T) {
	checked := domain.SearchCriteria{City: "Toronto", MaxPrice: 750000, MinBedrooms: 2}
	uc := &fakePreviewUC{
		checked: checked,
		result: domain.FetchOK([]domain.Listing{
			{Title: "A", Price: "$1", Bedrooms: "2", URL: "https://x/1", ImageURL: "https://x/1.jpg"},
		}),
	}

	rec := doGet(t, newTestRouter(uc), "/api/v1/listings?city=toronto&max_price=$750,000&min_bedrooms=2")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, uc.calls)
	assert.Equal(t, domain.SearchCriteria{City: "toronto", MaxPrice: 750000, MinBedrooms: 2}, uc.got)

	var body ListingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Toronto", body.Criteria.City)
	assert.Equal(t, "Toronto/750000/2", body.Summary)
	require.Len(t, body.Listings, 1)
	assert.Equal(t, "https://x/1.jpg", body.Listings[0].ImageURL)
}

func TestGetListings_EmptyIsList(t *testing.T) {
	uc := &fakePreviewUC{result: domain.FetchOK(nil)}

	rec := doGet(t, newTestRouter(uc), "/api/v1/listings?city=Toronto&max_price=750000&min_bedrooms=2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"listings":[]`)
}

func TestGetListings_BadRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		ucErr error
		calls int
	}{
		{name: "missing city", query: "max_price=750000&min_bedrooms=2"},
		{name: "bad price", query: "city=Toronto&max_price=cheap&min_bedrooms=2"},
		{name: "zero bedrooms", query: "city=Toronto&max_price=750000&min_bedrooms=0"},
		{
			name:  "value outside catalog",
			query: "city=Paris&max_price=750000&min_bedrooms=2",
			ucErr: fmt.Errorf("%w: city %q", domain.ErrUnknownOption, "Paris"),
			calls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakePreviewUC{err: tt.ucErr}
			rec := doGet(t, newTestRouter(uc), "/api/v1/listings?"+tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.calls, uc.calls)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestGetListings_ProviderFailure(t *testing.T) {
	uc := &fakePreviewUC{result: domain.FetchFailure(errors.New("timeout"))}

	rec := doGet(t, newTestRouter(uc), "/api/v1/listings?city=Toronto&max_price=750000&min_bedrooms=2")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetListings_FailureWithoutReason(t *testing.T) {
	uc := &fakePreviewUC{result: domain.FetchResult{Status: domain.FetchFailed}}

	rec := doGet(t, newTestRouter(uc), "/api/v1/listings?city=Toronto&max_price=750000&min_bedrooms=2")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetListings_UnexpectedError(t *testing.T) {
	uc := &fakePreviewUC{err: errors.New("boom")}

	rec := doGet(t, newTestRouter(uc), "/api/v1/listings?city=Toronto&max_price=750000&min_bedrooms=2")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
