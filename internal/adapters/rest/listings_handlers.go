package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"findhome-bot/internal/contextkeys"
	"findhome-bot/internal/core/domain"
	"findhome-bot/internal/core/port"
	"findhome-bot/internal/core/port/usecases_port"
)

// SessionCounter - сколько панелей сейчас открыто
type SessionCounter interface {
	Len() int
}

// Summarizer строит ту же строку-заголовок, что видит пользователь в чате
type Summarizer interface {
	Summary(criteria domain.SearchCriteria) string
}

type ListingsHandler struct {
	previewUC  usecases_port.PreviewListingsPort
	catalog    domain.FilterCatalog
	sessions   SessionCounter
	summarizer Summarizer
}

func NewListingsHandler(
	previewUC usecases_port.PreviewListingsPort,
	catalog domain.FilterCatalog,
	sessions SessionCounter,
	summarizer Summarizer,
) *ListingsHandler {
	return &ListingsHandler{
		previewUC:  previewUC,
		catalog:    catalog,
		sessions:   sessions,
		summarizer: summarizer,
	}
}

func (h *ListingsHandler) Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, HealthResponse{
		Status:         "ok",
		ActiveSessions: h.sessions.Len(),
	})
}

func (h *ListingsHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, toFiltersResponse(h.catalog))
}

// GetListings - GET /api/v1/listings?city=&max_price=&min_bedrooms=
func (h *ListingsHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	criteria, err := parseCriteria(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	checked, result, err := h.previewUC.Execute(r.Context(), criteria)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCriteria) || errors.Is(err, domain.ErrUnknownOption) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Preview use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search listings")
		return
	}

	if result.Failed() {
		logger.Warn("Listings provider unavailable", port.Fields{"error": result.Reason()})
		WriteJSONError(w, http.StatusBadGateway, "Listings provider is unavailable")
		return
	}

	resp := ListingsResponse{
		Criteria: CriteriaResponse{
			City:        checked.City,
			MaxPrice:    checked.MaxPrice,
			MinBedrooms: checked.MinBedrooms,
		},
		Summary:  h.summarizer.Summary(checked),
		Listings: make([]ListingResponse, 0, len(result.Listings)),
	}
	for _, l := range result.Listings {
		resp.Listings = append(resp.Listings, toListingResponse(l))
	}

	RespondWithJSON(w, http.StatusOK, resp)
}

func parseCriteria(r *http.Request) (domain.SearchCriteria, error) {
	q := r.URL.Query()

	city := strings.TrimSpace(q.Get("city"))
	if city == "" {
		return domain.SearchCriteria{}, errors.New("city is required")
	}

	maxPrice, err := domain.ParsePrice(q.Get("max_price"))
	if err != nil {
		return domain.SearchCriteria{}, errors.New("max_price must be a positive integer")
	}

	minBedrooms, err := strconv.Atoi(strings.TrimSpace(q.Get("min_bedrooms")))
	if err != nil || minBedrooms <= 0 {
		return domain.SearchCriteria{}, errors.New("min_bedrooms must be a positive integer")
	}

	return domain.SearchCriteria{City: city, MaxPrice: maxPrice, MinBedrooms: minBedrooms}, nil
}
