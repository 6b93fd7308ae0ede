package rest

import "findhome-bot/internal/core/domain"

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status         string `json:"status"`
	ActiveSessions int    `json:"active_sessions"`
}

type PriceTierResponse struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type FiltersResponse struct {
	Cities     []string            `json:"cities"`
	PriceTiers []PriceTierResponse `json:"price_tiers"`
	Bedrooms   []int               `json:"bedrooms"`
}

type CriteriaResponse struct {
	City        string `json:"city"`
	MaxPrice    int    `json:"max_price"`
	MinBedrooms int    `json:"min_bedrooms"`
}

type ListingResponse struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Bedrooms string `json:"bedrooms"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url"`
}

type ListingsResponse struct {
	Criteria CriteriaResponse  `json:"criteria"`
	Summary  string            `json:"summary"`
	Listings []ListingResponse `json:"listings"`
}

func toFiltersResponse(catalog domain.FilterCatalog) FiltersResponse {
	resp := FiltersResponse{
		Cities:     catalog.Cities,
		PriceTiers: make([]PriceTierResponse, 0, len(catalog.PriceTiers)),
		Bedrooms:   catalog.Bedrooms,
	}
	for _, tier := range catalog.PriceTiers {
		resp.PriceTiers = append(resp.PriceTiers, PriceTierResponse{Label: tier.Label, Value: tier.Value})
	}
	return resp
}

func toListingResponse(l domain.Listing) ListingResponse {
	return ListingResponse{
		Title:    l.Title,
		Price:    l.Price,
		Bedrooms: l.Bedrooms,
		URL:      l.URL,
		ImageURL: l.ImageURL,
	}
}
