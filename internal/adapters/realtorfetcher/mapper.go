package realtorfetcher

import (
	"bytes"
	"encoding/json"
	"findhome-bot/internal/constants"
	"findhome-bot/internal/core/domain"
	"findhome-bot/internal/core/port"
	"fmt"
	"strconv"
	"strings"
)

// apiResponse - интересующая нас часть ответа PropertySearch_Post
type apiResponse struct {
	Results []apiResult `json:"Results"`
}

type apiResult struct {
	ID                 interface{}  `json:"Id"`
	RelativeDetailsURL string       `json:"RelativeDetailsURL"`
	Property           *apiProperty `json:"Property"`
	Building           *apiBuilding `json:"Building"`
}

type apiProperty struct {
	Price   interface{} `json:"Price"`
	Address *apiAddress `json:"Address"`
	// Photo приходит то объектом, то массивом объектов
	Photo json.RawMessage `json:"Photo"`
}

type apiAddress struct {
	Text        string `json:"Text"`
	AddressText string `json:"AddressText"`
}

type apiBuilding struct {
	BedroomsTotal interface{} `json:"BedroomsTotal"`
	Bedrooms      interface{} `json:"Bedrooms"`
}

type apiPhoto struct {
	HighResPath string `json:"HighResPath"`
	MedResPath  string `json:"MedResPath"`
}

// toDomainListings разбирает тело ответа. Ошибка - только если это не JSON-объект;
// отсутствующие поля отдельных объявлений заменяются заглушками.
func toDomainListings(body []byte, logger port.LoggerPort) ([]domain.Listing, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal realtor response: %w", err)
	}

	listings := make([]domain.Listing, 0, len(resp.Results))
	for i, item := range resp.Results {
		listing := toDomainListing(item)
		if listing.Title == domain.NoTitle || listing.ImageURL == domain.PlaceholderImageURL {
			logger.Debug("Listing is missing fields, placeholders used", port.Fields{
				"index": i,
				"url":   listing.URL,
			})
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func toDomainListing(item apiResult) domain.Listing {
	listing := domain.Listing{
		Title:    domain.NoTitle,
		Price:    domain.NotAvailable,
		Bedrooms: domain.NotAvailable,
		URL:      detailsURL(item),
		ImageURL: domain.PlaceholderImageURL,
	}

	if p := item.Property; p != nil {
		if p.Address != nil {
			if title := firstNonEmpty(p.Address.Text, p.Address.AddressText); title != "" {
				listing.Title = title
			}
		}
		if price, ok := stringValue(p.Price); ok {
			listing.Price = price
		}
		if image := photoURL(p.Photo); image != "" {
			listing.ImageURL = image
		}
	}

	if b := item.Building; b != nil {
		if beds, ok := stringValue(b.BedroomsTotal); ok {
			listing.Bedrooms = beds
		} else if beds, ok := stringValue(b.Bedrooms); ok {
			listing.Bedrooms = beds
		}
	}

	return listing
}

func detailsURL(item apiResult) string {
	if id, ok := stringValue(item.ID); ok {
		return constants.RealtorDetailsBase + id
	}
	if rel := strings.TrimSpace(item.RelativeDetailsURL); rel != "" {
		return constants.RealtorHomeURL + "/" + strings.TrimPrefix(rel, "/")
	}
	return constants.RealtorHomeURL
}

// photoURL берет HighResPath, затем MedResPath первой фотографии
func photoURL(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var photo apiPhoto
	switch raw[0] {
	case '{':
		if err := json.Unmarshal(raw, &photo); err != nil {
			return ""
		}
	case '[':
		var photos []apiPhoto
		if err := json.Unmarshal(raw, &photos); err != nil || len(photos) == 0 {
			return ""
		}
		photo = photos[0]
	default:
		return ""
	}
	return firstNonEmpty(photo.HighResPath, photo.MedResPath)
}

// stringValue приводит строку или число из JSON к непустой строке
func stringValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		s := strings.TrimSpace(v)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
