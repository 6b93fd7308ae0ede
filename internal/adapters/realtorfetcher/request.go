package realtorfetcher

import (
	"findhome-bot/internal/constants"
	"findhome-bot/internal/core/domain"
	"strconv"
)

// searchRequest - тело POST-запроса PropertySearch_Post
type searchRequest struct {
	CultureID            int    `json:"CultureId"`
	ApplicationID        int    `json:"ApplicationId"`
	PropertySearchTypeID int    `json:"PropertySearchTypeId"`
	TransactionTypeID    int    `json:"TransactionTypeId"`
	RecordsPerPage       int    `json:"RecordsPerPage"`
	MaximumResults       int    `json:"MaximumResults"`
	Query                string `json:"Query"`
	PriceMax             int    `json:"PriceMax"`
	BedRange             string `json:"BedRange"`
}

func buildSearchRequest(criteria domain.SearchCriteria) searchRequest {
	return searchRequest{
		CultureID:            constants.CultureEnglish,
		ApplicationID:        constants.ApplicationID,
		PropertySearchTypeID: constants.PropertySearchResale,
		TransactionTypeID:    constants.TransactionForSale,
		RecordsPerPage:       constants.ResultsLimit,
		MaximumResults:       constants.ResultsLimit,
		Query:                criteria.City,
		PriceMax:             criteria.MaxPrice,
		BedRange:             bedRange(criteria.MinBedrooms),
	}
}

// bedRange - формат провайдера "<min>-<max>".
// Верхняя граница 0 передается как есть; провайдер трактует ее сам.
func bedRange(minBedrooms int) string {
	return strconv.Itoa(minBedrooms) + "-0"
}
