package realtorfetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"findhome-bot/internal/contextkeys"
	"findhome-bot/internal/core/domain"
	"findhome-bot/internal/core/port"
	"fmt"
	"net/http"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

// FetchListings делает один POST к провайдеру. Любая ошибка (сеть, таймаут, статус, JSON)
// логируется и превращается в FetchFailure; паника наружу тоже не выходит.
func (a *RealtorFetcherAdapter) FetchListings(ctx context.Context, criteria domain.SearchCriteria) (result domain.FetchResult) {
	logger := contextkeys.LoggerFromContext(ctx)
	fetchLogger := logger.WithFields(port.Fields{"component": "RealtorFetcherAdapter(FetchListings)"})

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("realtor adapter: panic during fetch: %v", r)
			fetchLogger.Error("Recovered from panic while fetching listings", err, nil)
			result = domain.FetchFailure(err)
		}
	}()

	if err := criteria.Validate(); err != nil {
		fetchLogger.Warn("Refusing to query provider with invalid criteria", port.Fields{"error": err.Error()})
		return domain.FetchFailure(err)
	}

	payload, err := json.Marshal(buildSearchRequest(criteria))
	if err != nil {
		fetchLogger.Error("Failed to marshal search request", err, nil)
		return domain.FetchFailure(fmt.Errorf("realtor adapter: marshal request: %w", err))
	}

	// одноразовый клон: общие лимиты, свои обработчики
	collector := a.collector.Clone()
	collector.Context = ctx
	extensions.RandomUserAgent(collector) // User-Agent реального браузера вместо дефолтного colly

	var listings []domain.Listing
	var responseErr error

	collector.OnRequest(func(r *colly.Request) {
		fetchLogger.Debug("Making request to search listings", port.Fields{
			"url":          r.URL.String(),
			"city":         criteria.City,
			"max_price":    criteria.MaxPrice,
			"min_bedrooms": criteria.MinBedrooms,
		})
	})

	collector.OnResponse(func(r *colly.Response) {
		parsed, err := toDomainListings(r.Body, fetchLogger)
		if err != nil {
			responseErr = fmt.Errorf("realtor adapter: bad response from %s: %w", r.Request.URL, err)
			return
		}
		listings = parsed
	})

	collector.OnError(func(r *colly.Response, err error) {
		fetchLogger.Error("Listings request failed", err, port.Fields{
			"url":    r.Request.URL.String(),
			"status": r.StatusCode,
		})
		responseErr = fmt.Errorf("realtor adapter: request to %s failed with status %d: %w", r.Request.URL, r.StatusCode, err)
	})

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		headers.Set("X-Trace-ID", traceID)
	}

	visitErr := collector.Request(http.MethodPost, a.searchURL, bytes.NewReader(payload), nil, headers)
	collector.Wait()

	if responseErr == nil && visitErr != nil {
		responseErr = fmt.Errorf("realtor adapter: failed to send request to %s: %w", a.searchURL, visitErr)
	}
	if responseErr != nil {
		fetchLogger.Warn("Returning empty result after provider failure", port.Fields{"error": responseErr.Error()})
		return domain.FetchFailure(responseErr)
	}

	fetchLogger.Info("Finished fetching listings", port.Fields{"listings_fetched": len(listings)})
	return domain.FetchOK(listings)
}
