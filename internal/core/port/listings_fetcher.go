package port

import (
	"context"
	"findhome-bot/internal/core/domain"
)

// ListingsFetcherPort - источник объявлений (внешний API провайдера).
// Ошибки не возвращаются отдельно: неудача выражается через FetchResult.Status.
type ListingsFetcherPort interface {
	FetchListings(ctx context.Context, criteria domain.SearchCriteria) domain.FetchResult
}
