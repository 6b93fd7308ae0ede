package usecases_port

import (
	"context"
	"findhome-bot/internal/core/domain"
)

// PreviewListingsPort - поиск без сессии и без чата (служебный HTTP)
type PreviewListingsPort interface {
	Execute(ctx context.Context, criteria domain.SearchCriteria) (domain.SearchCriteria, domain.FetchResult, error)
}
