package port

import (
	"context"
	"findhome-bot/internal/core/domain"
)

// SearchEventsPort публикует факты выполненных поисков
type SearchEventsPort interface {
	PublishSearchPerformed(ctx context.Context, event domain.SearchPerformedEvent) error
}
