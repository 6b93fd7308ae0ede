package usecases_port

import (
	"context"
	"findhome-bot/internal/core/domain"
)

type StartSessionPort interface {
	Execute(ctx context.Context, ownerID, channelID string) (domain.FilterPanel, error)
}
