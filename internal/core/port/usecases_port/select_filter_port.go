package usecases_port

import (
	"context"
	"findhome-bot/internal/core/domain"
	"findhome-bot/internal/core/port"

	"github.com/google/uuid"
)

type SelectFilterPort interface {
	Execute(ctx context.Context, sessionID uuid.UUID, userID string, field domain.FilterField, value string, responder port.ResponderPort) error
}
