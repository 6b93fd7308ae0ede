package usecases_port

import (
	"context"
	"findhome-bot/internal/core/port"

	"github.com/google/uuid"
)

type ConfirmSearchPort interface {
	Execute(ctx context.Context, sessionID uuid.UUID, userID string, responder port.ResponderPort) error
}
