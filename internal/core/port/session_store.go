package port

import (
	"findhome-bot/internal/core/domain"

	"github.com/google/uuid"
)

// SessionStorePort - реестр живых сессий фильтров.
// Get только читает, окно неактивности продлевает Touch.
type SessionStorePort interface {
	Create(ownerID, channelID string) *domain.FilterSession
	Get(id uuid.UUID) (*domain.FilterSession, error)
	Touch(id uuid.UUID) error
	Len() int
}
