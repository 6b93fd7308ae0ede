package port

import (
	"context"
	"findhome-bot/internal/core/domain"
)

// ResponderPort - ответы в рамках одного взаимодействия пользователя с панелью.
// Реализация знает, был ли уже отправлен первичный ответ, и дальше шлет follow-up сообщения.
type ResponderPort interface {
	// Notice - приватное сообщение, видимое только автору взаимодействия
	Notice(ctx context.Context, text string) error
	// Announce - публичное сообщение в канал
	Announce(ctx context.Context, text string) error
	// SendCard - публичная карточка объявления
	SendCard(ctx context.Context, card domain.Card) error
}
