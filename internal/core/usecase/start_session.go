package usecase

import (
	"context"
	"findhome-bot/internal/contextkeys"
	"findhome-bot/internal/core/domain"
	"findhome-bot/internal/core/port"
)

// StartSessionUseCase открывает новую панель фильтров
type StartSessionUseCase struct {
	store   port.SessionStorePort
	catalog domain.FilterCatalog
}

func NewStartSessionUseCase(store port.SessionStorePort, catalog domain.FilterCatalog) *StartSessionUseCase {
	return &StartSessionUseCase{store: store, catalog: catalog}
}

func (uc *StartSessionUseCase) Execute(ctx context.Context, ownerID, channelID string) (domain.FilterPanel, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "StartSession",
		"user_id":  ownerID,
	})

	session := uc.store.Create(ownerID, channelID)

	logger.Info("Filter session opened", port.Fields{
		"session_id":      session.ID.String(),
		"channel_id":      channelID,
		"active_sessions": uc.store.Len(),
	})

	return domain.FilterPanel{
		SessionID: session.ID,
		Prompt:    PanelPrompt,
		Catalog:   uc.catalog,
	}, nil
}
