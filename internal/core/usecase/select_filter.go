package usecase

import (
	"context"
	"errors"
	"findhome-bot/internal/contextkeys"
	"findhome-bot/internal/core/domain"
	"findhome-bot/internal/core/port"
	"fmt"

	"github.com/google/uuid"
)

// SelectFilterUseCase обрабатывает выбор значения в одном из пикеров
type SelectFilterUseCase struct {
	store   port.SessionStorePort
	catalog domain.FilterCatalog
}

func NewSelectFilterUseCase(store port.SessionStorePort, catalog domain.FilterCatalog) *SelectFilterUseCase {
	return &SelectFilterUseCase{store: store, catalog: catalog}
}

// Execute возвращает ошибку только если сессии больше нет (ErrSessionNotFound / ErrSessionExpired)
// или если не удалось ответить пользователю.
func (uc *SelectFilterUseCase) Execute(ctx context.Context, sessionID uuid.UUID, userID string, field domain.FilterField, value string, responder port.ResponderPort) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "SelectFilter",
		"session_id": sessionID.String(),
		"field":      field.String(),
	})

	session, err := uc.store.Get(sessionID)
	if err != nil {
		logger.Debug("Selection for inactive session ignored", port.Fields{"reason": err.Error()})
		return err
	}

	if err := session.CheckOwner(userID); err != nil {
		logger.Info("Selection from non-owner rejected", port.Fields{"user_id": userID})
		return responder.Notice(ctx, NotOwnerMsg)
	}

	// продлеваем только по действиям владельца
	if err := uc.store.Touch(sessionID); err != nil {
		logger.Debug("Selection for inactive session ignored", port.Fields{"reason": err.Error()})
		return err
	}

	ack, err := uc.apply(session, field, value)
	switch {
	case errors.Is(err, domain.ErrUnknownOption), errors.Is(err, domain.ErrUnknownField):
		logger.Warn("Rejected selection value", port.Fields{"value": value, "error": err.Error()})
		return responder.Notice(ctx, UnknownOptionMsg)
	case err != nil:
		logger.Debug("Selection could not be applied", port.Fields{"reason": err.Error()})
		return err
	}

	logger.Debug("Filter selected", port.Fields{
		"value":    value,
		"state":    session.State().String(),
		"complete": session.Selection().Complete(),
	})

	if err := responder.Notice(ctx, ack); err != nil {
		logger.Error("Failed to acknowledge selection", err, nil)
		return fmt.Errorf("acknowledge %s selection: %w", field, err)
	}
	return nil
}

func (uc *SelectFilterUseCase) apply(session *domain.FilterSession, field domain.FilterField, value string) (string, error) {
	switch field {
	case domain.FieldCity:
		city, err := uc.catalog.ResolveCity(value)
		if err != nil {
			return "", err
		}
		if err := session.SetCity(city); err != nil {
			return "", err
		}
		return fmt.Sprintf("✅ City set to **%s**", city), nil

	case domain.FieldMaxPrice:
		tier, err := uc.catalog.ResolvePrice(value)
		if err != nil {
			return "", err
		}
		if err := session.SetMaxPrice(tier.Value); err != nil {
			return "", err
		}
		return fmt.Sprintf("✅ Max price set to **%s**", tier.Label), nil

	case domain.FieldMinBedrooms:
		n, err := uc.catalog.ResolveBedrooms(value)
		if err != nil {
			return "", err
		}
		if err := session.SetMinBedrooms(n); err != nil {
			return "", err
		}
		return fmt.Sprintf("✅ Min bedrooms set to **%d**", n), nil
	}
	return "", fmt.Errorf("%w: %d", domain.ErrUnknownField, field)
}
