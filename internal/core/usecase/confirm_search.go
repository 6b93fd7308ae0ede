package usecase

import (
	"context"
	"errors"
	"findhome-bot/internal/contextkeys"
	"findhome-bot/internal/core/domain"
	"findhome-bot/internal/core/port"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConfirmSearchUseCase - кнопка "Search Homes": проверка фильтров, запрос к провайдеру, вывод
type ConfirmSearchUseCase struct {
	store     port.SessionStorePort
	fetcher   port.ListingsFetcherPort
	presenter *ResultPresenter
	events    port.SearchEventsPort // может быть nil
	now       func() time.Time
}

func NewConfirmSearchUseCase(
	store port.SessionStorePort,
	fetcher port.ListingsFetcherPort,
	presenter *ResultPresenter,
	events port.SearchEventsPort,
) *ConfirmSearchUseCase {
	return &ConfirmSearchUseCase{
		store:     store,
		fetcher:   fetcher,
		presenter: presenter,
		events:    events,
		now:       time.Now,
	}
}

func (uc *ConfirmSearchUseCase) Execute(ctx context.Context, sessionID uuid.UUID, userID string, responder port.ResponderPort) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "ConfirmSearch",
		"session_id": sessionID.String(),
	})

	session, err := uc.store.Get(sessionID)
	if err != nil {
		logger.Debug("Confirm for inactive session ignored", port.Fields{"reason": err.Error()})
		return err
	}

	if err := session.CheckOwner(userID); err != nil {
		logger.Info("Confirm from non-owner rejected", port.Fields{"user_id": userID})
		return responder.Notice(ctx, NotOwnerMsg)
	}

	// продлеваем только по действиям владельца
	if err := uc.store.Touch(sessionID); err != nil {
		logger.Debug("Confirm for inactive session ignored", port.Fields{"reason": err.Error()})
		return err
	}

	criteria, err := session.BeginSearch()
	switch {
	case errors.Is(err, domain.ErrIncompleteFilters):
		logger.Info("Search requested with incomplete filters", nil)
		return responder.Notice(ctx, IncompleteFiltersMsg)
	case errors.Is(err, domain.ErrSearchInProgress):
		return responder.Notice(ctx, SearchInProgressMsg)
	case err != nil:
		return err
	}
	defer session.FinishSearch()

	searchLogger := logger.WithFields(port.Fields{
		"city":         criteria.City,
		"max_price":    criteria.MaxPrice,
		"min_bedrooms": criteria.MinBedrooms,
	})
	searchLogger.Info("Starting listings search", nil)

	startedAt := uc.now()
	result := uc.fetcher.FetchListings(ctx, criteria)

	if result.Failed() {
		searchLogger.Warn("Listings provider failed, presenting fallback", port.Fields{"error": result.Reason()})
	} else {
		searchLogger.Info("Listings received", port.Fields{
			"results_count": len(result.Listings),
			"duration_ms":   uc.now().Sub(startedAt).Milliseconds(),
		})
	}

	presentErr := uc.presenter.Present(ctx, responder, criteria, result)
	if presentErr != nil {
		searchLogger.Error("Failed to deliver search results", presentErr, nil)
	}

	uc.publish(ctx, searchLogger, session, userID, criteria, result)

	if presentErr != nil {
		return fmt.Errorf("confirm search: %w", presentErr)
	}
	return nil
}

// publish - best effort: ошибка брокера не должна влиять на пользователя
func (uc *ConfirmSearchUseCase) publish(ctx context.Context, logger port.LoggerPort, session *domain.FilterSession, userID string, criteria domain.SearchCriteria, result domain.FetchResult) {
	if uc.events == nil {
		return
	}

	event := domain.SearchPerformedEvent{
		EventID:      uuid.New(),
		SessionID:    session.ID,
		UserID:       userID,
		Criteria:     criteria,
		Status:       result.Status,
		ResultsCount: len(result.Listings),
		OccurredAt:   uc.now().UTC(),
	}

	if err := uc.events.PublishSearchPerformed(ctx, event); err != nil {
		logger.Warn("Could not publish search event", port.Fields{"error": err.Error()})
	}
}
