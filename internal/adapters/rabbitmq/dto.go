package rabbitmq

import (
	"findhome-bot/internal/core/domain"
	"time"
)

// SearchPerformedEventDTO - тело события в брокере
type SearchPerformedEventDTO struct {
	EventID      string    `json:"event_id"`
	SessionID    string    `json:"session_id"`
	UserID       string    `json:"user_id"`
	City         string    `json:"city"`
	MaxPrice     int       `json:"max_price"`
	MinBedrooms  int       `json:"min_bedrooms"`
	Status       string    `json:"status"`
	ResultsCount int       `json:"results_count"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func toSearchPerformedDTO(e domain.SearchPerformedEvent) SearchPerformedEventDTO {
	return SearchPerformedEventDTO{
		EventID:      e.EventID.String(),
		SessionID:    e.SessionID.String(),
		UserID:       e.UserID,
		City:         e.Criteria.City,
		MaxPrice:     e.Criteria.MaxPrice,
		MinBedrooms:  e.Criteria.MinBedrooms,
		Status:       e.Status.String(),
		ResultsCount: e.ResultsCount,
		OccurredAt:   e.OccurredAt,
	}
}
