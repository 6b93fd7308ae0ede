package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchPerformedEvent публикуется после каждого подтвержденного поиска
type SearchPerformedEvent struct {
	EventID      uuid.UUID
	SessionID    uuid.UUID
	UserID       string
	Criteria     SearchCriteria
	Status       FetchStatus
	ResultsCount int
	OccurredAt   time.Time
}
