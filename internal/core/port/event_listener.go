package port

import "context"

// EventListenerPort - входящий адаптер, который слушает внешний источник событий
type EventListenerPort interface {
	Start(ctx context.Context) error
	Close() error
}
