package constants

// Обменник и ключи маршрутизации событий бота
const (
	DefaultEventsExchange     = "bot_events"
	EventsExchangeType        = "topic"
	RoutingKeySearchPerformed = "bot.search.performed"
)
