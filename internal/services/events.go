package services

// EventPublisher publishes catalog change events after successful writes.
// Implemented by pkg/rabbitmq.Client; a nil publisher disables events.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// CatalogExchange is the exchange catalog events are published to.
const CatalogExchange = "catalog"
