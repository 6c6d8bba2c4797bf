package queue

import (
	"context"
	"encoding/json"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const bookingQueueName = "booking.created"

// Publisher sends domain events to RabbitMQ.  A fresh connection is
// dialed per publish; booking volume is far too low for that to
// matter and it keeps the publisher free of reconnect state.
type Publisher struct {
	url string
}

// BrokerURL returns the broker address from RABBITMQ_URL or AMQP_URL,
// or the empty string when eventing is not configured.
func BrokerURL() string {
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		return url
	}
	return os.Getenv("AMQP_URL")
}

// NewPublisherFromEnv returns a Publisher when a broker URL is
// configured and nil otherwise.  A nil publisher means events are
// simply never emitted.
func NewPublisherFromEnv() *Publisher {
	url := BrokerURL()
	if url == "" {
		return nil
	}
	return &Publisher{url: url}
}

// PublishBookingCreated publishes a BookingCreatedEvent to the
// booking.created queue.  The queue is declared durable and messages
// are marked persistent.  Any error is returned for the caller to log
// and ignore; publishing must never fail a booking request.
func (p *Publisher) PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx,
		"",               // default exchange
		bookingQueueName, // routing key = queue name
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
}
