package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartBookingConsumer connects to the broker at url, declares the
// booking.created queue and logs each event it receives.  It runs a
// reconnect loop with capped backoff and never returns under normal
// operation; run it in its own goroutine.  Malformed messages are
// rejected without requeue so a bad payload cannot wedge the queue.
func StartBookingConsumer(url string) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("booking-consumer: dial failed: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after a successful connect

		if err := consumeLoop(conn); err != nil {
			log.Printf("booking-consumer: consume loop ended: %v; reconnecting", err)
		}
		_ = conn.Close()
		time.Sleep(2 * time.Second)
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(bookingQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		var ev BookingCreatedEvent
		if err := json.Unmarshal(d.Body, &ev); err != nil {
			log.Printf("booking-consumer: bad payload: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		log.Printf("booking created | id=%s seat=%s user=%q date=%s slot=%s-%s",
			ev.BookingID, ev.SeatID, ev.UserName, ev.Date, ev.StartTime, ev.EndTime)
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}
