package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// EventPublisher emits marketplace activity and schedules auction-close notifications.
type EventPublisher interface {
	PublishActivity(ctx context.Context, event ActivityEvent) error
	ScheduleAuctionClose(ctx context.Context, msg AuctionCloseMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mu      sync.Mutex
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	// Declare the activity exchange
	err = channel.ExchangeDeclare(
		activityExchange, // name
		"topic",          // type
		true,             // durable
		false,            // auto-delete
		false,            // internal
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	if err := declareAuctionClose(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// declareAuctionClose declares the delayed exchange, its queue and the binding between them.
func declareAuctionClose(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		auctionCloseExchange, // name
		"x-delayed-message",  // type
		true,                 // durable
		false,                // auto-delete
		false,                // internal
		false,                // no-wait
		amqp091.Table{"x-delayed-type": "direct"}, // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		auctionCloseQueue, // name
		true,              // durable
		false,             // auto-delete
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		auctionCloseQueue,      // queue name
		auctionCloseRoutingKey, // routing key
		auctionCloseExchange,   // exchange
		false,                  // no-wait
		nil,                    // arguments
	)
}

func (p *Publisher) PublishActivity(ctx context.Context, event ActivityEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.publish(ctx, activityExchange, string(event.Type), amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (p *Publisher) ScheduleAuctionClose(ctx context.Context, msg AuctionCloseMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.publish(ctx, auctionCloseExchange, auctionCloseRoutingKey, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
		Headers: amqp091.Table{
			"x-delay": delayMillis(msg.CloseDate, time.Now()),
		},
	})
}

// Added to every close delay so the message lands after the close date.
const closeDelayMargin = time.Second

// delayMillis is the delay until closeDate plus closeDelayMargin, never negative.
func delayMillis(closeDate, now time.Time) int64 {
	delayMs := closeDate.Add(closeDelayMargin).Sub(now).Milliseconds()
	if delayMs < 0 {
		delayMs = 0
	}
	return delayMs
}

// amqp channels are not safe for concurrent publishing.
func (p *Publisher) publish(ctx context.Context, exchange, key string, msg amqp091.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(
		ctx,
		exchange, // exchange
		key,      // routing key
		false,    // mandatory
		false,    // immediate
		msg,
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// NopPublisher drops every event. It stands in when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishActivity(context.Context, ActivityEvent) error { return nil }

func (NopPublisher) ScheduleAuctionClose(context.Context, AuctionCloseMessage) error { return nil }
