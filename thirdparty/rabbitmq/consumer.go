package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/muhammadheryan/el-rastro/repository/rest"
	"github.com/muhammadheryan/el-rastro/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Pause before a requeued message is redelivered.
const requeueDelay = time.Second

// Consumer receives auction-close messages and forwards them to the internal close endpoint.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	api     *rest.Client
	apiKey  string
}

func NewConsumer(host string, port int, user, password string, api *rest.Client, apiKey string) (*Consumer, error) {
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

	if err := declareAuctionClose(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		api:     api,
		apiKey:  apiKey,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		auctionCloseQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if msg.DeliveryTag == 0 { // channel closed
					return
				}

				if c.handle(ctx, msg.Body) {
					select {
					case <-ctx.Done():
					case <-time.After(requeueDelay):
					}
					// Negative ack to requeue
					msg.Nack(false, true)
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

// handle processes one message and reports whether it should be requeued.
func (c *Consumer) handle(ctx context.Context, body []byte) bool {
	var closeMsg AuctionCloseMessage
	if err := json.Unmarshal(body, &closeMsg); err != nil || closeMsg.ProductID == "" {
		logger.Error("[Consumer.handle] err unmarshal auction close message", zap.ByteString("body", body))
		return false
	}

	err := c.callCloseAuctionAPI(ctx, closeMsg.ProductID)
	if err == nil {
		logger.Info("auction closed", zap.String("product_id", closeMsg.ProductID))
		return false
	}

	logger.Error("[Consumer.handle] err callCloseAuctionAPI",
		zap.String("product_id", closeMsg.ProductID), zap.String("error", err.Error()))

	// A conflict means the auction is still open: the message beat the close date.
	// Other client errors will not succeed on retry.
	var se *rest.StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusConflict {
		return true
	}
	if errors.Is(err, rest.ErrNotFound) || (errors.As(err, &se) && se.StatusCode < http.StatusInternalServerError) {
		return false
	}
	return true
}

func (c *Consumer) callCloseAuctionAPI(ctx context.Context, productID string) error {
	return c.api.Call(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   rest.Path("internal", "v1", "auctions", productID, "close"),
		Header: http.Header{
			"Authorization":      {"Bearer " + c.apiKey},
			"X-Internal-Service": {"auction-close-consumer"},
		},
	}, nil)
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
