package rabbitmq

import (
	"time"

	"github.com/muhammadheryan/el-rastro/constant"
)

const (
	activityExchange = "activity_exchange"

	auctionCloseExchange   = "auction_close_exchange"
	auctionCloseQueue      = "auction_close_queue"
	auctionCloseRoutingKey = "auction_close"
)

// ActivityEvent is published on the activity topic exchange with the event type as routing key.
type ActivityEvent struct {
	Type       constant.ActivityType `json:"type"`
	ProductID  string                `json:"product_id,omitempty"`
	ChatID     string                `json:"chat_id,omitempty"`
	UserID     string                `json:"user_id"`
	Amount     float64               `json:"amount,omitempty"`
	OccurredAt time.Time             `json:"occurred_at"`
}

// AuctionCloseMessage is delivered once the auction of ProductID has closed.
type AuctionCloseMessage struct {
	ProductID string    `json:"product_id"`
	CloseDate time.Time `json:"close_date"`
}
