package constant

type ActivityType string

const (
	ActivityBidPlaced       ActivityType = "bid_placed"
	ActivityMessageSent     ActivityType = "message_sent"
	ActivityRatingSubmitted ActivityType = "rating_submitted"
	ActivityProductListed   ActivityType = "product_listed"
	ActivityAuctionWon      ActivityType = "auction_won"
)

type ContextKey string

const (
	SessionKey  ContextKey = "session"
	ClientIDKey ContextKey = "client_id"
)
