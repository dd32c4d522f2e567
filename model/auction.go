package model

import "time"

// AuctionView is the derived view state of a product page for one viewer.
type AuctionView struct {
	CurrentPrice     float64 `json:"current_price"`
	Closed           bool    `json:"closed"`
	UserIsLastBidder bool    `json:"user_is_last_bidder"`
	IsOwner          bool    `json:"is_owner"`
	CanBid           bool    `json:"can_bid"`
	CanRate          bool    `json:"can_rate"`
	CanChat          bool    `json:"can_chat"`
	Won              bool    `json:"won"`
	Hidden           bool    `json:"hidden"`
	Rating           float64 `json:"rating"`
	BidDone          bool    `json:"bid_done"`
	Advisory         string  `json:"advisory,omitempty"`
}

type AuctionPage struct {
	Product  ProductSummary `json:"product"`
	Details  AuctionDetails `json:"details"`
	PhotoURL string         `json:"photo_url"`
	View     AuctionView    `json:"view"`
}

type AuctionDetails struct {
	Description string    `json:"description"`
	CloseDate   time.Time `json:"close_date"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Location    *Location `json:"location,omitempty"`
	Weight      float64   `json:"weight"`
}

type CheckoutView struct {
	Product      ProductSummary `json:"product"`
	Description  string         `json:"description"`
	PhotoURL     string         `json:"photo_url"`
	CurrentPrice float64        `json:"current_price"`
	CO2          *float64       `json:"co2,omitempty"`
	Total        float64        `json:"total"`
}

type PaymentResult struct {
	ProductID string `json:"product_id"`
	Paid      bool   `json:"paid"`
}

// CarbonEstimateQuery parameterises GET /api/v2/carbon.
type CarbonEstimateQuery struct {
	Origin      Location
	Destination Location
	Weight      float64
}
