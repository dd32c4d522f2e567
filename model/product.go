package model

import "time"

// UserRef is the embedded user reference carried by bids and ratings.
type UserRef struct {
	ID       string `json:"_id" validate:"required"`
	Username string `json:"username"`
}

type Bid struct {
	ID     string  `json:"_id"`
	Amount float64 `json:"amount" validate:"gte=0"`
	Bidder UserRef `json:"bidder"`
}

// Product mirrors the product service record. Bids are chronological; the last one leads.
type Product struct {
	ID           string  `json:"_id" validate:"required"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	InitialPrice float64 `json:"initialPrice" validate:"gte=0"`
	InitialDate  Time    `json:"initialDate"`
	CloseDate    Time    `json:"closeDate"`
	Weight       float64 `json:"weight"`
	Owner        User    `json:"owner"`
	Buyer        *User   `json:"buyer,omitempty"`
	Bids         []Bid   `json:"bids" validate:"dive"`
}

// LastBid returns the leading bid, if any.
func (p *Product) LastBid() (Bid, bool) {
	if len(p.Bids) == 0 {
		return Bid{}, false
	}
	return p.Bids[len(p.Bids)-1], true
}

// CurrentPrice is the last bid amount, or the initial price when there are no bids.
func (p *Product) CurrentPrice() float64 {
	if bid, ok := p.LastBid(); ok {
		return bid.Amount
	}
	return p.InitialPrice
}

// ProductQuery holds the query parameters of GET /api/v1/products.
type ProductQuery struct {
	OrderInitialDate int
	OrderCloseDate   int
	MinPrice         float64
	MaxPrice         float64
	Title            string
	Username         string
}

// UserBids groups the products a user has bid on.
type UserBids struct {
	Open []Product `json:"open"`
	Won  []Product `json:"won"`
	Lost []Product `json:"lost"`
}

type CreateProductRequest struct {
	Title        string    `json:"title" validate:"required,max=120"`
	Description  string    `json:"description" validate:"required"`
	InitialPrice float64   `json:"initialPrice" validate:"gt=0"`
	CloseDate    time.Time `json:"closeDate" validate:"required"`
	Weight       float64   `json:"weight" validate:"gt=0"`
}

type BidRequest struct {
	Amount float64 `json:"amount"`
}

// ProductCard is a product list entry enriched with photo, owner and owner reputation.
type ProductCard struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CurrentPrice   float64   `json:"current_price"`
	CloseDate      time.Time `json:"close_date"`
	Closed         bool      `json:"closed"`
	PhotoURL       string    `json:"photo_url"`
	OwnerID        string    `json:"owner_id"`
	OwnerName      string    `json:"owner_name"`
	OwnerPhotoURL  string    `json:"owner_photo_url"`
	OwnerSoldCount int       `json:"owner_sold_count"`
	OwnerRating    float64   `json:"owner_rating"`
	OwnerRated     bool      `json:"owner_rated"`
}

type ProductListView struct {
	Loaded         bool          `json:"loaded"`
	Empty          bool          `json:"empty"`
	Owner          string        `json:"owner,omitempty"`
	OwnerPhotoURL  string        `json:"owner_photo_url,omitempty"`
	AppliedFilters []FilterPill  `json:"applied_filters"`
	Products       []ProductCard `json:"products"`
}

type UserBidsView struct {
	Loaded bool     `json:"loaded"`
	Empty  bool     `json:"empty"`
	Bids   UserBids `json:"bids"`
}
