package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrBidTooLow
	ErrInvalidRating
	ErrEmptyMessage
	ErrAuctionClosed
	ErrOwnerCannotBid
	ErrNotParty
	ErrAlreadyRated
	ErrUpstreamUnavailable
	ErrTooManyRequests
	ErrAuctionOpen
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrBidTooLow:           "New bid amount must be higher than the current price.",
	ErrInvalidRating:       "Rate must be between 1 and 5.",
	ErrEmptyMessage:        "message text must not be empty",
	ErrAuctionClosed:       "auction is closed",
	ErrOwnerCannotBid:      "owner cannot bid on own product",
	ErrNotParty:            "only the parties of the sale can rate it",
	ErrAlreadyRated:        "sale already rated",
	ErrUpstreamUnavailable: "backend service unavailable",
	ErrTooManyRequests:     "too many requests",
	ErrAuctionOpen:         "auction is still open",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrBidTooLow:           http.StatusBadRequest,
	ErrInvalidRating:       http.StatusBadRequest,
	ErrEmptyMessage:        http.StatusBadRequest,
	ErrAuctionClosed:       http.StatusConflict,
	ErrOwnerCannotBid:      http.StatusForbidden,
	ErrNotParty:            http.StatusForbidden,
	ErrAlreadyRated:        http.StatusConflict,
	ErrUpstreamUnavailable: http.StatusBadGateway,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrAuctionOpen:         http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrBidTooLow:           "0005",
	ErrInvalidRating:       "0006",
	ErrEmptyMessage:        "0007",
	ErrAuctionClosed:       "0008",
	ErrOwnerCannotBid:      "0009",
	ErrNotParty:            "0010",
	ErrAlreadyRated:        "0011",
	ErrUpstreamUnavailable: "0012",
	ErrTooManyRequests:     "0013",
	ErrAuctionOpen:         "0014",
}
