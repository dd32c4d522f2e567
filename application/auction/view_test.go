package auction_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/el-rastro/application/auction"
	"github.com/muhammadheryan/el-rastro/constant"
	"github.com/muhammadheryan/el-rastro/model"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func product(closeDate time.Time, bids ...model.Bid) *model.Product {
	return &model.Product{
		ID:           "p1",
		Title:        "Lamp",
		InitialPrice: 10,
		CloseDate:    model.NewTime(closeDate),
		Owner:        model.User{ID: "owner", Username: "ana#abcde"},
		Bids:         bids,
	}
}

func bid(bidder string, amount float64) model.Bid {
	return model.Bid{ID: bidder + "-bid", Amount: amount, Bidder: model.UserRef{ID: bidder}}
}

func TestBuildView_CurrentPriceAndLastBidder(t *testing.T) {
	tests := []struct {
		name             string
		product          *model.Product
		viewer           string
		wantPrice        float64
		wantIsLastBidder bool
	}{
		{
			name:             "no bids uses initial price",
			product:          product(now.Add(time.Hour)),
			viewer:           "u1",
			wantPrice:        10,
			wantIsLastBidder: false,
		},
		{
			name:             "last bid wins price",
			product:          product(now.Add(time.Hour), bid("u1", 12), bid("u2", 15)),
			viewer:           "u2",
			wantPrice:        15,
			wantIsLastBidder: true,
		},
		{
			name:             "earlier bidder is not last bidder",
			product:          product(now.Add(time.Hour), bid("u1", 12), bid("u2", 15)),
			viewer:           "u1",
			wantPrice:        15,
			wantIsLastBidder: false,
		},
		{
			name:             "anonymous is never last bidder",
			product:          product(now.Add(time.Hour), bid("", 12)),
			viewer:           "",
			wantPrice:        12,
			wantIsLastBidder: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := auction.BuildView(tt.product, tt.viewer, false, now)
			assert.Equal(t, tt.wantPrice, got.CurrentPrice)
			assert.Equal(t, tt.wantIsLastBidder, got.UserIsLastBidder)
		})
	}
}

func TestBuildView_Eligibility(t *testing.T) {
	open := now.Add(time.Hour)
	closed := now.Add(-time.Hour)
	tests := []struct {
		name         string
		product      *model.Product
		viewer       string
		alreadyRated bool
		want         model.AuctionView
	}{
		{
			name:    "anonymous on open auction",
			product: product(open),
			viewer:  "",
			want:    model.AuctionView{CurrentPrice: 10, Advisory: constant.LoginAdvisory},
		},
		{
			name:    "visitor on open auction can bid and chat",
			product: product(open, bid("u1", 11)),
			viewer:  "u2",
			want:    model.AuctionView{CurrentPrice: 11, CanBid: true, CanChat: true},
		},
		{
			name:    "owner on open auction cannot bid",
			product: product(open, bid("u1", 11)),
			viewer:  "owner",
			want:    model.AuctionView{CurrentPrice: 11, IsOwner: true},
		},
		{
			name:    "close date equal to now is still open",
			product: product(now),
			viewer:  "u1",
			want:    model.AuctionView{CurrentPrice: 10, CanBid: true, CanChat: true},
		},
		{
			name:    "winner of closed auction can rate",
			product: product(closed, bid("u1", 11)),
			viewer:  "u1",
			want:    model.AuctionView{CurrentPrice: 11, Closed: true, UserIsLastBidder: true, CanRate: true, CanChat: true, Won: true},
		},
		{
			name:         "winner who already rated cannot rate again",
			product:      product(closed, bid("u1", 11)),
			viewer:       "u1",
			alreadyRated: true,
			want:         model.AuctionView{CurrentPrice: 11, Closed: true, UserIsLastBidder: true, CanChat: true, Won: true},
		},
		{
			name:    "owner of sold auction can rate",
			product: product(closed, bid("u1", 11)),
			viewer:  "owner",
			want:    model.AuctionView{CurrentPrice: 11, Closed: true, IsOwner: true, CanRate: true},
		},
		{
			name:    "owner of unsold auction cannot rate",
			product: product(closed),
			viewer:  "owner",
			want:    model.AuctionView{CurrentPrice: 10, Closed: true, IsOwner: true},
		},
		{
			name:    "outbid visitor on closed auction is hidden",
			product: product(closed, bid("u2", 11), bid("u1", 12)),
			viewer:  "u2",
			want:    model.AuctionView{CurrentPrice: 12, Closed: true, CanChat: true, Hidden: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := auction.BuildView(tt.product, tt.viewer, tt.alreadyRated, now)
			assert.Equal(t, tt.want, got)
		})
	}
}
