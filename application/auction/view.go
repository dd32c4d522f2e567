package auction

import (
	"time"

	"github.com/muhammadheryan/el-rastro/constant"
	"github.com/muhammadheryan/el-rastro/model"
)

// BuildView derives the auction state of product for a viewer. An empty viewerID is anonymous.
// Closed is evaluated once against now and is not refreshed afterwards.
func BuildView(product *model.Product, viewerID string, alreadyRated bool, now time.Time) model.AuctionView {
	lastBid, hasBids := product.LastBid()
	loggedIn := viewerID != ""

	view := model.AuctionView{
		CurrentPrice:     product.CurrentPrice(),
		Closed:           product.CloseDate.Before(now),
		UserIsLastBidder: loggedIn && hasBids && lastBid.Bidder.ID == viewerID,
		IsOwner:          loggedIn && product.Owner.ID == viewerID,
	}

	// the parties of a closed sale are its owner and the winning bidder
	party := view.UserIsLastBidder || (view.IsOwner && hasBids)

	view.CanBid = loggedIn && !view.Closed && !view.IsOwner
	view.CanRate = loggedIn && view.Closed && party && !alreadyRated
	view.CanChat = loggedIn && !view.IsOwner
	view.Won = view.Closed && view.UserIsLastBidder
	view.Hidden = view.Closed && !view.UserIsLastBidder && !view.IsOwner
	if !loggedIn {
		view.Advisory = constant.LoginAdvisory
	}
	return view
}

// counterparty returns the other party of the sale for the viewer, empty when there is none.
func counterparty(product *model.Product, viewerID string) string {
	lastBid, hasBids := product.LastBid()
	if !hasBids {
		return ""
	}
	if product.Owner.ID == viewerID {
		return lastBid.Bidder.ID
	}
	return product.Owner.ID
}
