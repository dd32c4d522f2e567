package auction

import (
	"context"
	"time"

	"github.com/muhammadheryan/el-rastro/cmd/config"
	"github.com/muhammadheryan/el-rastro/constant"
	"github.com/muhammadheryan/el-rastro/model"
	bidrepo "github.com/muhammadheryan/el-rastro/repository/bid"
	photorepo "github.com/muhammadheryan/el-rastro/repository/photo"
	productrepo "github.com/muhammadheryan/el-rastro/repository/product"
	ratingrepo "github.com/muhammadheryan/el-rastro/repository/rating"
	"github.com/muhammadheryan/el-rastro/repository/rest"
	"github.com/muhammadheryan/el-rastro/thirdparty/rabbitmq"
	"github.com/muhammadheryan/el-rastro/utils/errors"
	"github.com/muhammadheryan/el-rastro/utils/fanout"
	"github.com/muhammadheryan/el-rastro/utils/logger"
	"go.uber.org/zap"
)

type AuctionApp interface {
	GetAuction(ctx context.Context, session *model.Session, productID string) (*model.AuctionPage, error)
	PlaceBid(ctx context.Context, session *model.Session, productID string, amount float64) (*model.AuctionView, error)
	SubmitRating(ctx context.Context, session *model.Session, productID string, value float64) (*model.AuctionView, error)
	CloseAuction(ctx context.Context, productID string) error
	GetUserBids(ctx context.Context, session *model.Session, userID string) (*model.UserBidsView, error)
}

type AuctionAppImpl struct {
	config      *config.Config
	productRepo productrepo.ProductRepository
	photoRepo   photorepo.PhotoRepository
	ratingRepo  ratingrepo.RatingRepository
	bidRepo     bidrepo.BidRepository
	publisher   rabbitmq.EventPublisher
}

func NewAuctionApp(
	config *config.Config,
	productRepo productrepo.ProductRepository,
	photoRepo photorepo.PhotoRepository,
	ratingRepo ratingrepo.RatingRepository,
	bidRepo bidrepo.BidRepository,
	publisher rabbitmq.EventPublisher,
) AuctionApp {
	return &AuctionAppImpl{
		config:      config,
		productRepo: productRepo,
		photoRepo:   photoRepo,
		ratingRepo:  ratingRepo,
		bidRepo:     bidRepo,
		publisher:   publisher,
	}
}

func (s *AuctionAppImpl) GetAuction(ctx context.Context, session *model.Session, productID string) (*model.AuctionPage, error) {
	var (
		product    *model.Product
		productErr error
		photoURL   string
	)
	fanout.Group(ctx,
		func(ctx context.Context) {
			product, productErr = s.productRepo.Get(ctx, productID)
		},
		func(ctx context.Context) {
			photoURL = fanout.Settle(ctx, "photo", func(ctx context.Context) (string, error) {
				return s.photoRepo.GetURL(ctx, productID)
			}, constant.PlaceholderPhotoURL)
		},
	)
	if productErr != nil {
		logger.Error("[GetAuction] err productRepo.Get", zap.String("product_id", productID), zap.String("error", productErr.Error()))
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	viewerID := session.ViewerID()
	now := time.Now()
	var rating float64
	if viewerID != "" && product.CloseDate.Before(now) {
		rating = s.existingRating(ctx, product, viewerID)
	}
	view := withRating(BuildView(product, viewerID, rating > 0, now), rating)

	return &model.AuctionPage{
		Product: model.ProductSummary{ID: product.ID, Title: product.Title},
		Details: model.AuctionDetails{
			Description: product.Description,
			CloseDate:   product.CloseDate.Time,
			OwnerID:     product.Owner.ID,
			OwnerName:   product.Owner.DisplayName(),
			Location:    product.Owner.Location,
			Weight:      product.Weight,
		},
		PhotoURL: photoURL,
		View:     view,
	}, nil
}

func (s *AuctionAppImpl) PlaceBid(ctx context.Context, session *model.Session, productID string, amount float64) (*model.AuctionView, error) {
	viewerID := session.ViewerID()
	if viewerID == "" || session.Token() == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	product, err := s.productRepo.Get(ctx, productID)
	if err != nil {
		logger.Error("[PlaceBid] err productRepo.Get", zap.String("product_id", productID), zap.String("error", err.Error()))
		return nil, rest.AsCustomError(err)
	}

	view := BuildView(product, viewerID, false, time.Now())
	switch {
	case view.Closed:
		return nil, errors.SetCustomError(constant.ErrAuctionClosed)
	case view.IsOwner:
		return nil, errors.SetCustomError(constant.ErrOwnerCannotBid)
	case amount <= view.CurrentPrice:
		return nil, errors.SetCustomError(constant.ErrBidTooLow)
	}

	if err := s.bidRepo.Place(ctx, session, productID, viewerID, amount); err != nil {
		logger.Error("[PlaceBid] err bidRepo.Place", zap.String("product_id", productID), zap.String("error", err.Error()))
		return nil, rest.AsCustomError(err)
	}

	view.CurrentPrice = amount
	view.UserIsLastBidder = true
	view.BidDone = true

	s.publish(ctx, "PlaceBid", rabbitmq.ActivityEvent{
		Type:      constant.ActivityBidPlaced,
		ProductID: productID,
		UserID:    viewerID,
		Amount:    amount,
	})

	return &view, nil
}

func (s *AuctionAppImpl) SubmitRating(ctx context.Context, session *model.Session, productID string, value float64) (*model.AuctionView, error) {
	viewerID := session.ViewerID()
	if viewerID == "" || session.Token() == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if value < 1 || value > 5 {
		return nil, errors.SetCustomError(constant.ErrInvalidRating)
	}

	product, err := s.productRepo.Get(ctx, productID)
	if err != nil {
		logger.Error("[SubmitRating] err productRepo.Get", zap.String("product_id", productID), zap.String("error", err.Error()))
		return nil, rest.AsCustomError(err)
	}

	now := time.Now()
	view := BuildView(product, viewerID, false, now)
	if !view.Closed {
		return nil, errors.SetCustomError(constant.ErrAuctionOpen)
	}
	if !view.CanRate {
		return nil, errors.SetCustomError(constant.ErrNotParty)
	}
	if s.existingRating(ctx, product, viewerID) > 0 {
		return nil, errors.SetCustomError(constant.ErrAlreadyRated)
	}

	if err := s.ratingRepo.Submit(ctx, session, productID, value); err != nil {
		logger.Error("[SubmitRating] err ratingRepo.Submit", zap.String("product_id", productID), zap.String("error", err.Error()))
		return nil, rest.AsCustomError(err)
	}

	s.publish(ctx, "SubmitRating", rabbitmq.ActivityEvent{
		Type:      constant.ActivityRatingSubmitted,
		ProductID: productID,
		UserID:    viewerID,
		Amount:    value,
	})

	view = withRating(BuildView(product, viewerID, true, now), value)
	return &view, nil
}

// CloseAuction announces the winner of a closed auction. It is driven by the auction-close consumer.
func (s *AuctionAppImpl) CloseAuction(ctx context.Context, productID string) error {
	product, err := s.productRepo.Get(ctx, productID)
	if err != nil {
		logger.Error("[CloseAuction] err productRepo.Get", zap.String("product_id", productID), zap.String("error", err.Error()))
		return rest.AsCustomError(err)
	}
	if !product.CloseDate.Before(time.Now()) {
		return errors.SetCustomError(constant.ErrAuctionOpen)
	}

	lastBid, ok := product.LastBid()
	if !ok {
		logger.Info("auction closed without bids", zap.String("product_id", productID))
		return nil
	}

	err = s.publisher.PublishActivity(ctx, rabbitmq.ActivityEvent{
		Type:      constant.ActivityAuctionWon,
		ProductID: productID,
		UserID:    lastBid.Bidder.ID,
		Amount:    lastBid.Amount,
	})
	if err != nil {
		logger.Error("[CloseAuction] err publisher.PublishActivity", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// GetUserBids lists the open, won and lost auctions of the viewer. Other users' bids are not visible.
func (s *AuctionAppImpl) GetUserBids(ctx context.Context, session *model.Session, userID string) (*model.UserBidsView, error) {
	if session.ViewerID() == "" || session.ViewerID() != userID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	empty := &model.UserBids{Open: []model.Product{}, Won: []model.Product{}, Lost: []model.Product{}}
	bids := fanout.Settle(ctx, "user bids", func(ctx context.Context) (*model.UserBids, error) {
		return s.productRepo.GetUserBids(ctx, userID)
	}, empty)

	return &model.UserBidsView{
		Loaded: true,
		Empty:  len(bids.Open) == 0 && len(bids.Won) == 0 && len(bids.Lost) == 0,
		Bids:   *bids,
	}, nil
}

// existingRating returns the rating the viewer already gave for this sale, 0 when none or unknown.
func (s *AuctionAppImpl) existingRating(ctx context.Context, product *model.Product, viewerID string) float64 {
	other := counterparty(product, viewerID)
	if other == "" {
		return constant.DefaultRating
	}
	ratings := fanout.Settle(ctx, "counterparty ratings", func(ctx context.Context) ([]model.Rating, error) {
		return s.ratingRepo.ListForUser(ctx, other)
	}, nil)
	return model.FindProductRating(ratings, product.ID)
}

func (s *AuctionAppImpl) publish(ctx context.Context, method string, event rabbitmq.ActivityEvent) {
	if err := s.publisher.PublishActivity(ctx, event); err != nil {
		logger.Error("["+method+"] err publisher.PublishActivity", zap.String("error", err.Error()))
	}
}

func withRating(view model.AuctionView, rating float64) model.AuctionView {
	view.Rating = rating
	return view
}
