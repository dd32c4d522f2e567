package product

import (
	"context"
	"time"

	"github.com/muhammadheryan/el-rastro/application/filter"
	"github.com/muhammadheryan/el-rastro/cmd/config"
	"github.com/muhammadheryan/el-rastro/constant"
	"github.com/muhammadheryan/el-rastro/model"
	photoRepo "github.com/muhammadheryan/el-rastro/repository/photo"
	productRepo "github.com/muhammadheryan/el-rastro/repository/product"
	ratingRepo "github.com/muhammadheryan/el-rastro/repository/rating"
	"github.com/muhammadheryan/el-rastro/repository/rest"
	"github.com/muhammadheryan/el-rastro/thirdparty/rabbitmq"
	"github.com/muhammadheryan/el-rastro/utils/errors"
	"github.com/muhammadheryan/el-rastro/utils/fanout"
	"github.com/muhammadheryan/el-rastro/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, clientID, owner string) (*model.ProductListView, error)
	CreateProduct(ctx context.Context, session *model.Session, req *model.CreateProductRequest) (*model.Product, error)
}

type productAppImpl struct {
	config      *config.Config
	filterApp   filter.FilterApp
	productRepo productRepo.ProductRepository
	photoRepo   photoRepo.PhotoRepository
	ratingRepo  ratingRepo.RatingRepository
	publisher   rabbitmq.EventPublisher
}

func NewProductApp(
	config *config.Config,
	filterApp filter.FilterApp,
	productRepo productRepo.ProductRepository,
	photoRepo photoRepo.PhotoRepository,
	ratingRepo ratingRepo.RatingRepository,
	publisher rabbitmq.EventPublisher,
) ProductApp {
	return &productAppImpl{
		config:      config,
		filterApp:   filterApp,
		productRepo: productRepo,
		photoRepo:   photoRepo,
		ratingRepo:  ratingRepo,
		publisher:   publisher,
	}
}

// ListProducts queries the listing with the client's active filters, optionally restricted to
// one owner, and enriches every product into a card.
func (s *productAppImpl) ListProducts(ctx context.Context, clientID, owner string) (*model.ProductListView, error) {
	store := s.filterApp.Current(ctx, clientID)

	products := fanout.Settle(ctx, "product list", func(ctx context.Context) ([]model.Product, error) {
		return s.productRepo.List(ctx, store.ToQuery(owner))
	}, []model.Product{})

	now := time.Now()
	cards := fanout.Map(ctx, s.config.Upstream.EnrichConcurrent, products, func(ctx context.Context, p model.Product) model.ProductCard {
		return s.buildCard(ctx, p, now)
	})

	res := &model.ProductListView{
		Loaded:         true,
		Empty:          len(cards) == 0,
		AppliedFilters: store.AppliedPills(),
		Products:       cards,
	}
	if owner != "" {
		res.Owner = model.DisplayName(owner)
		if len(cards) > 0 {
			res.OwnerPhotoURL = cards[0].OwnerPhotoURL
		}
	}
	return res, nil
}

func (s *productAppImpl) buildCard(ctx context.Context, p model.Product, now time.Time) model.ProductCard {
	card := model.ProductCard{
		ID:           p.ID,
		Title:        p.Title,
		Description:  preview(p.Description),
		CurrentPrice: p.CurrentPrice(),
		CloseDate:    p.CloseDate.Time,
		Closed:       p.CloseDate.Before(now),
		OwnerID:      p.Owner.ID,
		OwnerName:    p.Owner.DisplayName(),
	}

	fanout.Group(ctx,
		func(ctx context.Context) {
			card.PhotoURL = fanout.Settle(ctx, "product photo", func(ctx context.Context) (string, error) {
				return s.photoRepo.GetURL(ctx, p.ID)
			}, constant.PlaceholderPhotoURL)
		},
		func(ctx context.Context) {
			card.OwnerPhotoURL = fanout.Settle(ctx, "owner photo", func(ctx context.Context) (string, error) {
				return s.photoRepo.GetURL(ctx, p.Owner.ID)
			}, constant.PlaceholderPhotoURL)
		},
		func(ctx context.Context) {
			card.OwnerSoldCount = fanout.Settle(ctx, "owner sold count", func(ctx context.Context) (int, error) {
				return s.productRepo.CountSold(ctx, p.Owner.ID)
			}, constant.DefaultSoldCount)
		},
		func(ctx context.Context) {
			card.OwnerRating = fanout.Settle(ctx, "owner rating", func(ctx context.Context) (float64, error) {
				return s.ratingRepo.Average(ctx, p.Owner.ID)
			}, constant.DefaultRating)
			card.OwnerRated = card.OwnerRating > 0
		},
	)
	return card
}

// preview shortens a description to the card preview length.
func preview(description string) string {
	runes := []rune(description)
	if len(runes) <= constant.DescriptionPreviewLen {
		return description
	}
	return string(runes[:constant.DescriptionPreviewLen]) + "..."
}

// CreateProduct lists a new product for the viewer and schedules the close of its auction.
func (s *productAppImpl) CreateProduct(ctx context.Context, session *model.Session, req *model.CreateProductRequest) (*model.Product, error) {
	viewerID := session.ViewerID()
	if viewerID == "" || session.Token() == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if !req.CloseDate.After(time.Now()) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	product, err := s.productRepo.Create(ctx, session, viewerID, req)
	if err != nil {
		logger.Error("[CreateProduct] err productRepo.Create", zap.String("error", err.Error()))
		return nil, rest.AsCustomError(err)
	}

	err = s.publisher.ScheduleAuctionClose(ctx, rabbitmq.AuctionCloseMessage{ProductID: product.ID, CloseDate: product.CloseDate.Time})
	if err != nil {
		logger.Error("[CreateProduct] err publisher.ScheduleAuctionClose", zap.String("product_id", product.ID), zap.String("error", err.Error()))
	}

	err = s.publisher.PublishActivity(ctx, rabbitmq.ActivityEvent{
		Type:      constant.ActivityProductListed,
		ProductID: product.ID,
		UserID:    viewerID,
		Amount:    product.InitialPrice,
	})
	if err != nil {
		logger.Error("[CreateProduct] err publisher.PublishActivity", zap.String("error", err.Error()))
	}

	return product, nil
}
