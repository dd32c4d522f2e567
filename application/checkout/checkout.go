package checkout

import (
	"context"
	"math"
	"time"

	"github.com/muhammadheryan/el-rastro/application/auction"
	"github.com/muhammadheryan/el-rastro/cmd/config"
	"github.com/muhammadheryan/el-rastro/constant"
	"github.com/muhammadheryan/el-rastro/model"
	carbonrepo "github.com/muhammadheryan/el-rastro/repository/carbon"
	photorepo "github.com/muhammadheryan/el-rastro/repository/photo"
	productrepo "github.com/muhammadheryan/el-rastro/repository/product"
	"github.com/muhammadheryan/el-rastro/repository/rest"
	userrepo "github.com/muhammadheryan/el-rastro/repository/user"
	"github.com/muhammadheryan/el-rastro/utils/errors"
	"github.com/muhammadheryan/el-rastro/utils/fanout"
	"github.com/muhammadheryan/el-rastro/utils/logger"
	"go.uber.org/zap"
)

type CheckoutApp interface {
	GetCheckout(ctx context.Context, session *model.Session, productID string) (*model.CheckoutView, error)
	ConfirmPayment(ctx context.Context, session *model.Session, productID string) (*model.PaymentResult, error)
}

type CheckoutAppImpl struct {
	config      *config.Config
	productRepo productrepo.ProductRepository
	photoRepo   photorepo.PhotoRepository
	userRepo    userrepo.UserRepository
	carbonRepo  carbonrepo.CarbonRepository
}

func NewCheckoutApp(
	config *config.Config,
	productRepo productrepo.ProductRepository,
	photoRepo photorepo.PhotoRepository,
	userRepo userrepo.UserRepository,
	carbonRepo carbonrepo.CarbonRepository,
) CheckoutApp {
	return &CheckoutAppImpl{
		config:      config,
		productRepo: productRepo,
		photoRepo:   photoRepo,
		userRepo:    userRepo,
		carbonRepo:  carbonRepo,
	}
}

// GetCheckout builds the payment summary of a won auction. Only the winning bidder may see it.
func (s *CheckoutAppImpl) GetCheckout(ctx context.Context, session *model.Session, productID string) (*model.CheckoutView, error) {
	if session.Token() == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

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
			photoURL = fanout.Settle(ctx, "checkout photo", func(ctx context.Context) (string, error) {
				return s.photoRepo.GetURL(ctx, productID)
			}, constant.PlaceholderPhotoURL)
		},
	)
	if productErr != nil {
		logger.Error("[GetCheckout] err productRepo.Get", zap.String("product_id", productID), zap.String("error", productErr.Error()))
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	view := auction.BuildView(product, session.ViewerID(), false, time.Now())
	if !view.Won {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	res := &model.CheckoutView{
		Product:      model.ProductSummary{ID: product.ID, Title: product.Title},
		Description:  product.Description,
		PhotoURL:     photoURL,
		CurrentPrice: view.CurrentPrice,
		Total:        view.CurrentPrice,
	}
	if co2, ok := s.estimateShipping(ctx, session, product); ok {
		res.CO2 = &co2
		res.Total = math.Floor((view.CurrentPrice+co2)*100) / 100
	}
	return res, nil
}

// estimateShipping asks the carbon service for the emissions of shipping product from its owner
// to the viewer. The viewer location falls back to a fixed default.
func (s *CheckoutAppImpl) estimateShipping(ctx context.Context, session *model.Session, product *model.Product) (float64, bool) {
	if product.Owner.Location == nil {
		return 0, false
	}

	destination := model.Location{Lat: constant.DefaultCheckoutLat, Lon: constant.DefaultCheckoutLon}
	me, err := s.userRepo.GetMe(ctx, session)
	if err != nil {
		logger.Warn("[GetCheckout] err userRepo.GetMe, using default location", zap.String("error", err.Error()))
	} else if me.Location != nil {
		destination = *me.Location
	}

	co2, err := s.carbonRepo.Estimate(ctx, &model.CarbonEstimateQuery{
		Origin:      *product.Owner.Location,
		Destination: destination,
		Weight:      product.Weight,
	})
	if err != nil {
		logger.Error("[GetCheckout] err carbonRepo.Estimate", zap.String("error", err.Error()))
		return 0, false
	}
	return co2, true
}

// ConfirmPayment notifies the product service once the payment provider approved the order.
func (s *CheckoutAppImpl) ConfirmPayment(ctx context.Context, session *model.Session, productID string) (*model.PaymentResult, error) {
	if session.Token() == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	product, err := s.productRepo.Get(ctx, productID)
	if err != nil {
		logger.Error("[ConfirmPayment] err productRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !auction.BuildView(product, session.ViewerID(), false, time.Now()).Won {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.productRepo.ConfirmPayment(ctx, session, productID); err != nil {
		logger.Error("[ConfirmPayment] err productRepo.ConfirmPayment", zap.String("error", err.Error()))
		return nil, rest.AsCustomError(err)
	}

	return &model.PaymentResult{ProductID: productID, Paid: true}, nil
}
