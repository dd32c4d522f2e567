package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/el-rastro/application/checkout"
	"github.com/muhammadheryan/el-rastro/cmd/config"
	"github.com/muhammadheryan/el-rastro/constant"
	carbonmocks "github.com/muhammadheryan/el-rastro/mocks/repository/carbon"
	photomocks "github.com/muhammadheryan/el-rastro/mocks/repository/photo"
	productmocks "github.com/muhammadheryan/el-rastro/mocks/repository/product"
	usermocks "github.com/muhammadheryan/el-rastro/mocks/repository/user"
	"github.com/muhammadheryan/el-rastro/model"
	"github.com/muhammadheryan/el-rastro/repository/rest"
	cerr "github.com/muhammadheryan/el-rastro/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	productRepo *productmocks.ProductRepository
	photoRepo   *photomocks.PhotoRepository
	userRepo    *usermocks.UserRepository
	carbonRepo  *carbonmocks.CarbonRepository
}

func newFields(t *testing.T) fields {
	return fields{
		productRepo: productmocks.NewProductRepository(t),
		photoRepo:   photomocks.NewPhotoRepository(t),
		userRepo:    usermocks.NewUserRepository(t),
		carbonRepo:  carbonmocks.NewCarbonRepository(t),
	}
}

func (f fields) app() checkout.CheckoutApp {
	return checkout.NewCheckoutApp(&config.Config{}, f.productRepo, f.photoRepo, f.userRepo, f.carbonRepo)
}

var (
	buyer       = &model.Session{ID: "s1", UserID: "u1", AccessToken: "tok"}
	ownerPlace  = &model.Location{Lat: 40.4168, Lon: -3.7038}
	buyerPlace  = &model.Location{Lat: 41.3874, Lon: 2.1686}
	defaultDest = model.Location{Lat: constant.DefaultCheckoutLat, Lon: constant.DefaultCheckoutLon}
)

func wonProduct(winner string) *model.Product {
	return &model.Product{
		ID:           "p1",
		Title:        "Lamp",
		Description:  "Brass lamp",
		InitialPrice: 10,
		CloseDate:    model.NewTime(time.Now().Add(-time.Hour)),
		Weight:       2,
		Owner:        model.User{ID: "u2", Location: ownerPlace},
		Bids:         []model.Bid{{ID: "b1", Amount: 20, Bidder: model.UserRef{ID: winner}}},
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestCheckoutApp_GetCheckout(t *testing.T) {
	tests := []struct {
		name     string
		session  *model.Session
		mockCall func(f fields)
		want     *model.CheckoutView
		errType  constant.ErrorType
	}{
		{
			name:    "success: emissions from owner to buyer location",
			session: buyer,
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(wonProduct("u1"), nil).Once()
				f.photoRepo.On("GetURL", mock.Anything, "p1").Return("https://img/p1", nil).Once()
				f.userRepo.On("GetMe", mock.Anything, buyer).Return(&model.User{ID: "u1", Location: buyerPlace}, nil).Once()
				f.carbonRepo.On("Estimate", mock.Anything, &model.CarbonEstimateQuery{
					Origin:      *ownerPlace,
					Destination: *buyerPlace,
					Weight:      2,
				}).Return(1.234, nil).Once()
			},
			want: &model.CheckoutView{
				Product:      model.ProductSummary{ID: "p1", Title: "Lamp"},
				Description:  "Brass lamp",
				PhotoURL:     "https://img/p1",
				CurrentPrice: 20,
				CO2:          floatPtr(1.234),
				Total:        21.23,
			},
		},
		{
			name:    "success: buyer lookup fails, default destination",
			session: buyer,
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(wonProduct("u1"), nil).Once()
				f.photoRepo.On("GetURL", mock.Anything, "p1").Return("", errors.New("connection refused")).Once()
				f.userRepo.On("GetMe", mock.Anything, buyer).Return(nil, errors.New("connection refused")).Once()
				f.carbonRepo.On("Estimate", mock.Anything, &model.CarbonEstimateQuery{
					Origin:      *ownerPlace,
					Destination: defaultDest,
					Weight:      2,
				}).Return(0.5, nil).Once()
			},
			want: &model.CheckoutView{
				Product:      model.ProductSummary{ID: "p1", Title: "Lamp"},
				Description:  "Brass lamp",
				PhotoURL:     constant.PlaceholderPhotoURL,
				CurrentPrice: 20,
				CO2:          floatPtr(0.5),
				Total:        20.5,
			},
		},
		{
			name:    "success: carbon failure leaves estimate absent",
			session: buyer,
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(wonProduct("u1"), nil).Once()
				f.photoRepo.On("GetURL", mock.Anything, "p1").Return("https://img/p1", nil).Once()
				f.userRepo.On("GetMe", mock.Anything, buyer).Return(&model.User{ID: "u1"}, nil).Once()
				f.carbonRepo.On("Estimate", mock.Anything, mock.Anything).Return(0.0, errors.New("connection refused")).Once()
			},
			want: &model.CheckoutView{
				Product:      model.ProductSummary{ID: "p1", Title: "Lamp"},
				Description:  "Brass lamp",
				PhotoURL:     "https://img/p1",
				CurrentPrice: 20,
				Total:        20,
			},
		},
		{
			name:    "error: viewer did not win",
			session: buyer,
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(wonProduct("u3"), nil).Once()
				f.photoRepo.On("GetURL", mock.Anything, "p1").Return("https://img/p1", nil).Once()
			},
			errType: constant.ErrNotFound,
		},
		{
			name:    "error: product not found",
			session: buyer,
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(nil, rest.ErrNotFound).Once()
				f.photoRepo.On("GetURL", mock.Anything, "p1").Return("https://img/p1", nil).Once()
			},
			errType: constant.ErrNotFound,
		},
		{
			name:     "error: anonymous",
			session:  nil,
			mockCall: func(f fields) {},
			errType:  constant.ErrUnauthorize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().GetCheckout(context.Background(), tt.session, "p1")
			if tt.want == nil {
				require.Error(t, err)
				assert.True(t, cerr.IsType(err, tt.errType), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckoutApp_ConfirmPayment(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		want     *model.PaymentResult
		errType  constant.ErrorType
	}{
		{
			name: "success",
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(wonProduct("u1"), nil).Once()
				f.productRepo.On("ConfirmPayment", mock.Anything, buyer, "p1").Return(nil).Once()
			},
			want: &model.PaymentResult{ProductID: "p1", Paid: true},
		},
		{
			name: "error: viewer did not win",
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(wonProduct("u3"), nil).Once()
			},
			errType: constant.ErrNotFound,
		},
		{
			name: "error: product service down",
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(wonProduct("u1"), nil).Once()
				f.productRepo.On("ConfirmPayment", mock.Anything, buyer, "p1").Return(errors.New("connection refused")).Once()
			},
			errType: constant.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().ConfirmPayment(context.Background(), buyer, "p1")
			if tt.want == nil {
				require.Error(t, err)
				assert.True(t, cerr.IsType(err, tt.errType), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
