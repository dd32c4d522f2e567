package auction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/el-rastro/application/auction"
	"github.com/muhammadheryan/el-rastro/cmd/config"
	"github.com/muhammadheryan/el-rastro/constant"
	bidmocks "github.com/muhammadheryan/el-rastro/mocks/repository/bid"
	photomocks "github.com/muhammadheryan/el-rastro/mocks/repository/photo"
	productmocks "github.com/muhammadheryan/el-rastro/mocks/repository/product"
	ratingmocks "github.com/muhammadheryan/el-rastro/mocks/repository/rating"
	publishermocks "github.com/muhammadheryan/el-rastro/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/el-rastro/model"
	"github.com/muhammadheryan/el-rastro/repository/rest"
	"github.com/muhammadheryan/el-rastro/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/el-rastro/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	productRepo *productmocks.ProductRepository
	photoRepo   *photomocks.PhotoRepository
	ratingRepo  *ratingmocks.RatingRepository
	bidRepo     *bidmocks.BidRepository
	publisher   *publishermocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		productRepo: productmocks.NewProductRepository(t),
		photoRepo:   photomocks.NewPhotoRepository(t),
		ratingRepo:  ratingmocks.NewRatingRepository(t),
		bidRepo:     bidmocks.NewBidRepository(t),
		publisher:   publishermocks.NewEventPublisher(t),
	}
}

func (f fields) app() auction.AuctionApp {
	return auction.NewAuctionApp(&config.Config{}, f.productRepo, f.photoRepo, f.ratingRepo, f.bidRepo, f.publisher)
}

func assertErrCode(t *testing.T, err error, errType constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if assert.True(t, errors.As(err, &ce)) {
		assert.Equal(t, constant.ErrorTypeCode[errType], ce.ErrorCode())
	}
}

var viewer = &model.Session{ID: "s1", UserID: "u1", AccessToken: "tok"}

func TestAuctionApp_PlaceBid(t *testing.T) {
	open := time.Now().Add(24 * time.Hour)
	type args struct {
		session *model.Session
		amount  float64
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.AuctionView
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: exactly one POST and local patch",
			args: args{session: viewer, amount: 16},
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(product(open, bid("u2", 15)), nil).Once()
				f.bidRepo.On("Place", mock.Anything, viewer, "p1", "u1", 16.0).Return(nil).Once()
				f.publisher.On("PublishActivity", mock.Anything, mock.MatchedBy(func(e rabbitmq.ActivityEvent) bool {
					return e.Type == constant.ActivityBidPlaced && e.ProductID == "p1" && e.UserID == "u1" && e.Amount == 16
				})).Return(nil).Once()
			},
			want: &model.AuctionView{CurrentPrice: 16, UserIsLastBidder: true, CanBid: true, CanChat: true, BidDone: true},
		},
		{
			name: "success: publish failure does not fail the bid",
			args: args{session: viewer, amount: 11},
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(product(open), nil).Once()
				f.bidRepo.On("Place", mock.Anything, viewer, "p1", "u1", 11.0).Return(nil).Once()
				f.publisher.On("PublishActivity", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			want: &model.AuctionView{CurrentPrice: 11, UserIsLastBidder: true, CanBid: true, CanChat: true, BidDone: true},
		},
		{
			name: "error: amount equal to current price never posts",
			args: args{session: viewer, amount: 15},
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(product(open, bid("u2", 15)), nil).Once()
			},
			wantErr: true,
			errType: constant.ErrBidTooLow,
		},
		{
			name: "error: amount below initial price never posts",
			args: args{session: viewer, amount: 9},
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(product(open), nil).Once()
			},
			wantErr: true,
			errType: constant.ErrBidTooLow,
		},
		{
			name: "error: owner cannot bid",
			args: args{session: &model.Session{UserID: "owner", AccessToken: "tok"}, amount: 50},
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(product(open), nil).Once()
			},
			wantErr: true,
			errType: constant.ErrOwnerCannotBid,
		},
		{
			name: "error: closed auction",
			args: args{session: viewer, amount: 50},
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(product(time.Now().Add(-time.Hour)), nil).Once()
			},
			wantErr: true,
			errType: constant.ErrAuctionClosed,
		},
		{
			name:     "error: anonymous viewer makes no call",
			args:     args{session: nil, amount: 50},
			mockCall: func(f fields) {},
			wantErr:  true,
			errType:  constant.ErrUnauthorize,
		},
		{
			name: "error: product not found",
			args: args{session: viewer, amount: 50},
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(nil, rest.ErrNotFound).Once()
			},
			wantErr: true,
			errType: constant.ErrNotFound,
		},
		{
			name: "error: bid service failure",
			args: args{session: viewer, amount: 50},
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(product(open), nil).Once()
				f.bidRepo.On("Place", mock.Anything, viewer, "p1", "u1", 50.0).Return(&rest.StatusError{StatusCode: 500}).Once()
			},
			wantErr: true,
			errType: constant.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().PlaceBid(context.Background(), tt.args.session, "p1", tt.args.amount)
			if tt.wantErr {
				// strict mocks fail the test on any Place call that was not expected
				assertErrCode(t, err, tt.errType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuctionApp_SubmitRating(t *testing.T) {
	closed := time.Now().Add(-time.Hour)
	tests := []struct {
		name     string
		value    float64
		mockCall func(f fields)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name:  "success: winner rates owner",
			value: 4,
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(product(closed, bid("u1", 11)), nil).Once()
				f.ratingRepo.On("ListForUser", mock.Anything, "owner").Return([]model.Rating{}, nil).Once()
				f.ratingRepo.On("Submit", mock.Anything, viewer, "p1", 4.0).Return(nil).Once()
				f.publisher.On("PublishActivity", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:     "error: value above 5 makes no call",
			value:    6,
			mockCall: func(f fields) {},
			wantErr:  true,
			errType:  constant.ErrInvalidRating,
		},
		{
			name:     "error: value below 1 makes no call",
			value:    0,
			mockCall: func(f fields) {},
			wantErr:  true,
			errType:  constant.ErrInvalidRating,
		},
		{
			name:  "error: auction still open",
			value: 3,
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(product(time.Now().Add(time.Hour), bid("u1", 11)), nil).Once()
			},
			wantErr: true,
			errType: constant.ErrAuctionOpen,
		},
		{
			name:  "error: viewer is not a party",
			value: 3,
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(product(closed, bid("u9", 11)), nil).Once()
			},
			wantErr: true,
			errType: constant.ErrNotParty,
		},
		{
			name:  "error: already rated",
			value: 3,
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, "p1").Return(product(closed, bid("u1", 11)), nil).Once()
				f.ratingRepo.On("ListForUser", mock.Anything, "owner").Return([]model.Rating{
					{Value: 5, Product: model.Ref{ID: "p1"}},
				}, nil).Once()
			},
			wantErr: true,
			errType: constant.ErrAlreadyRated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().SubmitRating(context.Background(), viewer, "p1", tt.value)
			if tt.wantErr {
				assertErrCode(t, err, tt.errType)
				f.ratingRepo.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, got.Rating)
			assert.False(t, got.CanRate)
		})
	}
}

func TestAuctionApp_GetAuction(t *testing.T) {
	t.Run("fallbacks: photo placeholder and no rating", func(t *testing.T) {
		f := newFields(t)
		p := product(time.Now().Add(-time.Hour), bid("u1", 20))
		p.Owner.Location = &model.Location{Lat: 40.4, Lon: -3.7}
		f.productRepo.On("Get", mock.Anything, "p1").Return(p, nil).Once()
		f.photoRepo.On("GetURL", mock.Anything, "p1").Return("", errors.New("connection refused")).Once()
		f.ratingRepo.On("ListForUser", mock.Anything, "owner").Return(nil, errors.New("connection refused")).Once()

		got, err := f.app().GetAuction(context.Background(), viewer, "p1")

		require.NoError(t, err)
		assert.Equal(t, constant.PlaceholderPhotoURL, got.PhotoURL)
		assert.Equal(t, model.ProductSummary{ID: "p1", Title: "Lamp"}, got.Product)
		assert.Equal(t, "ana", got.Details.OwnerName)
		assert.Equal(t, p.Owner.Location, got.Details.Location)
		assert.True(t, got.View.Won)
		assert.True(t, got.View.CanRate)
		assert.Equal(t, 0.0, got.View.Rating)
	})

	t.Run("existing rating disables rating", func(t *testing.T) {
		f := newFields(t)
		f.productRepo.On("Get", mock.Anything, "p1").Return(product(time.Now().Add(-time.Hour), bid("u1", 20)), nil).Once()
		f.photoRepo.On("GetURL", mock.Anything, "p1").Return("https://img/p1.jpg", nil).Once()
		f.ratingRepo.On("ListForUser", mock.Anything, "owner").Return([]model.Rating{{Value: 4, Product: model.Ref{ID: "p1"}}}, nil).Once()

		got, err := f.app().GetAuction(context.Background(), viewer, "p1")

		require.NoError(t, err)
		assert.Equal(t, "https://img/p1.jpg", got.PhotoURL)
		assert.Equal(t, 4.0, got.View.Rating)
		assert.False(t, got.View.CanRate)
	})

	t.Run("anonymous viewer gets advisory", func(t *testing.T) {
		f := newFields(t)
		f.productRepo.On("Get", mock.Anything, "p1").Return(product(time.Now().Add(time.Hour)), nil).Once()
		f.photoRepo.On("GetURL", mock.Anything, "p1").Return("https://img/p1.jpg", nil).Once()

		got, err := f.app().GetAuction(context.Background(), nil, "p1")

		require.NoError(t, err)
		assert.Equal(t, constant.LoginAdvisory, got.View.Advisory)
		assert.False(t, got.View.CanBid)
	})

	t.Run("product not found", func(t *testing.T) {
		f := newFields(t)
		f.productRepo.On("Get", mock.Anything, "bad").Return(nil, rest.ErrNotFound).Once()
		f.photoRepo.On("GetURL", mock.Anything, "bad").Return("", rest.ErrNotFound).Once()

		_, err := f.app().GetAuction(context.Background(), viewer, "bad")

		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestAuctionApp_CloseAuction(t *testing.T) {
	t.Run("publishes winner", func(t *testing.T) {
		f := newFields(t)
		f.productRepo.On("Get", mock.Anything, "p1").Return(product(time.Now().Add(-time.Minute), bid("u2", 12), bid("u1", 14)), nil).Once()
		f.publisher.On("PublishActivity", mock.Anything, mock.MatchedBy(func(e rabbitmq.ActivityEvent) bool {
			return e.Type == constant.ActivityAuctionWon && e.UserID == "u1" && e.Amount == 14
		})).Return(nil).Once()

		assert.NoError(t, f.app().CloseAuction(context.Background(), "p1"))
	})

	t.Run("no bids publishes nothing", func(t *testing.T) {
		f := newFields(t)
		f.productRepo.On("Get", mock.Anything, "p1").Return(product(time.Now().Add(-time.Minute)), nil).Once()

		assert.NoError(t, f.app().CloseAuction(context.Background(), "p1"))
	})

	t.Run("still open", func(t *testing.T) {
		f := newFields(t)
		f.productRepo.On("Get", mock.Anything, "p1").Return(product(time.Now().Add(time.Hour)), nil).Once()

		assertErrCode(t, f.app().CloseAuction(context.Background(), "p1"), constant.ErrAuctionOpen)
	})
}

func TestAuctionApp_GetUserBids(t *testing.T) {
	t.Run("other user's bids are not found", func(t *testing.T) {
		f := newFields(t)
		_, err := f.app().GetUserBids(context.Background(), viewer, "u2")
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("failure falls back to empty groups", func(t *testing.T) {
		f := newFields(t)
		f.productRepo.On("GetUserBids", mock.Anything, "u1").Return(nil, errors.New("connection refused")).Once()

		got, err := f.app().GetUserBids(context.Background(), viewer, "u1")

		require.NoError(t, err)
		assert.True(t, got.Loaded)
		assert.True(t, got.Empty)
		assert.NotNil(t, got.Bids.Open)
	})

	t.Run("groups are returned", func(t *testing.T) {
		f := newFields(t)
		bids := &model.UserBids{Open: []model.Product{*product(time.Now())}, Won: []model.Product{}, Lost: []model.Product{}}
		f.productRepo.On("GetUserBids", mock.Anything, "u1").Return(bids, nil).Once()

		got, err := f.app().GetUserBids(context.Background(), viewer, "u1")

		require.NoError(t, err)
		assert.False(t, got.Empty)
		assert.Equal(t, *bids, got.Bids)
	})
}
