package filter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/el-rastro/application/filter"
	"github.com/muhammadheryan/el-rastro/cmd/config"
	"github.com/muhammadheryan/el-rastro/constant"
	redismocks "github.com/muhammadheryan/el-rastro/mocks/repository/redis"
	"github.com/muhammadheryan/el-rastro/model"
	cerr "github.com/muhammadheryan/el-rastro/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testConfig = &config.Config{Auth: config.AuthConfig{SessionExpTime: time.Hour}}

type updateFunc = func(context.Context, string, time.Duration, func(*model.FilterState) (*model.FilterState, error)) (*model.FilterState, error)

// applyTo runs the update against stored and records in saved what would be written back.
func applyTo(stored *model.FilterState, saved **model.FilterState) updateFunc {
	return func(_ context.Context, _ string, _ time.Duration, mutate func(*model.FilterState) (*model.FilterState, error)) (*model.FilterState, error) {
		next, err := mutate(stored)
		if err != nil {
			return nil, err
		}
		*saved = next
		return next, nil
	}
}

func TestFilterApp_Apply(t *testing.T) {
	type fields struct {
		redisRepo *redismocks.Repository
	}
	type args struct {
		ctx      context.Context
		clientID string
	}
	stored := &model.FilterState{
		Draft:  model.FilterCriteria{Title: "lamp", MinPrice: 50, MaxPrice: 10, OrderInitialDate: -1, OrderCloseDate: -1},
		Active: model.FilterCriteria{OrderInitialDate: -1, OrderCloseDate: -1},
	}
	tests := []struct {
		name      string
		fields    fields
		args      args
		mockCall  func(f fields, saved **model.FilterState)
		want      *model.FilterStateView
		wantSaved *model.FilterState
		wantErr   bool
		errCode   string
	}{
		{
			name:   "success: applies stored draft and persists",
			fields: fields{redisRepo: redismocks.NewRepository(t)},
			args:   args{ctx: context.Background(), clientID: "c1"},
			mockCall: func(f fields, saved **model.FilterState) {
				f.redisRepo.On("UpdateFilterState", mock.Anything, "c1", time.Hour, mock.Anything).Return(applyTo(stored, saved)).Once()
			},
			want: &model.FilterStateView{
				Draft:   stored.Draft,
				Active:  stored.Draft,
				Warning: constant.InvertedPriceRangeWarning,
				Pills: []model.FilterPill{
					{Dimension: "title", Label: "Title: lamp"},
					{Dimension: "maxPrice", Label: "Max price: 10€"},
					{Dimension: "minPrice", Label: "Min price: 50€"},
				},
			},
			wantSaved: &model.FilterState{Draft: stored.Draft, Active: stored.Draft},
		},
		{
			name:   "success: no stored state starts from neutral store",
			fields: fields{redisRepo: redismocks.NewRepository(t)},
			args:   args{ctx: context.Background(), clientID: "c1"},
			mockCall: func(f fields, saved **model.FilterState) {
				f.redisRepo.On("UpdateFilterState", mock.Anything, "c1", time.Hour, mock.Anything).Return(applyTo(nil, saved)).Once()
			},
			want:      filter.NewStore().View(),
			wantSaved: filter.NewStore().State(),
		},
		{
			name:   "error: persisting fails",
			fields: fields{redisRepo: redismocks.NewRepository(t)},
			args:   args{ctx: context.Background(), clientID: "c1"},
			mockCall: func(f fields, saved **model.FilterState) {
				f.redisRepo.On("UpdateFilterState", mock.Anything, "c1", time.Hour, mock.Anything).Return(nil, errors.New("redis down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrorTypeCode[constant.ErrInternal],
		},
		{
			name:     "error: missing client id",
			fields:   fields{redisRepo: redismocks.NewRepository(t)},
			args:     args{ctx: context.Background(), clientID: ""},
			mockCall: func(f fields, saved **model.FilterState) {},
			wantErr:  true,
			errCode:  constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *model.FilterState
			tt.mockCall(tt.fields, &saved)
			s := filter.NewFilterApp(testConfig, tt.fields.redisRepo)

			got, err := s.Apply(tt.args.ctx, tt.args.clientID)
			if tt.wantErr {
				var ce cerr.CustomError
				if assert.True(t, errors.As(err, &ce)) {
					assert.Equal(t, tt.errCode, ce.ErrorCode())
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSaved, saved)
		})
	}
}

func TestFilterApp_UpdateDraftRejectsNegativePrice(t *testing.T) {
	var saved *model.FilterState
	redisRepo := redismocks.NewRepository(t)
	redisRepo.On("UpdateFilterState", mock.Anything, "c1", time.Hour, mock.Anything).Return(applyTo(nil, &saved)).Once()

	s := filter.NewFilterApp(testConfig, redisRepo)
	_, err := s.UpdateDraft(context.Background(), "c1", &model.FilterDraft{MinPrice: ptr(-4.0)})

	assert.True(t, cerr.IsType(err, constant.ErrInvalidRequest))
	assert.Nil(t, saved)
}

func TestFilterApp_ClearOne(t *testing.T) {
	var saved *model.FilterState
	redisRepo := redismocks.NewRepository(t)
	redisRepo.On("UpdateFilterState", mock.Anything, "c1", time.Hour, mock.Anything).Return(applyTo(&model.FilterState{
		Draft:  model.FilterCriteria{Title: "lamp", MinPrice: 5, OrderInitialDate: -1, OrderCloseDate: -1},
		Active: model.FilterCriteria{Title: "lamp", MinPrice: 5, OrderInitialDate: -1, OrderCloseDate: -1},
	}, &saved)).Once()

	s := filter.NewFilterApp(testConfig, redisRepo)
	got, err := s.ClearOne(context.Background(), "c1", constant.FilterTitle)

	assert.NoError(t, err)
	assert.Equal(t, model.FilterCriteria{Title: "", MinPrice: 5, OrderInitialDate: -1, OrderCloseDate: -1}, got.Active)
	assert.Equal(t, got.Active, saved.Active)
}
