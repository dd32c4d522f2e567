package filter

import (
	"context"

	"github.com/muhammadheryan/el-rastro/cmd/config"
	"github.com/muhammadheryan/el-rastro/constant"
	"github.com/muhammadheryan/el-rastro/model"
	redisrepo "github.com/muhammadheryan/el-rastro/repository/redis"
	"github.com/muhammadheryan/el-rastro/utils/errors"
	"github.com/muhammadheryan/el-rastro/utils/logger"
	"go.uber.org/zap"
)

// FilterApp keeps one filter store per client (session or anonymous client id).
type FilterApp interface {
	Current(ctx context.Context, clientID string) Store
	Get(ctx context.Context, clientID string) (*model.FilterStateView, error)
	UpdateDraft(ctx context.Context, clientID string, draft *model.FilterDraft) (*model.FilterStateView, error)
	Apply(ctx context.Context, clientID string) (*model.FilterStateView, error)
	ClearAll(ctx context.Context, clientID string) (*model.FilterStateView, error)
	ClearOne(ctx context.Context, clientID string, dimension constant.FilterDimension) (*model.FilterStateView, error)
}

type FilterAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewFilterApp(config *config.Config, redisRepo redisrepo.Repository) FilterApp {
	return &FilterAppImpl{
		config:    config,
		redisRepo: redisRepo,
	}
}

// Current returns the stored filters of the client, or a neutral store when none can be read.
func (s *FilterAppImpl) Current(ctx context.Context, clientID string) Store {
	if clientID == "" {
		return NewStore()
	}
	state, err := s.redisRepo.GetFilterState(ctx, clientID)
	if err != nil {
		logger.Error("[Current] err redisRepo.GetFilterState", zap.String("error", err.Error()))
		return NewStore()
	}
	return FromState(state)
}

func (s *FilterAppImpl) Get(ctx context.Context, clientID string) (*model.FilterStateView, error) {
	return s.Current(ctx, clientID).View(), nil
}

func (s *FilterAppImpl) UpdateDraft(ctx context.Context, clientID string, draft *model.FilterDraft) (*model.FilterStateView, error) {
	return s.update(ctx, "UpdateDraft", clientID, func(store *Store) error {
		if err := store.SetDraft(*draft); err != nil {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		return nil
	})
}

func (s *FilterAppImpl) Apply(ctx context.Context, clientID string) (*model.FilterStateView, error) {
	return s.update(ctx, "Apply", clientID, func(store *Store) error {
		store.Apply()
		return nil
	})
}

func (s *FilterAppImpl) ClearAll(ctx context.Context, clientID string) (*model.FilterStateView, error) {
	return s.update(ctx, "ClearAll", clientID, func(store *Store) error {
		store.ClearAll()
		return nil
	})
}

func (s *FilterAppImpl) ClearOne(ctx context.Context, clientID string, dimension constant.FilterDimension) (*model.FilterStateView, error) {
	return s.update(ctx, "ClearOne", clientID, func(store *Store) error {
		if err := store.ClearOne(dimension); err != nil {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		return nil
	})
}

func (s *FilterAppImpl) update(ctx context.Context, method, clientID string, mutate func(*Store) error) (*model.FilterStateView, error) {
	if clientID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var (
		view      *model.FilterStateView
		mutateErr error
	)
	_, err := s.redisRepo.UpdateFilterState(ctx, clientID, s.config.Auth.SessionExpTime, func(state *model.FilterState) (*model.FilterState, error) {
		store := FromState(state)
		if mutateErr = mutate(&store); mutateErr != nil {
			return nil, mutateErr
		}
		view = store.View()
		return store.State(), nil
	})
	if mutateErr != nil {
		return nil, mutateErr
	}
	if err != nil {
		logger.Error("["+method+"] err redisRepo.UpdateFilterState", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return view, nil
}
