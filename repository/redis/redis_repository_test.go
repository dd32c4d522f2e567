package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/el-rastro/model"
	redisrepo "github.com/muhammadheryan/el-rastro/repository/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_UpdateFilterStateWithoutRedis(t *testing.T) {
	repo := redisrepo.NewRepository(nil)

	tests := []struct {
		name    string
		mutate  func(*model.FilterState) (*model.FilterState, error)
		want    *model.FilterState
		wantErr bool
	}{
		{
			name: "success: mutate starts from no state",
			mutate: func(state *model.FilterState) (*model.FilterState, error) {
				assert.Nil(t, state)
				return &model.FilterState{Draft: model.FilterCriteria{Title: "lamp"}}, nil
			},
			want: &model.FilterState{Draft: model.FilterCriteria{Title: "lamp"}},
		},
		{
			name: "error: mutate error is returned as is",
			mutate: func(*model.FilterState) (*model.FilterState, error) {
				return nil, errors.New("invalid draft")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.UpdateFilterState(context.Background(), "c1", time.Hour, tt.mutate)
			if tt.wantErr {
				assert.EqualError(t, err, "invalid draft")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepository_SessionsWithoutRedis(t *testing.T) {
	repo := redisrepo.NewRepository(nil)
	ctx := context.Background()

	require.NoError(t, repo.SetSession(ctx, &model.Session{ID: "s1"}, time.Hour))
	got, err := repo.GetSession(ctx, "s1")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, repo.DeleteSession(ctx, "s1"))
}
