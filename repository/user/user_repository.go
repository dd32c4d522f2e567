package user

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/el-rastro/model"
	"github.com/muhammadheryan/el-rastro/repository/rest"
)

type REST struct {
	client *rest.Client
}

type UserRepository interface {
	Get(ctx context.Context, id string) (*model.User, error)
	GetMe(ctx context.Context, session *model.Session) (*model.User, error)
	Update(ctx context.Context, session *model.Session, id string, update *model.UserUpdate) error
}

func NewUserRepository(client *rest.Client) UserRepository {
	return &REST{client: client}
}

func (s *REST) Get(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := s.client.Call(ctx, rest.Request{Path: rest.Path("api", "v1", "user", id)}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMe returns the user owning the session token.
func (s *REST) GetMe(ctx context.Context, session *model.Session) (*model.User, error) {
	var user model.User
	if err := s.client.CallWithToken(ctx, session, rest.Request{Path: "/api/v1/user/me"}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *REST) Update(ctx context.Context, session *model.Session, id string, update *model.UserUpdate) error {
	return s.client.CallWithToken(ctx, session, rest.Request{
		Method: http.MethodPut,
		Path:   rest.Path("api", "v1", "user", id),
		Body:   update,
	}, nil)
}
