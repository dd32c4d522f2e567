package auth

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/el-rastro/model"
	"github.com/muhammadheryan/el-rastro/repository/rest"
)

type REST struct {
	client *rest.Client
}

type AuthRepository interface {
	ExchangeToken(ctx context.Context, req *model.LoginRequest) (*model.TokenExchangeResponse, error)
}

func NewAuthRepository(client *rest.Client) AuthRepository {
	return &REST{client: client}
}

// ExchangeToken trades an identity (username, email) for a backend-issued JWT.
// The auth service creates the user on first login.
func (s *REST) ExchangeToken(ctx context.Context, req *model.LoginRequest) (*model.TokenExchangeResponse, error) {
	var res model.TokenExchangeResponse
	err := s.client.Call(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/jwt",
		Body:   req,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
