package rating

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/el-rastro/model"
	"github.com/muhammadheryan/el-rastro/repository/rest"
)

type REST struct {
	client *rest.Client
}

type RatingRepository interface {
	ListForUser(ctx context.Context, userID string) ([]model.Rating, error)
	Average(ctx context.Context, userID string) (float64, error)
	Submit(ctx context.Context, session *model.Session, productID string, value float64) error
}

func NewRatingRepository(client *rest.Client) RatingRepository {
	return &REST{client: client}
}

// ListForUser returns the ratings the user has received.
func (s *REST) ListForUser(ctx context.Context, userID string) ([]model.Rating, error) {
	ratings := make([]model.Rating, 0)
	if err := s.client.Call(ctx, rest.Request{Path: rest.Path("api", "v2", "users", userID, "ratings")}, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (s *REST) Average(ctx context.Context, userID string) (float64, error) {
	var avg *float64
	if err := s.client.Call(ctx, rest.Request{Path: rest.Path("api", "v2", "users", userID, "rating")}, &avg); err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// Submit rates the counterparty of the sale of productID. The rater is taken from the token.
func (s *REST) Submit(ctx context.Context, session *model.Session, productID string, value float64) error {
	return s.client.CallWithToken(ctx, session, rest.Request{
		Method: http.MethodPut,
		Path:   rest.Path("api", "v2", "users", productID, "ratings"),
		Body:   model.RatingRequest{Value: value},
	}, nil)
}
