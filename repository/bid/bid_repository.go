package bid

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/el-rastro/model"
	"github.com/muhammadheryan/el-rastro/repository/rest"
)

type REST struct {
	client *rest.Client
}

type BidRepository interface {
	Place(ctx context.Context, session *model.Session, productID, userID string, amount float64) error
}

func NewBidRepository(client *rest.Client) BidRepository {
	return &REST{client: client}
}

// Place issues POST /api/v1/bids/{productId}/{userId}.
func (s *REST) Place(ctx context.Context, session *model.Session, productID, userID string, amount float64) error {
	return s.client.CallWithToken(ctx, session, rest.Request{
		Method: http.MethodPost,
		Path:   rest.Path("api", "v1", "bids", productID, userID),
		Body:   model.BidRequest{Amount: amount},
	}, nil)
}
