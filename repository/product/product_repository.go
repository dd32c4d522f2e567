package product

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/muhammadheryan/el-rastro/model"
	"github.com/muhammadheryan/el-rastro/repository/rest"
)

type REST struct {
	client *rest.Client
}

type ProductRepository interface {
	List(ctx context.Context, query *model.ProductQuery) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	GetUserBids(ctx context.Context, userID string) (*model.UserBids, error)
	CountSold(ctx context.Context, ownerID string) (int, error)
	Create(ctx context.Context, session *model.Session, ownerID string, req *model.CreateProductRequest) (*model.Product, error)
	ConfirmPayment(ctx context.Context, session *model.Session, id string) error
}

func NewProductRepository(client *rest.Client) ProductRepository {
	return &REST{client: client}
}

// List queries GET /api/v1/products. Prices are only sent when set.
func (s *REST) List(ctx context.Context, query *model.ProductQuery) ([]model.Product, error) {
	params := url.Values{}
	params.Set("orderInitialDate", strconv.Itoa(query.OrderInitialDate))
	params.Set("orderCloseDate", strconv.Itoa(query.OrderCloseDate))
	if query.MinPrice != 0 {
		params.Set("minPrice", formatFloat(query.MinPrice))
	}
	if query.MaxPrice != 0 {
		params.Set("maxPrice", formatFloat(query.MaxPrice))
	}
	params.Set("title", query.Title)
	params.Set("username", query.Username)

	products := make([]model.Product, 0)
	err := s.client.Call(ctx, rest.Request{Path: "/api/v1/products", Query: params}, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *REST) Get(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := s.client.Call(ctx, rest.Request{Path: rest.Path("api", "v1", "products", id)}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetUserBids returns the products the user has bid on, grouped as open, won and lost.
func (s *REST) GetUserBids(ctx context.Context, userID string) (*model.UserBids, error) {
	var bids model.UserBids
	if err := s.client.Call(ctx, rest.Request{Path: rest.Path("api", "v1", "products", "bids", userID)}, &bids); err != nil {
		return nil, err
	}
	return &bids, nil
}

func (s *REST) CountSold(ctx context.Context, ownerID string) (int, error) {
	var count int
	if err := s.client.Call(ctx, rest.Request{Path: rest.Path("api", "v1", "products", "sold", ownerID)}, &count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *REST) Create(ctx context.Context, session *model.Session, ownerID string, req *model.CreateProductRequest) (*model.Product, error) {
	var product model.Product
	err := s.client.CallWithToken(ctx, session, rest.Request{
		Method: http.MethodPost,
		Path:   rest.Path("api", "v1", "products", ownerID),
		Body:   req,
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ConfirmPayment marks the product paid once the payment provider approved the order.
func (s *REST) ConfirmPayment(ctx context.Context, session *model.Session, id string) error {
	return s.client.CallWithToken(ctx, session, rest.Request{Path: rest.Path("api", "v1", "products", id, "payment")}, nil)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
