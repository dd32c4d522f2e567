package product_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/muhammadheryan/el-rastro/model"
	productrepo "github.com/muhammadheryan/el-rastro/repository/product"
	"github.com/muhammadheryan/el-rastro/repository/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestREST_List(t *testing.T) {
	tests := []struct {
		name  string
		query *model.ProductQuery
		want  url.Values
	}{
		{
			name:  "unset prices are omitted",
			query: &model.ProductQuery{OrderInitialDate: -1, OrderCloseDate: -1},
			want: url.Values{
				"orderInitialDate": {"-1"},
				"orderCloseDate":   {"-1"},
				"title":            {""},
				"username":         {""},
			},
		},
		{
			name:  "set filters are sent",
			query: &model.ProductQuery{OrderInitialDate: 1, OrderCloseDate: -1, MinPrice: 5, MaxPrice: 10.5, Title: "lamp", Username: "ana#x1"},
			want: url.Values{
				"orderInitialDate": {"1"},
				"orderCloseDate":   {"-1"},
				"minPrice":         {"5"},
				"maxPrice":         {"10.5"},
				"title":            {"lamp"},
				"username":         {"ana#x1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got url.Values
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/products", r.URL.Path)
				got = r.URL.Query()
				_, _ = w.Write([]byte(`[{"_id":"p1","title":"Lamp","initialPrice":3,"closeDate":"2024-05-10T12:34:56","owner":{"_id":"u1"},"bids":[]}]`))
			}))
			defer srv.Close()

			repo := productrepo.NewProductRepository(rest.NewClient("product", srv.URL, time.Second))
			products, err := repo.List(context.Background(), tt.query)

			require.NoError(t, err)
			require.Len(t, products, 1)
			assert.Equal(t, "p1", products[0].ID)
			assert.Equal(t, time.Date(2024, 5, 10, 12, 34, 56, 0, time.UTC), products[0].CloseDate.Time)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestREST_CountSold(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products/sold/u1", r.URL.Path)
		_, _ = w.Write([]byte(`4`))
	}))
	defer srv.Close()

	repo := productrepo.NewProductRepository(rest.NewClient("product", srv.URL, time.Second))
	count, err := repo.CountSold(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestREST_ConfirmPaymentRequiresToken(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	repo := productrepo.NewProductRepository(rest.NewClient("product", srv.URL, time.Second))
	err := repo.ConfirmPayment(context.Background(), nil, "p1")

	assert.ErrorIs(t, err, rest.ErrUnauthenticated)
	assert.Equal(t, 0, calls)
}

func TestREST_Get(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    *model.Product
		wantErr error
	}{
		{
			name:   "success: backend record with naive datetimes",
			status: http.StatusOK,
			body: `{
				"_id": "653e27ba54d16794592d4731",
				"title": "title",
				"description": "description",
				"initialPrice": 21.99,
				"initialDate": "2024-05-01T09:00:00",
				"closeDate": "2024-05-10T12:34:56.500000",
				"weight": 0.5,
				"owner": {"_id": "owner_id", "username": "owner_username", "location": {"lat": 36.749058, "lon": -4.51626}},
				"buyer": null,
				"bids": [{"_id": "bid_id", "amount": 22.0, "bidder": {"_id": "bidder_id", "username": "bidder_username"}}]
			}`,
			want: &model.Product{
				ID:           "653e27ba54d16794592d4731",
				Title:        "title",
				Description:  "description",
				InitialPrice: 21.99,
				InitialDate:  model.NewTime(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)),
				CloseDate:    model.NewTime(time.Date(2024, 5, 10, 12, 34, 56, 500000000, time.UTC)),
				Weight:       0.5,
				Owner:        model.User{ID: "owner_id", Username: "owner_username", Location: &model.Location{Lat: 36.749058, Lon: -4.51626}},
				Bids:         []model.Bid{{ID: "bid_id", Amount: 22, Bidder: model.UserRef{ID: "bidder_id", Username: "bidder_username"}}},
			},
		},
		{
			name:    "error: unknown product",
			status:  http.StatusNotFound,
			body:    `{"detail":"Product not found"}`,
			wantErr: rest.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/products/653e27ba54d16794592d4731", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			repo := productrepo.NewProductRepository(rest.NewClient("product", srv.URL, time.Second))
			got, err := repo.Get(context.Background(), "653e27ba54d16794592d4731")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestREST_GetUserBids(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products/bids/u1", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"open": [{"_id":"p1","title":"Lamp","initialPrice":3,"closeDate":"2030-01-01T00:00:00","owner":{"_id":"u2"},"bids":[]}],
			"won": [],
			"lost": [{"_id":"p2","title":"Chair","initialPrice":8,"closeDate":"2024-01-01T10:00:00","owner":{"_id":"u3"},"bids":[]}]
		}`))
	}))
	defer srv.Close()

	repo := productrepo.NewProductRepository(rest.NewClient("product", srv.URL, time.Second))
	got, err := repo.GetUserBids(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, got.Open, 1)
	require.Len(t, got.Lost, 1)
	assert.Empty(t, got.Won)
	assert.Equal(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), got.Open[0].CloseDate.Time)
}

func TestREST_Create(t *testing.T) {
	var gotAuth, gotMethod string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products/u1", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotMethod = r.Method
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"_id":"p9","title":"Lamp","initialPrice":5,"closeDate":"2030-01-01T00:00:00","owner":{"_id":"u1"},"bids":[]}`))
	}))
	defer srv.Close()

	repo := productrepo.NewProductRepository(rest.NewClient("product", srv.URL, time.Second))
	req := &model.CreateProductRequest{Title: "Lamp", Description: "Brass", InitialPrice: 5, CloseDate: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), Weight: 1}
	got, err := repo.Create(context.Background(), &model.Session{AccessToken: "tok"}, "u1", req)

	require.NoError(t, err)
	assert.Equal(t, "p9", got.ID)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "Lamp", gotBody["title"])
	assert.Equal(t, "2030-01-01T00:00:00Z", gotBody["closeDate"])
}
