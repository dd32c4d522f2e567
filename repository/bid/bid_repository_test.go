package bid_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/el-rastro/model"
	bidrepo "github.com/muhammadheryan/el-rastro/repository/bid"
	"github.com/muhammadheryan/el-rastro/repository/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestREST_Place(t *testing.T) {
	tests := []struct {
		name      string
		session   *model.Session
		status    int
		wantCalls int
		wantErr   func(t *testing.T, err error)
	}{
		{
			name:      "success",
			session:   &model.Session{UserID: "u1", AccessToken: "tok"},
			status:    http.StatusCreated,
			wantCalls: 1,
		},
		{
			name:      "error: no token never reaches the bid service",
			session:   &model.Session{UserID: "u1"},
			wantCalls: 0,
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, rest.ErrUnauthenticated)
			},
		},
		{
			name:      "error: bid service rejects the bid",
			session:   &model.Session{UserID: "u1", AccessToken: "tok"},
			status:    http.StatusConflict,
			wantCalls: 1,
			wantErr: func(t *testing.T, err error) {
				var se *rest.StatusError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, http.StatusConflict, se.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/v1/bids/p1/u1", r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

				var body model.BidRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, 78.8, body.Amount)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			repo := bidrepo.NewBidRepository(rest.NewClient("bid", srv.URL, time.Second))
			err := repo.Place(context.Background(), tt.session, "p1", "u1", 78.8)

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				tt.wantErr(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
