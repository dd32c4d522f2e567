package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/el-rastro/model"
	authrepo "github.com/muhammadheryan/el-rastro/repository/auth"
	"github.com/muhammadheryan/el-rastro/repository/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestREST_ExchangeToken(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    *model.TokenExchangeResponse
		wantErr func(t *testing.T, err error)
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"jwt":"header.payload.sig","id":"653e27ba54d16794592d4731"}`,
			want:   &model.TokenExchangeResponse{JWT: "header.payload.sig", ID: "653e27ba54d16794592d4731"},
		},
		{
			name:   "error: response without token",
			status: http.StatusOK,
			body:   `{"id":"653e27ba54d16794592d4731"}`,
			wantErr: func(t *testing.T, err error) {
				var de *rest.DecodeError
				assert.True(t, errors.As(err, &de))
			},
		},
		{
			name:   "error: rejected identity",
			status: http.StatusUnauthorized,
			body:   `{"detail":"Invalid credentials"}`,
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, rest.ErrUnauthenticated)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.LoginRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/v1/auth/jwt", r.URL.Path)
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			repo := authrepo.NewAuthRepository(rest.NewClient("auth", srv.URL, time.Second))
			res, err := repo.ExchangeToken(context.Background(), &model.LoginRequest{Username: "username", Email: "name@email.com"})

			assert.Equal(t, model.LoginRequest{Username: "username", Email: "name@email.com"}, got)
			if tt.wantErr != nil {
				require.Error(t, err)
				tt.wantErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}
