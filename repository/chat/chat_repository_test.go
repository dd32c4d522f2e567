package chat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/el-rastro/model"
	chatrepo "github.com/muhammadheryan/el-rastro/repository/chat"
	"github.com/muhammadheryan/el-rastro/repository/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var session = &model.Session{UserID: "interested_id", AccessToken: "tok"}

func newRepo(t *testing.T, handler http.HandlerFunc) chatrepo.ChatRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return chatrepo.NewChatRepository(rest.NewClient("chat", srv.URL, time.Second))
}

func TestREST_ListByUser(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    []model.Chat
		wantErr error
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `[{"_id":"c1","vendor":{"_id":"vendor_id"},"interested":{"_id":"interested_id"},"product":{"_id":"product_id"}}]`,
			want: []model.Chat{{
				ID:         "c1",
				Vendor:     model.Ref{ID: "vendor_id"},
				Interested: model.Ref{ID: "interested_id"},
				Product:    model.Ref{ID: "product_id"},
			}},
		},
		{
			name:   "success: no chats",
			status: http.StatusOK,
			body:   `[]`,
			want:   []model.Chat{},
		},
		{
			name:    "error: token rejected",
			status:  http.StatusUnauthorized,
			body:    `{"detail":"Not authenticated"}`,
			wantErr: rest.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/myChats/interested_id", r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := repo.ListByUser(context.Background(), session, "interested_id")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestREST_Get(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/chat/c1", r.URL.Path)
		_, _ = w.Write([]byte(`{"_id":"c1","vendor":{"_id":"vendor_id"},"interested":{"_id":"interested_id"},"product":{"_id":"product_id"}}`))
	})

	got, err := repo.Get(context.Background(), session, "c1")
	require.NoError(t, err)
	assert.Equal(t, "vendor_id", got.Counterparty("interested_id"))
	assert.Equal(t, "product_id", got.Product.ID)
}

func TestREST_Messages(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/chat/c1/messages", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"_id":"m1","chat":{"_id":"c1"},"timestamp":"2024-05-10T12:34:56","origin":{"_id":"interested_id"},"text":"hola"},
			{"_id":"m2","chat":{"_id":"c1"},"timestamp":"2024-05-10T12:35:01.250000","origin":{"_id":"vendor_id"},"text":"buenas"}
		]`))
	})

	got, err := repo.Messages(context.Background(), session, "c1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.Message{
		ID:        "m1",
		Chat:      model.Ref{ID: "c1"},
		Origin:    model.Ref{ID: "interested_id"},
		Text:      "hola",
		Timestamp: model.NewTime(time.Date(2024, 5, 10, 12, 34, 56, 0, time.UTC)),
	}, got[0])
	assert.Equal(t, time.Date(2024, 5, 10, 12, 35, 1, 250000000, time.UTC), got[1].Timestamp.Time)
}

func TestREST_Create(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/chat/product_id", r.URL.Path)
		assert.Equal(t, "interested_id", r.URL.Query().Get("interested_id"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"c9","vendor":{"_id":"vendor_id"},"interested":{"_id":"interested_id"},"product":{"_id":"product_id"}}`))
	})

	got, err := repo.Create(context.Background(), session, "product_id", "interested_id")
	require.NoError(t, err)
	assert.Equal(t, "c9", got.ID)
}

func TestREST_Send(t *testing.T) {
	tests := []struct {
		name    string
		session *model.Session
		calls   int
		wantErr error
	}{
		{
			name:    "success",
			session: session,
			calls:   1,
		},
		{
			name:    "error: anonymous session never sends",
			session: nil,
			calls:   0,
			wantErr: rest.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/v1/chat/c1/send", r.URL.Path)
				assert.Equal(t, "interested_id", r.URL.Query().Get("origin_id"))

				var body struct {
					Text      string    `json:"text"`
					Timestamp time.Time `json:"timestamp"`
				}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "hola", body.Text)
				assert.False(t, body.Timestamp.IsZero())

				_, _ = w.Write([]byte(`{"_id":"m3","chat":{"_id":"c1"},"timestamp":"2024-05-10T12:40:00","origin":{"_id":"interested_id"},"text":"hola"}`))
			})

			got, err := repo.Send(context.Background(), tt.session, "c1", "interested_id", "hola")
			assert.Equal(t, tt.calls, calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "m3", got.ID)
			assert.Equal(t, time.Date(2024, 5, 10, 12, 40, 0, 0, time.UTC), got.Timestamp.Time)
		})
	}
}
