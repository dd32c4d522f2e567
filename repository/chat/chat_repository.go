package chat

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/muhammadheryan/el-rastro/model"
	"github.com/muhammadheryan/el-rastro/repository/rest"
)

type REST struct {
	client *rest.Client
}

type ChatRepository interface {
	ListByUser(ctx context.Context, session *model.Session, userID string) ([]model.Chat, error)
	Get(ctx context.Context, session *model.Session, chatID string) (*model.Chat, error)
	Messages(ctx context.Context, session *model.Session, chatID string) ([]model.Message, error)
	Create(ctx context.Context, session *model.Session, productID, interestedID string) (*model.Chat, error)
	Send(ctx context.Context, session *model.Session, chatID, originID, text string) (*model.Message, error)
}

func NewChatRepository(client *rest.Client) ChatRepository {
	return &REST{client: client}
}

type sendBody struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *REST) ListByUser(ctx context.Context, session *model.Session, userID string) ([]model.Chat, error) {
	chats := make([]model.Chat, 0)
	if err := s.client.CallWithToken(ctx, session, rest.Request{Path: rest.Path("api", "v1", "myChats", userID)}, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (s *REST) Get(ctx context.Context, session *model.Session, chatID string) (*model.Chat, error) {
	var chat model.Chat
	if err := s.client.CallWithToken(ctx, session, rest.Request{Path: rest.Path("api", "v1", "chat", chatID)}, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// Messages returns the thread in chronological order.
func (s *REST) Messages(ctx context.Context, session *model.Session, chatID string) ([]model.Message, error) {
	messages := make([]model.Message, 0)
	if err := s.client.CallWithToken(ctx, session, rest.Request{Path: rest.Path("api", "v1", "chat", chatID, "messages")}, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *REST) Create(ctx context.Context, session *model.Session, productID, interestedID string) (*model.Chat, error) {
	var chat model.Chat
	err := s.client.CallWithToken(ctx, session, rest.Request{
		Method: http.MethodPost,
		Path:   rest.Path("api", "v1", "chat", productID),
		Query:  url.Values{"interested_id": {interestedID}},
		Body:   struct{}{},
	}, &chat)
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (s *REST) Send(ctx context.Context, session *model.Session, chatID, originID, text string) (*model.Message, error) {
	var message model.Message
	err := s.client.CallWithToken(ctx, session, rest.Request{
		Method: http.MethodPost,
		Path:   rest.Path("api", "v1", "chat", chatID, "send"),
		Query:  url.Values{"origin_id": {originID}},
		Body:   sendBody{Text: text, Timestamp: time.Now().UTC()},
	}, &message)
	if err != nil {
		return nil, err
	}
	return &message, nil
}
