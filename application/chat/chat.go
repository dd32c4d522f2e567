package chat

import (
	"context"
	"strings"

	"github.com/muhammadheryan/el-rastro/cmd/config"
	"github.com/muhammadheryan/el-rastro/constant"
	"github.com/muhammadheryan/el-rastro/model"
	chatrepo "github.com/muhammadheryan/el-rastro/repository/chat"
	productrepo "github.com/muhammadheryan/el-rastro/repository/product"
	"github.com/muhammadheryan/el-rastro/repository/rest"
	userrepo "github.com/muhammadheryan/el-rastro/repository/user"
	"github.com/muhammadheryan/el-rastro/thirdparty/rabbitmq"
	"github.com/muhammadheryan/el-rastro/utils/errors"
	"github.com/muhammadheryan/el-rastro/utils/fanout"
	"github.com/muhammadheryan/el-rastro/utils/logger"
	"go.uber.org/zap"
)

type ChatApp interface {
	ListChats(ctx context.Context, session *model.Session) (*model.ChatListView, error)
	GetThread(ctx context.Context, session *model.Session, chatID string) (*model.ChatThreadView, error)
	StartChat(ctx context.Context, session *model.Session, productID string) (*model.Chat, error)
	SendMessage(ctx context.Context, session *model.Session, chatID, text string) (*model.ThreadMessage, error)
}

type ChatAppImpl struct {
	config      *config.Config
	chatRepo    chatrepo.ChatRepository
	productRepo productrepo.ProductRepository
	userRepo    userrepo.UserRepository
	publisher   rabbitmq.EventPublisher
}

func NewChatApp(
	config *config.Config,
	chatRepo chatrepo.ChatRepository,
	productRepo productrepo.ProductRepository,
	userRepo userrepo.UserRepository,
	publisher rabbitmq.EventPublisher,
) ChatApp {
	return &ChatAppImpl{
		config:      config,
		chatRepo:    chatRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// ListChats returns the viewer's chats, each joined with its product, counterparty and last message.
// Every enrichment settles independently; the view is returned once all of them have.
func (s *ChatAppImpl) ListChats(ctx context.Context, session *model.Session) (*model.ChatListView, error) {
	viewerID := session.ViewerID()
	if viewerID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	chats := fanout.Settle(ctx, "chat list", func(ctx context.Context) ([]model.Chat, error) {
		return s.chatRepo.ListByUser(ctx, session, viewerID)
	}, []model.Chat{})

	summaries := fanout.Map(ctx, s.config.Upstream.EnrichConcurrent, chats, func(ctx context.Context, c model.Chat) model.ChatSummary {
		return s.summarize(ctx, session, c)
	})

	return &model.ChatListView{Loaded: true, Chats: summaries}, nil
}

func (s *ChatAppImpl) summarize(ctx context.Context, session *model.Session, c model.Chat) model.ChatSummary {
	viewerID := session.ViewerID()
	summary := model.ChatSummary{ID: c.ID}
	otherID := c.Counterparty(viewerID)

	fanout.Group(ctx,
		func(ctx context.Context) {
			summary.Product = fanout.Settle(ctx, "chat product", func(ctx context.Context) (model.ProductSummary, error) {
				p, err := s.productRepo.Get(ctx, c.Product.ID)
				if err != nil {
					return model.ProductSummary{}, err
				}
				return model.ProductSummary{ID: p.ID, Title: p.Title}, nil
			}, model.ProductSummary{ID: c.Product.ID, Title: constant.UnknownProductTitle})
		},
		func(ctx context.Context) {
			summary.User = fanout.Settle(ctx, "chat counterparty", func(ctx context.Context) (model.UserSummary, error) {
				u, err := s.userRepo.Get(ctx, otherID)
				if err != nil {
					return model.UserSummary{}, err
				}
				return model.UserSummary{ID: u.ID, Username: u.DisplayName()}, nil
			}, model.UserSummary{ID: constant.AnonymousUserID, Username: constant.AnonymousUsername})
		},
		func(ctx context.Context) {
			summary.LastMessage = fanout.Settle(ctx, "chat last message", func(ctx context.Context) (*model.LastMessage, error) {
				messages, err := s.chatRepo.Messages(ctx, session, c.ID)
				if err != nil || len(messages) == 0 {
					return nil, err
				}
				last := messages[len(messages)-1]
				return &model.LastMessage{Text: last.Text, Timestamp: last.Timestamp.Time, FromMe: last.Origin.ID == viewerID}, nil
			}, nil)
		},
	)
	return summary
}

func (s *ChatAppImpl) GetThread(ctx context.Context, session *model.Session, chatID string) (*model.ChatThreadView, error) {
	viewerID := session.ViewerID()
	if viewerID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	c, err := s.chatRepo.Get(ctx, session, chatID)
	if err != nil {
		logger.Error("[GetThread] err chatRepo.Get", zap.String("chat_id", chatID), zap.String("error", err.Error()))
		return nil, rest.AsCustomError(err)
	}
	if !c.IsParticipant(viewerID) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	var (
		product  model.ProductSummary
		messages []model.Message
	)
	fanout.Group(ctx,
		func(ctx context.Context) {
			product = fanout.Settle(ctx, "thread product", func(ctx context.Context) (model.ProductSummary, error) {
				p, err := s.productRepo.Get(ctx, c.Product.ID)
				if err != nil {
					return model.ProductSummary{}, err
				}
				return model.ProductSummary{ID: p.ID, Title: p.Title}, nil
			}, model.ProductSummary{ID: c.Product.ID, Title: constant.UnknownProductTitle})
		},
		func(ctx context.Context) {
			messages = fanout.Settle(ctx, "thread messages", func(ctx context.Context) ([]model.Message, error) {
				return s.chatRepo.Messages(ctx, session, chatID)
			}, []model.Message{})
		},
	)

	thread := make([]model.ThreadMessage, 0, len(messages))
	for _, m := range messages {
		thread = append(thread, model.ThreadMessage{Text: m.Text, Timestamp: m.Timestamp.Time, Mine: m.Origin.ID == viewerID})
	}

	return &model.ChatThreadView{ID: c.ID, Product: product, Messages: thread}, nil
}

// StartChat opens a chat between the viewer and the owner of the product.
func (s *ChatAppImpl) StartChat(ctx context.Context, session *model.Session, productID string) (*model.Chat, error) {
	viewerID := session.ViewerID()
	if viewerID == "" || session.Token() == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	product, err := s.productRepo.Get(ctx, productID)
	if err != nil {
		logger.Error("[StartChat] err productRepo.Get", zap.String("product_id", productID), zap.String("error", err.Error()))
		return nil, rest.AsCustomError(err)
	}
	if product.Owner.ID == viewerID {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	c, err := s.chatRepo.Create(ctx, session, productID, viewerID)
	if err != nil {
		logger.Error("[StartChat] err chatRepo.Create", zap.String("product_id", productID), zap.String("error", err.Error()))
		return nil, rest.AsCustomError(err)
	}
	return c, nil
}

func (s *ChatAppImpl) SendMessage(ctx context.Context, session *model.Session, chatID, text string) (*model.ThreadMessage, error) {
	viewerID := session.ViewerID()
	if viewerID == "" || session.Token() == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.SetCustomError(constant.ErrEmptyMessage)
	}

	msg, err := s.chatRepo.Send(ctx, session, chatID, viewerID, text)
	if err != nil {
		logger.Error("[SendMessage] err chatRepo.Send", zap.String("chat_id", chatID), zap.String("error", err.Error()))
		return nil, rest.AsCustomError(err)
	}

	err = s.publisher.PublishActivity(ctx, rabbitmq.ActivityEvent{
		Type:   constant.ActivityMessageSent,
		ChatID: chatID,
		UserID: viewerID,
	})
	if err != nil {
		logger.Error("[SendMessage] err publisher.PublishActivity", zap.String("error", err.Error()))
	}

	return &model.ThreadMessage{Text: msg.Text, Timestamp: msg.Timestamp.Time, Mine: true}, nil
}
