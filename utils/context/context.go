package context

import (
	"context"

	"github.com/muhammadheryan/el-rastro/constant"
	"github.com/muhammadheryan/el-rastro/model"
)

func WithSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, constant.SessionKey, session)
}

// GetSession returns the session resolved by the auth middleware, nil for anonymous requests.
func GetSession(ctx context.Context) *model.Session {
	v, ok := ctx.Value(constant.SessionKey).(*model.Session)
	if !ok {
		return nil
	}
	return v
}

func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, constant.ClientIDKey, clientID)
}

func GetClientID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(constant.ClientIDKey).(string)
	return v, ok && v != ""
}
