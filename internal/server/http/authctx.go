package httpserver

import (
	"context"

	"github.com/framehq/frame-api/internal/model"
)

type ctxKey string

const userKey ctxKey = "frame.user"

// WithUser stores the authenticated user in context for the current request.
func WithUser(ctx context.Context, u *model.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromCtx fetches the authenticated user from context.
func UserFromCtx(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userKey).(*model.User)
	return u, ok && u != nil
}
