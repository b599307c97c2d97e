package authctx

import "context"

type ctxKey string

const keyUserID ctxKey = "auth_user_id"

// WithUserID stores the authenticated user's id on the request context.
func WithUserID(ctx context.Context, id uint64) context.Context {
	return context.WithValue(ctx, keyUserID, id)
}

// UserID returns the authenticated user's id if present.
func UserID(ctx context.Context) (uint64, bool) {
	v, ok := ctx.Value(keyUserID).(uint64)
	return v, ok
}
