package utils

import (
	"context"
)

type contextKey string

const ContextEmailKey contextKey = "userEmail"

func GetEmailFromContext(ctx context.Context) (string, bool) {
	email := ctx.Value(ContextEmailKey)
	emailStr, ok := email.(string)
	return emailStr, ok
}
