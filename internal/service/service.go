package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/hz-solucoes/financas/internal/auth"
	"github.com/hz-solucoes/financas/internal/middleware"
)

// authedUser returns the user ID placed in the context by the auth
// interceptor. Services mounted without RequireAuth would see an empty
// ID, which is rejected here rather than silently scoping to nobody.
func authedUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}
