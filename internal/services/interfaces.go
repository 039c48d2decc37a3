package services

import (
	"context"

	"github.com/vwency/policy-chat-gateway/internal/models"
)

type UserService interface {
	GetUser(ctx context.Context, userID string) (*models.UserRecord, error)
	FindUserByEmail(ctx context.Context, email string) (*models.UserRecord, error)
}

// QueryService submits a query to the permission-evaluating backend. It
// never returns an error: failures come back as the error variant.
type QueryService interface {
	Submit(ctx context.Context, uc models.UserContext, query string) models.QueryResult
}
