package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vwency/policy-chat-gateway/internal/models"
)

type QueryService struct {
	mock.Mock
}

func (m *QueryService) Submit(ctx context.Context, uc models.UserContext, query string) models.QueryResult {
	args := m.Called(ctx, uc, query)
	return args.Get(0).(models.QueryResult)
}
