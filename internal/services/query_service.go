package services

import (
	"context"
	"encoding/json"

	"github.com/valyala/fasthttp"
	"github.com/vwency/policy-chat-gateway/internal/models"
	"go.uber.org/zap"
)

const (
	MsgNotAuthenticated = "User not authenticated. Please sign in and try again."
	MsgBackendDown      = "Unable to reach the query service. Please try again later."
	MsgAccessDenied     = "Access denied."
	MsgQueryFailed      = "The query could not be processed."
)

// HTTPDoer is the subset of *fasthttp.Client used for submissions.
type HTTPDoer interface {
	Do(req *fasthttp.Request, resp *fasthttp.Response) error
}

// QueryServiceClient posts queries to the permission-evaluating backend and
// maps its answer onto a QueryResult. It does not retry.
type QueryServiceClient struct {
	client   HTTPDoer
	endpoint string
	logger   *zap.Logger
}

func NewQueryServiceClient(client HTTPDoer, endpoint string, logger *zap.Logger) *QueryServiceClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryServiceClient{
		client:   client,
		endpoint: endpoint,
		logger:   logger,
	}
}

// queryResponse mirrors the backend envelope. Pointers distinguish absent
// fields from empty ones.
type queryResponse struct {
	Status   string          `json:"status"`
	Response *string         `json:"response"`
	Message  *string         `json:"message"`
	Sources  []models.Source `json:"sources"`
}

func (s *QueryServiceClient) Submit(ctx context.Context, uc models.UserContext, query string) models.QueryResult {
	if !uc.Authenticated() {
		return models.Failed(models.FailureUnauthenticated, MsgNotAuthenticated)
	}
	if err := ctx.Err(); err != nil {
		return models.Failed(models.FailureTransport, MsgBackendDown)
	}

	body, err := json.Marshal(models.QueryRequest{UserID: uc.UserID, Query: query})
	if err != nil {
		s.logger.Error("Encoding query request failed", zap.Error(err))
		return models.Failed(models.FailureTransport, MsgBackendDown)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBodyRaw(body)

	if err := s.client.Do(req, resp); err != nil {
		s.logger.Warn("Query backend unreachable",
			zap.String("user_id", uc.UserID),
			zap.String("endpoint", s.endpoint),
			zap.Error(err))
		return models.Failed(models.FailureTransport, MsgBackendDown)
	}

	// The backend reports validation and internal failures with non-2xx
	// codes but the same envelope, so the body is decoded regardless.
	var payload queryResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		s.logger.Warn("Query backend returned unparseable body",
			zap.Int("status_code", resp.StatusCode()),
			zap.Error(err))
		return models.Failed(models.FailureTransport, MsgBackendDown)
	}

	result := mapQueryResponse(payload)
	s.logger.Info("Query evaluated",
		zap.String("user_id", uc.UserID),
		zap.String("status", string(result.Status)),
		zap.Int("status_code", resp.StatusCode()))

	return result
}

func mapQueryResponse(p queryResponse) models.QueryResult {
	switch p.Status {
	case string(models.StatusApproved):
		if p.Response == nil {
			return models.Failed(models.FailureTransport, MsgBackendDown)
		}
		return models.Approved(*p.Response, p.Sources)
	case string(models.StatusDenied):
		return models.Denied(stringOr(p.Message, MsgAccessDenied))
	default:
		return models.Failed(models.FailureUnknownStatus, stringOr(p.Message, MsgQueryFailed))
	}
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
