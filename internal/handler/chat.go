package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"github.com/vwency/policy-chat-gateway/internal/conversation"
	"github.com/vwency/policy-chat-gateway/internal/models"
	"github.com/vwency/policy-chat-gateway/internal/services"
	"go.uber.org/zap"
)

const (
	QueryPath    = "/api/v1/chat/query"
	MessagesPath = "/api/v1/chat/messages"
	HealthPath   = "/health"
)

type UserResolver interface {
	Resolve(ctx context.Context, email, directUserID string) models.UserContext
}

type ChatHandler struct {
	resolver UserResolver
	queries  services.QueryService
	sessions *conversation.Store
	logger   *zap.Logger
}

func NewChatHandler(
	resolver UserResolver,
	queries services.QueryService,
	logger *zap.Logger,
) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{
		resolver: resolver,
		queries:  queries,
		sessions: conversation.NewStore(queries, logger),
		logger:   logger,
	}
}

// Router dispatches the gateway's routes.
func (h *ChatHandler) Router() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case QueryPath:
			h.HandleQuery(ctx)
		case MessagesPath:
			h.HandleMessages(ctx)
		case HealthPath:
			h.HandleHealth(ctx)
		default:
			h.sendError(ctx, fmt.Sprintf("no route for %s", ctx.Path()), fasthttp.StatusNotFound)
		}
	}
}

// HandleQuery resolves the caller, submits the query and answers with the
// rendered reply. Denials and backend failures are still 200 responses: they
// are messages for the user, not request errors.
func (h *ChatHandler) HandleQuery(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		h.sendError(ctx, "use POST", fasthttp.StatusMethodNotAllowed)
		return
	}

	var req models.ChatQueryRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.sendError(ctx, fmt.Sprintf("invalid request body: %v", err), fasthttp.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		h.sendError(ctx, "query is required", fasthttp.StatusBadRequest)
		return
	}

	start := time.Now()
	uc := h.resolver.Resolve(ctx, req.Email, req.UserID)

	// Unauthenticated callers get an inline error but no stored session.
	var conv *conversation.Conversation
	if uc.Authenticated() {
		conv = h.sessions.Open(uc)
	} else {
		conv = conversation.New(uc, h.queries, conversation.WithLogger(h.logger))
	}

	reply, err := conv.Send(ctx, req.Query)
	if err != nil {
		h.sendError(ctx, err.Error(), fasthttp.StatusBadRequest)
		return
	}

	h.logger.Info("Chat query handled",
		zap.String("user_id", uc.UserID),
		zap.Bool("denied", reply.IsDenied),
		zap.Bool("error", reply.IsError),
		zap.Duration("elapsed", time.Since(start)))

	h.sendJSON(ctx, &models.ChatQueryResponse{
		User:      conv.User(),
		Message:   reply,
		Timestamp: time.Now(),
	}, fasthttp.StatusOK)
}

func (h *ChatHandler) HandleMessages(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		h.sendError(ctx, "use GET", fasthttp.StatusMethodNotAllowed)
		return
	}

	userID := string(ctx.QueryArgs().Peek("user_id"))
	if userID == "" {
		h.sendError(ctx, "user_id is required", fasthttp.StatusBadRequest)
		return
	}

	conv, ok := h.sessions.Lookup(userID)
	if !ok {
		h.sendError(ctx, fmt.Sprintf("no conversation for user %s", userID), fasthttp.StatusNotFound)
		return
	}

	h.sendJSON(ctx, &models.TranscriptResponse{
		UserID:   userID,
		Messages: conv.Messages(),
	}, fasthttp.StatusOK)
}

// HandleHealth reports liveness and how many chat sessions are held in memory.
func (h *ChatHandler) HandleHealth(ctx *fasthttp.RequestCtx) {
	h.sendJSON(ctx, &models.HealthResponse{
		Status:   "healthy",
		Sessions: h.sessions.Len(),
		Time:     time.Now().UTC(),
	}, fasthttp.StatusOK)
}

func (h *ChatHandler) sendJSON(ctx *fasthttp.RequestCtx, body any, statusCode int) {
	payload, err := json.Marshal(body)
	if err != nil {
		h.logger.Error("Response encoding failed",
			zap.ByteString("path", ctx.Path()),
			zap.Error(err))
		ctx.Error(fasthttp.StatusMessage(fasthttp.StatusInternalServerError), fasthttp.StatusInternalServerError)
		return
	}

	ctx.Response.Header.SetContentType("application/json")
	ctx.Response.SetStatusCode(statusCode)
	ctx.Response.SetBodyRaw(payload)
}

func (h *ChatHandler) sendError(ctx *fasthttp.RequestCtx, message string, statusCode int) {
	if statusCode >= fasthttp.StatusInternalServerError {
		h.logger.Error("Request failed", zap.ByteString("path", ctx.Path()), zap.String("reason", message))
	} else {
		h.logger.Debug("Request rejected",
			zap.ByteString("path", ctx.Path()),
			zap.Int("code", statusCode),
			zap.String("reason", message))
	}

	h.sendJSON(ctx, &models.ErrorResponse{
		Error:   fasthttp.StatusMessage(statusCode),
		Code:    statusCode,
		Message: message,
	}, statusCode)
}
