package conversation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/vwency/policy-chat-gateway/internal/models"
	"github.com/vwency/policy-chat-gateway/internal/services"
	"go.uber.org/zap"
)

var ErrEmptyQuery = errors.New("query must not be empty")

type entry struct {
	msg   models.ChatMessage
	ready bool
}

// Conversation is the append-only transcript of one user's session.
//
// Send reserves both the user message and the reply slot before the query
// is submitted, so the transcript keeps request order even when replies
// arrive out of order.
type Conversation struct {
	user    models.UserContext
	queries services.QueryService
	logger  *zap.Logger
	now     func() time.Time

	mu      sync.Mutex
	entries []*entry
}

type Option func(*Conversation)

func WithClock(now func() time.Time) Option {
	return func(c *Conversation) {
		c.now = now
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Conversation) {
		c.logger = logger
	}
}

func New(user models.UserContext, queries services.QueryService, opts ...Option) *Conversation {
	c := &Conversation{
		user:    user,
		queries: queries,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	greeting := newMessage(models.RoleAssistant, c.now())
	greeting.Content = Greeting
	c.entries = append(c.entries, &entry{msg: greeting, ready: true})

	return c
}

func (c *Conversation) User() models.UserContext {
	return c.user
}

// Send submits query and returns the rendered reply. The only error is
// ErrEmptyQuery; every other failure is rendered into the reply.
func (c *Conversation) Send(ctx context.Context, query string) (models.ChatMessage, error) {
	if strings.TrimSpace(query) == "" {
		return models.ChatMessage{}, ErrEmptyQuery
	}

	userMsg := newMessage(models.RoleUser, c.now())
	userMsg.Content = query
	slot := &entry{}

	c.mu.Lock()
	c.entries = append(c.entries, &entry{msg: userMsg, ready: true}, slot)
	c.mu.Unlock()

	result := c.queries.Submit(ctx, c.user, query)
	reply := Render(result, query, c.user, c.now())

	c.mu.Lock()
	slot.msg = reply
	slot.ready = true
	c.mu.Unlock()

	if reply.IsDenied {
		c.logger.Info("Query denied",
			zap.String("user_id", c.user.UserID),
			zap.String("department", c.user.Department),
			zap.String("backend_message", result.Message))
	} else if reply.IsError {
		c.logger.Warn("Query failed",
			zap.String("user_id", c.user.UserID),
			zap.String("failure", string(result.Failure)))
	}

	return reply, nil
}

// Messages returns the completed messages in request order. Replies still
// in flight are omitted until they land.
func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.ChatMessage, 0, len(c.entries))
	for _, e := range c.entries {
		if e.ready {
			out = append(out, e.msg)
		}
	}
	return out
}

// Pending reports how many replies are still awaited.
func (c *Conversation) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if !e.ready {
			n++
		}
	}
	return n
}
