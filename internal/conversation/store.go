package conversation

import (
	"sync"

	"github.com/vwency/policy-chat-gateway/internal/models"
	"github.com/vwency/policy-chat-gateway/internal/services"
	"go.uber.org/zap"
)

// Store keeps one in-memory Conversation per user id. Nothing is persisted.
type Store struct {
	queries services.QueryService
	logger  *zap.Logger

	mu            sync.Mutex
	conversations map[string]*Conversation
}

func NewStore(queries services.QueryService, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		queries:       queries,
		logger:        logger,
		conversations: make(map[string]*Conversation),
	}
}

// Open returns the user's conversation, starting one if needed.
func (s *Store) Open(uc models.UserContext) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.conversations[uc.UserID]; ok {
		return c
	}

	c := New(uc, s.queries, WithLogger(s.logger))
	s.conversations[uc.UserID] = c
	return c
}

func (s *Store) Lookup(userID string) (*Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[userID]
	return c, ok
}

// Len reports how many conversations are open.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.conversations)
}
