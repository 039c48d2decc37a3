package access

import (
	"context"
	"strings"
	"sync"

	"github.com/vwency/policy-chat-gateway/internal/models"
	"github.com/vwency/policy-chat-gateway/internal/services"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Resolver turns a caller's email or user id into a UserContext. Lookups go
// to the user directory first; anything it cannot supply comes from the
// fallback table. Resolved contexts are cached for the life of the Resolver,
// except those produced while the directory was unreachable, so the next
// call retries the lookup.
type Resolver struct {
	users  services.UserService
	logger *zap.Logger

	mu    sync.RWMutex
	cache map[string]models.UserContext
}

// NewResolver creates a Resolver. users may be nil, in which case every
// caller is resolved from the fallback table.
func NewResolver(users services.UserService, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		users:  users,
		logger: logger,
		cache:  make(map[string]models.UserContext),
	}
}

// Resolve never fails. A caller with neither email nor user id gets a
// context with an empty UserID, which submission treats as unauthenticated.
func (r *Resolver) Resolve(ctx context.Context, email, directUserID string) models.UserContext {
	email = strings.TrimSpace(email)
	directUserID = strings.TrimSpace(directUserID)

	key := cacheKey(email, directUserID)
	if key == "" {
		return models.UserContext{}
	}

	r.mu.RLock()
	uc, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return uc
	}

	uc, degraded := r.resolve(ctx, email, directUserID)
	if !uc.Authenticated() || degraded {
		return uc
	}

	r.mu.Lock()
	r.cache[key] = uc
	r.mu.Unlock()

	r.logger.Debug("User context resolved",
		zap.String("user_id", uc.UserID),
		zap.String("department", uc.Department),
		zap.String("role", uc.Role))

	return uc
}

// resolve reports degraded when the directory failed for a reason other
// than the user being absent from it.
func (r *Resolver) resolve(ctx context.Context, email, userID string) (models.UserContext, bool) {
	uc := models.UserContext{UserID: userID, Email: email}

	record, err := r.lookup(ctx, email, userID)
	degraded := err != nil && status.Code(err) != codes.NotFound
	if err != nil {
		r.logger.Warn("User directory lookup failed, using fallback table",
			zap.String("user_id", userID),
			zap.String("email", email),
			zap.Bool("retry_next_call", degraded),
			zap.Error(err))
	}
	if record != nil {
		if uc.UserID == "" {
			uc.UserID = record.Identifier()
		}
		uc.Department = record.Department
		uc.Role = record.UserRole
	}

	if uc.UserID == "" {
		uc.UserID = localPart(email)
	}
	if uc.UserID == "" {
		return uc, degraded
	}

	if uc.Department == "" {
		uc.Department = FallbackDepartment(uc.UserID)
	}
	if uc.Role == "" {
		uc.Role = FallbackRole(uc.UserID)
	}

	return uc, degraded
}

func (r *Resolver) lookup(ctx context.Context, email, userID string) (*models.UserRecord, error) {
	if r.users == nil {
		return nil, nil
	}
	if userID != "" {
		return r.users.GetUser(ctx, userID)
	}
	return r.users.FindUserByEmail(ctx, email)
}

func cacheKey(email, userID string) string {
	switch {
	case userID != "":
		return "id:" + userID
	case email != "":
		return "email:" + strings.ToLower(email)
	default:
		return ""
	}
}

// localPart follows the login convention of <user_id>@example.com.
func localPart(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return ""
	}
	return local
}
