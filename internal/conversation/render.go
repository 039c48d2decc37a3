package conversation

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vwency/policy-chat-gateway/internal/access"
	"github.com/vwency/policy-chat-gateway/internal/models"
)

const (
	Greeting = "Hello! I'm your document assistant. How can I help you today?"

	apology         = "I'm sorry, I couldn't process your request. "
	timestampLayout = "15:04"
)

// Render converts a query result into the assistant message shown to the
// user. Denied results are replaced by a remediation message; the backend's
// raw denial text only appears as its first line.
func Render(result models.QueryResult, query string, uc models.UserContext, now time.Time) models.ChatMessage {
	msg := newMessage(models.RoleAssistant, now)

	switch {
	case result.IsApproved():
		msg.Content = withSources(result.Response, result.Sources)
	case result.IsDenied():
		category := access.Classify(query, result.Message)
		msg.Content = access.Compose(category, result.Message, uc)
		msg.IsDenied = true
	default:
		msg.Content = apology + result.Message
		msg.IsError = true
	}

	return msg
}

func withSources(response string, sources []models.Source) string {
	if len(sources) == 0 {
		return response
	}

	labels := make([]string, len(sources))
	for i, s := range sources {
		labels[i] = s.Label()
	}

	return response + "\n\nSources: " + strings.Join(labels, ", ")
}

func newMessage(role models.Role, now time.Time) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Timestamp: now.Format(timestampLayout),
	}
}
