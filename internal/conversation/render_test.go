package conversation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vwency/policy-chat-gateway/internal/models"
)

var noon = time.Date(2026, 10, 16, 12, 5, 0, 0, time.UTC)

func TestRender_ApprovedWithSources(t *testing.T) {
	result := models.Approved("Revenue grew.", []models.Source{{Filename: "a.pdf"}, {Source: "b.csv"}})

	msg := Render(result, "revenue?", models.UserContext{UserID: "1003"}, noon)

	assert.True(t, strings.HasSuffix(msg.Content, "Sources: a.pdf, b.csv"))
	assert.True(t, strings.HasPrefix(msg.Content, "Revenue grew."))
	assert.Equal(t, models.RoleAssistant, msg.Role)
	assert.False(t, msg.IsDenied)
	assert.False(t, msg.IsError)
	assert.Equal(t, "12:05", msg.Timestamp)
	assert.NotEmpty(t, msg.ID)
}

func TestRender_ApprovedWithoutSources(t *testing.T) {
	msg := Render(models.Approved("Just text", nil), "q", models.UserContext{}, noon)

	assert.Equal(t, "Just text", msg.Content)
}

func TestRender_UnknownSource(t *testing.T) {
	result := models.Approved("ok", []models.Source{{}, {Filename: "c.md"}})

	msg := Render(result, "q", models.UserContext{}, noon)

	assert.True(t, strings.HasSuffix(msg.Content, "Sources: Unknown source, c.md"))
}

func TestRender_Denied(t *testing.T) {
	uc := models.UserContext{UserID: "2131", Department: "Sales"}

	msg := Render(models.Denied("Finance department only"), "What is our Q3 revenue?", uc, noon)

	assert.True(t, msg.IsDenied)
	assert.False(t, msg.IsError)
	assert.True(t, strings.HasPrefix(msg.Content, "🔒 Finance department only"))
	assert.Contains(t, msg.Content, "Finance Business Partner")
	assert.NotContains(t, msg.Content, "HR-Finance liaison")
}

func TestRender_Error(t *testing.T) {
	msg := Render(models.Failed(models.FailureTransport, "backend down"), "q", models.UserContext{}, noon)

	assert.True(t, msg.IsError)
	assert.False(t, msg.IsDenied)
	assert.Equal(t, apology+"backend down", msg.Content)
}

func TestRender_UniqueIDs(t *testing.T) {
	a := Render(models.Approved("x", nil), "q", models.UserContext{}, noon)
	b := Render(models.Approved("x", nil), "q", models.UserContext{}, noon)

	assert.NotEqual(t, a.ID, b.ID)
}
