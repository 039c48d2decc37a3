package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vwency/policy-chat-gateway/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		message string
		want    models.DenialCategory
	}{
		{"empty", "", "", models.CategoryOther},
		{"finance keyword in query", "What is our Q3 revenue?", "", models.CategoryFinance},
		{"finance keyword in message", "show me that", "Finance department only", models.CategoryFinance},
		{"report counts as finance", "Send the quarterly REPORT", "", models.CategoryFinance},
		{"it with trailing space", "is it working", "", models.CategoryIT},
		{"it prefix does not match", "itinerary for the offsite", "", models.CategoryOther},
		{"word ending in it before a space matches", "edit the wiki", "", models.CategoryIT},
		{"query ending in it", "Who can submit", "", models.CategoryOther},
		{"query ending in it with message", "Show me the latest audit", "Access denied", models.CategoryOther},
		{"query ending in it falls to later category", "customer audit", "", models.CategorySales},
		{"it keyword in message only", "who owns this", "Restricted: it is classified", models.CategoryIT},
		{"security", "Firewall SECURITY rules", "", models.CategoryIT},
		{"hr", "HR handbook", "", models.CategoryHR},
		{"benefits", "dental benefits", "", models.CategoryHR},
		{"sales", "top customer accounts", "", models.CategorySales},
		{"finance beats hr", "hiring budget", "", models.CategoryFinance},
		{"it beats hr", "employee network access", "", models.CategoryIT},
		{"hr beats sales", "staff in the market team", "", models.CategoryHR},
		{"nothing", "lunch menu", "Access Denied", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.query, tt.message))
		})
	}
}

func TestClassify_FinanceWinsOverLaterCategories(t *testing.T) {
	for _, kw := range []string{"finance", "financial", "budget", "revenue", "profit", "earnings", "report"} {
		assert.Equal(t, models.CategoryFinance, Classify("need the "+kw+" for sales and staff", ""), kw)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("customer churn", "Access Denied: Sales only")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify("customer churn", "Access Denied: Sales only"))
	}
}

func TestDenialCategory_String(t *testing.T) {
	assert.Equal(t, "Finance", models.CategoryFinance.String())
	assert.Equal(t, "Other", models.CategoryOther.String())
}
