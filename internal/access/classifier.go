package access

import (
	"strings"

	"github.com/vwency/policy-chat-gateway/internal/models"
)

type categoryRule struct {
	category models.DenialCategory
	keywords []string
}

// Rules are evaluated in order and the first hit wins, so a query that
// mentions both revenue and hiring is Finance.
var categoryRules = []categoryRule{
	{models.CategoryFinance, []string{"finance", "financial", "budget", "revenue", "profit", "earnings", "report"}},
	{models.CategoryIT, []string{"it ", "system", "technology", "software", "hardware", "network", "security"}},
	{models.CategoryHR, []string{"hr", "human resources", "personnel", "employee", "staff", "benefits", "hiring"}},
	{models.CategorySales, []string{"sales", "customer", "client", "market", "sell"}},
}

// Classify infers the subject area of a denied query from the query text
// and the backend's denial message. Each text is matched on its own so a
// keyword never spans the boundary between them.
func Classify(query, denialMessage string) models.DenialCategory {
	q := strings.ToLower(query)
	m := strings.ToLower(denialMessage)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) || strings.Contains(m, kw) {
				return rule.category
			}
		}
	}

	return models.CategoryOther
}
