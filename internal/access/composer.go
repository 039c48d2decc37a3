package access

import (
	"strings"

	"github.com/vwency/policy-chat-gateway/internal/models"
)

const lockPrefix = "🔒 "

const (
	financeHRAdvice = "As a member of the HR department, you can request payroll and compensation summaries " +
		"through the HR-Finance liaison. Contact the HR Business Partner for Finance (hr-finance@company.com) " +
		"to request an approved extract."
	financeSalesAdvice = "Sales team members can obtain revenue and pipeline figures through their assigned Finance partner. " +
		"Contact your Finance Business Partner (finance-partners@company.com) or ask your Sales Director " +
		"to submit a data access request."
	financeOperationsAdvice = "Operations staff can request budget and cost-center reports through the Operations Controller. " +
		"Submit a request to the Finance Operations desk (finops@company.com)."
	financeGenericAdvice = "Financial information is restricted to authorized Finance personnel. If you need this data " +
		"for your work, ask your manager to submit an access request to the Finance department (finance@company.com)."

	itAdvice = "Technical and security documentation is restricted to the IT department. Open a ticket with the " +
		"IT Service Desk (it-helpdesk@company.com) describing the system you need access to."
	hrAdvice = "Personnel and employee records are confidential. Contact your HR Business Partner (hr@company.com) " +
		"for information about your own records or for approved HR data."
	salesAdvice = "Customer and sales data is limited to the Sales organization. Contact the Sales Operations team " +
		"(sales-ops@company.com) to request the information you need."
	otherAdvice = "This resource is outside your current access scope. Contact your manager or the document owner " +
		"to request access."

	policyFooter = "For more information, refer to the company Information Security and Data Access Policy."
)

// Compose builds the remediation message shown for a denied query. It is
// pure: the same inputs always yield the same text.
func Compose(category models.DenialCategory, baseMessage string, uc models.UserContext) string {
	var sb strings.Builder
	sb.WriteString(lockPrefix)
	sb.WriteString(baseMessage)
	sb.WriteString("\n\n")
	sb.WriteString(escalation(category, uc.Department))
	sb.WriteString("\n\n")
	sb.WriteString(policyFooter)
	return sb.String()
}

func escalation(category models.DenialCategory, department string) string {
	switch category {
	case models.CategoryFinance:
		switch NormalizeDepartment(department) {
		case "HR":
			return financeHRAdvice
		case "Sales":
			return financeSalesAdvice
		case "Operations":
			return financeOperationsAdvice
		default:
			return financeGenericAdvice
		}
	case models.CategoryIT:
		return itAdvice
	case models.CategoryHR:
		return hrAdvice
	case models.CategorySales:
		return salesAdvice
	default:
		return otherAdvice
	}
}
