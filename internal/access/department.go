package access

import "strings"

var departmentAliases = map[string]string{
	"it":                     "IT",
	"i.t.":                   "IT",
	"information technology": "IT",
	"hr":                     "HR",
	"h.r.":                   "HR",
	"human resources":        "HR",
	"finance":                "Finance",
	"financial":              "Finance",
	"accounting":             "Finance",
	"sales":                  "Sales",
	"marketing":              "Marketing",
	"general":                "General",
	"operations":             "Operations",
	"operation":              "Operations",
	"ops":                    "Operations",
}

// NormalizeDepartment maps directory spellings such as "Human Resources" or
// "ops" onto canonical department names. Unknown names are returned trimmed.
func NormalizeDepartment(dept string) string {
	dept = strings.TrimSpace(dept)
	if canonical, ok := departmentAliases[strings.ToLower(dept)]; ok {
		return canonical
	}
	return dept
}
