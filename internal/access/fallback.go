package access

const (
	// AdminUserID is the administrative identity of the fallback table.
	AdminUserID = "1001"

	UnknownDepartment = "Unknown"
	DefaultRole       = "User"
	AdminRole         = "Admin"
)

var fallbackDepartments = map[string]string{
	"1001": "IT",
	"1002": "HR",
	"1003": "Finance",
	"1004": "Marketing",
	"1005": "IT",
	"2131": "Sales",
	"9999": "Operations",
}

// FallbackDepartment returns the static department for userID, or
// "Unknown" for ids outside the table.
func FallbackDepartment(userID string) string {
	if dept, ok := fallbackDepartments[userID]; ok {
		return dept
	}
	return UnknownDepartment
}

func FallbackRole(userID string) string {
	if userID == AdminUserID {
		return AdminRole
	}
	return DefaultRole
}
