package models

// UserContext carries the caller attributes used to personalize denial
// messages. It is resolved once per session and passed by value.
type UserContext struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email,omitempty"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
}

// Authenticated reports whether a user id was resolved.
func (u UserContext) Authenticated() bool {
	return u.UserID != ""
}

// UserRecord is the user directory's view of an employee.
type UserRecord struct {
	UserID         string `json:"user_id,omitempty"`
	ID             string `json:"id,omitempty"`
	Email          string `json:"email,omitempty"`
	Department     string `json:"department,omitempty"`
	UserRole       string `json:"user_role,omitempty"`
	EmployeeStatus string `json:"employee_status,omitempty"`
	Region         string `json:"region,omitempty"`
	PastViolations int    `json:"past_violations,omitempty"`
}

// Identifier returns user_id, falling back to id.
func (r UserRecord) Identifier() string {
	if r.UserID != "" {
		return r.UserID
	}
	return r.ID
}
