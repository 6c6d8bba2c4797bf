package model

// Role names accepted in the User.Role field.
const (
	RoleAdmin   = "ADMIN"
	RoleStudent = "STUDENT"
)

// User represents a library patron or administrator.  The JSON tags
// mirror the field names the frontend stores and sends, so records
// round-trip through the API unchanged.  The password is an opaque
// string persisted verbatim; this service has no credential hashing
// or session model.
//
// Fields:
//
//	ID          – caller-assigned unique identifier.
//	Name        – display name.
//	Email       – contact email.
//	Password    – opaque credential string (stored as received).
//	Role        – ADMIN or STUDENT.
//	StudentID   – student registry number (students only).
//	Department  – academic department (students only).
//	YearSection – year and section label (students only).
//	Mobile      – phone number (students only).
//	IsBlocked   – when true the account is blocked.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	StudentID   string `json:"studentId"`
	Department  string `json:"department"`
	YearSection string `json:"yearSection"`
	Mobile      string `json:"mobile"`
	IsBlocked   bool   `json:"isBlocked"`
}
