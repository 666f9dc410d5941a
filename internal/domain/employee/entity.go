package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID           string // login, generated once at provisioning
	FirstName    string
	LastName     string
	PasswordHash string // opaque credential reference, owned by the auth collaborator
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName renders the employee the way reports print it.
func (e Employee) DisplayName() string {
	return capitalize(e.FirstName) + " " + strings.ToUpper(e.LastName)
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// Login derives the immutable employee identifier from free-text names:
// lowercase(lastname) + "." + lowercase(firstname), with spaces and hyphens
// stripped inside each segment.
func Login(lastName, firstName string) string {
	return loginSegment(lastName) + "." + loginSegment(firstName)
}

func loginSegment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
