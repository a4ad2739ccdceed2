package domain

// Caller is the authenticated identity making a request
type Caller struct {
	UserID   uint
	Username string
	Role     Role
}

// IsAdmin reports whether the caller holds the administrator role
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
