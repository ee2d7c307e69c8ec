package domain

// Actor is the authenticated identity behind a single request. The zero
// value is an anonymous visitor.
type Actor struct {
	UserID   int64
	Username string
	Role     Role
}

// Authenticated reports whether the actor belongs to a signed-in user.
func (a Actor) Authenticated() bool {
	return a.UserID != 0
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Authenticated() && a.Role == RoleAdmin
}

// CanModify reports whether the actor may edit or delete p.
func (a Actor) CanModify(p *Project) bool {
	if p == nil || !a.Authenticated() {
		return false
	}
	return a.IsAdmin() || p.OwnerID == a.UserID
}
