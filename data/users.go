package data

// AnonymousUser represents an unauthenticated request.
var AnonymousUser = &User{}

// User defines the identity-provider view of a caller. The provider owns the
// account lifecycle; this service only ever sees the stable opaque id.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// IsAnonymous checks if a user instance is the anonymous user.
func (u *User) IsAnonymous() bool {
	return u == AnonymousUser
}
