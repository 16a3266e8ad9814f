// ABOUTME: Session type representing the authenticated console user
// ABOUTME: Mirrors the backend login response shape with optional fields

package session

// Session is the authenticated identity held for the current console process.
// Only ID is guaranteed; every other field is optional and backend-owned.
type Session struct {
	ID        int64  `json:"id"`
	Email     string `json:"email,omitempty"`
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Role      *int   `json:"role,omitempty"`
	Status    *int   `json:"status,omitempty"`
}

// DisplayName returns a human-readable name for the session, preferring the
// first/last name pair and falling back to the email address.
func (s Session) DisplayName() string {
	if s.Firstname != "" {
		if s.Lastname != "" {
			return s.Firstname + " " + s.Lastname
		}
		return s.Firstname
	}
	return s.Email
}

// Initial returns a single-character avatar initial for the session.
func (s Session) Initial() string {
	if s.Firstname != "" {
		return string([]rune(s.Firstname)[:1])
	}
	if s.Email != "" {
		return string([]rune(s.Email)[:1])
	}
	return "U"
}
