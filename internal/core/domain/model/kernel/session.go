package kernel

// Session carries the identity of the caller for a single operation. It is
// passed explicitly to every command and query; nothing in the service keeps a
// process-wide notion of the current user.
type Session struct {
	email Email
	admin bool
}

// NewSession builds a customer session for email.
func NewSession(email string) (Session, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Session{}, err
	}
	return Session{email: e}, nil
}

// NewAdminSession builds a session with back-office privileges.
func NewAdminSession(email string) (Session, error) {
	s, err := NewSession(email)
	if err != nil {
		return Session{}, err
	}
	s.admin = true
	return s, nil
}

func (s Session) Email() Email {
	return s.email
}

func (s Session) IsAdmin() bool {
	return s.admin
}

// CanActFor reports whether the session may act on resources owned by owner.
func (s Session) CanActFor(owner Email) bool {
	return s.admin || s.email.IsEqual(owner)
}

func (s Session) Validate() error {
	return s.email.Validate()
}
