package kernel

import (
	"fmt"
	"net/mail"
	"strings"

	"sales/internal/pkg/errs"
)

// Email identifies a customer. Orders are owned by an Email for their whole life.
type Email struct {
	value string
}

// NewEmail trims and lower-cases the address and checks it parses as a bare
// RFC 5322 address.
func NewEmail(value string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid address", value))
	}

	return Email{value: normalized}, nil
}

// MustNewEmail panics on invalid input; use it only for literals.
func MustNewEmail(value string) Email {
	email, err := NewEmail(value)
	if err != nil {
		panic(err)
	}
	return email
}

func (e Email) String() string {
	return e.value
}

func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

func (e Email) Validate() error {
	if e.value == "" {
		return errs.NewValueIsRequiredError("email")
	}
	return nil
}
