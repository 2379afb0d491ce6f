package queries

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery lists the orders owned by one user.
type GetUserOrdersQuery struct {
	session kernel.Session
	owner   kernel.Email

	guard guard.ConstructorGuard
}

func NewGetUserOrdersQuery(session kernel.Session, owner string) (GetUserOrdersQuery, error) {
	if err := session.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}
	email, err := kernel.NewEmail(owner)
	if err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		session: session,
		owner:   email,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

func (q GetUserOrdersQuery) Session() kernel.Session {
	return q.session
}

func (q GetUserOrdersQuery) Owner() kernel.Email {
	return q.owner
}
