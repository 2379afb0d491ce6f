package queries

import (
	"errors"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery lists every order, optionally only those in one state.
// Only administrators may run it.
//
// Example:
//
//	query, err := NewGetAllOrdersQuery(adminSession, "InProcess")
//	if err != nil {
//	    return err // unknown state name
//	}
//	orders, err := NewGetAllOrdersQueryHandler(db).Handle(ctx, query)
type GetAllOrdersQuery struct {
	session kernel.Session
	state   order.State

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery builds the query. An empty state lists orders in any
// state; anything else must be a canonical state name.
func NewGetAllOrdersQuery(session kernel.Session, state string) (GetAllOrdersQuery, error) {
	if err := session.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}

	query := GetAllOrdersQuery{
		session: session,
		guard:   guard.NewConstructorGuard(),
	}

	if state = strings.TrimSpace(state); state != "" {
		parsed, err := order.ParseState(state)
		if err != nil {
			return GetAllOrdersQuery{}, err
		}
		query.state = parsed
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

func (q GetAllOrdersQuery) Session() kernel.Session {
	return q.session
}

// State returns the requested state, or order.Unknown when every state is
// wanted.
func (q GetAllOrdersQuery) State() order.State {
	return q.state
}
