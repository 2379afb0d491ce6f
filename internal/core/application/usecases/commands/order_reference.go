package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
)

// orderReference is the payload shared by commands that act on one stored order.
type orderReference struct {
	session kernel.Session
	orderID int64
}

func newOrderReference(session kernel.Session, orderID int64) (orderReference, error) {
	var ref orderReference
	if err := errors.Join(
		ref.setSession(session),
		ref.setOrderID(orderID),
	); err != nil {
		return orderReference{}, err
	}
	return ref, nil
}

func (r orderReference) Session() kernel.Session {
	return r.session
}

func (r orderReference) OrderID() int64 {
	return r.orderID
}

func (r *orderReference) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	r.session = session
	return nil
}

func (r *orderReference) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsOutOfRangeError("order id", orderID, 1, "max int64")
	}
	r.orderID = orderID
	return nil
}

func requireAdmin(session kernel.Session, action string) error {
	if !session.IsAdmin() {
		return errs.NewAccessDeniedError(action, session.Email().String())
	}
	return nil
}
