package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrIDAlreadyAssigned     = errors.New("order id is already assigned")
)

// LineItem is a (product id, quantity) pair of an order.
type LineItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Order is the aggregate root of a customer purchase.
//
// Invariants:
//   - product ids are unique and quantities positive
//   - creation time and owner never change
//   - processedAt/shippedAt are only set by a successful Process/Ship
//   - state only changes through Process, Ship and Cancel
type Order struct {
	id          int64
	lines       map[int64]int
	state       State
	createdAt   time.Time
	processedAt *time.Time
	shippedAt   *time.Time
	owner       kernel.Email

	events        []StateChanged
	isConstructed bool
}

// NewOrder builds a Placed order from parallel product id and quantity
// slices. The order has no id until the repository stores it.
//
// This function enforces the following business rules:
//   - productIDs and quantities have the same, non-zero length
//   - every quantity is positive
//   - a product id appears at most once
//   - the owner is a valid email
//
// Parameters:
//   - productIDs, quantities: the line items, paired by index
//   - owner: the customer placing the order
//   - now: the creation time, also used for the Placed event
//
// Returns:
//   - the new order with one pending StateChanged event (to Placed)
//   - InvalidInput/Required errors, joined, when any rule is broken
//
// Example:
//
//	o, err := order.NewOrder([]int64{7, 9}, []int{2, 1}, session.Email(), time.Now())
//	if err != nil {
//	    return err
//	}
//	err = orderRepo.Add(ctx, o) // assigns the id
func NewOrder(productIDs []int64, quantities []int, owner kernel.Email, now time.Time) (*Order, error) {
	if len(productIDs) != len(quantities) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"line items",
			fmt.Errorf("%d product ids but %d quantities", len(productIDs), len(quantities)),
		)
	}

	o := &Order{
		state:         Placed,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setLines(productIDs, quantities),
		o.setOwner(owner),
	); err != nil {
		return nil, err
	}

	o.record(Unknown, now)
	return o, nil
}

// RestoreOrder rebuilds a persisted order. No event is recorded.
func RestoreOrder(
	id int64,
	lines []LineItem,
	state State,
	createdAt time.Time,
	processedAt *time.Time,
	shippedAt *time.Time,
	owner kernel.Email,
) (*Order, error) {
	productIDs := make([]int64, len(lines))
	quantities := make([]int, len(lines))
	for i, line := range lines {
		productIDs[i] = line.ProductID
		quantities[i] = line.Quantity
	}

	o := &Order{
		createdAt:     createdAt,
		processedAt:   processedAt,
		shippedAt:     shippedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setLines(productIDs, quantities),
		o.setOwner(owner),
		o.setState(state),
		o.AssignID(id),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID sets the identifier handed out by storage. It can be called once.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("order id", id, 1, "max int64")
	}
	if o.id != 0 && o.id != id {
		return ErrIDAlreadyAssigned
	}
	o.id = id
	for i := range o.events {
		o.events[i].OrderID = id
	}
	return nil
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) State() State {
	return o.state
}

func (o *Order) Owner() kernel.Email {
	return o.owner
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ProcessedAt is nil until the order has been processed.
func (o *Order) ProcessedAt() *time.Time {
	return o.processedAt
}

// ShippedAt is nil until the order has been shipped.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// ProductIDs returns the distinct product ids in ascending order.
func (o *Order) ProductIDs() []int64 {
	ids := make([]int64, 0, len(o.lines))
	for id := range o.lines {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Lines returns the line items sorted by product id.
func (o *Order) Lines() []LineItem {
	lines := make([]LineItem, 0, len(o.lines))
	for _, id := range o.ProductIDs() {
		lines = append(lines, LineItem{ProductID: id, Quantity: o.lines[id]})
	}
	return lines
}

// Process moves the order to InProcess and stamps the process time.
//
// Only a Placed order can be processed. On failure the order is left
// untouched and the PolicyViolationError carries the reason shown to the
// caller, for example "order is already in process".
//
// Example:
//
//	if err := o.Process(time.Now()); err != nil {
//	    return err
//	}
//	// o.State() == order.InProcess, o.ProcessedAt() != nil
func (o *Order) Process(now time.Time) error {
	next, err := o.state.Process()
	if err != nil {
		return err
	}
	o.transition(next, now)
	o.processedAt = &now
	return nil
}

// Ship moves the order to Shipped and stamps the ship time.
//
// Only an order in process can be shipped; a Placed order is rejected with
// "order must be in process before shipping". On failure nothing changes.
func (o *Order) Ship(now time.Time) error {
	next, err := o.state.Ship()
	if err != nil {
		return err
	}
	o.transition(next, now)
	o.shippedAt = &now
	return nil
}

// Cancel moves the order to Cancelled. Restoring stock is up to the caller
// and must only happen when Cancel returns nil.
//
// This method enforces the following business rules:
//   - only a Placed order can be cancelled
//   - at most CancellationWindow may have passed since creation
//
// Parameters:
//   - now: the time of the request, compared against CreatedAt
//
// Returns:
//   - nil when the order is now Cancelled
//   - PolicyViolationError otherwise; the order is unchanged
//
// Example:
//
//	if err := o.Cancel(time.Now()); err != nil {
//	    return err // stock stays where it is
//	}
//	err := keeper.Return(o, products)
func (o *Order) Cancel(now time.Time) error {
	next, err := o.state.Cancel(o.createdAt, now)
	if err != nil {
		return err
	}
	o.transition(next, now)
	return nil
}

// PullEvents returns the recorded events and clears them.
func (o *Order) PullEvents() []StateChanged {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) transition(next State, now time.Time) {
	previous := o.state
	o.state = next
	o.record(previous, now)
}

func (o *Order) record(from State, now time.Time) {
	event := StateChanged{
		EventID:    kernel.NewUUID(),
		OrderID:    o.id,
		Owner:      o.owner.String(),
		To:         o.state.String(),
		Lines:      o.Lines(),
		OccurredAt: now,
	}
	if from != Unknown {
		event.From = from.String()
	}
	o.events = append(o.events, event)
}

func (o *Order) setLines(productIDs []int64, quantities []int) error {
	if len(productIDs) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}

	lines := make(map[int64]int, len(productIDs))
	var joined error
	for i, id := range productIDs {
		if id <= 0 {
			joined = errors.Join(joined, errs.NewValueIsInvalidErrorWithCause(
				"product id", fmt.Errorf("%d is not a valid product id", id)))
			continue
		}
		if _, dup := lines[id]; dup {
			joined = errors.Join(joined, errs.NewValueIsInvalidErrorWithCause(
				"product id", fmt.Errorf("product %d appears more than once", id)))
			continue
		}
		if quantities[i] <= 0 {
			joined = errors.Join(joined, errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("%d is not greater than 0 for product %d", quantities[i], id)))
			continue
		}
		lines[id] = quantities[i]
	}
	if joined != nil {
		return joined
	}

	o.lines = lines
	return nil
}

func (o *Order) setOwner(owner kernel.Email) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	o.owner = owner
	return nil
}

func (o *Order) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	o.state = state
	return nil
}
