package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

// CreateOrder handles POST /api/v1/orders - places an order for the caller.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	productIDs := make([]int64, len(body.Items))
	quantities := make([]int, len(body.Items))
	for i, item := range body.Items {
		productIDs[i] = item.ProductID
		quantities[i] = item.Quantity
	}

	cmd, err := commands.NewCreateOrderCommand(sessionFrom(c), productIDs, quantities)
	if err != nil {
		return err
	}

	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err = s.committed(c, err); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, orderFromAggregate(o))
}

// GetOrders handles GET /api/v1/orders - lists every order (admin only).
// The optional state query parameter keeps only orders in that state.
func (s *Server) GetOrders(c echo.Context) error {
	query, err := queries.NewGetAllOrdersQuery(sessionFrom(c), c.QueryParam("state"))
	if err != nil {
		return err
	}

	views, err := s.handlers.GetAllOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ordersFromViews(views))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id", "order id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(sessionFrom(c), id)
	if err != nil {
		return err
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderFromView(view))
}

// GetUserOrders handles GET /api/v1/users/:email/orders.
func (s *Server) GetUserOrders(c echo.Context) error {
	query, err := queries.NewGetUserOrdersQuery(sessionFrom(c), c.Param("email"))
	if err != nil {
		return err
	}

	views, err := s.handlers.GetUserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ordersFromViews(views))
}

// ProcessOrder handles PUT /api/v1/orders/:id/process.
func (s *Server) ProcessOrder(c echo.Context) error {
	id, err := pathID(c, "id", "order id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewProcessOrderCommand(sessionFrom(c), id)
	if err != nil {
		return err
	}

	o, err := s.handlers.ProcessOrder.Handle(c.Request().Context(), cmd)
	return s.respondOrder(c, o, err)
}

// ShipOrder handles PUT /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(c echo.Context) error {
	id, err := pathID(c, "id", "order id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewShipOrderCommand(sessionFrom(c), id)
	if err != nil {
		return err
	}

	o, err := s.handlers.ShipOrder.Handle(c.Request().Context(), cmd)
	return s.respondOrder(c, o, err)
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	id, err := pathID(c, "id", "order id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(sessionFrom(c), id)
	if err != nil {
		return err
	}

	o, err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd)
	return s.respondOrder(c, o, err)
}

func (s *Server) respondOrder(c echo.Context, o *order.Order, err error) error {
	if err = s.committed(c, err); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderFromAggregate(o))
}

func pathID(c echo.Context, param, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
