package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
)

// GetProducts handles GET /api/v1/products - lists the catalog.
func (s *Server) GetProducts(c echo.Context) error {
	views, err := s.handlers.GetAllProducts.Handle(c.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return err
	}

	response := make([]Product, len(views))
	for i, v := range views {
		response[i] = productFromView(v)
	}

	return c.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id", "product id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return err
	}

	view, err := s.handlers.GetProduct.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productFromView(view))
}

// RestockProduct handles PUT /api/v1/products/:id - sets the stock level
// (admin only).
func (s *Server) RestockProduct(c echo.Context) error {
	id, err := pathID(c, "id", "product id")
	if err != nil {
		return err
	}

	var body StockLevel
	if err = c.Bind(&body); err != nil || body.Quantity == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRestockProductCommand(sessionFrom(c), id, *body.Quantity)
	if err != nil {
		return err
	}

	p, err := s.handlers.RestockProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productFromAggregate(p))
}

// CreateProduct handles POST /api/v1/products (admin only).
func (s *Server) CreateProduct(c echo.Context) error {
	var body NewProduct
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(
		sessionFrom(c),
		body.Name,
		body.Type,
		body.Weight,
		body.Quantity,
		body.State,
		body.Price,
		body.Attributes,
	)
	if err != nil {
		return err
	}

	p, err := s.handlers.CreateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productFromAggregate(p))
}

// SetProductAttribute handles PUT /api/v1/products/:id/attributes/:name.
func (s *Server) SetProductAttribute(c echo.Context) error {
	id, err := pathID(c, "id", "product id")
	if err != nil {
		return err
	}

	var body AttributeValue
	if err = c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSetProductAttributeCommand(sessionFrom(c), id, c.Param("name"), body.Value)
	if err != nil {
		return err
	}

	p, err := s.handlers.SetProductAttribute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productFromAggregate(p))
}

// RemoveProductAttribute handles DELETE /api/v1/products/:id/attributes/:name.
func (s *Server) RemoveProductAttribute(c echo.Context) error {
	id, err := pathID(c, "id", "product id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveProductAttributeCommand(sessionFrom(c), id, c.Param("name"))
	if err != nil {
		return err
	}

	p, err := s.handlers.RemoveProductAttribute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productFromAggregate(p))
}
