// Package http exposes the sales use cases as a JSON REST API on echo.
//
// Identity is taken from headers set by the gateway in front of the service:
// X-User-Email names the caller and X-User-Role: admin grants back-office
// rights.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"
)

// Use case ports consumed by the server. The command and query handlers of
// the application layer satisfy them.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ProcessOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ProcessOrderCommand) (*order.Order, error)
	}
	ShipOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ShipOrderCommand) (*order.Order, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) (*product.Product, error)
	}
	SetProductAttributeHandler interface {
		Handle(ctx context.Context, cmd commands.SetProductAttributeCommand) (*product.Product, error)
	}
	RemoveProductAttributeHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveProductAttributeCommand) (*product.Product, error)
	}
	RestockProductHandler interface {
		Handle(ctx context.Context, cmd commands.RestockProductCommand) (*product.Product, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	GetUserOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetUserOrdersQuery) ([]queries.OrderView, error)
	}
	GetAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderView, error)
	}
	GetAllProductsHandler interface {
		Handle(ctx context.Context, query queries.GetAllProductsQuery) ([]queries.ProductView, error)
	}
	GetProductHandler interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (queries.ProductView, error)
	}
)

// Handlers groups every use case the server routes to.
type Handlers struct {
	CreateOrder            CreateOrderHandler
	ProcessOrder           ProcessOrderHandler
	ShipOrder              ShipOrderHandler
	CancelOrder            CancelOrderHandler
	CreateProduct          CreateProductHandler
	SetProductAttribute    SetProductAttributeHandler
	RemoveProductAttribute RemoveProductAttributeHandler
	RestockProduct         RestockProductHandler
	GetOrder               GetOrderHandler
	GetUserOrders          GetUserOrdersHandler
	GetAllOrders           GetAllOrdersHandler
	GetAllProducts         GetAllProductsHandler
	GetProduct             GetProductHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		logger:   logger,
	}
}

// Register mounts the health check and the /api/v1 routes on e and installs
// the JSON error handler.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.handleError

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", requireSession)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/process", s.ProcessOrder)
	api.PUT("/orders/:id/ship", s.ShipOrder)
	api.PUT("/orders/:id/cancel", s.CancelOrder)
	api.GET("/users/:email/orders", s.GetUserOrders)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProduct)
	api.PUT("/products/:id", s.RestockProduct)
	api.PUT("/products/:id/attributes/:name", s.SetProductAttribute)
	api.DELETE("/products/:id/attributes/:name", s.RemoveProductAttribute)
}
