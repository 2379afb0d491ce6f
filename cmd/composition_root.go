package cmd

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	httpadapter "sales/internal/adapters/in/http"
	"sales/internal/adapters/out/kafka"
	"sales/internal/adapters/out/metrics"
	"sales/internal/adapters/out/postgres"
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/rules"
	"sales/internal/core/ports"
	"sales/internal/jobs"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	engine     *rules.Engine
	metrics    *metrics.Metrics
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
	closers    []func() error
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	ruleSet, err := rules.ParseRuleSet(cfg.RuleSet)
	if err != nil {
		return nil, err
	}

	engine, err := rules.NewEngine(rules.DefaultConfiguration(), ruleSet)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(registry)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		engine:     engine,
		metrics:    m,
		logger:     logger,
	}

	if cfg.KafkaHost != "" && cfg.KafkaOrderChangedTopic != "" {
		pub, pubErr := kafka.NewOrderEventPublisher(
			kafka.NewWriter(strings.Split(cfg.KafkaHost, ","), cfg.KafkaOrderChangedTopic),
		)
		if pubErr != nil {
			return nil, pubErr
		}
		c.closers = append(c.closers, pub.Close)
		c.publisher = m.Publisher(pub)
	} else {
		logger.Info("Kafka is not configured, order events are only counted")
		c.publisher = m.Publisher(nil)
	}

	logger.Info("Rule engine ready", "rule_set", string(engine.RuleSet()))
	return c, nil
}

// Close releases the broker connection.
func (c *CompositionRoot) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) Publisher() ports.OrderEventPublisher {
	return c.publisher
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.engine, c.publisher, c.clock())
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	return commands.NewProcessOrderCommandHandler(c.orderUoW(), c.publisher, c.clock())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderUoW(), c.publisher, c.clock())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uow(), c.publisher, c.clock())
}

func (c *CompositionRoot) CreateProcessExpiredOrdersCommandHandler() commands.ProcessExpiredOrdersCommandHandler {
	return commands.NewProcessExpiredOrdersCommandHandler(c.orderUoW(), c.publisher, c.clock())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoW())
}

func (c *CompositionRoot) CreateSetProductAttributeCommandHandler() commands.SetProductAttributeCommandHandler {
	return commands.NewSetProductAttributeCommandHandler(c.productUoW())
}

func (c *CompositionRoot) CreateRemoveProductAttributeCommandHandler() commands.RemoveProductAttributeCommandHandler {
	return commands.NewRemoveProductAttributeCommandHandler(c.productUoW())
}

func (c *CompositionRoot) CreateRestockProductCommandHandler() commands.RestockProductCommandHandler {
	return commands.NewRestockProductCommandHandler(c.productUoW())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the REST adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		ProcessOrder:           c.CreateProcessOrderCommandHandler(),
		ShipOrder:              c.CreateShipOrderCommandHandler(),
		CancelOrder:            c.CreateCancelOrderCommandHandler(),
		CreateProduct:          c.CreateCreateProductCommandHandler(),
		SetProductAttribute:    c.CreateSetProductAttributeCommandHandler(),
		RemoveProductAttribute: c.CreateRemoveProductAttributeCommandHandler(),
		RestockProduct:         c.CreateRestockProductCommandHandler(),
		GetOrder:               c.CreateGetOrderQueryHandler(),
		GetUserOrders:          c.CreateGetUserOrdersQueryHandler(),
		GetAllOrders:           c.CreateGetAllOrdersQueryHandler(),
		GetAllProducts:         c.CreateGetAllProductsQueryHandler(),
		GetProduct:             c.CreateGetProductQueryHandler(),
	}, c.logger.With("component", "http"))
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreateProcessExpiredOrdersCommandHandler()
	return jobs.NewJobManager(&handler, c.cfg.ExpiredOrdersSchedule, c.logger)
}

func (c *CompositionRoot) clock() commands.Clock {
	return func() time.Time {
		return time.Now().UTC()
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoW() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
