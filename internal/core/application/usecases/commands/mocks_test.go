package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"
	"sales/internal/core/domain/rules"
	"sales/internal/core/ports"
)

var fixedNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPlacedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*product.Product), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, events ...order.StateChanged) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

type MockValidator struct{ mock.Mock }

func (m *MockValidator) Validate(o *order.Order, products rules.Products) error {
	args := m.Called(o, products)
	return args.Error(0)
}

func customer(t *testing.T) kernel.Session {
	t.Helper()

	s, err := kernel.NewSession("buyer@example.com")
	require.NoError(t, err)
	return s
}

func admin(t *testing.T) kernel.Session {
	t.Helper()

	s, err := kernel.NewAdminSession("admin@example.com")
	require.NoError(t, err)
	return s
}

func newProduct(t *testing.T, id int64, quantity int) *product.Product {
	t.Helper()

	p, err := product.RestoreProduct(id, "Kettle", "kitchen", 1, quantity, product.Solid, 30, nil)
	require.NoError(t, err)
	return p
}

func restoreOrder(t *testing.T, id int64, state order.State, createdAt time.Time, lines ...order.LineItem) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(id, lines, state, createdAt, nil, nil, kernel.MustNewEmail("buyer@example.com"))
	require.NoError(t, err)
	return o
}

func modifiedEngine(t *testing.T) *rules.Engine {
	t.Helper()

	engine, err := rules.NewEngine(rules.DefaultConfiguration(), rules.ModifiedRuleSet)
	require.NoError(t, err)
	return engine
}
