package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpadapter "sales/internal/adapters/in/http"
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"
	"sales/internal/pkg/errs"
)

var createdAt = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

// MockHandler serves every use case port; the method name recorded by
// testify tells which one was called.
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) orderResult(method string, cmd any) (*order.Order, error) {
	args := m.MethodCalled(method, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockHandler) productResult(method string, cmd any) (*product.Product, error) {
	args := m.MethodCalled(method, cmd)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

type createOrder struct{ *MockHandler }

func (h createOrder) Handle(_ context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	return h.orderResult("CreateOrder", cmd)
}

type processOrder struct{ *MockHandler }

func (h processOrder) Handle(_ context.Context, cmd commands.ProcessOrderCommand) (*order.Order, error) {
	return h.orderResult("ProcessOrder", cmd)
}

type shipOrder struct{ *MockHandler }

func (h shipOrder) Handle(_ context.Context, cmd commands.ShipOrderCommand) (*order.Order, error) {
	return h.orderResult("ShipOrder", cmd)
}

type cancelOrder struct{ *MockHandler }

func (h cancelOrder) Handle(_ context.Context, cmd commands.CancelOrderCommand) (*order.Order, error) {
	return h.orderResult("CancelOrder", cmd)
}

type createProduct struct{ *MockHandler }

func (h createProduct) Handle(_ context.Context, cmd commands.CreateProductCommand) (*product.Product, error) {
	return h.productResult("CreateProduct", cmd)
}

type setAttribute struct{ *MockHandler }

func (h setAttribute) Handle(_ context.Context, cmd commands.SetProductAttributeCommand) (*product.Product, error) {
	return h.productResult("SetProductAttribute", cmd)
}

type removeAttribute struct{ *MockHandler }

func (h removeAttribute) Handle(_ context.Context, cmd commands.RemoveProductAttributeCommand) (*product.Product, error) {
	return h.productResult("RemoveProductAttribute", cmd)
}

type restockProduct struct{ *MockHandler }

func (h restockProduct) Handle(_ context.Context, cmd commands.RestockProductCommand) (*product.Product, error) {
	return h.productResult("RestockProduct", cmd)
}

type getProduct struct{ *MockHandler }

func (h getProduct) Handle(_ context.Context, query queries.GetProductQuery) (queries.ProductView, error) {
	args := h.MethodCalled("GetProduct", query)
	return args.Get(0).(queries.ProductView), args.Error(1)
}

type getOrder struct{ *MockHandler }

func (h getOrder) Handle(_ context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := h.MethodCalled("GetOrder", query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type getUserOrders struct{ *MockHandler }

func (h getUserOrders) Handle(_ context.Context, query queries.GetUserOrdersQuery) ([]queries.OrderView, error) {
	args := h.MethodCalled("GetUserOrders", query)
	views, _ := args.Get(0).([]queries.OrderView)
	return views, args.Error(1)
}

type getAllOrders struct{ *MockHandler }

func (h getAllOrders) Handle(_ context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderView, error) {
	args := h.MethodCalled("GetAllOrders", query)
	views, _ := args.Get(0).([]queries.OrderView)
	return views, args.Error(1)
}

type getAllProducts struct{ *MockHandler }

func (h getAllProducts) Handle(_ context.Context, query queries.GetAllProductsQuery) ([]queries.ProductView, error) {
	args := h.MethodCalled("GetAllProducts", query)
	views, _ := args.Get(0).([]queries.ProductView)
	return views, args.Error(1)
}

func newTestServer(t *testing.T) (*echo.Echo, *MockHandler) {
	t.Helper()
	m := new(MockHandler)
	t.Cleanup(func() { m.AssertExpectations(t) })

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:            createOrder{m},
		ProcessOrder:           processOrder{m},
		ShipOrder:              shipOrder{m},
		CancelOrder:            cancelOrder{m},
		CreateProduct:          createProduct{m},
		SetProductAttribute:    setAttribute{m},
		RemoveProductAttribute: removeAttribute{m},
		RestockProduct:         restockProduct{m},
		GetOrder:               getOrder{m},
		GetUserOrders:          getUserOrders{m},
		GetAllOrders:           getAllOrders{m},
		GetAllProducts:         getAllProducts{m},
		GetProduct:             getProduct{m},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	server.Register(e)
	return e, m
}

type request struct {
	method string
	path   string
	body   string
	email  string
	admin  bool
}

func do(e *echo.Echo, r request) *httptest.ResponseRecorder {
	req := httptest.NewRequest(r.method, r.path, strings.NewReader(r.body))
	if r.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if r.email != "" {
		req.Header.Set(httpadapter.HeaderUserEmail, r.email)
	}
	if r.admin {
		req.Header.Set(httpadapter.HeaderUserRole, "admin")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.ErrorResponse {
	t.Helper()
	var body httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func storedOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	o, err := order.NewOrder([]int64{2, 1}, []int{1, 3}, kernel.MustNewEmail("alice@example.com"), createdAt)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(id))
	return o
}

func storedProduct(t *testing.T, id int64, attributes map[string]string) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, "Kettle", "appliance", 1.5, 4, product.Solid, 39.9, attributes)
	require.NoError(t, err)
	return p
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, request{method: http.MethodGet, path: "/health"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestSession_Required(t *testing.T) {
	e, _ := newTestServer(t)

	tests := []struct {
		name  string
		email string
	}{
		{name: "missing header", email: ""},
		{name: "malformed email", email: "not-an-email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, request{method: http.MethodGet, path: "/api/v1/products", email: tt.email})

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, http.StatusUnauthorized, decodeError(t, rec).Code)
		})
	}
}

func TestCreateOrder_Created(t *testing.T) {
	e, m := newTestServer(t)

	m.On("CreateOrder", mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.Session().Email().String() == "alice@example.com" &&
			!cmd.Session().IsAdmin() &&
			assert.ObjectsAreEqual([]int64{2, 1}, cmd.ProductIDs()) &&
			assert.ObjectsAreEqual([]int{1, 3}, cmd.Quantities())
	})).Return(storedOrder(t, 10), nil).Once()

	rec := do(e, request{
		method: http.MethodPost,
		path:   "/api/v1/orders",
		body:   `{"items":[{"productId":2,"quantity":1},{"productId":1,"quantity":3}]}`,
		email:  "alice@example.com",
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body httpadapter.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(10), body.ID)
	assert.Equal(t, "Placed", body.State)
	assert.Equal(t, "alice@example.com", body.Owner)
	assert.Equal(t, []httpadapter.LineItem{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 1},
	}, body.Items)
	assert.Nil(t, body.ProcessedAt)
}

func TestCreateOrder_EventsNotPublishedStillSucceeds(t *testing.T) {
	e, m := newTestServer(t)

	publishErr := fmt.Errorf("%w: %w", commands.ErrEventsNotPublished, errors.New("broker down"))
	m.On("CreateOrder", mock.Anything).Return(storedOrder(t, 11), publishErr).Once()

	rec := do(e, request{
		method: http.MethodPost,
		path:   "/api/v1/orders",
		body:   `{"items":[{"productId":1,"quantity":1}]}`,
		email:  "alice@example.com",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateOrder_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		handlerErr error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "malformed body",
			body:       `{"items":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request body",
		},
		{
			name:       "no items",
			body:       `{"items":[]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "rule violation",
			body:       `{"items":[{"productId":1,"quantity":4}]}`,
			handlerErr: errs.NewPolicyViolationError("more than 3 items of the same product not allowed"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "more than 3 items of the same product not allowed",
		},
		{
			name:       "unknown product",
			body:       `{"items":[{"productId":99,"quantity":1}]}`,
			handlerErr: errs.NewObjectNotFoundError("product id", int64(99)),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "storage failure",
			body:       `{"items":[{"productId":1,"quantity":1}]}`,
			handlerErr: errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestServer(t)
			if tt.handlerErr != nil {
				m.On("CreateOrder", mock.Anything).Return(nil, tt.handlerErr).Once()
			}

			rec := do(e, request{method: http.MethodPost, path: "/api/v1/orders", body: tt.body, email: "alice@example.com"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantStatus, body.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Message)
			}
		})
	}
}

func TestGetOrder(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		handlerErr error
		call       bool
		wantStatus int
	}{
		{name: "found", path: "/api/v1/orders/5", call: true, wantStatus: http.StatusOK},
		{name: "not found", path: "/api/v1/orders/5", call: true, handlerErr: errs.NewObjectNotFoundError("order", int64(5)), wantStatus: http.StatusNotFound},
		{name: "other owner", path: "/api/v1/orders/5", call: true, handlerErr: errs.NewAccessDeniedError("read this order", "bob@example.com"), wantStatus: http.StatusForbidden},
		{name: "non numeric id", path: "/api/v1/orders/abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/api/v1/orders/0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestServer(t)
			if tt.call {
				view := queries.OrderView{
					ID:        5,
					Owner:     "alice@example.com",
					State:     "Placed",
					CreatedAt: createdAt,
					Lines:     []queries.LineView{{ProductID: 1, Quantity: 2}},
				}
				m.On("GetOrder", mock.MatchedBy(func(q queries.GetOrderQuery) bool {
					return q.OrderID() == 5
				})).Return(view, tt.handlerErr).Once()
			}

			rec := do(e, request{method: http.MethodGet, path: tt.path, email: "bob@example.com"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var body httpadapter.Order
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, int64(5), body.ID)
				assert.Equal(t, []httpadapter.LineItem{{ProductID: 1, Quantity: 2}}, body.Items)
			}
		})
	}
}

func TestGetOrders_PassesAdminSession(t *testing.T) {
	e, m := newTestServer(t)

	m.On("GetAllOrders", mock.MatchedBy(func(q queries.GetAllOrdersQuery) bool {
		return q.Session().IsAdmin()
	})).Return([]queries.OrderView{{ID: 1, Owner: "alice@example.com", State: "Shipped"}}, nil).Once()

	rec := do(e, request{method: http.MethodGet, path: "/api/v1/orders", email: "root@example.com", admin: true})

	require.Equal(t, http.StatusOK, rec.Code)
	var body []httpadapter.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Shipped", body[0].State)
	assert.Empty(t, body[0].Items)
}

func TestGetOrders_StateFilter(t *testing.T) {
	t.Run("known state", func(t *testing.T) {
		e, m := newTestServer(t)
		m.On("GetAllOrders", mock.MatchedBy(func(q queries.GetAllOrdersQuery) bool {
			return q.State() == order.InProcess
		})).Return([]queries.OrderView{}, nil).Once()

		rec := do(e, request{method: http.MethodGet, path: "/api/v1/orders?state=InProcess", email: "root@example.com", admin: true})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("unknown state", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := do(e, request{method: http.MethodGet, path: "/api/v1/orders?state=Lost", email: "root@example.com", admin: true})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, `"Lost" is not one of`)
	})
}

func TestGetUserOrders(t *testing.T) {
	e, m := newTestServer(t)

	m.On("GetUserOrders", mock.MatchedBy(func(q queries.GetUserOrdersQuery) bool {
		return q.Owner().String() == "alice@example.com"
	})).Return([]queries.OrderView{}, nil).Once()

	rec := do(e, request{method: http.MethodGet, path: "/api/v1/users/alice@example.com/orders", email: "alice@example.com"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestOrderTransitions(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		method string
	}{
		{name: "process", path: "/api/v1/orders/7/process", method: "ProcessOrder"},
		{name: "ship", path: "/api/v1/orders/7/ship", method: "ShipOrder"},
		{name: "cancel", path: "/api/v1/orders/7/cancel", method: "CancelOrder"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" ok", func(t *testing.T) {
			e, m := newTestServer(t)
			m.On(tt.method, mock.Anything).Return(storedOrder(t, 7), nil).Once()

			rec := do(e, request{method: http.MethodPut, path: tt.path, email: "root@example.com", admin: true})

			assert.Equal(t, http.StatusOK, rec.Code)
		})

		t.Run(tt.name+" rejected", func(t *testing.T) {
			e, m := newTestServer(t)
			m.On(tt.method, mock.Anything).
				Return(nil, errs.NewPolicyViolationError("order has already been cancelled")).
				Once()

			rec := do(e, request{method: http.MethodPut, path: tt.path, email: "root@example.com", admin: true})

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "order has already been cancelled", decodeError(t, rec).Message)
		})
	}
}

func TestCancelOrder_EventsNotPublishedStillSucceeds(t *testing.T) {
	e, m := newTestServer(t)
	m.On("CancelOrder", mock.Anything).
		Return(storedOrder(t, 3), fmt.Errorf("%w: %w", commands.ErrEventsNotPublished, errors.New("timeout"))).
		Once()

	rec := do(e, request{method: http.MethodPut, path: "/api/v1/orders/3/cancel", email: "alice@example.com"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProducts(t *testing.T) {
	e, m := newTestServer(t)
	m.On("GetAllProducts", mock.Anything).Return([]queries.ProductView{
		{ID: 1, Name: "Kettle", Type: "appliance", Weight: 1.5, Quantity: 4, State: "Solid", Price: 39.9},
	}, nil).Once()

	rec := do(e, request{method: http.MethodGet, path: "/api/v1/products", email: "alice@example.com"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Kettle","type":"appliance","weight":1.5,"quantity":4,
		"state":"Solid","price":39.9,"attributes":{}}]`, rec.Body.String())
}

func TestCreateProduct(t *testing.T) {
	e, m := newTestServer(t)
	m.On("CreateProduct", mock.MatchedBy(func(cmd commands.CreateProductCommand) bool {
		return cmd.Name() == "Kettle" && cmd.State() == product.Solid && cmd.Attributes()["color"] == "red"
	})).Return(storedProduct(t, 9, map[string]string{"color": "red"}), nil).Once()

	rec := do(e, request{
		method: http.MethodPost,
		path:   "/api/v1/products",
		body:   `{"name":"Kettle","type":"appliance","weight":1.5,"quantity":4,"state":"Solid","price":39.9,"attributes":{"color":"red"}}`,
		email:  "root@example.com",
		admin:  true,
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body httpadapter.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(9), body.ID)
	assert.Equal(t, map[string]string{"color": "red"}, body.Attributes)
}

func TestCreateProduct_UnknownState(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, request{
		method: http.MethodPost,
		path:   "/api/v1/products",
		body:   `{"name":"Cloud","type":"misc","weight":1,"quantity":1,"state":"Plasma","price":1}`,
		email:  "root@example.com",
		admin:  true,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProduct_CustomerForbidden(t *testing.T) {
	e, m := newTestServer(t)
	m.On("CreateProduct", mock.Anything).
		Return(nil, errs.NewAccessDeniedError("manage products", "alice@example.com")).
		Once()

	rec := do(e, request{
		method: http.MethodPost,
		path:   "/api/v1/products",
		body:   `{"name":"Kettle","type":"appliance","weight":1.5,"quantity":4,"state":"Solid","price":39.9}`,
		email:  "alice@example.com",
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProductAttributes(t *testing.T) {
	e, m := newTestServer(t)

	m.On("SetProductAttribute", mock.MatchedBy(func(cmd commands.SetProductAttributeCommand) bool {
		return cmd.ProductID() == 9 && cmd.Name() == "promotion" && cmd.Value() == "true"
	})).Return(storedProduct(t, 9, map[string]string{"promotion": "true"}), nil).Once()
	m.On("RemoveProductAttribute", mock.MatchedBy(func(cmd commands.RemoveProductAttributeCommand) bool {
		return cmd.ProductID() == 9 && cmd.Name() == "promotion"
	})).Return(storedProduct(t, 9, nil), nil).Once()

	rec := do(e, request{
		method: http.MethodPut,
		path:   "/api/v1/products/9/attributes/promotion",
		body:   `{"value":"true"}`,
		email:  "root@example.com",
		admin:  true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body httpadapter.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "true", body.Attributes["promotion"])

	rec = do(e, request{
		method: http.MethodDelete,
		path:   "/api/v1/products/9/attributes/promotion",
		email:  "root@example.com",
		admin:  true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var removed httpadapter.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &removed))
	assert.Empty(t, removed.Attributes)
}

func TestGetProduct(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		handlerErr error
		call       bool
		wantStatus int
	}{
		{name: "found", path: "/api/v1/products/9", call: true, wantStatus: http.StatusOK},
		{name: "not found", path: "/api/v1/products/9", call: true, handlerErr: errs.NewObjectNotFoundError("product", int64(9)), wantStatus: http.StatusNotFound},
		{name: "non numeric id", path: "/api/v1/products/kettle", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestServer(t)
			if tt.call {
				view := queries.ProductView{
					ID: 9, Name: "Kettle", Type: "appliance", Weight: 1.5, Quantity: 4, State: "Solid", Price: 39.9,
					Attributes: map[string]string{"color": "red"},
				}
				m.On("GetProduct", mock.MatchedBy(func(q queries.GetProductQuery) bool {
					return q.ProductID() == 9
				})).Return(view, tt.handlerErr).Once()
			}

			rec := do(e, request{method: http.MethodGet, path: tt.path, email: "alice@example.com"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"id":9,"name":"Kettle","type":"appliance","weight":1.5,"quantity":4,
					"state":"Solid","price":39.9,"attributes":{"color":"red"}}`, rec.Body.String())
			}
		})
	}
}

func TestRestockProduct(t *testing.T) {
	t.Run("sets stock level", func(t *testing.T) {
		e, m := newTestServer(t)
		m.On("RestockProduct", mock.MatchedBy(func(cmd commands.RestockProductCommand) bool {
			return cmd.ProductID() == 9 && cmd.Quantity() == 4 && cmd.Session().IsAdmin()
		})).Return(storedProduct(t, 9, nil), nil).Once()

		rec := do(e, request{
			method: http.MethodPut,
			path:   "/api/v1/products/9",
			body:   `{"quantity":4}`,
			email:  "root@example.com",
			admin:  true,
		})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body httpadapter.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 4, body.Quantity)
	})

	t.Run("zero empties stock", func(t *testing.T) {
		e, m := newTestServer(t)
		m.On("RestockProduct", mock.MatchedBy(func(cmd commands.RestockProductCommand) bool {
			return cmd.Quantity() == 0
		})).Return(storedProduct(t, 9, nil), nil).Once()

		rec := do(e, request{method: http.MethodPut, path: "/api/v1/products/9", body: `{"quantity":0}`, email: "root@example.com", admin: true})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "missing quantity", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "negative quantity", body: `{"quantity":-2}`, wantStatus: http.StatusBadRequest},
		{name: "malformed body", body: `{"quantity":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestServer(t)

			rec := do(e, request{method: http.MethodPut, path: "/api/v1/products/9", body: tt.body, email: "root@example.com", admin: true})

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("customer forbidden", func(t *testing.T) {
		e, m := newTestServer(t)
		m.On("RestockProduct", mock.Anything).
			Return(nil, errs.NewAccessDeniedError("manage products", "alice@example.com")).
			Once()

		rec := do(e, request{method: http.MethodPut, path: "/api/v1/products/9", body: `{"quantity":4}`, email: "alice@example.com"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCreateProduct_DuplicateName(t *testing.T) {
	e, m := newTestServer(t)
	m.On("CreateProduct", mock.Anything).
		Return(nil, errs.NewValueIsInvalidErrorWithCause("product name", errors.New(`a product named "Kettle" already exists`))).
		Once()

	rec := do(e, request{
		method: http.MethodPost,
		path:   "/api/v1/products",
		body:   `{"name":"Kettle","type":"appliance","weight":1.5,"quantity":4,"state":"Solid","price":39.9}`,
		email:  "root@example.com",
		admin:  true,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "already exists")
}
