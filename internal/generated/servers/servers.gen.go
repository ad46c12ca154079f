// Package servers provides primitives to interact with the openapi HTTP API.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Defines values for OrderStatus.
const (
	Delivered      OrderStatus = "delivered"
	OutForDelivery OrderStatus = "out-for-delivery"
	Pending        OrderStatus = "pending"
	Preparing      OrderStatus = "preparing"
)

// Dish defines model for Dish.
type Dish struct {
	Description string `json:"description"`
	Id          string `json:"id"`
	ImageUrl    string `json:"image_url"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
}

// DishEnvelope defines model for DishEnvelope.
type DishEnvelope struct {
	Data Dish `json:"data"`
}

// DishList defines model for DishList.
type DishList struct {
	Data []Dish `json:"data"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItem defines model for LineItem.
type LineItem struct {
	Description *string  `json:"description,omitempty"`
	Id          *string  `json:"id,omitempty"`
	ImageUrl    *string  `json:"image_url,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Quantity    int      `json:"quantity"`
}

// Order defines model for Order.
type Order struct {
	DeliverTo    string      `json:"deliverTo"`
	Dishes       []LineItem  `json:"dishes"`
	Id           string      `json:"id"`
	MobileNumber string      `json:"mobileNumber"`
	Status       OrderStatus `json:"status"`
}

// OrderEnvelope defines model for OrderEnvelope.
type OrderEnvelope struct {
	Data Order `json:"data"`
}

// OrderList defines model for OrderList.
type OrderList struct {
	Data []Order `json:"data"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List every dish in creation order
	// (GET /dishes)
	ListDishes(ctx echo.Context) error
	// Create a dish
	// (POST /dishes)
	CreateDish(ctx echo.Context) error
	// Read one dish
	// (GET /dishes/{dishId})
	ReadDish(ctx echo.Context, dishId string) error
	// Replace the fields of a dish
	// (PUT /dishes/{dishId})
	UpdateDish(ctx echo.Context, dishId string) error
	// List every order in creation order
	// (GET /orders)
	ListOrders(ctx echo.Context) error
	// Place a pending order
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Read one order
	// (GET /orders/{orderId})
	ReadOrder(ctx echo.Context, orderId string) error
	// Replace the details and status of an order
	// (PUT /orders/{orderId})
	UpdateOrder(ctx echo.Context, orderId string) error
	// Delete a pending order
	// (DELETE /orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListDishes converts echo context to params.
func (w *ServerInterfaceWrapper) ListDishes(ctx echo.Context) error {
	return w.Handler.ListDishes(ctx)
}

// CreateDish converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDish(ctx echo.Context) error {
	return w.Handler.CreateDish(ctx)
}

// ReadDish converts echo context to params.
func (w *ServerInterfaceWrapper) ReadDish(ctx echo.Context) error {
	dishId, err := bindPathParam(ctx, "dishId")
	if err != nil {
		return err
	}
	return w.Handler.ReadDish(ctx, dishId)
}

// UpdateDish converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateDish(ctx echo.Context) error {
	dishId, err := bindPathParam(ctx, "dishId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateDish(ctx, dishId)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// ReadOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ReadOrder(ctx echo.Context) error {
	orderId, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ReadOrder(ctx, orderId)
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	orderId, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, orderId)
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	orderId, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, orderId)
}

func bindPathParam(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, ctx.Param(name), &value)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/dishes", wrapper.ListDishes)
	router.POST(baseURL+"/dishes", wrapper.CreateDish)
	router.GET(baseURL+"/dishes/:dishId", wrapper.ReadDish)
	router.PUT(baseURL+"/dishes/:dishId", wrapper.UpdateDish)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/:orderId", wrapper.ReadOrder)
	router.PUT(baseURL+"/orders/:orderId", wrapper.UpdateOrder)
	router.DELETE(baseURL+"/orders/:orderId", wrapper.DeleteOrder)
}

//go:embed openapi.yaml
var swaggerSpec []byte

var (
	loadSwaggerOnce sync.Once
	loadedSwagger   *openapi3.T
	loadSwaggerErr  error
)

// RawSpec returns the embedded OpenAPI document as written.
func RawSpec() []byte {
	return swaggerSpec
}

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loadSwaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		loadedSwagger, loadSwaggerErr = loader.LoadFromData(swaggerSpec)
		if loadSwaggerErr != nil {
			loadSwaggerErr = fmt.Errorf("error loading Swagger: %w", loadSwaggerErr)
			return
		}
		if err := loadedSwagger.Validate(loader.Context); err != nil {
			loadSwaggerErr = fmt.Errorf("error validating Swagger: %w", err)
		}
	})
	return loadedSwagger, loadSwaggerErr
}
