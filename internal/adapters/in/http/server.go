// Package http is the inbound REST adapter. Server implements the generated
// servers.ServerInterface on top of the command and query handlers; every
// failure is returned to echo and rendered by the error handler.
package http

import (
	"net/http"

	"grubdash/internal/adapters/in/payload"
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDishHandler  commands.CreateDishCommandHandler
	updateDishHandler  commands.UpdateDishCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	listDishesHandler queries.ListDishesQueryHandler
	getDishHandler    queries.GetDishQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
}

// Handlers groups what NewServer needs.
type Handlers struct {
	CreateDish  commands.CreateDishCommandHandler
	UpdateDish  commands.UpdateDishCommandHandler
	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	DeleteOrder commands.DeleteOrderCommandHandler

	ListDishes queries.ListDishesQueryHandler
	GetDish    queries.GetDishQueryHandler
	ListOrders queries.ListOrdersQueryHandler
	GetOrder   queries.GetOrderQueryHandler
}

func NewServer(h Handlers) *Server {
	return &Server{
		createDishHandler:  h.CreateDish,
		updateDishHandler:  h.UpdateDish,
		createOrderHandler: h.CreateOrder,
		updateOrderHandler: h.UpdateOrder,
		deleteOrderHandler: h.DeleteOrder,
		listDishesHandler:  h.ListDishes,
		getDishHandler:     h.GetDish,
		listOrdersHandler:  h.ListOrders,
		getOrderHandler:    h.GetOrder,
	}
}

// ListDishes handles GET /dishes.
func (s *Server) ListDishes(ctx echo.Context) error {
	dishes, err := s.listDishesHandler.Handle(ctx.Request().Context(), queries.NewListDishesQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Dish, len(dishes))
	for i, d := range dishes {
		response[i] = toDish(d)
	}

	return ctx.JSON(http.StatusOK, servers.DishList{Data: response})
}

// CreateDish handles POST /dishes.
func (s *Server) CreateDish(ctx echo.Context) error {
	var req payload.DishRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateDishCommand(req.Data.Payload())
	if err != nil {
		return err
	}

	created, err := s.createDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.DishEnvelope{Data: toDish(queries.NewDishResponse(created))})
}

// ReadDish handles GET /dishes/:dishId.
func (s *Server) ReadDish(ctx echo.Context, dishID string) error {
	d, err := s.getDishHandler.Handle(ctx.Request().Context(), queries.NewGetDishQuery(dishID))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.DishEnvelope{Data: toDish(d)})
}

// UpdateDish handles PUT /dishes/:dishId.
func (s *Server) UpdateDish(ctx echo.Context, dishID string) error {
	var req payload.DishRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd := commands.NewUpdateDishCommand(dishID, req.Data.Payload())
	updated, err := s.updateDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.DishEnvelope{Data: toDish(queries.NewDishResponse(updated))})
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, servers.OrderList{Data: response})
}

// CreateOrder handles POST /orders. New orders are always pending.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req payload.OrderRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(req.Data.Payload())
	if err != nil {
		return err
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.OrderEnvelope{Data: toOrder(queries.NewOrderResponse(placed))})
}

// ReadOrder handles GET /orders/:orderId.
func (s *Server) ReadOrder(ctx echo.Context, orderID string) error {
	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(orderID))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderEnvelope{Data: toOrder(o)})
}

// UpdateOrder handles PUT /orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context, orderID string) error {
	var req payload.OrderRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd := commands.NewUpdateOrderCommand(orderID, req.Data.Payload())
	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderEnvelope{Data: toOrder(queries.NewOrderResponse(updated))})
}

// DeleteOrder handles DELETE /orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context, orderID string) error {
	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), commands.NewDeleteOrderCommand(orderID)); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
