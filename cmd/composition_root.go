package cmd

import (
	"log/slog"

	httpin "grubdash/internal/adapters/in/http"
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/ports"
	"grubdash/internal/jobs"
	"grubdash/internal/pkg/metrics"
)

type CompositionRoot struct {
	config  Config
	storage Storage
	ids     ports.IDGenerator
}

func NewCompositionRoot(config Config, storage Storage) CompositionRoot {
	return CompositionRoot{
		config:  config,
		storage: storage,
		ids:     kernel.NewUUIDGenerator(),
	}
}

func (c *CompositionRoot) dishUoWFactory() commands.DishUoWFactory {
	return FuncDishUoWFactory(func() commands.DishUoW {
		return c.storage.UnitOfWork.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.storage.UnitOfWork.Create()
	})
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.dishUoWFactory(), c.ids)
}

func (c *CompositionRoot) CreateUpdateDishCommandHandler() commands.UpdateDishCommandHandler {
	return commands.NewUpdateDishCommandHandler(c.dishUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.ids)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateListDishesQueryHandler() queries.ListDishesQueryHandler {
	return queries.NewListDishesQueryHandler(c.storage.Dishes)
}

func (c *CompositionRoot) CreateGetDishQueryHandler() queries.GetDishQueryHandler {
	return queries.NewGetDishQueryHandler(c.storage.Dishes)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.storage.Orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.storage.Orders)
}

func (c *CompositionRoot) CreateGetOrderStatusSummaryQueryHandler() queries.GetOrderStatusSummaryQueryHandler {
	return queries.NewGetOrderStatusSummaryQueryHandler(c.storage.Orders)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateDish:  c.CreateCreateDishCommandHandler(),
		UpdateDish:  c.CreateUpdateDishCommandHandler(),
		CreateOrder: c.CreateCreateOrderCommandHandler(),
		UpdateOrder: c.CreateUpdateOrderCommandHandler(),
		DeleteOrder: c.CreateDeleteOrderCommandHandler(),
		ListDishes:  c.CreateListDishesQueryHandler(),
		GetDish:     c.CreateGetDishQueryHandler(),
		ListOrders:  c.CreateListOrdersQueryHandler(),
		GetOrder:    c.CreateGetOrderQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager(orderMetrics metrics.Orders, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrderStatusSummaryQueryHandler(),
		orderMetrics,
		c.config.BacklogReportSchedule,
		logger,
	)
}

type FuncDishUoWFactory func() commands.DishUoW

func (f FuncDishUoWFactory) Create() commands.DishUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
