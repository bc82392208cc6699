package cmd

import (
	"log/slog"

	"orderstatus/internal/adapters/out/postgres"
	"orderstatus/internal/adapters/out/postgres/authgate"
	"orderstatus/internal/core/application/usecases/commands"
	"orderstatus/internal/core/application/usecases/queries"
	"orderstatus/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gate       ports.AuthorizationGate
	publisher  ports.OrderStatusPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	publisher ports.OrderStatusPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gate:       authgate.NewGormAuthorizationGate(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.gate, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOrderCommandHandler(f, c.gate, c.publisher, c.logger)
}

func (c *CompositionRoot) CreatePrepareOrderCommandHandler() commands.PrepareOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPrepareOrderCommandHandler(f, c.gate, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGiveOrderToCourierCommandHandler() commands.GiveOrderToCourierCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGiveOrderToCourierCommandHandler(f, c.gate, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateStartOrderTransitCommandHandler() commands.StartOrderTransitCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartOrderTransitCommandHandler(f, c.gate, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f, c.gate, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.gate)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateFlagOverdueDeliveriesCommandHandler() commands.FlagOverdueDeliveriesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewFlagOverdueDeliveriesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB, c.gate)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
