package cmd

import (
	"log/slog"

	httpadapter "inventory/internal/adapters/in/http"
	"inventory/internal/adapters/in/ws"
	"inventory/internal/adapters/out/memqueue"
	"inventory/internal/adapters/out/notify"
	"inventory/internal/adapters/out/postgres"
	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/ports"
	"inventory/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: one database connection, one
// work queue, one notification hub, and factories for every use case handler
// built on top of them.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	queue      *memqueue.Queue
	hub        *notify.Hub
	logger     *slog.Logger
}

// NewCompositionRoot builds the shared infrastructure of the process.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:      memqueue.NewQueue(),
		hub:        notify.NewHub(logger),
		logger:     logger,
	}
}

// WorkQueue returns the process-wide order work queue.
func (c *CompositionRoot) WorkQueue() *memqueue.Queue {
	return c.queue
}

// NotificationHub returns the process-wide pub/sub hub.
func (c *CompositionRoot) NotificationHub() ports.NotificationHub {
	return c.hub
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.queue, c.hub)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateRequeueStuckOrdersCommandHandler() commands.RequeueStuckOrdersCommandHandler {
	return commands.NewRequeueStuckOrdersCommandHandler(c.orderUoWFactory(), c.queue, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByOwnerQueryHandler() queries.GetOrdersByOwnerQueryHandler {
	return queries.NewGetOrdersByOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchProductsQueryHandler() queries.SearchProductsQueryHandler {
	return queries.NewSearchProductsQueryHandler()
}

// CreateHTTPServer builds the HTTP façade over the use case handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersByOwnerQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateSearchProductsQueryHandler(),
	)
}

// CreateWSHandler builds the websocket transport over the hub.
func (c *CompositionRoot) CreateWSHandler() *ws.Handler {
	return ws.NewHandler(c.hub, c.logger)
}

// CreateJobManager builds the consumer worker and the stuck-order sweep.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	getter := c.CreateGetOrderQueryHandler()
	completer := c.CreateCompleteOrderCommandHandler()

	worker := jobs.NewOrderConsumerWorker(
		c.queue,
		getter,
		&completer,
		c.config.ProcessingDelay,
		c.logger,
	)

	sweep := jobs.NewStuckOrderSweepJob(
		c.CreateRequeueStuckOrdersCommandHandler(),
		c.config.StuckOrderSweepSchedule,
		c.config.StuckOrderMaxAge,
		c.logger,
	)

	return jobs.NewJobManager(worker, sweep)
}

// FuncOrderUoWFactory adapts a closure to the OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
