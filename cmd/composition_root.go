package cmd

import (
	"log/slog"

	"github.com/drakon-axiom/kit-maker-sub003/internal/adapters/out/carrier"
	"github.com/drakon-axiom/kit-maker-sub003/internal/adapters/out/kafka"
	"github.com/drakon-axiom/kit-maker-sub003/internal/adapters/out/notify"
	"github.com/drakon-axiom/kit-maker-sub003/internal/adapters/out/postgres"
	redislock "github.com/drakon-axiom/kit-maker-sub003/internal/adapters/out/redis"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/application/usecases/commands"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/application/usecases/queries"
	"github.com/drakon-axiom/kit-maker-sub003/internal/jobs"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	publishBufferSize = 256
	sweepLockKey      = "locks:quote-expiration-sweep"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	carrier    *carrier.Client
	notifier   *notify.BestEffortNotifier
	publisher  *kafka.StatusChangedPublisher
	sweepLock  *redislock.SweepLock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	gateway := notify.NewGatewayNotifier(
		notify.NewEmailClient(config.EmailRelayURL, config.EmailRelayAPIKey),
		notify.NewSMSClient(config.SMSRelayURL, config.SMSRelayAPIKey),
	)
	redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr})

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		carrier:    carrier.NewClient(config.CarrierBaseURL, config.CarrierAPIKey),
		notifier:   notify.NewBestEffortNotifier(gateway, logger),
		publisher: kafka.NewStatusChangedPublisher(
			[]string{config.KafkaHost}, config.KafkaOrderChangedTopic, publishBufferSize, logger),
		sweepLock: redislock.NewSweepLock(redisClient, sweepLockKey, uuid.NewString()),
		logger:    logger,
	}
}

// Publisher exposes the event publisher so the application entry point can
// start and drain it around the server lifecycle.
func (c *CompositionRoot) Publisher() *kafka.StatusChangedPublisher {
	return c.publisher
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateIssueQuoteCommandHandler() commands.IssueQuoteCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIssueQuoteCommandHandler(f, c.notifier, c.publisher)
}

func (c *CompositionRoot) CreateRecordCustomerDecisionCommandHandler() commands.RecordCustomerDecisionCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordCustomerDecisionCommandHandler(f, c.notifier, c.publisher)
}

func (c *CompositionRoot) CreateRenewQuoteCommandHandler() commands.RenewQuoteCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRenewQuoteCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAdvanceFulfillmentCommandHandler() commands.AdvanceFulfillmentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceFulfillmentCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateHoldOrderCommandHandler() commands.HoldOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewHoldOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateResumeOrderCommandHandler() commands.ResumeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResumeOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCreateBatchCommandHandler() commands.CreateBatchCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBatchCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateStartBatchStepCommandHandler() commands.StartBatchStepCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartBatchStepCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteBatchStepCommandHandler() commands.CompleteBatchStepCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteBatchStepCommandHandler(f)
}

func (c *CompositionRoot) CreatePurchaseLabelCommandHandler() commands.PurchaseLabelCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurchaseLabelCommandHandler(f, c.carrier, c.notifier, c.publisher)
}

func (c *CompositionRoot) CreateVoidLabelCommandHandler() commands.VoidLabelCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVoidLabelCommandHandler(f, c.carrier, c.publisher)
}

func (c *CompositionRoot) CreateSweepExpirationsCommandHandler() commands.SweepExpirationsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepExpirationsCommandHandler(f, c.notifier, c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBatchProgressQueryHandler() queries.GetBatchProgressQueryHandler {
	return queries.NewGetBatchProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSweepExpirationsCommandHandler(), c.sweepLock, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
