package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateCreatePackagingRequestCommandHandler() commands.CreatePackagingRequestCommandHandler {
	var f commands.PackagingUoWFactory = commands.PackagingUoWFactoryFunc(func() commands.PackagingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackagingRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateStartPackagingCommandHandler() commands.StartPackagingCommandHandler {
	var f commands.PackagingUoWFactory = commands.PackagingUoWFactoryFunc(func() commands.PackagingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartPackagingCommandHandler(f)
}

func (c *CompositionRoot) CreateCompletePackagingCommandHandler() commands.CompletePackagingCommandHandler {
	var f commands.PackagingUoWFactory = commands.PackagingUoWFactoryFunc(func() commands.PackagingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompletePackagingCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = commands.DeliveryUoWFactoryFunc(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = commands.DeliveryUoWFactoryFunc(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateFailDeliveryCommandHandler() commands.FailDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = commands.DeliveryUoWFactoryFunc(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFailDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = commands.DeliveryUoWFactoryFunc(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchOutboxCommandHandler() commands.DispatchOutboxCommandHandler {
	var f commands.OutboxUoWFactory = commands.OutboxUoWFactoryFunc(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOutboxCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreatePurgeRecordsCommandHandler() commands.PurgeRecordsCommandHandler {
	var f commands.UoWFactory = commands.UoWFactoryFunc(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeRecordsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetNewPackagingRequestIdsQueryHandler() queries.GetNewPackagingRequestIdsQueryHandler {
	return queries.NewGetNewPackagingRequestIdsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackagingRequestQueryHandler() queries.GetPackagingRequestQueryHandler {
	return queries.NewGetPackagingRequestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNewDeliveriesQueryHandler() queries.GetNewDeliveriesQueryHandler {
	return queries.NewGetNewDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}
