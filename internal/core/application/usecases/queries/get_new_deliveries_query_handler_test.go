package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetNewDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetNewDeliveriesQueryHandler
	repo      *deliveryrepo.GormDeliveryRepository
}

func (suite *GetNewDeliveriesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&deliveryrepo.DeliveryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetNewDeliveriesQueryHandler(db)
	suite.repo = deliveryrepo.NewGormDeliveryRepository(db, &mockAggregateTracker{})
}

func (suite *GetNewDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetNewDeliveriesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries").Error
	suite.Require().NoError(err)
}

func (suite *GetNewDeliveriesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewGetNewDeliveriesQuery(kernel.PageToken{}, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Deliveries)
	suite.True(result.NextToken.IsZero())
}

func (suite *GetNewDeliveriesQueryHandlerTestSuite) TestHandle_OnlyNewDeliveriesAreListed() {
	pending := suite.seedDelivery(delivery.New)
	suite.seedDelivery(delivery.InProgress)
	suite.seedDelivery(delivery.Failed)
	suite.seedDelivery(delivery.Completed)

	query, err := queries.NewGetNewDeliveriesQuery(kernel.PageToken{}, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Deliveries, 1)
	suite.True(result.NextToken.IsZero())
	suite.True(result.Deliveries[0].OrderID.IsEqual(pending.OrderID()))
}

func (suite *GetNewDeliveriesQueryHandlerTestSuite) TestHandle_AddressRoundTrips() {
	pending := suite.seedDelivery(delivery.New)

	query, err := queries.NewGetNewDeliveriesQuery(kernel.PageToken{}, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Deliveries, 1)

	address := result.Deliveries[0].Address
	suite.Equal(pending.Address().Name(), address.Name())
	suite.Equal(pending.Address().StreetAddress(), address.StreetAddress())
	suite.Equal(pending.Address().City(), address.City())
	suite.Equal(pending.Address().Country(), address.Country())
}

func (suite *GetNewDeliveriesQueryHandlerTestSuite) TestHandle_PaginatesThroughBacklog() {
	seeded := make(map[kernel.OrderID]bool)
	for range 5 {
		shipment := suite.seedDelivery(delivery.New)
		seeded[shipment.OrderID()] = true
	}

	collected := make(map[kernel.OrderID]bool)
	token := kernel.PageToken{}
	pages := 0

	for {
		query, err := queries.NewGetNewDeliveriesQuery(token, 2)
		suite.Require().NoError(err)

		result, err := suite.handler.Handle(context.Background(), query)
		suite.Require().NoError(err)
		pages++

		for _, item := range result.Deliveries {
			suite.False(collected[item.OrderID], "delivery %s listed twice", item.OrderID)
			collected[item.OrderID] = true
		}

		if result.NextToken.IsZero() {
			break
		}
		token = result.NextToken
	}

	suite.Equal(3, pages)
	suite.Equal(seeded, collected)
}

func (suite *GetNewDeliveriesQueryHandlerTestSuite) TestHandle_StartedDeliveryDropsOutOfListing() {
	shipment := suite.seedDelivery(delivery.New)

	query, err := queries.NewGetNewDeliveriesQuery(kernel.PageToken{}, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result.Deliveries, 1)

	from := shipment.Status()
	suite.Require().NoError(shipment.Start(time.Now().UTC()))
	suite.Require().NoError(suite.repo.UpdateStatus(context.Background(), shipment, from))

	result, err = suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(result.Deliveries)
}

func (suite *GetNewDeliveriesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetNewDeliveriesQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetNewDeliveriesQuery constructor")
}

func (suite *GetNewDeliveriesQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	for range 50 {
		suite.seedDelivery(delivery.New)
	}

	query, err := queries.NewGetNewDeliveriesQuery(kernel.PageToken{}, 20)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
}

// seedDelivery stores a delivery walked forward to the target status.
func (suite *GetNewDeliveriesQueryHandlerTestSuite) seedDelivery(target delivery.Status) *delivery.Delivery {
	address, err := delivery.NewAddress("John Doe", "123 Birch Street", "Bastogne", "Belgium")
	suite.Require().NoError(err)

	shipment, err := delivery.NewDelivery(kernel.NewOrderID(), address, time.Now().UTC())
	suite.Require().NoError(err)

	if target != delivery.New {
		suite.Require().NoError(shipment.Start(time.Now().UTC()))
	}
	if target == delivery.Failed {
		suite.Require().NoError(shipment.Fail(time.Now().UTC()))
	}
	if target == delivery.Completed {
		suite.Require().NoError(shipment.Complete(time.Now().UTC()))
	}

	err = suite.repo.Add(context.Background(), shipment)
	suite.Require().NoError(err)

	return shipment
}

func TestGetNewDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetNewDeliveriesQueryHandlerTestSuite))
}
