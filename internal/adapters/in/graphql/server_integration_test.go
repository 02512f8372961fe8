package graphql_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fulfillment/internal/adapters/in/graphql"
	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/outboxrepo"
	"fulfillment/internal/adapters/out/postgres/packagingrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/identity"

	"github.com/dgraph-io/badger/v4"
	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GraphQL documents mirroring the ones the warehouse console sends.
const (
	listPackagingDocument = `query GetNewPackagingRequestIds($nextToken: String) {
  getNewPackagingRequestIds(nextToken: $nextToken) {
    nextToken
    packagingRequestIds
  }
}`

	getPackagingDocument = `query GetPackagingRequest($input: PackagingInput!) {
  getPackagingRequest(input: $input) {
    orderId
    status
    products {
      productId
      quantity
    }
  }
}`

	startPackagingDocument = `mutation StartPackaging($input: PackagingInput!) {
  startPackaging(input: $input) {
    success
  }
}`

	completePackagingDocument = `mutation CompletePackaging($input: PackagingInput!) {
  completePackaging(input: $input) {
    success
  }
}`

	listDeliveriesDocument = `query GetNewDeliveries($nextToken: String) {
  getNewDeliveries(nextToken: $nextToken) {
    nextToken
    deliveries {
      orderId
      address {
        name
        streetAddress
        city
        country
      }
    }
  }
}`

	getDeliveryDocument = `query GetDelivery($input: DeliveryInput!) {
  getDelivery(input: $input) {
    orderId
    address {
      name
      streetAddress
      city
      country
    }
  }
}`

	startDeliveryDocument = `mutation StartDelivery($input: DeliveryInput!) {
  startDelivery(input: $input) {
    success
  }
}`

	failDeliveryDocument = `mutation FailDelivery($input: DeliveryInput!) {
  failDelivery(input: $input) {
    success
  }
}`

	completeDeliveryDocument = `mutation CompleteDelivery($input: DeliveryInput!) {
  completeDelivery(input: $input) {
    success
  }
}`
)

// integrationSecret signs and verifies every token the suite issues.
const integrationSecret = "graphql-integration-secret"

// GraphQLServerIntegrationTestSuite exercises the admin API end to end: HTTP
// requests carrying real tokens flow through the middleware, the executable
// schema and the command and query handlers down to a PostgreSQL container.
// Stored state is verified through a plain database/sql connection so the
// assertions do not depend on the same ORM the handlers write through.
type GraphQLServerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	sqlDB     *sql.DB
	store     *badger.DB
	router    *echo.Echo

	adminToken string
	clerkToken string

	createPackagingHandler commands.CreatePackagingRequestCommandHandler
	createDeliveryHandler  commands.CreateDeliveryCommandHandler
}

func (suite *GraphQLServerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&packagingrepo.ItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&outboxrepo.EventDTO{},
	))

	// Independent verification connection
	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Ping())
	suite.sqlDB = sqlDB

	suite.setupIdentity()
	suite.setupRouter()
}

// setupIdentity provisions the account store the way operators do: a client,
// an admin user in the admin group and a clerk outside it, then signs both in.
func (suite *GraphQLServerIntegrationTestSuite) setupIdentity() {
	store, err := badger.Open(badger.DefaultOptions(suite.T().TempDir()).WithLogger(nil))
	suite.Require().NoError(err)
	suite.store = store

	service, err := identity.NewService(store, []byte(integrationSecret), time.Hour)
	suite.Require().NoError(err)

	client, err := service.CreateClient("fulfillment-tests")
	suite.Require().NoError(err)

	_, err = service.AdminCreateUser("ops-admin@example.com", "ops-admin@example.com")
	suite.Require().NoError(err)
	suite.Require().NoError(service.AdminSetUserPassword("ops-admin@example.com", "correct horse battery staple"))
	suite.Require().NoError(service.AdminAddUserToGroup("ops-admin@example.com", identity.GroupAdmin))

	suite.adminToken, err = service.InitiateAuth(client.ID, "ops-admin@example.com", "correct horse battery staple")
	suite.Require().NoError(err)

	// The clerk can sign in but holds no group membership
	_, err = service.AdminCreateUser("warehouse-clerk@example.com", "warehouse-clerk@example.com")
	suite.Require().NoError(err)
	suite.Require().NoError(service.AdminSetUserPassword("warehouse-clerk@example.com", "a different passphrase"))

	suite.clerkToken, err = service.InitiateAuth(client.ID, "warehouse-clerk@example.com", "a different passphrase")
	suite.Require().NoError(err)
}

// setupRouter wires the production object graph against the suite's database.
func (suite *GraphQLServerIntegrationTestSuite) setupRouter() {
	uowFactory := postgres_adapter.NewGormUnitOfWorkFactory(suite.db)
	packagingFactory := commands.PackagingUoWFactoryFunc(func() commands.PackagingUoW {
		return uowFactory.Create()
	})
	deliveryFactory := commands.DeliveryUoWFactoryFunc(func() commands.DeliveryUoW {
		return uowFactory.Create()
	})

	suite.createPackagingHandler = commands.NewCreatePackagingRequestCommandHandler(packagingFactory)
	suite.createDeliveryHandler = commands.NewCreateDeliveryCommandHandler(deliveryFactory)

	resolvers := graphql.NewResolvers(
		commands.NewStartPackagingCommandHandler(packagingFactory),
		commands.NewCompletePackagingCommandHandler(packagingFactory),
		commands.NewStartDeliveryCommandHandler(deliveryFactory),
		commands.NewFailDeliveryCommandHandler(deliveryFactory),
		commands.NewCompleteDeliveryCommandHandler(deliveryFactory),
		queries.NewGetNewPackagingRequestIdsQueryHandler(suite.db),
		queries.NewGetPackagingRequestQueryHandler(suite.db),
		queries.NewGetNewDeliveriesQueryHandler(suite.db),
		queries.NewGetDeliveryQueryHandler(suite.db),
	)

	schema, err := graphql.NewSchema(resolvers)
	suite.Require().NoError(err)

	verifier, err := identity.NewVerifier([]byte(integrationSecret))
	suite.Require().NoError(err)

	router := echo.New()
	graphql.NewServer(schema, verifier).RegisterRoutes(router)
	suite.router = router
}

func (suite *GraphQLServerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE packaging_items").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE outbox_events").Error)
}

func (suite *GraphQLServerIntegrationTestSuite) TearDownSuite() {
	if suite.sqlDB != nil {
		suite.Require().NoError(suite.sqlDB.Close())
	}
	if suite.store != nil {
		suite.Require().NoError(suite.store.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GraphQLServerIntegrationTestSuite) TestListPackagingRequests_ReturnsSeededBacklog() {
	first := suite.seedOrder()
	second := suite.seedOrder()
	third := suite.seedOrder()

	ids := suite.collectPackagingBacklog()

	suite.Len(ids, 3)
	suite.Contains(ids, first.String())
	suite.Contains(ids, second.String())
	suite.Contains(ids, third.String())
}

func (suite *GraphQLServerIntegrationTestSuite) TestListPackagingRequests_PaginatesWithNextToken() {
	seeded := make(map[string]bool)
	for range 25 {
		seeded[suite.seedOrder().String()] = true
	}

	// First page arrives without a token and fills up
	status, response := suite.postGraphQL(suite.adminToken, listPackagingDocument, nil)
	suite.Require().Equal(http.StatusOK, status)
	listing := suite.payload(response, "getNewPackagingRequestIds")
	firstPage := listing["packagingRequestIds"].([]any)
	suite.Len(firstPage, 20)
	suite.Require().NotNil(listing["nextToken"])

	// Second page drains the backlog and closes the walk
	status, response = suite.postGraphQL(suite.adminToken, listPackagingDocument, map[string]any{
		"nextToken": listing["nextToken"],
	})
	suite.Require().Equal(http.StatusOK, status)
	listing = suite.payload(response, "getNewPackagingRequestIds")
	secondPage := listing["packagingRequestIds"].([]any)
	suite.Len(secondPage, 5)
	suite.Nil(listing["nextToken"])

	collected := make(map[string]bool)
	for _, id := range append(firstPage, secondPage...) {
		collected[id.(string)] = true
	}
	suite.Equal(seeded, collected)
}

func (suite *GraphQLServerIntegrationTestSuite) TestGetPackagingRequest_ReturnsProductLines() {
	orderID := suite.seedOrder()

	status, response := suite.postGraphQL(suite.adminToken, getPackagingDocument, inputVariables(orderID))
	suite.Require().Equal(http.StatusOK, status)

	request := suite.payload(response, "getPackagingRequest")
	suite.Equal(orderID.String(), request["orderId"])
	suite.Equal("NEW", request["status"])

	products := request["products"].([]any)
	suite.Require().Len(products, 2)
	suite.assertProductLine(products, "prod-5402", 2)
	suite.assertProductLine(products, "prod-7316", 1)
}

func (suite *GraphQLServerIntegrationTestSuite) TestStartPackaging_MovesRequestOutOfBacklog() {
	orderID := suite.seedOrder()

	status, response := suite.postGraphQL(suite.adminToken, startPackagingDocument, inputVariables(orderID))
	suite.Require().Equal(http.StatusOK, status)
	suite.assertSuccess(response, "startPackaging")

	storedStatus, hasNewDate := suite.storedPackagingState(orderID)
	suite.Equal("IN_PROGRESS", storedStatus)
	suite.False(hasNewDate)

	suite.NotContains(suite.collectPackagingBacklog(), orderID.String())
}

func (suite *GraphQLServerIntegrationTestSuite) TestCompletePackaging_FinishesStartedRequest() {
	orderID := suite.seedOrder()

	_, response := suite.postGraphQL(suite.adminToken, startPackagingDocument, inputVariables(orderID))
	suite.assertSuccess(response, "startPackaging")

	status, response := suite.postGraphQL(suite.adminToken, completePackagingDocument, inputVariables(orderID))
	suite.Require().Equal(http.StatusOK, status)
	suite.assertSuccess(response, "completePackaging")

	storedStatus, _ := suite.storedPackagingState(orderID)
	suite.Equal("COMPLETED", storedStatus)
}

func (suite *GraphQLServerIntegrationTestSuite) TestCompletePackaging_BeforeStart_ReportsError() {
	orderID := suite.seedOrder()

	status, response := suite.postGraphQL(suite.adminToken, completePackagingDocument, inputVariables(orderID))
	suite.Require().Equal(http.StatusOK, status)
	suite.NotEmpty(response["errors"])

	storedStatus, _ := suite.storedPackagingState(orderID)
	suite.Equal("NEW", storedStatus)
}

func (suite *GraphQLServerIntegrationTestSuite) TestListDeliveries_ReturnsDestinationAddress() {
	orderID := suite.seedOrder()

	status, response := suite.postGraphQL(suite.adminToken, listDeliveriesDocument, nil)
	suite.Require().Equal(http.StatusOK, status)

	deliveries := suite.payload(response, "getNewDeliveries")["deliveries"].([]any)
	suite.Require().Len(deliveries, 1)

	entry := deliveries[0].(map[string]any)
	suite.Equal(orderID.String(), entry["orderId"])
	suite.assertSeededAddress(entry["address"].(map[string]any))
}

func (suite *GraphQLServerIntegrationTestSuite) TestGetDelivery_ReturnsDestinationAddress() {
	orderID := suite.seedOrder()

	status, response := suite.postGraphQL(suite.adminToken, getDeliveryDocument, inputVariables(orderID))
	suite.Require().Equal(http.StatusOK, status)

	deliveryPayload := suite.payload(response, "getDelivery")
	suite.Equal(orderID.String(), deliveryPayload["orderId"])
	suite.assertSeededAddress(deliveryPayload["address"].(map[string]any))
}

func (suite *GraphQLServerIntegrationTestSuite) TestGetDelivery_UnknownOrder_ReportsError() {
	suite.seedOrder()

	status, response := suite.postGraphQL(suite.adminToken, getDeliveryDocument, inputVariables(kernel.NewOrderID()))
	suite.Require().Equal(http.StatusOK, status)
	suite.NotEmpty(response["errors"])
}

func (suite *GraphQLServerIntegrationTestSuite) TestStartDelivery_MovesDeliveryOutOfBacklog() {
	orderID := suite.seedOrder()

	status, response := suite.postGraphQL(suite.adminToken, startDeliveryDocument, inputVariables(orderID))
	suite.Require().Equal(http.StatusOK, status)
	suite.assertSuccess(response, "startDelivery")

	storedStatus, pendingMarker := suite.storedDeliveryState(orderID)
	suite.Equal("IN_PROGRESS", storedStatus)
	suite.False(pendingMarker)

	_, response = suite.postGraphQL(suite.adminToken, listDeliveriesDocument, nil)
	suite.Empty(suite.payload(response, "getNewDeliveries")["deliveries"])
}

func (suite *GraphQLServerIntegrationTestSuite) TestFailDelivery_RecordsFailedAttempt() {
	orderID := suite.seedOrder()

	_, response := suite.postGraphQL(suite.adminToken, startDeliveryDocument, inputVariables(orderID))
	suite.assertSuccess(response, "startDelivery")

	status, response := suite.postGraphQL(suite.adminToken, failDeliveryDocument, inputVariables(orderID))
	suite.Require().Equal(http.StatusOK, status)
	suite.assertSuccess(response, "failDelivery")

	storedStatus, _ := suite.storedDeliveryState(orderID)
	suite.Equal("FAILED", storedStatus)
}

func (suite *GraphQLServerIntegrationTestSuite) TestCompleteDelivery_FinishesStartedDelivery() {
	orderID := suite.seedOrder()

	_, response := suite.postGraphQL(suite.adminToken, startDeliveryDocument, inputVariables(orderID))
	suite.assertSuccess(response, "startDelivery")

	status, response := suite.postGraphQL(suite.adminToken, completeDeliveryDocument, inputVariables(orderID))
	suite.Require().Equal(http.StatusOK, status)
	suite.assertSuccess(response, "completeDelivery")

	storedStatus, _ := suite.storedDeliveryState(orderID)
	suite.Equal("COMPLETED", storedStatus)

	// The finished delivery stays readable through the detail query
	_, response = suite.postGraphQL(suite.adminToken, getDeliveryDocument, inputVariables(orderID))
	suite.Equal(orderID.String(), suite.payload(response, "getDelivery")["orderId"])
}

func (suite *GraphQLServerIntegrationTestSuite) TestMissingToken_IsRejected() {
	status, response := suite.postGraphQL("", listPackagingDocument, nil)

	suite.Equal(http.StatusUnauthorized, status)
	suite.NotContains(response, "data")
	suite.NotEmpty(response["errors"])
}

func (suite *GraphQLServerIntegrationTestSuite) TestGarbageToken_IsRejected() {
	status, response := suite.postGraphQL("not-a-token", listPackagingDocument, nil)

	suite.Equal(http.StatusUnauthorized, status)
	suite.NotContains(response, "data")
	suite.NotEmpty(response["errors"])
}

func (suite *GraphQLServerIntegrationTestSuite) TestNonAdminUser_IsForbidden() {
	suite.seedOrder()

	status, response := suite.postGraphQL(suite.clerkToken, listPackagingDocument, nil)

	suite.Equal(http.StatusForbidden, status)
	suite.NotContains(response, "data")

	errors := response["errors"].([]any)
	suite.Require().NotEmpty(errors)
	suite.Contains(errors[0].(map[string]any)["message"], "admin")
}

func (suite *GraphQLServerIntegrationTestSuite) TestBearerPrefix_IsAccepted() {
	orderID := suite.seedOrder()

	status, response := suite.postGraphQL("Bearer "+suite.adminToken, getPackagingDocument, inputVariables(orderID))

	suite.Require().Equal(http.StatusOK, status)
	suite.Equal(orderID.String(), suite.payload(response, "getPackagingRequest")["orderId"])
}

func (suite *GraphQLServerIntegrationTestSuite) TestMalformedBody_IsRejected() {
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader([]byte("{")))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, suite.adminToken)
	rec := httptest.NewRecorder()

	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *GraphQLServerIntegrationTestSuite) TestHealthEndpoint_RespondsWithoutToken() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
}

func (suite *GraphQLServerIntegrationTestSuite) TestSchemaEndpoint_ServesSchemaDocument() {
	req := httptest.NewRequest(http.MethodGet, "/graphql/schema", nil)
	rec := httptest.NewRecorder()

	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "getNewPackagingRequestIds")
	suite.Contains(rec.Body.String(), "input PackagingInput")
}

// seedOrder registers one order for packaging and delivery through the intake
// command handlers, the same path incoming order events take.
func (suite *GraphQLServerIntegrationTestSuite) seedOrder() kernel.OrderID {
	ctx := context.Background()
	orderID := kernel.NewOrderID()

	first, err := packaging.NewProduct("prod-5402", 2)
	suite.Require().NoError(err)
	second, err := packaging.NewProduct("prod-7316", 1)
	suite.Require().NoError(err)

	createPackaging, err := commands.NewCreatePackagingRequestCommand(orderID, []packaging.Product{first, second})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.createPackagingHandler.Handle(ctx, createPackaging))

	address, err := delivery.NewAddress("John Doe", "123 Birch Street", "Bastogne", "Belgium")
	suite.Require().NoError(err)

	createDelivery, err := commands.NewCreateDeliveryCommand(orderID, address)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.createDeliveryHandler.Handle(ctx, createDelivery))

	return orderID
}

// postGraphQL posts a GraphQL document and decodes the JSON response.
// An empty token leaves the Authorization header off entirely.
func (suite *GraphQLServerIntegrationTestSuite) postGraphQL(
	token, document string, variables map[string]any,
) (int, map[string]any) {
	body, err := json.Marshal(map[string]any{
		"query":     document,
		"variables": variables,
	})
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()

	suite.router.ServeHTTP(rec, req)

	var decoded map[string]any
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec.Code, decoded
}

// payload asserts the response succeeded and returns the named field's object.
func (suite *GraphQLServerIntegrationTestSuite) payload(response map[string]any, field string) map[string]any {
	suite.Require().NotContains(response, "errors")

	data, ok := response["data"].(map[string]any)
	suite.Require().True(ok, "response carries no data object")

	payload, ok := data[field].(map[string]any)
	suite.Require().True(ok, "data carries no %s object", field)
	return payload
}

// assertSuccess verifies a mutation acknowledged with success true.
func (suite *GraphQLServerIntegrationTestSuite) assertSuccess(response map[string]any, field string) {
	suite.Equal(true, suite.payload(response, field)["success"])
}

// assertProductLine verifies a product entry with the given quantity is present.
func (suite *GraphQLServerIntegrationTestSuite) assertProductLine(products []any, productID string, quantity int) {
	for _, entry := range products {
		product := entry.(map[string]any)
		if product["productId"] == productID {
			suite.Equal(float64(quantity), product["quantity"])
			return
		}
	}
	suite.Failf("product line missing", "product %s not found in response", productID)
}

// assertSeededAddress verifies the address fields written by seedOrder.
func (suite *GraphQLServerIntegrationTestSuite) assertSeededAddress(address map[string]any) {
	suite.Equal("John Doe", address["name"])
	suite.Equal("123 Birch Street", address["streetAddress"])
	suite.Equal("Bastogne", address["city"])
	suite.Equal("Belgium", address["country"])
}

// collectPackagingBacklog pages through the packaging listing until the token
// runs out and returns every id seen.
func (suite *GraphQLServerIntegrationTestSuite) collectPackagingBacklog() []string {
	ids := make([]string, 0)
	var token any

	for {
		variables := map[string]any{}
		if token != nil {
			variables["nextToken"] = token
		}

		status, response := suite.postGraphQL(suite.adminToken, listPackagingDocument, variables)
		suite.Require().Equal(http.StatusOK, status)

		page := suite.payload(response, "getNewPackagingRequestIds")
		for _, id := range page["packagingRequestIds"].([]any) {
			ids = append(ids, id.(string))
		}

		if page["nextToken"] == nil {
			return ids
		}
		token = page["nextToken"]
	}
}

// storedPackagingState reads the request's lifecycle row through the plain
// SQL connection and reports the status and whether the arrival marker is set.
func (suite *GraphQLServerIntegrationTestSuite) storedPackagingState(orderID kernel.OrderID) (string, bool) {
	var status string
	var newDate sql.NullTime

	err := suite.sqlDB.QueryRow(
		"SELECT status, new_date FROM packaging_items WHERE order_id = $1 AND product_id = '__metadata'",
		orderID.Bytes(),
	).Scan(&status, &newDate)
	suite.Require().NoError(err)

	return status, newDate.Valid
}

// storedDeliveryState reads the delivery row through the plain SQL connection
// and reports the status and whether the pending marker is still set.
func (suite *GraphQLServerIntegrationTestSuite) storedDeliveryState(orderID kernel.OrderID) (string, bool) {
	var status string
	var isNew sql.NullBool

	err := suite.sqlDB.QueryRow(
		"SELECT status, is_new FROM deliveries WHERE order_id = $1",
		orderID.Bytes(),
	).Scan(&status, &isNew)
	suite.Require().NoError(err)

	return status, isNew.Valid && isNew.Bool
}

// inputVariables builds the input object variables of the detail queries and
// transition mutations.
func inputVariables(orderID kernel.OrderID) map[string]any {
	return map[string]any{
		"input": map[string]any{"orderId": orderID.String()},
	}
}

func TestGraphQLServerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GraphQLServerIntegrationTestSuite))
}
