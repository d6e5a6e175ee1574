package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ShipmentRepositoryIntegrationTestSuite provides integration tests for the
// snapshot persistence adapter using PostgreSQL containers.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.TrackingEventDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tracking_events, shipments").Error)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) newShipment(orderID, trackingNumber string) *shipment.Shipment {
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		orderID,
		"dev1",
		"PET-1200",
		carrier.Huolala,
		"货拉拉",
		trackingNumber,
		shipment.DefaultContactInfo(),
		1800,
		250,
		time.Now().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return s
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestSaveAndLoad_RoundTrip() {
	ctx := context.Background()

	now := time.Now().Truncate(time.Microsecond)
	first := suite.newShipment("order1", "HL0000000001")
	second := suite.newShipment("order2", "HL0000000002")
	_, err := second.Schedule(carrier.Yunmanman, "运满满", now.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(second.MarkPickedUp("上海市浦东新区", "loading complete", now.Add(2*time.Hour)))

	suite.Require().NoError(suite.repository.Save(ctx, []*shipment.Shipment{first, second}))

	loaded, err := suite.repository.Load(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(loaded, 2)

	suite.True(loaded[0].IsEqual(first))
	suite.True(loaded[1].IsEqual(second))

	restored := loaded[1]
	suite.Equal("order2", restored.OrderID())
	suite.Equal(carrier.Yunmanman, restored.Carrier())
	suite.Equal("运满满", restored.CarrierName())
	suite.Equal(shipment.PickedUp, restored.Status())
	suite.Equal(second.Cost(), restored.Cost())
	suite.Equal(second.Distance(), restored.Distance())
	suite.Equal(shipment.DefaultContactInfo(), restored.ContactInfo())

	originalEvents := second.TrackingEvents()
	restoredEvents := restored.TrackingEvents()
	suite.Require().Len(restoredEvents, len(originalEvents))
	for i := range originalEvents {
		suite.True(restoredEvents[i].IsEqual(originalEvents[i]))
		suite.Equal(originalEvents[i].Location(), restoredEvents[i].Location())
		suite.Equal(originalEvents[i].Note(), restoredEvents[i].Note())
		suite.WithinDuration(originalEvents[i].Timestamp(), restoredEvents[i].Timestamp(), time.Microsecond)
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestSave_ReplacesPreviousSnapshot() {
	ctx := context.Background()

	first := suite.newShipment("order1", "HL0000000001")
	suite.Require().NoError(suite.repository.Save(ctx, []*shipment.Shipment{first}))

	second := suite.newShipment("order2", "HL0000000002")
	suite.Require().NoError(suite.repository.Save(ctx, []*shipment.Shipment{second}))

	loaded, err := suite.repository.Load(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(loaded, 1)
	suite.True(loaded[0].IsEqual(second))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestSave_EmptySnapshotClearsTables() {
	ctx := context.Background()

	first := suite.newShipment("order1", "HL0000000001")
	suite.Require().NoError(suite.repository.Save(ctx, []*shipment.Shipment{first}))

	suite.Require().NoError(suite.repository.Save(ctx, nil))

	loaded, err := suite.repository.Load(ctx)
	suite.Require().NoError(err)
	suite.Empty(loaded)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestSave_DeliveredShipmentKeepsActualDeliveryTime() {
	ctx := context.Background()
	now := time.Now().Truncate(time.Microsecond)

	delivered := suite.newShipment("order1", "HL0000000001")
	_, err := delivered.Schedule(carrier.Huolala, "货拉拉", now.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(delivered.MarkPickedUp("上海市浦东新区", "loading complete", now.Add(2*time.Hour)))
	suite.Require().NoError(delivered.MarkInTransit("江苏省苏州市", "transfer", now.Add(3*time.Hour)))
	suite.Require().NoError(delivered.MarkDelivered("浙江省杭州市余杭区", "delivered", now.Add(4*time.Hour)))

	suite.Require().NoError(suite.repository.Save(ctx, []*shipment.Shipment{delivered}))

	loaded, err := suite.repository.Load(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(loaded, 1)

	restored := loaded[0]
	suite.Equal(shipment.Delivered, restored.Status())
	suite.Require().NotNil(restored.ActualDeliveryTime())
	suite.WithinDuration(now.Add(4*time.Hour), *restored.ActualDeliveryTime(), time.Microsecond)
	suite.Len(restored.TrackingEvents(), 5)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestSave_InvalidAggregateRejected() {
	ctx := context.Background()

	err := suite.repository.Save(ctx, []*shipment.Shipment{{}})
	suite.Require().Error(err)

	loaded, loadErr := suite.repository.Load(ctx)
	suite.Require().NoError(loadErr)
	suite.Empty(loaded)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestLoad_EmptyDatabase() {
	loaded, err := suite.repository.Load(context.Background())
	suite.Require().NoError(err)
	suite.Empty(loaded)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
