package queries_test

import (
	"context"
	"testing"
	"time"

	"inventory/internal/adapters/out/postgres/orderrepo"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrdersByOwnerQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersByOwnerQueryHandler
	repo      *orderrepo.GormOrderRepository
}

func (suite *GetOrdersByOwnerQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersByOwnerQueryHandler(db)
	suite.repo = orderrepo.NewGormOrderRepository(db)
}

func (suite *GetOrdersByOwnerQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersByOwnerQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersByOwnerQueryHandlerTestSuite) addOrder(
	ownerID int64, ownerUsername, itemName string,
) *order.Order {
	o, err := order.NewOrder(ownerID, ownerUsername, 1, itemName, 1)
	suite.Require().NoError(err)
	err = suite.repo.Add(context.Background(), o)
	suite.Require().NoError(err)
	return o
}

func (suite *GetOrdersByOwnerQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersByOwnerQuery(7)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersByOwnerQueryHandlerTestSuite) TestHandle_ReturnsOnlyOwnersOrders() {
	mine1 := suite.addOrder(7, "alice", "apple")
	mine2 := suite.addOrder(7, "alice", "banana")
	theirs := suite.addOrder(8, "bob", "cherries")

	query, err := queries.NewGetOrdersByOwnerQuery(7)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)

	ids := []int64{result[0].ID, result[1].ID}
	suite.Contains(ids, mine1.ID())
	suite.Contains(ids, mine2.ID())
	suite.NotContains(ids, theirs.ID())
}

func (suite *GetOrdersByOwnerQueryHandlerTestSuite) TestHandle_NewestFirst() {
	older := suite.addOrder(7, "alice", "apple")
	err := suite.db.Exec(
		"UPDATE orders SET created_at = ? WHERE id = ?",
		time.Now().UTC().Add(-time.Hour), older.ID(),
	).Error
	suite.Require().NoError(err)

	newer := suite.addOrder(7, "alice", "banana")

	query, err := queries.NewGetOrdersByOwnerQuery(7)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID(), result[0].ID)
	suite.Equal(older.ID(), result[1].ID)
}

func (suite *GetOrdersByOwnerQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	o := suite.addOrder(7, "alice", "apple")

	query, err := queries.NewGetOrdersByOwnerQuery(7)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(o.ID(), result[0].ID)
	suite.Equal(int64(7), result[0].OwnerID)
	suite.Equal("alice", result[0].OwnerUsername)
	suite.Equal(int64(1), result[0].ItemID)
	suite.Equal("apple", result[0].ItemName)
	suite.Equal(1, result[0].Quantity)
	suite.Equal("Pending", result[0].Status)
}

func (suite *GetOrdersByOwnerQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersByOwnerQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersByOwnerQuery constructor")
}

func TestGetOrdersByOwnerQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersByOwnerQueryHandlerTestSuite))
}
