package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllPartnersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllPartnersQueryHandler
}

func (suite *GetAllPartnersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&partnerrepo.PartnerDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllPartnersQueryHandler(db)
}

func (suite *GetAllPartnersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllPartnersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE partners").Error
	suite.Require().NoError(err)
}

func (suite *GetAllPartnersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllPartnersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllPartnersQueryHandlerTestSuite) TestHandle_WithPartners_ReturnsAllOrderedByName() {
	suite.seedPartner("Zara", "zara@dispatch.example", []string{"west"}, 0)
	suite.seedPartner("Arjun", "arjun@dispatch.example", []string{"north", "east"}, 2)

	query := queries.NewGetAllPartnersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("Arjun", result[0].Name)
	suite.Equal("arjun@dispatch.example", result[0].Email)
	suite.Equal([]string{"north", "east"}, result[0].Areas)
	suite.Equal(9, result[0].ShiftStart)
	suite.Equal(17, result[0].ShiftEnd)
	suite.Equal(2, result[0].CurrentLoad)
	suite.Equal("active", result[0].Status)

	suite.Equal("Zara", result[1].Name)
	suite.Equal([]string{"west"}, result[1].Areas)
	suite.Equal(0, result[1].CurrentLoad)
}

func (suite *GetAllPartnersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllPartnersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllPartnersQuery constructor")
}

func (suite *GetAllPartnersQueryHandlerTestSuite) seedPartner(
	name, email string,
	areas []string,
	load int,
) *partner.DeliveryPartner {
	shift, err := partner.NewShift(9, 17)
	suite.Require().NoError(err)

	seeded, err := partner.RestoreDeliveryPartner(
		kernel.NewUUID(), name, email, "+1-555-0100", areas, shift, load, partner.Active,
	)
	suite.Require().NoError(err)

	repo := partnerrepo.NewGormPartnerRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), seeded))
	return seeded
}

func TestGetAllPartnersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllPartnersQueryHandlerTestSuite))
}
