package pricingrepo_test

import (
	"context"
	"testing"
	"time"

	"workshop/internal/adapters/out/postgres/pricingrepo"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/pricing"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// PricingProfileRepositoryIntegrationTestSuite provides integration tests
// for the pricing-profile repository using PostgreSQL containers.
type PricingProfileRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *pricingrepo.GormPricingProfileRepository
	tracker    *MockAggregateTracker
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&pricingrepo.PricingProfileDTO{},
		&pricingrepo.SpecialPriceDTO{},
	))
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pricing_special_prices, pricing_profiles").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = pricingrepo.NewGormPricingProfileRepository(suite.db, suite.tracker)
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) TestAdd_ValidProfile_Success() {
	ctx := context.Background()
	profile := suite.createTestProfile(kernel.NewUUID())

	suite.tracker.On("TrackAggregate", profile.ID(), profile).Once()

	err := suite.repository.Add(ctx, profile)
	suite.Require().NoError(err)

	suite.assertProfileCount(1)
	suite.assertOverrideCount(len(profile.SpecialPrices()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) TestAdd_DuplicateCustomer_Fails() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	first := suite.createTestProfile(customerID)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestProfile(customerID)

	err := suite.repository.Add(ctx, second)

	suite.Require().Error(err)
	suite.assertProfileCount(1)
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) TestGet_ExistingProfile_RoundTrips() {
	ctx := context.Background()
	profile := suite.createTestProfile(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", profile.ID(), profile).Once()
	suite.Require().NoError(suite.repository.Add(ctx, profile))

	loaded, err := suite.repository.Get(ctx, profile.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(profile))
	suite.True(loaded.CustomerID().IsEqual(profile.CustomerID()))
	suite.InDelta(profile.LinearRate().Amount(), loaded.LinearRate().Amount(), 0.0001)
	suite.InDelta(profile.AreaRate().Amount(), loaded.AreaRate().Amount(), 0.0001)
	suite.InDelta(profile.MinimumCharge().Amount(), loaded.MinimumCharge().Amount(), 0.0001)

	suite.Require().Len(loaded.SpecialPrices(), len(profile.SpecialPrices()))
	suite.Equal("standard gate", loaded.SpecialPrices()[0].Name())
	suite.InDelta(120.0, loaded.SpecialPrices()[0].Price().Amount(), 0.0001)
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) TestGet_NonExistentProfile_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) TestGetByCustomer() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	profile := suite.createTestProfile(customerID)
	suite.tracker.On("TrackAggregate", profile.ID(), profile).Once()
	suite.Require().NoError(suite.repository.Add(ctx, profile))

	loaded, err := suite.repository.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(profile))

	_, err = suite.repository.GetByCustomer(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) TestUpdate_ReplacesOverridesWholesale() {
	ctx := context.Background()
	profile := suite.createTestProfile(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", profile.ID(), profile).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, profile))

	newOverrides := []pricing.SpecialPrice{
		suite.newSpecialPrice("mailbox post", 35),
		suite.newSpecialPrice("garden gate", 95),
		suite.newSpecialPrice("standard gate", 130),
	}
	suite.Require().NoError(profile.ReplaceOverrides(newOverrides))
	suite.Require().NoError(profile.UpdateRates(
		suite.newMoney(18), suite.newMoney(45), suite.newMoney(60)))

	suite.Require().NoError(suite.repository.Update(ctx, profile))

	loaded, err := suite.repository.Get(ctx, profile.ID())
	suite.Require().NoError(err)
	suite.InDelta(18.0, loaded.LinearRate().Amount(), 0.0001)
	suite.Require().Len(loaded.SpecialPrices(), 3)
	suite.assertOverrideCount(3)

	// Overrides come back in the order the list was written.
	names := make([]string, 0, 3)
	for _, sp := range loaded.SpecialPrices() {
		names = append(names, sp.Name())
	}
	suite.Equal([]string{"mailbox post", "garden gate", "standard gate"}, names)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) TestUpdate_ClearsAllOverrides() {
	ctx := context.Background()
	profile := suite.createTestProfile(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", profile.ID(), profile).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, profile))

	suite.Require().NoError(profile.ReplaceOverrides(nil))
	suite.Require().NoError(suite.repository.Update(ctx, profile))

	loaded, err := suite.repository.Get(ctx, profile.ID())
	suite.Require().NoError(err)
	suite.Empty(loaded.SpecialPrices())
	suite.assertOverrideCount(0)
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) createTestProfile(
	customerID kernel.UUID,
) *pricing.PricingProfile {
	profile, err := pricing.NewPricingProfile(
		kernel.NewUUID(), customerID,
		suite.newMoney(15.50), suite.newMoney(42.00), suite.newMoney(50.00),
		[]pricing.SpecialPrice{suite.newSpecialPrice("standard gate", 120)})
	suite.Require().NoError(err)
	return profile
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) newMoney(amount float64) kernel.Money {
	money, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	return money
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) newSpecialPrice(
	name string,
	amount float64,
) pricing.SpecialPrice {
	sp, err := pricing.NewSpecialPrice(name, suite.newMoney(amount))
	suite.Require().NoError(err)
	return sp
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) assertProfileCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&pricingrepo.PricingProfileDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *PricingProfileRepositoryIntegrationTestSuite) assertOverrideCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&pricingrepo.SpecialPriceDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestPricingProfileRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PricingProfileRepositoryIntegrationTestSuite))
}
