package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_app/internal/core/ports/repositories"
	portssvc "github.com/fincontrol/fincontrol_app/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_app/internal/core/schedule"
	"github.com/fincontrol/fincontrol_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo    *MockCategoryRepository
	mockFixedItemRepo   *MockFixedItemRepository
	mockVariationRepo   *MockVariationRepository
	mockTransactionRepo *MockTransactionRepository
	service             portssvc.ReportingSvcFacade

	rent     domain.FixedItem
	override domain.MonthlyVariation
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockFixedItemRepo = new(MockFixedItemRepository)
	suite.mockVariationRepo = new(MockVariationRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)

	repos := portsrepo.RepositoryProvider{
		CategoryRepo:    suite.mockCategoryRepo,
		FixedItemRepo:   suite.mockFixedItemRepo,
		VariationRepo:   suite.mockVariationRepo,
		TransactionRepo: suite.mockTransactionRepo,
	}
	suite.service = services.NewReportingServiceImpl(repos, services.WithReportingLocation(time.UTC))

	suite.rent = domain.FixedItem{
		FixedItemID: uuid.NewString(),
		Kind:        domain.Expense,
		Description: "Rent",
		Amount:      decimal.NewFromInt(1200),
		DayOfMonth:  10,
		StartDate:   schedule.ToPersistInstant(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)),
	}
	suite.override = domain.MonthlyVariation{
		VariationID: uuid.NewString(),
		FixedItemID: suite.rent.FixedItemID,
		Kind:        domain.Expense,
		Year:        2024,
		Month:       time.June,
		Amount:      decimal.NewFromInt(1350),
	}
}

func (suite *ReportingServiceTestSuite) expectSnapshot(variations []domain.MonthlyVariation) {
	ctx := context.Background()
	suite.mockCategoryRepo.On("ListCategories", ctx, (*domain.Kind)(nil)).Return([]domain.Category{}, nil).Once()
	suite.mockFixedItemRepo.On("ListFixedItems", ctx, (*domain.Kind)(nil)).Return([]domain.FixedItem{suite.rent}, nil).Once()
	suite.mockVariationRepo.On("ListVariations", ctx, (*string)(nil)).Return(variations, nil).Once()
	suite.mockTransactionRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestDayEvents_VariationApplied() {
	suite.expectSnapshot([]domain.MonthlyVariation{suite.override})

	events, err := suite.service.DayEvents(context.Background(), "2024-06-10")

	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.True(events[0].Amount.Equal(decimal.NewFromInt(1350)))
	suite.True(events[0].HasVariation)
	suite.Require().NotNil(events[0].StandardAmount)
	suite.True(events[0].StandardAmount.Equal(decimal.NewFromInt(1200)))
}

func (suite *ReportingServiceTestSuite) TestDayEvents_OrphanVariationSkipped() {
	orphan := domain.MonthlyVariation{
		VariationID: uuid.NewString(),
		FixedItemID: uuid.NewString(), // no such fixed item
		Kind:        domain.Expense,
		Year:        2024,
		Month:       time.June,
		Amount:      decimal.NewFromInt(999),
	}
	suite.expectSnapshot([]domain.MonthlyVariation{orphan})

	events, err := suite.service.DayEvents(context.Background(), "2024-06-10")

	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	// The orphan cannot influence the resolved amount.
	suite.True(events[0].Amount.Equal(decimal.NewFromInt(1200)))
	suite.False(events[0].HasVariation)
}

func (suite *ReportingServiceTestSuite) TestDayEvents_BadDate() {
	events, err := suite.service.DayEvents(context.Background(), "June 10th")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(events)
}

func (suite *ReportingServiceTestSuite) TestMonthSummary_InvalidMonth() {
	_, err := suite.service.MonthSummary(context.Background(), 2024, time.Month(13))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestBalanceHistory_InvalidLength() {
	_, err := suite.service.BalanceHistory(context.Background(), 2024, time.June, 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
