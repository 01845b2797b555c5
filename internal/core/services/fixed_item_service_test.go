package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	portssvc "github.com/fincontrol/fincontrol_app/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_app/internal/core/schedule"
	"github.com/fincontrol/fincontrol_app/internal/core/services"
	"github.com/fincontrol/fincontrol_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FixedItemRepository (full facade) ---
type MockFixedItemRepository struct {
	mock.Mock
}

func (m *MockFixedItemRepository) SaveFixedItem(ctx context.Context, item domain.FixedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFixedItemRepository) UpdateFixedItem(ctx context.Context, item domain.FixedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFixedItemRepository) DeleteFixedItem(ctx context.Context, fixedItemID string) error {
	args := m.Called(ctx, fixedItemID)
	return args.Error(0)
}

func (m *MockFixedItemRepository) FindFixedItemByID(ctx context.Context, fixedItemID string) (*domain.FixedItem, error) {
	args := m.Called(ctx, fixedItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedItem), args.Error(1)
}

func (m *MockFixedItemRepository) ListFixedItems(ctx context.Context, kind *domain.Kind) ([]domain.FixedItem, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedItem), args.Error(1)
}

// --- Test Suite ---
type FixedItemServiceTestSuite struct {
	suite.Suite
	mockRepo *MockFixedItemRepository
	service  portssvc.FixedItemSvcFacade
}

func (suite *FixedItemServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFixedItemRepository)
	suite.service = services.NewFixedItemServiceImpl(suite.mockRepo, services.WithFixedItemLocation(time.UTC))
}

// --- Test Cases ---

func (suite *FixedItemServiceTestSuite) TestCreateFixedItem_Success() {
	ctx := context.Background()
	req := dto.CreateFixedItemRequest{
		Kind:        domain.Income,
		Description: "Salary",
		Amount:      decimal.NewFromInt(3000),
		DayOfMonth:  5,
		StartDate:   "2023-01-10",
		CategoryID:  uuid.NewString(),
	}

	suite.mockRepo.On("SaveFixedItem", ctx, mock.MatchedBy(func(item domain.FixedItem) bool {
		day := schedule.LocalDay(item.StartDate, time.UTC)
		return item.Kind == domain.Income &&
			item.DayOfMonth == 5 &&
			item.EndDate == nil &&
			day.Year() == 2023 && day.Month() == time.January && day.Day() == 10
	})).Return(nil).Once()

	item, err := suite.service.CreateFixedItem(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.NotEmpty(item.FixedItemID)
	suite.False(item.Closed())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FixedItemServiceTestSuite) TestCreateFixedItem_BadStartDate() {
	ctx := context.Background()
	req := dto.CreateFixedItemRequest{
		Kind:        domain.Income,
		Description: "Salary",
		Amount:      decimal.NewFromInt(3000),
		DayOfMonth:  5,
		StartDate:   "10/01/2023",
		CategoryID:  uuid.NewString(),
	}

	item, err := suite.service.CreateFixedItem(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(item)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveFixedItem", mock.Anything, mock.Anything)
}

func (suite *FixedItemServiceTestSuite) TestCreateFixedItem_EndBeforeStart() {
	ctx := context.Background()
	end := "2022-12-31"
	req := dto.CreateFixedItemRequest{
		Kind:        domain.Expense,
		Description: "Gym",
		Amount:      decimal.NewFromInt(80),
		DayOfMonth:  20,
		StartDate:   "2023-01-10",
		EndDate:     &end,
		CategoryID:  uuid.NewString(),
	}

	item, err := suite.service.CreateFixedItem(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(item)
}

func (suite *FixedItemServiceTestSuite) TestCreateFixedItem_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateFixedItemRequest{
		Kind:        domain.Expense,
		Description: "Gym",
		Amount:      decimal.NewFromInt(-80),
		DayOfMonth:  20,
		StartDate:   "2023-01-10",
		CategoryID:  uuid.NewString(),
	}

	item, err := suite.service.CreateFixedItem(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(item)
}

func (suite *FixedItemServiceTestSuite) TestCloseFixedItem_SetsEndDateToToday() {
	ctx := context.Background()
	item := &domain.FixedItem{
		FixedItemID: uuid.NewString(),
		Kind:        domain.Expense,
		Description: "Gym",
		Amount:      decimal.NewFromInt(80),
		DayOfMonth:  20,
		StartDate:   schedule.ToPersistInstant(time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockRepo.On("FindFixedItemByID", ctx, item.FixedItemID).Return(item, nil).Once()
	suite.mockRepo.On("UpdateFixedItem", ctx, mock.MatchedBy(func(updated domain.FixedItem) bool {
		if updated.EndDate == nil {
			return false
		}
		return schedule.SameDay(*updated.EndDate, time.Now().UTC(), time.UTC)
	})).Return(nil).Once()

	closed, err := suite.service.CloseFixedItem(ctx, item.FixedItemID)

	suite.Require().NoError(err)
	suite.Require().NotNil(closed)
	suite.True(closed.Closed())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FixedItemServiceTestSuite) TestCloseFixedItem_BeforeStartRefused() {
	ctx := context.Background()
	item := &domain.FixedItem{
		FixedItemID: uuid.NewString(),
		Kind:        domain.Expense,
		Description: "Future subscription",
		Amount:      decimal.NewFromInt(15),
		DayOfMonth:  1,
		StartDate:   schedule.ToPersistInstant(time.Now().UTC().AddDate(0, 0, 30)),
	}

	suite.mockRepo.On("FindFixedItemByID", ctx, item.FixedItemID).Return(item, nil).Once()

	closed, err := suite.service.CloseFixedItem(ctx, item.FixedItemID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(closed)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateFixedItem", mock.Anything, mock.Anything)
}

func (suite *FixedItemServiceTestSuite) TestUpdateFixedItem_ClearEndDateReopens() {
	ctx := context.Background()
	end := schedule.ToPersistInstant(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))
	item := &domain.FixedItem{
		FixedItemID: uuid.NewString(),
		Kind:        domain.Expense,
		Description: "Gym",
		Amount:      decimal.NewFromInt(80),
		DayOfMonth:  20,
		StartDate:   schedule.ToPersistInstant(time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)),
		EndDate:     &end,
	}
	empty := ""
	req := dto.UpdateFixedItemRequest{EndDate: &empty}

	suite.mockRepo.On("FindFixedItemByID", ctx, item.FixedItemID).Return(item, nil).Once()
	suite.mockRepo.On("UpdateFixedItem", ctx, mock.MatchedBy(func(updated domain.FixedItem) bool {
		return updated.EndDate == nil
	})).Return(nil).Once()

	updated, err := suite.service.UpdateFixedItem(ctx, item.FixedItemID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.False(updated.Closed())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FixedItemServiceTestSuite) TestDeleteFixedItem_NotFound() {
	ctx := context.Background()
	missingID := uuid.NewString()

	suite.mockRepo.On("FindFixedItemByID", ctx, missingID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteFixedItem(ctx, missingID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteFixedItem", mock.Anything, mock.Anything)
}

func TestFixedItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FixedItemServiceTestSuite))
}
