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

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock PurchaseService ---
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.InstallmentPurchase, []domain.Transaction, error) {
	args := m.Called(ctx, req)
	var purchase *domain.InstallmentPurchase
	if args.Get(0) != nil {
		purchase = args.Get(0).(*domain.InstallmentPurchase)
	}
	var parcels []domain.Transaction
	if args.Get(1) != nil {
		parcels = args.Get(1).([]domain.Transaction)
	}
	return purchase, parcels, args.Error(2)
}

func (m *MockPurchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.InstallmentPurchase, []domain.Transaction, error) {
	args := m.Called(ctx, purchaseID)
	var purchase *domain.InstallmentPurchase
	if args.Get(0) != nil {
		purchase = args.Get(0).(*domain.InstallmentPurchase)
	}
	var parcels []domain.Transaction
	if args.Get(1) != nil {
		parcels = args.Get(1).([]domain.Transaction)
	}
	return purchase, parcels, args.Error(2)
}

func (m *MockPurchaseService) ListPurchases(ctx context.Context) ([]domain.InstallmentPurchase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InstallmentPurchase), args.Error(1)
}

func (m *MockPurchaseService) DeletePurchase(ctx context.Context, purchaseID string) error {
	args := m.Called(ctx, purchaseID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo            *MockTransactionRepository
	mockPurchaseService *MockPurchaseService
	service             portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockPurchaseService = new(MockPurchaseService)
	suite.service = services.NewTransactionServiceImpl(suite.mockRepo,
		services.WithPurchaseServiceImpl(suite.mockPurchaseService),
		services.WithTransactionLocation(time.UTC))
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Kind:        domain.Expense,
		Description: "Groceries",
		Amount:      decimal.NewFromFloat(230.50),
		Date:        "2024-06-03",
		CategoryID:  uuid.NewString(),
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		day := schedule.LocalDay(txn.Date, time.UTC)
		return txn.Kind == domain.Expense &&
			txn.Amount.Equal(req.Amount) &&
			txn.Installment == nil &&
			txn.PurchaseID == "" &&
			day.Year() == 2024 && day.Month() == time.June && day.Day() == 3
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.False(txn.IsParcel())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BadDate() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Kind:        domain.Expense,
		Description: "Groceries",
		Amount:      decimal.NewFromInt(50),
		Date:        "not-a-date",
		CategoryID:  uuid.NewString(),
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Kind:        domain.Income,
		Description: "Refund",
		Amount:      decimal.Zero,
		Date:        "2024-06-03",
		CategoryID:  uuid.NewString(),
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_MonthFilter() {
	ctx := context.Background()
	inJune := domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          domain.Expense,
		Amount:        decimal.NewFromInt(10),
		Date:          schedule.ToPersistInstant(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)),
	}
	inJuly := domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          domain.Expense,
		Amount:        decimal.NewFromInt(20),
		Date:          schedule.ToPersistInstant(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)),
	}

	// The repository window is widened by a day on each side; the service
	// filters back down to the exact local month.
	suite.mockRepo.On("ListTransactionsBetween", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]domain.Transaction{inJune, inJuly}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Year: 2024, Month: 6})

	suite.Require().NoError(err)
	suite.Require().Len(txns, 1)
	suite.Equal(inJune.TransactionID, txns[0].TransactionID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_ParcelRefused() {
	ctx := context.Background()
	parcel := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          domain.Expense,
		Description:   "Laptop (1/3)",
		Amount:        decimal.NewFromFloat(1166.67),
		Installment:   &domain.InstallmentInfo{Current: 1, Total: 3},
		PurchaseID:    uuid.NewString(),
	}
	newDesc := "renamed"

	suite.mockRepo.On("FindTransactionByID", ctx, parcel.TransactionID).Return(parcel, nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, parcel.TransactionID, dto.UpdateTransactionRequest{Description: &newDesc})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Variable() {
	ctx := context.Background()
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          domain.Expense,
		Amount:        decimal.NewFromInt(50),
	}

	suite.mockRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockRepo.On("DeleteTransaction", ctx, txn.TransactionID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, txn.TransactionID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPurchaseService.AssertNotCalled(suite.T(), "DeletePurchase", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_ParcelCascadesToPurchase() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	parcel := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          domain.Expense,
		Amount:        decimal.NewFromFloat(1166.67),
		Installment:   &domain.InstallmentInfo{Current: 2, Total: 3},
		PurchaseID:    purchaseID,
	}

	suite.mockRepo.On("FindTransactionByID", ctx, parcel.TransactionID).Return(parcel, nil).Once()
	suite.mockPurchaseService.On("DeletePurchase", ctx, purchaseID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, parcel.TransactionID)

	suite.Require().NoError(err)
	suite.mockPurchaseService.AssertExpectations(suite.T())
	// The parcel itself is never deleted directly; the purchase repository
	// removes it together with its siblings.
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	missingID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, missingID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, missingID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
