package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	portssvc "github.com/fincontrol/fincontrol_app/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_app/internal/dto"
	"github.com/fincontrol/fincontrol_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context, kind *domain.Kind) ([]domain.Category, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Test Suite ---
type CategoryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCategoryService
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockCategoryService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Category: suite.mockService,
	})
}

func (suite *CategoryHandlerTestSuite) perform(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CategoryHandlerTestSuite) TestCreateCategory_Created() {
	req := dto.CreateCategoryRequest{
		Name:  "Housing",
		Kind:  domain.Expense,
		Color: "#4caf50",
	}
	created := &domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Kind:       req.Kind,
		Color:      req.Color,
	}

	suite.mockService.On("CreateCategory", mock.Anything, req).Return(created, nil).Once()

	w := suite.perform(http.MethodPost, "/api/v1/categories", req)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.CategoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(created.CategoryID, res.CategoryID)
	suite.Equal("Housing", res.Name)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_BindingRejectsBadColor() {
	req := dto.CreateCategoryRequest{
		Name:  "Housing",
		Kind:  domain.Expense,
		Color: "green", // not a hex color
	}

	w := suite.perform(http.MethodPost, "/api/v1/categories", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryHandlerTestSuite) TestListCategories_KindFilter() {
	expense := domain.Expense
	categories := []domain.Category{
		{CategoryID: uuid.NewString(), Name: "Housing", Kind: domain.Expense, Color: "#4caf50"},
	}

	suite.mockService.On("ListCategories", mock.Anything, &expense).Return(categories, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/categories?kind=EXPENSE", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.CategoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res, 1)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestListCategories_BadKind() {
	w := suite.perform(http.MethodGet, "/api/v1/categories?kind=SIDEWAYS", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListCategories", mock.Anything, mock.Anything)
}

func (suite *CategoryHandlerTestSuite) TestGetCategoryByID_NotFound() {
	missingID := uuid.NewString()

	suite.mockService.On("GetCategoryByID", mock.Anything, missingID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.perform(http.MethodGet, "/api/v1/categories/"+missingID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_NoContent() {
	categoryID := uuid.NewString()

	suite.mockService.On("DeleteCategory", mock.Anything, categoryID).Return(nil).Once()

	w := suite.perform(http.MethodDelete, "/api/v1/categories/"+categoryID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestCategoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
