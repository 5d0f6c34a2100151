package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/dto"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/handlers"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/middleware"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/pkg/apierrors"
	"github.com/amanshinde1/ai-productivity-dashboard/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceMock struct {
	mock.Mock
}

func (m *catalogServiceMock) CreateCategory(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.Category, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *catalogServiceMock) ListCategories(ctx context.Context, userID uint64) ([]domain.Category, error) {
	args := m.Called(ctx, userID)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *catalogServiceMock) UpdateCategory(ctx context.Context, userID, categoryID uint64, input domain.UpdateCatalogItemInput) (domain.Category, error) {
	args := m.Called(ctx, userID, categoryID, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *catalogServiceMock) DeleteCategory(ctx context.Context, userID, categoryID uint64) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

func (m *catalogServiceMock) CreateAppWebsite(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.AppWebsite, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.AppWebsite), args.Error(1)
}

func (m *catalogServiceMock) ListAppWebsites(ctx context.Context, userID uint64) ([]domain.AppWebsite, error) {
	args := m.Called(ctx, userID)

	var appWebsites []domain.AppWebsite
	if value := args.Get(0); value != nil {
		appWebsites = value.([]domain.AppWebsite)
	}
	return appWebsites, args.Error(1)
}

func (m *catalogServiceMock) UpdateAppWebsite(ctx context.Context, userID, appWebsiteID uint64, input domain.UpdateCatalogItemInput) (domain.AppWebsite, error) {
	args := m.Called(ctx, userID, appWebsiteID, input)
	return args.Get(0).(domain.AppWebsite), args.Error(1)
}

func (m *catalogServiceMock) DeleteAppWebsite(ctx context.Context, userID, appWebsiteID uint64) error {
	args := m.Called(ctx, userID, appWebsiteID)
	return args.Error(0)
}

func (m *catalogServiceMock) CreateProject(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.Project, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *catalogServiceMock) ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error) {
	args := m.Called(ctx, userID)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *catalogServiceMock) UpdateProject(ctx context.Context, userID, projectID uint64, input domain.UpdateCatalogItemInput) (domain.Project, error) {
	args := m.Called(ctx, userID, projectID, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *catalogServiceMock) DeleteProject(ctx context.Context, userID, projectID uint64) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}

func TestCatalogHandler_ListCategories_Success(t *testing.T) {
	createdAt := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	serviceMock := new(catalogServiceMock)
	serviceMock.On("ListCategories", mock.Anything, uint64(7)).Return([]domain.Category{
		{ID: 1, UserID: 7, Name: "Work", CreatedAt: createdAt, UpdatedAt: createdAt},
		{ID: 2, UserID: 7, Name: "Focus", CreatedAt: createdAt, UpdatedAt: createdAt},
	}, nil).Once()
	handler := handlers.NewCatalogHandler(serviceMock)

	router := gin.New()
	router.GET("/api/categories", middleware.LanguageMiddleware(), authenticatedAs(7), handler.ListCategories)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.CatalogItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "Work", got[0].Name)
	require.Equal(t, "Focus", got[1].Name)
	serviceMock.AssertExpectations(t)
}

func TestCatalogHandler_CreateCategory_DuplicateName(t *testing.T) {
	serviceMock := new(catalogServiceMock)
	serviceMock.On("CreateCategory", mock.Anything, uint64(7), domain.CreateCatalogItemInput{Name: "Work"}).Return(
		domain.Category{}, domain.ErrDuplicateName,
	).Once()
	handler := handlers.NewCatalogHandler(serviceMock)

	router := gin.New()
	router.POST("/api/categories", middleware.LanguageMiddleware(), authenticatedAs(7), handler.CreateCategory)

	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"name":"Work"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "An item with that name already exists.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestCatalogHandler_UpdateProject_NotFound(t *testing.T) {
	name := "Renamed"

	serviceMock := new(catalogServiceMock)
	serviceMock.On("UpdateProject", mock.Anything, uint64(7), uint64(9), domain.UpdateCatalogItemInput{Name: &name}).Return(
		domain.Project{}, domain.ErrProjectNotFound,
	).Once()
	handler := handlers.NewCatalogHandler(serviceMock)

	router := gin.New()
	router.PATCH("/api/projects/:id", middleware.LanguageMiddleware(), authenticatedAs(7), handler.UpdateProject)

	req := httptest.NewRequest(http.MethodPatch, "/api/projects/9", strings.NewReader(`{"name":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Project not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestCatalogHandler_DeleteAppWebsite_Success(t *testing.T) {
	serviceMock := new(catalogServiceMock)
	serviceMock.On("DeleteAppWebsite", mock.Anything, uint64(7), uint64(4)).Return(nil).Once()
	handler := handlers.NewCatalogHandler(serviceMock)

	router := gin.New()
	router.DELETE("/api/app-websites/:id", middleware.LanguageMiddleware(), authenticatedAs(7), handler.DeleteAppWebsite)

	req := httptest.NewRequest(http.MethodDelete, "/api/app-websites/4", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}
