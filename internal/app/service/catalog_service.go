package service

import (
	"context"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
)

// CatalogService fronts the three user-scoped lookup tables tasks can
// reference: categories, app/websites and projects.
type CatalogService struct {
	categoryRepository   ports.CategoryRepository
	appWebsiteRepository ports.AppWebsiteRepository
	projectRepository    ports.ProjectRepository
}

var _ ports.CatalogService = (*CatalogService)(nil)

func NewCatalogService(
	categoryRepository ports.CategoryRepository,
	appWebsiteRepository ports.AppWebsiteRepository,
	projectRepository ports.ProjectRepository,
) *CatalogService {
	return &CatalogService{
		categoryRepository:   categoryRepository,
		appWebsiteRepository: appWebsiteRepository,
		projectRepository:    projectRepository,
	}
}

func (s *CatalogService) CreateCategory(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.Category, error) {
	return s.categoryRepository.Create(ctx, userID, input)
}

func (s *CatalogService) ListCategories(ctx context.Context, userID uint64) ([]domain.Category, error) {
	return s.categoryRepository.List(ctx, userID)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, userID, categoryID uint64, input domain.UpdateCatalogItemInput) (domain.Category, error) {
	return s.categoryRepository.Update(ctx, userID, categoryID, input)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, userID, categoryID uint64) error {
	return s.categoryRepository.Delete(ctx, userID, categoryID)
}

func (s *CatalogService) CreateAppWebsite(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.AppWebsite, error) {
	return s.appWebsiteRepository.Create(ctx, userID, input)
}

func (s *CatalogService) ListAppWebsites(ctx context.Context, userID uint64) ([]domain.AppWebsite, error) {
	return s.appWebsiteRepository.List(ctx, userID)
}

func (s *CatalogService) UpdateAppWebsite(ctx context.Context, userID, appWebsiteID uint64, input domain.UpdateCatalogItemInput) (domain.AppWebsite, error) {
	return s.appWebsiteRepository.Update(ctx, userID, appWebsiteID, input)
}

func (s *CatalogService) DeleteAppWebsite(ctx context.Context, userID, appWebsiteID uint64) error {
	return s.appWebsiteRepository.Delete(ctx, userID, appWebsiteID)
}

func (s *CatalogService) CreateProject(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.Project, error) {
	return s.projectRepository.Create(ctx, userID, input)
}

func (s *CatalogService) ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error) {
	return s.projectRepository.List(ctx, userID)
}

func (s *CatalogService) UpdateProject(ctx context.Context, userID, projectID uint64, input domain.UpdateCatalogItemInput) (domain.Project, error) {
	return s.projectRepository.Update(ctx, userID, projectID, input)
}

func (s *CatalogService) DeleteProject(ctx context.Context, userID, projectID uint64) error {
	return s.projectRepository.Delete(ctx, userID, projectID)
}
