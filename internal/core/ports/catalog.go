package ports

import (
	"context"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
)

// CatalogRepository is implemented once per catalog table
// (categories, app/websites, projects), all user-scoped with a
// per-user unique name.
type CategoryRepository interface {
	Create(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.Category, error)
	List(ctx context.Context, userID uint64) ([]domain.Category, error)
	GetByName(ctx context.Context, userID uint64, name string) (domain.Category, error)
	Update(ctx context.Context, userID, categoryID uint64, input domain.UpdateCatalogItemInput) (domain.Category, error)
	Delete(ctx context.Context, userID, categoryID uint64) error
}

type AppWebsiteRepository interface {
	Create(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.AppWebsite, error)
	List(ctx context.Context, userID uint64) ([]domain.AppWebsite, error)
	Update(ctx context.Context, userID, appWebsiteID uint64, input domain.UpdateCatalogItemInput) (domain.AppWebsite, error)
	Delete(ctx context.Context, userID, appWebsiteID uint64) error
}

type ProjectRepository interface {
	Create(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.Project, error)
	List(ctx context.Context, userID uint64) ([]domain.Project, error)
	Update(ctx context.Context, userID, projectID uint64, input domain.UpdateCatalogItemInput) (domain.Project, error)
	Delete(ctx context.Context, userID, projectID uint64) error
}

type CatalogService interface {
	CreateCategory(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.Category, error)
	ListCategories(ctx context.Context, userID uint64) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID uint64, input domain.UpdateCatalogItemInput) (domain.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID uint64) error

	CreateAppWebsite(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.AppWebsite, error)
	ListAppWebsites(ctx context.Context, userID uint64) ([]domain.AppWebsite, error)
	UpdateAppWebsite(ctx context.Context, userID, appWebsiteID uint64, input domain.UpdateCatalogItemInput) (domain.AppWebsite, error)
	DeleteAppWebsite(ctx context.Context, userID, appWebsiteID uint64) error

	CreateProject(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.Project, error)
	ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error)
	UpdateProject(ctx context.Context, userID, projectID uint64, input domain.UpdateCatalogItemInput) (domain.Project, error)
	DeleteProject(ctx context.Context, userID, projectID uint64) error
}
