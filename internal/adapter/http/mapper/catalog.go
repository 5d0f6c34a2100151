package mapper

import (
	"time"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/dto"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
)

func ToCategoryItem(category domain.Category) dto.CatalogItem {
	return toCatalogItem(category.ID, category.Name, category.Description, category.CreatedAt, category.UpdatedAt)
}

func ToCategoryItems(categories []domain.Category) []dto.CatalogItem {
	items := make([]dto.CatalogItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategoryItem(category))
	}
	return items
}

func ToAppWebsiteItem(appWebsite domain.AppWebsite) dto.CatalogItem {
	return toCatalogItem(appWebsite.ID, appWebsite.Name, appWebsite.Description, appWebsite.CreatedAt, appWebsite.UpdatedAt)
}

func ToAppWebsiteItems(appWebsites []domain.AppWebsite) []dto.CatalogItem {
	items := make([]dto.CatalogItem, 0, len(appWebsites))
	for _, appWebsite := range appWebsites {
		items = append(items, ToAppWebsiteItem(appWebsite))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.CatalogItem {
	return toCatalogItem(project.ID, project.Name, project.Description, project.CreatedAt, project.UpdatedAt)
}

func ToProjectItems(projects []domain.Project) []dto.CatalogItem {
	items := make([]dto.CatalogItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func toCatalogItem(id uint64, name string, description *string, createdAt, updatedAt time.Time) dto.CatalogItem {
	item := dto.CatalogItem{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt.Format(time.RFC3339),
		UpdatedAt: updatedAt.Format(time.RFC3339),
	}
	if description != nil {
		value := *description
		item.Description = &value
	}
	return item
}
