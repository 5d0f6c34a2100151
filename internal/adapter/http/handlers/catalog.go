package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/dto"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/mapper"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/middleware"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
	"github.com/amanshinde1/ai-productivity-dashboard/pkg/apierrors"
)

// CatalogHandler serves categories, app/websites and projects. The
// three resources share request/response shapes and differ only in
// the backing service calls.
type CatalogHandler struct {
	catalogService ports.CatalogService
}

func NewCatalogHandler(catalogService ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	userID := middleware.GetUserID(c)
	categories, err := h.catalogService.ListCategories(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "failed to list categories", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToCategoryItems(categories))
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	input, ok := h.bindCreate(c)
	if !ok {
		return
	}
	category, err := h.catalogService.CreateCategory(c.Request.Context(), userID, input)
	if err != nil {
		h.failWrite(c, "failed to create category", err, apierrors.MsgCategoryNotFound)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToCategoryItem(category))
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, input, ok := h.bindUpdate(c)
	if !ok {
		return
	}
	category, err := h.catalogService.UpdateCategory(c.Request.Context(), userID, id, input)
	if err != nil {
		h.failWrite(c, "failed to update category", err, apierrors.MsgCategoryNotFound)
		return
	}
	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.badID(c)
		return
	}
	if err := h.catalogService.DeleteCategory(c.Request.Context(), userID, id); err != nil {
		h.failWrite(c, "failed to delete category", err, apierrors.MsgCategoryNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListAppWebsites(c *gin.Context) {
	userID := middleware.GetUserID(c)
	appWebsites, err := h.catalogService.ListAppWebsites(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "failed to list app/websites", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToAppWebsiteItems(appWebsites))
}

func (h *CatalogHandler) CreateAppWebsite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	input, ok := h.bindCreate(c)
	if !ok {
		return
	}
	appWebsite, err := h.catalogService.CreateAppWebsite(c.Request.Context(), userID, input)
	if err != nil {
		h.failWrite(c, "failed to create app/website", err, apierrors.MsgAppWebsiteNotFound)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToAppWebsiteItem(appWebsite))
}

func (h *CatalogHandler) UpdateAppWebsite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, input, ok := h.bindUpdate(c)
	if !ok {
		return
	}
	appWebsite, err := h.catalogService.UpdateAppWebsite(c.Request.Context(), userID, id, input)
	if err != nil {
		h.failWrite(c, "failed to update app/website", err, apierrors.MsgAppWebsiteNotFound)
		return
	}
	c.JSON(http.StatusOK, mapper.ToAppWebsiteItem(appWebsite))
}

func (h *CatalogHandler) DeleteAppWebsite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.badID(c)
		return
	}
	if err := h.catalogService.DeleteAppWebsite(c.Request.Context(), userID, id); err != nil {
		h.failWrite(c, "failed to delete app/website", err, apierrors.MsgAppWebsiteNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListProjects(c *gin.Context) {
	userID := middleware.GetUserID(c)
	projects, err := h.catalogService.ListProjects(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "failed to list projects", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *CatalogHandler) CreateProject(c *gin.Context) {
	userID := middleware.GetUserID(c)
	input, ok := h.bindCreate(c)
	if !ok {
		return
	}
	project, err := h.catalogService.CreateProject(c.Request.Context(), userID, input)
	if err != nil {
		h.failWrite(c, "failed to create project", err, apierrors.MsgProjectNotFound)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *CatalogHandler) UpdateProject(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, input, ok := h.bindUpdate(c)
	if !ok {
		return
	}
	project, err := h.catalogService.UpdateProject(c.Request.Context(), userID, id, input)
	if err != nil {
		h.failWrite(c, "failed to update project", err, apierrors.MsgProjectNotFound)
		return
	}
	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *CatalogHandler) DeleteProject(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.badID(c)
		return
	}
	if err := h.catalogService.DeleteProject(c.Request.Context(), userID, id); err != nil {
		h.failWrite(c, "failed to delete project", err, apierrors.MsgProjectNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) bindCreate(c *gin.Context) (domain.CreateCatalogItemInput, bool) {
	lang := middleware.GetLang(c)

	var req dto.CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return domain.CreateCatalogItemInput{}, false
	}

	return domain.CreateCatalogItemInput{Name: req.Name, Description: req.Description}, true
}

func (h *CatalogHandler) bindUpdate(c *gin.Context) (uint64, domain.UpdateCatalogItemInput, bool) {
	lang := middleware.GetLang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		h.badID(c)
		return 0, domain.UpdateCatalogItemInput{}, false
	}

	var req dto.UpdateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return 0, domain.UpdateCatalogItemInput{}, false
	}

	return id, domain.UpdateCatalogItemInput{
		Name:           req.Name,
		Description:    req.Description,
		DescriptionSet: req.Description != nil,
	}, true
}

func (h *CatalogHandler) badID(c *gin.Context) {
	lang := middleware.GetLang(c)
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
	)
}

func (h *CatalogHandler) fail(c *gin.Context, logMsg string, err error) {
	lang := middleware.GetLang(c)
	zap.L().Error(logMsg, zap.Error(err))
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCatalog, lang),
	)
}

func (h *CatalogHandler) failWrite(c *gin.Context, logMsg string, err error, notFoundMsg string) {
	lang := middleware.GetLang(c)

	switch {
	case errors.Is(err, domain.ErrDuplicateName):
		c.JSON(
			http.StatusConflict,
			apierrors.CreateError(http.StatusConflict, apierrors.MsgDuplicateName, lang),
		)
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrAppWebsiteNotFound),
		errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, notFoundMsg, lang),
		)
	default:
		h.fail(c, logMsg, err)
	}
}
