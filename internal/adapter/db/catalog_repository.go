package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
)

// categories, app_websites and projects share one shape: user-scoped
// named items with an optional description. catalogStore implements
// that shape once; the typed repositories below wrap it.
type catalogStore struct {
	db       *sqlx.DB
	table    string
	notFound error
}

type catalogRow struct {
	ID          uint64         `db:"id"`
	UserID      uint64         `db:"user_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (s catalogStore) selectQuery(where string) string {
	return "SELECT id, user_id, name, description, created_at, updated_at FROM " + s.table + " WHERE " + where
}

func (s catalogStore) create(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (catalogRow, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO "+s.table+" (user_id, name, description) VALUES (?, ?, ?);",
		userID, input.Name, input.Description)
	if err != nil {
		if isDuplicateEntry(err) {
			return catalogRow{}, domain.ErrDuplicateName
		}
		return catalogRow{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return catalogRow{}, err
	}

	return s.getByID(ctx, userID, uint64(id))
}

func (s catalogStore) getByID(ctx context.Context, userID, id uint64) (catalogRow, error) {
	var row catalogRow
	err := s.db.GetContext(ctx, &row, s.selectQuery("id = ? AND user_id = ?;"), id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return catalogRow{}, s.notFound
	}
	return row, err
}

func (s catalogStore) getByName(ctx context.Context, userID uint64, name string) (catalogRow, error) {
	var row catalogRow
	// Exact, case-sensitive match; "Work" and "work" are different
	// categories as far as the dashboard is concerned.
	err := s.db.GetContext(ctx, &row, s.selectQuery("user_id = ? AND BINARY name = ?;"), userID, name)
	if errors.Is(err, sql.ErrNoRows) {
		return catalogRow{}, s.notFound
	}
	return row, err
}

func (s catalogStore) list(ctx context.Context, userID uint64) ([]catalogRow, error) {
	var rows []catalogRow
	err := s.db.SelectContext(ctx, &rows, s.selectQuery("user_id = ? ORDER BY name;"), userID)
	return rows, err
}

func (s catalogStore) update(ctx context.Context, userID, id uint64, input domain.UpdateCatalogItemInput) (catalogRow, error) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, input.Description)
	}

	if len(sets) > 0 {
		query := "UPDATE " + s.table + " SET " + strings.Join(sets, ", ") + " WHERE id = ? AND user_id = ?;"
		args = append(args, id, userID)
		if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
			if isDuplicateEntry(err) {
				return catalogRow{}, domain.ErrDuplicateName
			}
			return catalogRow{}, err
		}
	}

	return s.getByID(ctx, userID, id)
}

func (s catalogStore) delete(ctx context.Context, userID, id uint64) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM "+s.table+" WHERE id = ? AND user_id = ?;", id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return s.notFound
	}
	return nil
}

type CategoryRepository struct {
	store catalogStore
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{store: catalogStore{db: db, table: "categories", notFound: domain.ErrCategoryNotFound}}
}

func (r *CategoryRepository) Create(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.Category, error) {
	row, err := r.store.create(ctx, userID, input)
	if err != nil {
		return domain.Category{}, err
	}
	return mapCategoryRow(row), nil
}

func (r *CategoryRepository) List(ctx context.Context, userID uint64) ([]domain.Category, error) {
	rows, err := r.store.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRow(row))
	}
	return categories, nil
}

func (r *CategoryRepository) GetByName(ctx context.Context, userID uint64, name string) (domain.Category, error) {
	row, err := r.store.getByName(ctx, userID, name)
	if err != nil {
		return domain.Category{}, err
	}
	return mapCategoryRow(row), nil
}

func (r *CategoryRepository) Update(ctx context.Context, userID, categoryID uint64, input domain.UpdateCatalogItemInput) (domain.Category, error) {
	row, err := r.store.update(ctx, userID, categoryID, input)
	if err != nil {
		return domain.Category{}, err
	}
	return mapCategoryRow(row), nil
}

func (r *CategoryRepository) Delete(ctx context.Context, userID, categoryID uint64) error {
	return r.store.delete(ctx, userID, categoryID)
}

type AppWebsiteRepository struct {
	store catalogStore
}

var _ ports.AppWebsiteRepository = (*AppWebsiteRepository)(nil)

func NewAppWebsiteRepository(db *sqlx.DB) *AppWebsiteRepository {
	return &AppWebsiteRepository{store: catalogStore{db: db, table: "app_websites", notFound: domain.ErrAppWebsiteNotFound}}
}

func (r *AppWebsiteRepository) Create(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.AppWebsite, error) {
	row, err := r.store.create(ctx, userID, input)
	if err != nil {
		return domain.AppWebsite{}, err
	}
	return mapAppWebsiteRow(row), nil
}

func (r *AppWebsiteRepository) List(ctx context.Context, userID uint64) ([]domain.AppWebsite, error) {
	rows, err := r.store.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]domain.AppWebsite, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapAppWebsiteRow(row))
	}
	return items, nil
}

func (r *AppWebsiteRepository) Update(ctx context.Context, userID, appWebsiteID uint64, input domain.UpdateCatalogItemInput) (domain.AppWebsite, error) {
	row, err := r.store.update(ctx, userID, appWebsiteID, input)
	if err != nil {
		return domain.AppWebsite{}, err
	}
	return mapAppWebsiteRow(row), nil
}

func (r *AppWebsiteRepository) Delete(ctx context.Context, userID, appWebsiteID uint64) error {
	return r.store.delete(ctx, userID, appWebsiteID)
}

type ProjectRepository struct {
	store catalogStore
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{store: catalogStore{db: db, table: "projects", notFound: domain.ErrProjectNotFound}}
}

func (r *ProjectRepository) Create(ctx context.Context, userID uint64, input domain.CreateCatalogItemInput) (domain.Project, error) {
	row, err := r.store.create(ctx, userID, input)
	if err != nil {
		return domain.Project{}, err
	}
	return mapProjectRow(row), nil
}

func (r *ProjectRepository) List(ctx context.Context, userID uint64) ([]domain.Project, error) {
	rows, err := r.store.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapProjectRow(row))
	}
	return items, nil
}

func (r *ProjectRepository) Update(ctx context.Context, userID, projectID uint64, input domain.UpdateCatalogItemInput) (domain.Project, error) {
	row, err := r.store.update(ctx, userID, projectID, input)
	if err != nil {
		return domain.Project{}, err
	}
	return mapProjectRow(row), nil
}

func (r *ProjectRepository) Delete(ctx context.Context, userID, projectID uint64) error {
	return r.store.delete(ctx, userID, projectID)
}

func mapCategoryRow(row catalogRow) domain.Category {
	category := domain.Category{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		category.Description = &value
	}
	return category
}

func mapAppWebsiteRow(row catalogRow) domain.AppWebsite {
	item := domain.AppWebsite{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		item.Description = &value
	}
	return item
}

func mapProjectRow(row catalogRow) domain.Project {
	item := domain.Project{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		item.Description = &value
	}
	return item
}
