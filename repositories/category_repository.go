package repositories

import (
	"context"
	"errors"
	"time"

	"souq-api/config"
	"souq-api/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name_en, name_ar, description_en, description_ar, slug, is_active, sort_order, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(
		ctx,
		query,
		category.Name.EN,
		category.Name.AR,
		category.Description.EN,
		category.Description.AR,
		category.Slug,
		category.IsActive,
		category.SortOrder,
		category.CreatedBy,
		now,
		now,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

// SlugExists reports whether another category already uses the slug.
func (r *CategoryRepository) SlugExists(ctx context.Context, slug string, excludeID int) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM categories WHERE slug = $1 AND id <> $2",
		slug, excludeID).Scan(&count)
	return count > 0, err
}

func scanCategory(row pgx.Row, category *models.Category) error {
	return row.Scan(
		&category.ID,
		&category.Name.EN,
		&category.Name.AR,
		&category.Description.EN,
		&category.Description.AR,
		&category.Slug,
		&category.IsActive,
		&category.SortOrder,
		&category.CreatedBy,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
}

const categoryColumns = `
	id, name_en, name_ar,
	COALESCE(description_en, ''), COALESCE(description_ar, ''),
	slug, is_active, sort_order, created_by, created_at, updated_at
`

func (r *CategoryRepository) FindByID(ctx context.Context, id int) (*models.Category, error) {
	category := &models.Category{}
	err := scanCategory(
		config.DB.QueryRow(ctx, "SELECT "+categoryColumns+" FROM categories WHERE id = $1", id),
		category,
	)
	if err != nil {
		return nil, err
	}
	return category, nil
}

// FindAll returns categories ordered by sort order then English name.
// Inactive categories are included only when includeInactive is set
// (admin listing).
func (r *CategoryRepository) FindAll(ctx context.Context, includeInactive bool) ([]models.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories"
	if !includeInactive {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY sort_order, name_en"

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := scanCategory(rows, &category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// FindAllWithCounts lists active categories with their active product count.
func (r *CategoryRepository) FindAllWithCounts(ctx context.Context) ([]models.CategoryWithCount, error) {
	query := `
		SELECT c.id, c.name_en, c.name_ar,
		       COALESCE(c.description_en, ''), COALESCE(c.description_ar, ''),
		       c.slug, c.is_active, c.sort_order, c.created_by, c.created_at, c.updated_at,
		       COUNT(p.id) FILTER (WHERE p.is_active) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		WHERE c.is_active = TRUE
		GROUP BY c.id
		ORDER BY c.sort_order, c.name_en
	`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.CategoryWithCount{}
	for rows.Next() {
		var c models.CategoryWithCount
		err := rows.Scan(
			&c.ID,
			&c.Name.EN,
			&c.Name.AR,
			&c.Description.EN,
			&c.Description.AR,
			&c.Slug,
			&c.IsActive,
			&c.SortOrder,
			&c.CreatedBy,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.ProductCount,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE categories
		SET name_en = $1, name_ar = $2, description_en = $3, description_ar = $4,
		    slug = $5, is_active = $6, sort_order = $7, updated_at = $8
		WHERE id = $9
	`
	result, err := config.DB.Exec(
		ctx,
		query,
		category.Name.EN,
		category.Name.AR,
		category.Description.EN,
		category.Description.AR,
		category.Slug,
		category.IsActive,
		category.SortOrder,
		time.Now(),
		category.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *CategoryRepository) SetActive(ctx context.Context, id int, active bool) error {
	result, err := config.DB.Exec(ctx,
		"UPDATE categories SET is_active = $1, updated_at = $2 WHERE id = $3",
		active, time.Now(), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
