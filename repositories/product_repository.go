package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"souq-api/config"
	"souq-api/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// ProductFilter narrows FindAll listings. Zero values mean "no filter".
type ProductFilter struct {
	Search          string
	CategoryID      int
	MinPrice        *float64
	MaxPrice        *float64
	IncludeInactive bool
	Page            int
	Limit           int
}

const productColumns = `
	id, name_en, COALESCE(name_ar, ''),
	COALESCE(description_en, ''), COALESCE(description_ar, ''),
	COALESCE(brand_en, ''), COALESCE(brand_ar, ''),
	price, stock, sku, category_id, is_active, created_by,
	production_date, expiry_date, created_at, updated_at
`

func scanProduct(row pgx.Row, p *models.Product) error {
	return row.Scan(
		&p.ID,
		&p.Name.EN,
		&p.Name.AR,
		&p.Description.EN,
		&p.Description.AR,
		&p.Brand.EN,
		&p.Brand.AR,
		&p.Price,
		&p.Stock,
		&p.SKU,
		&p.CategoryID,
		&p.IsActive,
		&p.CreatedBy,
		&p.ProductionDate,
		&p.ExpiryDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name_en, name_ar, description_en, description_ar, brand_en, brand_ar,
			price, stock, sku, category_id, is_active, created_by, production_date, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(
		ctx,
		query,
		product.Name.EN,
		product.Name.AR,
		product.Description.EN,
		product.Description.AR,
		product.Brand.EN,
		product.Brand.AR,
		product.Price,
		product.Stock,
		product.SKU,
		product.CategoryID,
		product.IsActive,
		product.CreatedBy,
		product.ProductionDate,
		product.ExpiryDate,
		now,
		now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	product := &models.Product{}
	err := scanProduct(
		config.DB.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id),
		product,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) FindAll(ctx context.Context, filter ProductFilter) ([]models.Product, int, error) {
	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if !filter.IncludeInactive {
		whereConditions = append(whereConditions, "is_active = TRUE")
	}
	if filter.Search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf(
			"(name_en ILIKE $%d OR name_ar ILIKE $%d OR description_en ILIKE $%d OR description_ar ILIKE $%d OR sku ILIKE $%d)",
			argIndex, argIndex, argIndex, argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.CategoryID > 0 {
		whereConditions = append(whereConditions, fmt.Sprintf("category_id = $%d", argIndex))
		args = append(args, filter.CategoryID)
		argIndex++
	}
	if filter.MinPrice != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("price >= $%d", argIndex))
		args = append(args, *filter.MinPrice)
		argIndex++
	}
	if filter.MaxPrice != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("price <= $%d", argIndex))
		args = append(args, *filter.MaxPrice)
		argIndex++
	}

	where := ""
	if len(whereConditions) > 0 {
		where = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + productColumns + " FROM products" + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name_en = $1, name_ar = $2, description_en = $3, description_ar = $4,
		    brand_en = $5, brand_ar = $6, price = $7, category_id = $8, is_active = $9, updated_at = $10
		WHERE id = $11
	`
	result, err := config.DB.Exec(
		ctx,
		query,
		product.Name.EN,
		product.Name.AR,
		product.Description.EN,
		product.Description.AR,
		product.Brand.EN,
		product.Brand.AR,
		product.Price,
		product.CategoryID,
		product.IsActive,
		time.Now(),
		product.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SetStock applies the already-computed stock value in a single UPDATE.
// This path is deliberately not transactional: it can race with concurrent
// order placement and the last write wins (known limitation, kept as-is).
func (r *ProductRepository) SetStock(ctx context.Context, id, stock int) error {
	result, err := config.DB.Exec(ctx,
		"UPDATE products SET stock = $1, updated_at = $2 WHERE id = $3",
		stock, time.Now(), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ProductRepository) SetActive(ctx context.Context, id int, active bool) error {
	result, err := config.DB.Exec(ctx,
		"UPDATE products SET is_active = $1, updated_at = $2 WHERE id = $3",
		active, time.Now(), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ProductRepository) SKUExists(ctx context.Context, sku string) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products WHERE sku = $1", sku).Scan(&count)
	return count > 0, err
}

func (r *ProductRepository) CategoryExists(ctx context.Context, categoryID int) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM categories WHERE id = $1 AND is_active = TRUE", categoryID).Scan(&count)
	return count > 0, err
}
