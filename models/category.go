package models

import "time"

type Category struct {
	ID          int       `json:"id"`
	Name        Bilingual `json:"name"`
	Description Bilingual `json:"description"`
	Slug        string    `json:"slug"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryWithCount struct {
	Category
	ProductCount int `json:"product_count"`
}
