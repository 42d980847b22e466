package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"souq-api/config"
	"souq-api/models"
	"souq-api/repositories"

	"github.com/redis/go-redis/v9"
)

const (
	productCachePrefix = "products:list:"
	productCacheTTL    = 5 * time.Minute
)

// ProductCache caches product listings in Redis. Every method degrades to
// a no-op when Redis is down, so listings always fall through to Postgres.
type ProductCache struct{}

func NewProductCache() *ProductCache {
	return &ProductCache{}
}

type cachedProductList struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
}

func productCacheKey(filter repositories.ProductFilter) string {
	minPrice, maxPrice := -1.0, -1.0
	if filter.MinPrice != nil {
		minPrice = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		maxPrice = *filter.MaxPrice
	}
	return fmt.Sprintf("%sp%d:l%d:c%d:s%s:min%g:max%g:i%t",
		productCachePrefix, filter.Page, filter.Limit, filter.CategoryID,
		filter.Search, minPrice, maxPrice, filter.IncludeInactive)
}

// Get returns the cached listing, or ok=false on miss or Redis failure.
func (c *ProductCache) Get(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, int, bool) {
	if config.RedisClient == nil {
		return nil, 0, false
	}

	data, err := config.RedisClient.Get(ctx, productCacheKey(filter)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("product cache read failed: %v", err)
		}
		return nil, 0, false
	}

	var cached cachedProductList
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, 0, false
	}
	return cached.Products, cached.Total, true
}

func (c *ProductCache) Set(ctx context.Context, filter repositories.ProductFilter, products []models.Product, total int) {
	if config.RedisClient == nil {
		return
	}

	data, err := json.Marshal(cachedProductList{Products: products, Total: total})
	if err != nil {
		return
	}
	if err := config.RedisClient.Set(ctx, productCacheKey(filter), data, productCacheTTL).Err(); err != nil {
		log.Printf("product cache write failed: %v", err)
	}
}

// Invalidate drops every cached listing. Called after any product write,
// including the stock changes made by order placement and cancellation.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if config.RedisClient == nil {
		return
	}

	iter := config.RedisClient.Scan(ctx, 0, productCachePrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := config.RedisClient.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("product cache invalidation failed for %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("product cache scan failed: %v", err)
	}
}
