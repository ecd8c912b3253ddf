package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/models"
)

const productCacheTTL = 24 * time.Hour

func productKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

// CacheSingleProduct stores a product in the read cache keyed by id.
func CacheSingleProduct(ctx context.Context, product *models.Product) error {
	client := RedisClient()
	defer client.Close()

	productJSON, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product %s: %w", product.ID.Hex(), err)
	}

	if err := client.Set(ctx, productKey(product.ID.Hex()), productJSON, productCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache product %s: %w", product.ID.Hex(), err)
	}
	return nil
}

// GetProductFromCache returns the cached product, or an error on a
// cache miss.
func GetProductFromCache(ctx context.Context, id string) (*models.Product, error) {
	client := RedisClient()
	defer client.Close()

	productJSON, err := client.Get(ctx, productKey(id)).Result()
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal([]byte(productJSON), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}
	return &product, nil
}

// RemoveProductFromCache evicts a product from the read cache.
func RemoveProductFromCache(ctx context.Context, id string) error {
	client := RedisClient()
	defer client.Close()

	if err := client.Del(ctx, productKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to remove product from cache: %w", err)
	}
	return nil
}
