package router

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/global"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/models"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/mongo"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/redis"
)

func CreateProduct(store *mongo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
				{Field: "request", Message: err.Error(), Code: "validation_error"},
			}))
			return
		}

		product := req.ToProduct()
		if err := store.InsertProduct(c.Request.Context(), product); err != nil {
			writeError(c, err)
			return
		}

		if cacheErr := redis.CacheSingleProduct(c.Request.Context(), product); cacheErr != nil {
			log.Printf("Warning: Failed to cache product in Redis: %v", cacheErr)
		}

		c.JSON(http.StatusCreated, global.SuccessResponse(map[string]interface{}{
			"message": "Product is added successfully",
			"product": product,
		}))
	}
}

func ListProducts(store *mongo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.ListProducts(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, global.SuccessResponse(products))
	}
}

// GetProduct reads a single product, Redis cache first, MongoDB on a
// miss.
func GetProduct(store *mongo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := bson.ObjectIDFromHex(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product ID format", []global.ValidationError{
				{Field: "productId", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
			}))
			return
		}

		ctx := c.Request.Context()

		if product, cacheErr := redis.GetProductFromCache(ctx, productID.Hex()); cacheErr == nil {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, global.SuccessResponse(product))
			return
		}

		product, err := store.GetProductByID(ctx, productID)
		if err != nil {
			writeError(c, err)
			return
		}

		if cacheErr := redis.CacheSingleProduct(ctx, product); cacheErr != nil {
			log.Printf("Warning: Failed to cache product in Redis: %v", cacheErr)
		}

		c.Header("X-Cache", "MISS")
		c.JSON(http.StatusOK, global.SuccessResponse(product))
	}
}
