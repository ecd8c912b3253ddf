package router

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/checkout"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/global"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/mongo"
)

type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

func pathUserID(c *gin.Context) (bson.ObjectID, bool) {
	userID, err := bson.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid user ID format", []global.ValidationError{
			{Field: "userId", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
		}))
		return bson.ObjectID{}, false
	}
	if !authorizedForUser(c, userID.Hex()) {
		c.JSON(http.StatusForbidden, global.ErrorResponse("Not allowed to act on another user's data", nil))
		return bson.ObjectID{}, false
	}
	return userID, true
}

func GetCart(store *mongo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathUserID(c)
		if !ok {
			return
		}

		lines, err := store.CartForUser(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, global.SuccessResponse(lines))
	}
}

func AddToCart(store *mongo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathUserID(c)
		if !ok {
			return
		}
		productID, err := bson.ObjectIDFromHex(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product ID format", []global.ValidationError{
				{Field: "productId", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
			}))
			return
		}

		// The ledger trusts valid references; resolve the product here.
		if _, err := store.GetProductByID(c.Request.Context(), productID); err != nil {
			writeError(c, err)
			return
		}

		entry, err := store.AddOrIncrement(c.Request.Context(), userID, productID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, global.SuccessResponse(entry))
	}
}

func RemoveFromCart(store *mongo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathUserID(c)
		if !ok {
			return
		}
		productID, err := bson.ObjectIDFromHex(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product ID format", []global.ValidationError{
				{Field: "productId", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
			}))
			return
		}

		if err := store.RemoveEntry(c.Request.Context(), userID, productID); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{
			"message": "Product deleted from the cart successfully",
		}))
	}
}

// Checkout converts the user's cart into an order. The resolved payment
// method is echoed back explicitly even when the default was applied.
func Checkout(engine *checkout.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathUserID(c)
		if !ok {
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
				{Field: "request", Message: err.Error(), Code: "validation_error"},
			}))
			return
		}

		order, err := engine.Checkout(c.Request.Context(), userID, req.PaymentMethod)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
			"order":         order,
			"paymentMethod": order.PaymentMethod,
		}))
	}
}

func OrderHistory(store *mongo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathUserID(c)
		if !ok {
			return
		}

		orders, err := store.OrdersForUser(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, global.SuccessResponse(orders))
	}
}

func OrderSummary(store *mongo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := store.OrderStatusSummary(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, global.SuccessResponse(summary))
	}
}
