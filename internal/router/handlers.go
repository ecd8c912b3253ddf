package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/global"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/mongo"
)

func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{
		"message": "Welcome! If you want to sign up, go to the path (/signup)",
	}))
}

func HealthCheck(store *mongo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
			return
		}
		c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
	}
}

// writeError maps the failure taxonomy onto HTTP statuses. Every
// failure surfaces a message; internals stay out of the response.
func writeError(c *gin.Context, err error) {
	message := "Internal Server Error"
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, global.ErrorResponse(message, nil))
	case apperr.KindNotFound, apperr.KindEmptyCart:
		c.JSON(http.StatusNotFound, global.ErrorResponse(message, nil))
	default:
		c.JSON(http.StatusInternalServerError, global.ErrorResponse(message, nil))
	}
}
