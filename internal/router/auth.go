package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/auth"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/global"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/models"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/mongo"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/redis"
)

func SignUp(store *mongo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
				{Field: "request", Message: err.Error(), Code: "validation_error"},
			}))
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to process password", nil))
			return
		}

		account, err := req.ToAccount(hash)
		if err != nil {
			writeError(c, err)
			return
		}

		if err := store.InsertAccount(c.Request.Context(), account); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusCreated, global.SuccessResponse(map[string]string{
			"message": "User is successfully created",
		}))
	}
}

func Login(store *mongo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
				{Field: "request", Message: err.Error(), Code: "validation_error"},
			}))
			return
		}

		account, err := store.FindAccountByEmail(c.Request.Context(), req.Email)
		if err != nil || !auth.VerifyPassword(req.Password, account.Password) {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Incorrect email or password.", nil))
			return
		}

		token, err := auth.NewSessionToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create session", nil))
			return
		}

		session := &auth.Session{UserID: account.ID.Hex(), Role: account.Role}
		if err := redis.CreateSession(c.Request.Context(), token, session); err != nil {
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create session", nil))
			return
		}

		c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
			"message": "Login successful",
			"token":   token,
			"user":    account,
		}))
	}
}

func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("User is not authenticated, please try again.", nil))
			return
		}

		if err := redis.DeleteSession(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to log out", nil))
			return
		}

		c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{
			"message": "You are successfully logged out",
		}))
	}
}
