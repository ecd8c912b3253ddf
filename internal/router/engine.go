package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/checkout"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/mongo"
)

// Deps holds the handles the handlers work against. The process entry
// point constructs them and owns their lifecycle.
type Deps struct {
	Store  *mongo.Store
	Engine *checkout.Engine
}

func New(deps Deps) *gin.Engine {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	engine := gin.Default()

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/", Welcome)
	engine.GET("/health", HealthCheck(deps.Store))

	engine.POST("/signup", SignUp(deps.Store))
	engine.POST("/login", Login(deps.Store))
	engine.GET("/logout", Logout())

	products := engine.Group("/products")
	products.Use(AuthRequired())
	{
		products.GET("", ListProducts(deps.Store))
		products.GET("/:productId", GetProduct(deps.Store))
		products.POST("", AdminRequired(), CreateProduct(deps.Store))
	}

	cart := engine.Group("/cart")
	cart.Use(AuthRequired())
	{
		cart.GET("/:userId", GetCart(deps.Store))
		cart.POST("/:userId/:productId", AddToCart(deps.Store))
	}
	engine.DELETE("/delcart/:userId/:productId", AuthRequired(), RemoveFromCart(deps.Store))

	engine.POST("/checkout/:userId", AuthRequired(), Checkout(deps.Engine))
	engine.GET("/orderHistory/:userId", AuthRequired(), OrderHistory(deps.Store))

	admin := engine.Group("/admin")
	admin.Use(AuthRequired(), AdminRequired())
	{
		admin.GET("/orders/summary", OrderSummary(deps.Store))
	}

	return engine
}
