package routes

import (
	"net/http"

	"github.com/andrewEdson/Macro-Tracker/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Macro Tracker API is running!"})
	})

	foods := r.Group("/api/foods")
	{
		foods.POST("", controllers.CreateFood)
		foods.GET("", controllers.GetFoods)
		foods.GET("/search/:name", controllers.SearchFoodByName)
		foods.GET("/barcode/:barcode", controllers.SearchFoodByBarcode)
		foods.DELETE("/:id", controllers.DeleteFood)
	}

	meals := r.Group("/api/meals")
	{
		meals.POST("", controllers.CreateMeal)
		meals.GET("/:id", controllers.GetMealByID)
		meals.PUT("/:id", controllers.UpdateMeal)
		meals.POST("/:id/foods", controllers.AddFoodToMeal)
		meals.DELETE("/:id/foods/:foodIndex", controllers.RemoveFoodFromMeal)
		meals.DELETE("/:id", controllers.DeleteMeal)
	}

	dayLogs := r.Group("/api/daylogs")
	{
		dayLogs.POST("", controllers.CreateDayLog)
		dayLogs.GET("/:userID/:date", controllers.GetDayLog)
		dayLogs.PUT("/:userID/:date", controllers.UpdateDayLog)
		dayLogs.DELETE("/:userID/:date", controllers.DeleteDayLog)
	}

	users := r.Group("/api/users")
	{
		users.POST("", controllers.CreateUser)
		users.GET("", controllers.GetUsers)
		users.GET("/:id", controllers.GetUserByID)
		users.PUT("/:id", controllers.UpdateUser)
		users.DELETE("/:id", controllers.DeleteUser)
	}

	chat := r.Group("/api/chat")
	{
		chat.POST("", controllers.SendMessage)
		chat.POST("/macros", controllers.GetFoodMacros)
	}

	return r
}
