package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/kxxnxr13/web-inmobiliaria/handlers"
	"github.com/kxxnxr13/web-inmobiliaria/middleware"
)

func RegisterRoutes(
	e *echo.Echo,
	properties *handlers.PropertyController,
	auth *handlers.AuthController,
	amenities *handlers.AmenityController,
	contact *handlers.ContactController,
	jwtSecret string,
) {
	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api")

	// Public site surface.
	api.GET("/properties", properties.ListProperties)
	api.GET("/properties/featured", properties.GetFeatured)
	api.GET("/properties/:id", properties.GetProperty)
	api.GET("/amenities", amenities.ListAmenities)
	api.POST("/contact", contact.SubmitContact)
	api.POST("/auth/login", auth.Login)
	api.POST("/auth/logout", auth.Logout, middleware.JWTMiddleware(jwtSecret))

	// Admin area.
	admin := api.Group("/admin", middleware.JWTMiddleware(jwtSecret))
	admin.GET("/properties", properties.ListManaged)
	admin.POST("/properties", properties.CreateProperty)
	admin.PUT("/properties/:id", properties.UpdateProperty)
	admin.DELETE("/properties/:id", properties.DeleteProperty)
	admin.PATCH("/properties/:id/status", properties.UpdateStatus)
	admin.GET("/amenities", amenities.ListAllAmenities)
	admin.POST("/amenities", amenities.CreateAmenity)
	admin.PUT("/amenities/:id", amenities.UpdateAmenity)
	admin.DELETE("/amenities/:id", amenities.DeleteAmenity)
	admin.PATCH("/amenities/:id/status", amenities.ToggleAmenity)

	// Admin-account management, super-admin only.
	admins := api.Group("/admins", middleware.JWTMiddleware(jwtSecret), middleware.SuperAdminOnly())
	admins.GET("", auth.ListAdmins)
	admins.POST("", auth.CreateAdmin)
	admins.PATCH("/:id/status", auth.ToggleAdmin)
	admins.DELETE("/:id", auth.DeleteAdmin)
}
