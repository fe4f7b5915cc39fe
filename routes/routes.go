package routes

import (
	"github.com/Karthikeyagundu12/Nutrikart/handlers"
	"github.com/Karthikeyagundu12/Nutrikart/middleware"
	"github.com/Karthikeyagundu12/Nutrikart/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog (no auth needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/foods", handlers.GetRestaurantFoods)

		// Checkout and order tracking (guest checkout permitted)
		public.POST("/orders", handlers.PlaceOrder)
		public.GET("/orders/:id", handlers.GetOrder)

		// Nutrition lookup surface
		public.GET("/nutrition/search", handlers.SearchNutrition)
		public.GET("/nutrition/food/:foodId", handlers.GetFoodNutrition)
		public.POST("/nutrition/cache", handlers.CacheNutrition)

		// Vendor identity
		public.POST("/vendor/register", handlers.RegisterVendor)
		public.POST("/vendor/login", handlers.LoginVendor)
	}

	// ── Authenticated customer/admin routes ────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/me", handlers.Me)
		auth.GET("/orders/user/:userId", handlers.GetOrdersByUser)
	}

	// ── Vendor portal routes ───────────────────────────────────────
	vendor := r.Group("/api/vendor")
	vendor.Use(middleware.VendorRequired())
	{
		vendor.GET("/profile", handlers.GetVendorProfile)

		// Restaurant onboarding
		vendor.POST("/restaurants", handlers.SubmitRestaurant)
		vendor.GET("/restaurants", handlers.ListVendorRestaurants)

		// Menu management, gated on approval state
		vendor.POST("/restaurants/:id/foods", handlers.AddFoodItem)
		vendor.PUT("/foods/:id", handlers.UpdateFoodItem)
		vendor.PATCH("/foods/:id/availability", handlers.ToggleFoodAvailability)

		// Order management
		vendor.GET("/orders", handlers.GetVendorOrders)
		vendor.PATCH("/orders/:id/status", handlers.UpdateVendorOrderStatus)
		vendor.GET("/analytics", handlers.GetVendorAnalytics)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/restaurants/pending", handlers.GetPendingRestaurants)
		admin.POST("/restaurants/:id/approve", handlers.ApproveRestaurant)
		admin.POST("/restaurants/:id/reject", handlers.RejectRestaurant)

		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PATCH("/orders/:id/status", handlers.AdminUpdateOrderStatus)
	}
}
