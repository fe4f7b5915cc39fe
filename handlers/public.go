package handlers

import (
	"net/http"

	"github.com/Karthikeyagundu12/Nutrikart/config"
	"github.com/Karthikeyagundu12/Nutrikart/models"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns approved, active restaurants sorted by rating
// descending (public catalog)
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB.
		Where("approval_status = ? AND is_active = ?", models.ApprovalApproved, true)

	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine_type LIKE ?", "%"+cuisine+"%")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	query.Preload("FoodItems").Order("rating desc").Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its menu
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("FoodItems").First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetRestaurantFoods returns the food items for a restaurant, with optional
// category and veg filters
func GetRestaurantFoods(c *gin.Context) {
	restaurantID := c.Param("id")
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var items []models.FoodItem
	query := config.DB.Where("restaurant_id = ?", restaurantID)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if isVeg := c.Query("is_veg"); isVeg == "true" {
		query = query.Where("is_veg = ?", true)
	}
	query.Find(&items)

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(items),
		"foods":      items,
	})
}
