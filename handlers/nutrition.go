package handlers

import (
	"net/http"

	"github.com/Karthikeyagundu12/Nutrikart/config"
	"github.com/Karthikeyagundu12/Nutrikart/models"
	"github.com/Karthikeyagundu12/Nutrikart/nutrition"

	"github.com/gin-gonic/gin"
)

var nutritionGate *nutrition.Gate

// InitNutrition wires the nutrition cache gate used by the handlers below
func InitNutrition(g *nutrition.Gate) {
	nutritionGate = g
}

// SearchNutrition searches the provider by food name and returns the first
// match with its mapped nutrition, or an empty result
func SearchNutrition(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	match, err := nutritionGate.SearchAndAttach(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	if match == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "match": match})
}

// GetFoodNutrition serves a food item's nutrition through the cache gate:
// stored data when fresh, a provider refresh when stale
func GetFoodNutrition(c *gin.Context) {
	var foodItem models.FoodItem
	if err := config.DB.First(&foodItem, c.Param("foodId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}

	n, err := nutritionGate.GetNutrition(c.Request.Context(), &foodItem)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nutrition": n})
}

type CacheNutritionRequest struct {
	FoodID        uint  `json:"food_id" binding:"required"`
	SpoonacularID int64 `json:"spoonacular_id" binding:"required"`
}

// CacheNutrition attaches a provider reference to a food item and refreshes
// its stored nutrition immediately
func CacheNutrition(c *gin.Context) {
	var req CacheNutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var foodItem models.FoodItem
	if err := config.DB.First(&foodItem, req.FoodID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}

	n, err := nutritionGate.Refresh(c.Request.Context(), &foodItem, req.SpoonacularID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Nutrition data cached successfully", "nutrition": n})
}
