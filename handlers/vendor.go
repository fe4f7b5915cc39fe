package handlers

import (
	"net/http"
	"time"

	"github.com/Karthikeyagundu12/Nutrikart/config"
	"github.com/Karthikeyagundu12/Nutrikart/middleware"
	"github.com/Karthikeyagundu12/Nutrikart/models"
	"github.com/Karthikeyagundu12/Nutrikart/statemachine"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ── Vendor identity ─────────────────────────────────────────────────────────

type VendorRegisterRequest struct {
	OwnerName    string `json:"owner_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Phone        string `json:"phone" binding:"required"`
	GSTNumber    string `json:"gst_number"`
	FSSAILicense string `json:"fssai_license"`
}

func vendorResponse(v *models.Vendor) gin.H {
	return gin.H{
		"id":          v.ID,
		"owner_name":  v.OwnerName,
		"email":       v.Email,
		"phone":       v.Phone,
		"is_approved": v.IsApproved,
		"is_active":   v.IsActive,
	}
}

// RegisterVendor creates a vendor account in the vendor identity table
func RegisterVendor(c *gin.Context) {
	var req VendorRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Vendor
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Vendor already exists with this email"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	vendor := models.Vendor{
		OwnerName:    req.OwnerName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		GSTNumber:    req.GSTNumber,
		FSSAILicense: req.FSSAILicense,
		IsActive:     true,
	}
	if err := config.DB.Create(&vendor).Error; err != nil {
		respondError(c, err)
		return
	}

	token, err := middleware.GenerateVendorToken(&vendor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vendor registered successfully",
		"token":   token,
		"vendor":  vendorResponse(&vendor),
	})
}

// LoginVendor authenticates a vendor and returns a JWT
func LoginVendor(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var vendor models.Vendor
	if err := config.DB.Where("email = ?", req.Email).First(&vendor).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateVendorToken(&vendor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"vendor":  vendorResponse(&vendor),
	})
}

// GetVendorProfile returns the authenticated vendor with their restaurants
func GetVendorProfile(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	var vendor models.Vendor
	if err := config.DB.Preload("Restaurants").First(&vendor, vendorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

// ── Restaurant submission ───────────────────────────────────────────────────

type SubmitRestaurantRequest struct {
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Image          string                `json:"image"`
	CuisineType    string                `json:"cuisine_type"`
	DeliveryTime   string                `json:"delivery_time"`
	ContactNumber  string                `json:"contact_number"`
	Email          string                `json:"email"`
	RestaurantType string                `json:"restaurant_type"`
	Address        models.Address        `json:"address"`
	OperatingHours models.OperatingHours `json:"operating_hours"`
	Documents      models.LegalDocuments `json:"documents"`
}

// SubmitRestaurant validates and stores a restaurant application. The
// approval status is always forced to pending regardless of input.
func SubmitRestaurant(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)

	var req SubmitRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image := req.Image
	if image == "" {
		image = "https://via.placeholder.com/400x300?text=Restaurant"
	}

	restaurant := models.Restaurant{
		Name:           req.Name,
		Description:    req.Description,
		Image:          image,
		CuisineType:    req.CuisineType,
		DeliveryTime:   req.DeliveryTime,
		ContactNumber:  req.ContactNumber,
		Email:          req.Email,
		RestaurantType: req.RestaurantType,
		VendorID:       vendorID,
		Address:        req.Address,
		OperatingHours: req.OperatingHours,
		Documents:      req.Documents,
		IsActive:       true,
	}

	if err := statemachine.ValidateSubmission(&restaurant); err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	statemachine.PrepareSubmission(&restaurant, now)

	if err := config.DB.Create(&restaurant).Error; err != nil {
		respondError(c, err)
		return
	}

	// Vendor flags are a second, independent write; the accepted risk is a
	// submission whose vendor flags lag behind.
	config.DB.Model(&models.Vendor{}).Where("id = ?", vendorID).Updates(map[string]interface{}{
		"has_restaurant":          true,
		"restaurant_submitted_at": now,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Restaurant submitted for verification. You will be notified once approved.",
		"restaurant":      restaurant,
		"approval_status": restaurant.ApprovalStatus,
	})
}

// ListVendorRestaurants returns all restaurants owned by the vendor
func ListVendorRestaurants(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	var restaurants []models.Restaurant
	config.DB.Preload("FoodItems").Where("vendor_id = ?", vendorID).Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// ── Menu management ─────────────────────────────────────────────────────────

type CreateFoodItemRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" binding:"required,gt=0"`
	Image           string   `json:"image"`
	Category        string   `json:"category" binding:"required"`
	CuisineCategory string   `json:"cuisine_category"`
	PortionSize     string   `json:"portion_size"`
	Ingredients     string   `json:"ingredients"`
	IsVeg           *bool    `json:"is_veg"`
	Weight          *float64 `json:"weight"`
	SpoonacularID   *int64   `json:"spoonacular_id"`

	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
	Fiber    int `json:"fiber"`
}

// AddFoodItem creates a menu item under an approved restaurant. The approval
// gate runs before anything is written.
func AddFoodItem(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	restaurantID := c.Param("id")

	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND vendor_id = ?", restaurantID, vendorID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found or unauthorized"})
		return
	}

	if err := statemachine.CanMutateMenu(&restaurant); err != nil {
		respondError(c, err)
		return
	}

	var req CreateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PortionSize == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Portion size is mandatory (e.g., "250ml", "1 plate", "200g")`})
		return
	}

	image := req.Image
	if image == "" {
		image = "https://via.placeholder.com/300x200?text=Food"
	}
	cuisineCategory := req.CuisineCategory
	if cuisineCategory == "" {
		cuisineCategory = "Other"
	}
	isVeg := true
	if req.IsVeg != nil {
		isVeg = *req.IsVeg
	}

	item := models.FoodItem{
		RestaurantID:    restaurant.ID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Image:           image,
		Category:        req.Category,
		CuisineCategory: cuisineCategory,
		PortionSize:     req.PortionSize,
		Ingredients:     req.Ingredients,
		IsVeg:           isVeg,
		Weight:          req.Weight,
		SpoonacularID:   req.SpoonacularID,
		Nutrition: models.Nutrition{
			Calories: req.Calories,
			Protein:  req.Protein,
			Carbs:    req.Carbs,
			Fats:     req.Fats,
			Fiber:    req.Fiber,
		},
		LastNutritionRefresh: time.Now(),
		IsAvailable:          true,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Food item added successfully", "food_item": item})
}

// foodItemForVendor loads a food item and verifies the caller owns its
// restaurant
func foodItemForVendor(c *gin.Context, vendorID uint) (*models.FoodItem, bool) {
	var item models.FoodItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return nil, false
	}
	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND vendor_id = ?", item.RestaurantID, vendorID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this food item"})
		return nil, false
	}
	return &item, true
}

// UpdateFoodItem updates safe fields of a menu item owned by the vendor
func UpdateFoodItem(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	item, ok := foodItemForVendor(c, vendorID)
	if !ok {
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Only allow safe fields
	allowed := map[string]bool{
		"name": true, "description": true, "price": true, "image": true,
		"category": true, "cuisine_category": true, "portion_size": true,
		"ingredients": true, "is_veg": true, "weight": true, "is_available": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(item).Updates(update).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Food item updated successfully", "food_item": item})
}

// ToggleFoodAvailability flips a menu item's availability
func ToggleFoodAvailability(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	item, ok := foodItemForVendor(c, vendorID)
	if !ok {
		return
	}

	if err := config.DB.Model(item).Update("is_available", !item.IsAvailable).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "food_item": item})
}
