package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/Karthikeyagundu12/Nutrikart/config"
	"github.com/Karthikeyagundu12/Nutrikart/metrics"
	"github.com/Karthikeyagundu12/Nutrikart/middleware"
	"github.com/Karthikeyagundu12/Nutrikart/models"
	"github.com/Karthikeyagundu12/Nutrikart/pricing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	// UserID is optional: guest checkout is permitted
	UserID        *uint  `json:"user_id"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`

	DeliveryAddress struct {
		Street  string `json:"street" binding:"required"`
		City    string `json:"city" binding:"required"`
		Pincode string `json:"pincode" binding:"required"`
	} `json:"delivery_address" binding:"required"`

	Items []struct {
		FoodItemID uint `json:"food_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`

	// TotalAmount from the client is verified against the server-side
	// recomputation, never trusted.
	TotalAmount *float64 `json:"total_amount"`
}

// PlaceOrder creates a new COD order. The total is recomputed from current
// menu prices and snapshotted: later price changes never affect this order.
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cart []pricing.Line
	var orderItems []models.OrderItem

	for _, reqItem := range req.Items {
		var foodItem models.FoodItem
		if err := config.DB.First(&foodItem, reqItem.FoodItemID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Food item not found: " + strconv.Itoa(int(reqItem.FoodItemID))})
			return
		}
		if !foodItem.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Food item '" + foodItem.Name + "' is not available"})
			return
		}

		cart = append(cart, pricing.Line{
			FoodItemID: foodItem.ID,
			Name:       foodItem.Name,
			Price:      foodItem.Price,
			Quantity:   reqItem.Quantity,
		})
		orderItems = append(orderItems, models.OrderItem{
			FoodItemID:   foodItem.ID,
			RestaurantID: foodItem.RestaurantID,
			Name:         foodItem.Name,
			Price:        foodItem.Price,
			Quantity:     reqItem.Quantity,
		})
	}

	total := pricing.ItemTotal(cart)
	if req.TotalAmount != nil && math.Abs(*req.TotalAmount-total) > 0.01 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           "Total amount mismatch",
			"expected_total":  pricing.Round2(total),
			"submitted_total": *req.TotalAmount,
		})
		return
	}

	order := models.Order{
		OrderNumber:   uuid.NewString(),
		CustomerID:    req.UserID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		DeliveryAddress: models.DeliveryAddress{
			Street:  req.DeliveryAddress.Street,
			City:    req.DeliveryAddress.City,
			Pincode: req.DeliveryAddress.Pincode,
		},
		Items:         orderItems,
		TotalAmount:   total,
		PaymentMethod: models.PaymentCOD,
		Status:        models.StatusPending,
		OrderDate:     time.Now(),
	}

	if err := config.DB.Create(&order).Error; err != nil {
		respondError(c, err)
		return
	}

	metrics.OrdersPlacedTotal.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
		"bill":    pricing.Breakdown(cart),
	})
}

// GetOrder returns a single order by id. Public so guest customers can track
// their order.
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items.FoodItem").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetOrdersByUser returns a user's orders, newest first. Callers may only
// read their own orders unless they are an admin.
func GetOrdersByUser(c *gin.Context) {
	requestedID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	callerID := middleware.GetUserID(c)
	if uint(requestedID) != callerID && middleware.GetRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "You may only view your own orders"})
		return
	}

	var orders []models.Order
	config.DB.Preload("Items.FoodItem").
		Where("customer_id = ?", requestedID).
		Order("order_date desc").
		Find(&orders)

	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}
