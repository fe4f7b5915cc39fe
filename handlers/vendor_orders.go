package handlers

import (
	"net/http"

	"github.com/Karthikeyagundu12/Nutrikart/config"
	"github.com/Karthikeyagundu12/Nutrikart/metrics"
	"github.com/Karthikeyagundu12/Nutrikart/middleware"
	"github.com/Karthikeyagundu12/Nutrikart/models"
	"github.com/Karthikeyagundu12/Nutrikart/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func vendorRestaurantIDs(vendorID uint) []uint {
	var ids []uint
	config.DB.Model(&models.Restaurant{}).Where("vendor_id = ?", vendorID).Pluck("id", &ids)
	return ids
}

func vendorOrderIDs(restaurantIDs []uint) []uint {
	var ids []uint
	if len(restaurantIDs) == 0 {
		return ids
	}
	config.DB.Model(&models.OrderItem{}).
		Where("restaurant_id IN ?", restaurantIDs).
		Distinct("order_id").
		Pluck("order_id", &ids)
	return ids
}

// GetVendorOrders returns orders containing items from the vendor's own
// restaurants, newest first
func GetVendorOrders(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	orderIDs := vendorOrderIDs(vendorRestaurantIDs(vendorID))

	var orders []models.Order
	if len(orderIDs) > 0 {
		config.DB.Preload("Items.FoodItem").
			Where("id IN ?", orderIDs).
			Order("order_date desc").
			Find(&orders)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateVendorOrderStatus moves an order through its lifecycle. Only forward
// transitions are accepted, cancellation only before the food leaves the
// kitchen, and the order must belong to one of the vendor's restaurants.
func UpdateVendorOrderStatus(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	restaurantIDs := vendorRestaurantIDs(vendorID)
	owned := map[uint]bool{}
	for _, id := range restaurantIDs {
		owned[id] = true
	}
	scoped := false
	for _, item := range order.Items {
		if owned[item.RestaurantID] {
			scoped = true
			break
		}
	}
	if !scoped {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your restaurants"})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, statemachine.ActorVendor); err != nil {
		respondError(c, err)
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		respondError(c, err)
		return
	}
	metrics.OrderStatusUpdatesTotal.WithLabelValues(string(req.Status)).Inc()

	if req.Status == models.StatusDelivered {
		recordDeliveredStats(&order)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
}

// recordDeliveredStats bumps the running per-restaurant counters once an
// order completes. Revenue is attributed per restaurant's own line items.
func recordDeliveredStats(order *models.Order) {
	revenue := map[uint]float64{}
	for _, item := range order.Items {
		revenue[item.RestaurantID] += item.Price * float64(item.Quantity)
	}
	for restaurantID, amount := range revenue {
		config.DB.Model(&models.Restaurant{}).Where("id = ?", restaurantID).
			Updates(map[string]interface{}{
				"total_orders":  gorm.Expr("total_orders + 1"),
				"total_revenue": gorm.Expr("total_revenue + ?", amount),
			})
	}
}

// GetVendorAnalytics returns the vendor dashboard numbers
func GetVendorAnalytics(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	restaurantIDs := vendorRestaurantIDs(vendorID)
	orderIDs := vendorOrderIDs(restaurantIDs)

	var orders []models.Order
	if len(orderIDs) > 0 {
		config.DB.Where("id IN ?", orderIDs).Find(&orders)
	}

	var totalRevenue float64
	var activeOrders int
	for _, o := range orders {
		totalRevenue += o.TotalAmount
		switch o.Status {
		case models.StatusConfirmed, models.StatusPreparing, models.StatusOutForDelivery:
			activeOrders++
		}
	}

	var recentOrders []models.Order
	if len(orderIDs) > 0 {
		config.DB.Preload("Items").
			Where("id IN ?", orderIDs).
			Order("order_date desc").
			Limit(10).
			Find(&recentOrders)
	}

	c.JSON(http.StatusOK, gin.H{
		"total_orders":      len(orders),
		"total_revenue":     totalRevenue,
		"active_orders":     activeOrders,
		"total_restaurants": len(restaurantIDs),
		"recent_orders":     recentOrders,
	})
}
