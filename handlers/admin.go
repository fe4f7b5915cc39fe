package handlers

import (
	"net/http"
	"time"

	"github.com/Karthikeyagundu12/Nutrikart/config"
	"github.com/Karthikeyagundu12/Nutrikart/metrics"
	"github.com/Karthikeyagundu12/Nutrikart/models"
	"github.com/Karthikeyagundu12/Nutrikart/statemachine"

	"github.com/gin-gonic/gin"
)

// GetPendingRestaurants lists restaurant applications awaiting review,
// newest submission first
func GetPendingRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	config.DB.Preload("Vendor").
		Where("approval_status = ?", models.ApprovalPending).
		Order("submitted_at desc").
		Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// ApproveRestaurant transitions a restaurant to approved and flips the
// owning vendor's approval flags. The two writes are independent; an
// approval whose vendor flags lag is an accepted eventual-consistency risk.
func ApproveRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	now := time.Now()
	statemachine.Approve(&restaurant, now)
	if err := config.DB.Model(&restaurant).Updates(map[string]interface{}{
		"approval_status": restaurant.ApprovalStatus,
		"is_approved":     restaurant.IsApproved,
		"approved_at":     restaurant.ApprovedAt,
	}).Error; err != nil {
		respondError(c, err)
		return
	}

	config.DB.Model(&models.Vendor{}).Where("id = ?", restaurant.VendorID).
		Updates(map[string]interface{}{
			"restaurant_approved":    true,
			"restaurant_approved_at": now,
		})

	metrics.RestaurantDecisionsTotal.WithLabelValues("approved").Inc()

	c.JSON(http.StatusOK, gin.H{
		"message":    "Restaurant approved successfully",
		"restaurant": restaurant,
	})
}

type RejectRestaurantRequest struct {
	Reason string `json:"reason"`
}

// RejectRestaurant transitions a restaurant to rejected. The vendor's
// approval flags are left untouched; vendors retry with a new submission.
func RejectRestaurant(c *gin.Context) {
	var req RejectRestaurantRequest
	// Body is optional; a missing reason falls back to the default
	_ = c.ShouldBindJSON(&req)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	statemachine.Reject(&restaurant, req.Reason)
	if err := config.DB.Model(&restaurant).Updates(map[string]interface{}{
		"approval_status":  restaurant.ApprovalStatus,
		"is_approved":      restaurant.IsApproved,
		"rejection_reason": restaurant.RejectionReason,
	}).Error; err != nil {
		respondError(c, err)
		return
	}

	metrics.RestaurantDecisionsTotal.WithLabelValues("rejected").Inc()

	c.JSON(http.StatusOK, gin.H{
		"message":    "Restaurant rejected",
		"restaurant": restaurant,
	})
}

// AdminGetAllOrders returns all orders with a status summary dashboard
func AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items.FoodItem").Preload("Customer")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("order_date desc").Find(&orders)

	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusDelivered {
			totalRevenue += o.TotalAmount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

// AdminUpdateOrderStatus lets an admin drive any legal transition, including
// cancellations a vendor could make
func AdminUpdateOrderStatus(c *gin.Context) {
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

	if err := statemachine.CanTransition(order.Status, req.Status, statemachine.ActorAdmin); err != nil {
		respondError(c, err)
		return
	}

	prevStatus := order.Status
	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		respondError(c, err)
		return
	}
	metrics.OrderStatusUpdatesTotal.WithLabelValues(string(req.Status)).Inc()

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"new_status":      req.Status,
	})
}
