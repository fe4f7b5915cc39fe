package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// DeliveryAddress captured at checkout
type DeliveryAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// PaymentCOD is the only supported payment method
const PaymentCOD = "COD"

type Order struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	OrderNumber string `json:"order_number" gorm:"uniqueIndex;not null"`

	// CustomerID is nil for guest checkout
	CustomerID *uint `json:"customer_id"`
	Customer   *User `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`

	CustomerName    string          `json:"customer_name" gorm:"not null"`
	CustomerPhone   string          `json:"customer_phone" gorm:"not null"`
	DeliveryAddress DeliveryAddress `json:"delivery_address" gorm:"embedded;embeddedPrefix:addr_"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`

	// TotalAmount is the sum of line price*quantity snapshotted at placement.
	// Later price changes to a FoodItem never affect a placed order.
	TotalAmount   float64     `json:"total_amount" gorm:"not null"`
	PaymentMethod string      `json:"payment_method" gorm:"not null;default:'COD'"`
	Status        OrderStatus `json:"order_status" gorm:"not null;default:'pending'"`
	OrderDate     time.Time   `json:"order_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderID    uint      `json:"order_id" gorm:"not null"`
	FoodItemID uint      `json:"food_item_id" gorm:"not null"`
	FoodItem   *FoodItem `json:"food_item,omitempty" gorm:"foreignKey:FoodItemID"`

	// RestaurantID is snapshotted so vendors can scope order queries even if
	// the food item is later deleted
	RestaurantID uint `json:"restaurant_id" gorm:"not null"`

	Name     string  `json:"name"`                    // snapshot name
	Price    float64 `json:"price" gorm:"not null"`   // snapshot price at time of order
	Quantity int     `json:"quantity" gorm:"not null"`
}
