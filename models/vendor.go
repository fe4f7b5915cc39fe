package models

import "time"

// Vendor is the vendor-portal identity. Vendors live in their own table,
// separate from the customer/admin User table, and are never hard-deleted —
// deactivation flips IsActive.
type Vendor struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	OwnerName    string `json:"owner_name" gorm:"not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	Phone        string `json:"phone" gorm:"not null"`

	// Business details
	GSTNumber    string `json:"gst_number"`
	FSSAILicense string `json:"fssai_license"`

	// Restaurant submission lifecycle flags
	HasRestaurant         bool       `json:"has_restaurant" gorm:"default:false"`
	RestaurantApproved    bool       `json:"restaurant_approved" gorm:"default:false"`
	RestaurantSubmittedAt *time.Time `json:"restaurant_submitted_at"`
	RestaurantApprovedAt  *time.Time `json:"restaurant_approved_at"`

	IsApproved bool `json:"is_approved" gorm:"default:false"`
	IsActive   bool `json:"is_active" gorm:"default:true"`

	Restaurants []Restaurant `json:"restaurants,omitempty" gorm:"foreignKey:VendorID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
