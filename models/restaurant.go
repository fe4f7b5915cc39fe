package models

import "time"

// ApprovalStatus is the tri-state gate controlling whether a restaurant is
// publicly listed and menu-mutable.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Address of a restaurant, stored inline
type Address struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	Pincode     string `json:"pincode"`
	FullAddress string `json:"full_address"`
}

// OperatingHours in "HH:MM" strings, display-only
type OperatingHours struct {
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

// LegalDocuments are all mandatory at submission time
type LegalDocuments struct {
	RestaurantLicense string `json:"restaurant_license"`
	GSTNumber         string `json:"gst_number"`
	FSSAICertificate  string `json:"fssai_certificate"`
	IdentityProof     string `json:"identity_proof"`
	BankAccountNumber string `json:"bank_account_number"`
	IFSCCode          string `json:"ifsc_code"`
	AccountHolderName string `json:"account_holder_name"`
}

type Restaurant struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"not null"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	CuisineType  string  `json:"cuisine_type"`
	Rating       float64 `json:"rating" gorm:"default:4.0"`
	DeliveryTime string  `json:"delivery_time"`

	ContactNumber  string `json:"contact_number"`
	Email          string `json:"email"`
	RestaurantType string `json:"restaurant_type"` // Veg, Non-Veg, Both, Cloud Kitchen, Cafe, Bakery

	// VendorID is immutable after creation
	VendorID uint    `json:"vendor_id" gorm:"not null"`
	Vendor   *Vendor `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`

	Address        Address        `json:"address" gorm:"embedded;embeddedPrefix:addr_"`
	OperatingHours OperatingHours `json:"operating_hours" gorm:"embedded;embeddedPrefix:hours_"`
	Documents      LegalDocuments `json:"documents" gorm:"embedded;embeddedPrefix:doc_"`

	IsApproved      bool           `json:"is_approved" gorm:"default:false"`
	ApprovalStatus  ApprovalStatus `json:"approval_status" gorm:"not null;default:'pending'"`
	SubmittedAt     time.Time      `json:"submitted_at"`
	ApprovedAt      *time.Time     `json:"approved_at"`
	RejectionReason string         `json:"rejection_reason"`

	// Running statistics, updated as orders complete
	TotalOrders  int     `json:"total_orders" gorm:"default:0"`
	TotalRevenue float64 `json:"total_revenue" gorm:"default:0"`

	FoodItems []FoodItem `json:"food_items,omitempty" gorm:"foreignKey:RestaurantID"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Nutrition is the fixed five-field record served to clients. Values are
// whole units, rounded when fetched from the provider.
type Nutrition struct {
	Calories int `json:"calories" gorm:"default:0"`
	Protein  int `json:"protein" gorm:"default:0"`
	Carbs    int `json:"carbs" gorm:"default:0"`
	Fats     int `json:"fats" gorm:"default:0"`
	Fiber    int `json:"fiber" gorm:"default:0"`
}

type FoodItem struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	RestaurantID uint   `json:"restaurant_id" gorm:"not null"`
	Name         string `json:"name" gorm:"not null"`
	Description  string `json:"description"`
	Image        string `json:"image"`

	Price    float64 `json:"price" gorm:"not null"`
	Category string  `json:"category"` // appetizer, main, dessert, beverage, snack, side, starter

	CuisineCategory string `json:"cuisine_category" gorm:"default:'Other'"`

	// Free-text serving-size descriptor, e.g. "250ml", "1 plate", "200g"
	PortionSize string `json:"portion_size" gorm:"not null"`

	Ingredients string   `json:"ingredients"`
	IsVeg       bool     `json:"is_veg" gorm:"default:true"`
	Weight      *float64 `json:"weight"` // grams

	// Nutrition cache: SpoonacularID keys into the provider;
	// LastNutritionRefresh drives the staleness check.
	SpoonacularID        *int64    `json:"spoonacular_id"`
	Nutrition            Nutrition `json:"nutrition" gorm:"embedded;embeddedPrefix:nutrition_"`
	LastNutritionRefresh time.Time `json:"last_nutrition_refresh"`

	IsAvailable bool `json:"is_available" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
