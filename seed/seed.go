// Package seed populates the database with demo vendors, restaurants and
// dishes for local development.
package seed

import (
	"time"

	"github.com/Karthikeyagundu12/Nutrikart/models"

	"github.com/jaswdr/faker"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type dish struct {
	Name        string
	Description string
	Price       float64
	Category    string
	PortionSize string
	IsVeg       bool
}

type demoRestaurant struct {
	Name        string
	Description string
	CuisineType string
	Type        string
	Dishes      []dish
}

var demoRestaurants = []demoRestaurant{
	{
		Name:        "Spice Garden",
		Description: "Authentic North Indian curries and tandoor",
		CuisineType: "North Indian",
		Type:        "Both",
		Dishes: []dish{
			{"Butter Chicken", "Creamy tomato-based curry with tender chicken", 350, "main", "1 bowl", false},
			{"Paneer Tikka", "Grilled cottage cheese with Indian spices", 280, "appetizer", "8 pieces", true},
			{"Chicken Biryani", "Fragrant rice with spiced chicken", 320, "main", "1 plate", false},
			{"Naan", "Soft Indian flatbread", 50, "side", "1 piece", true},
			{"Gulab Jamun", "Sweet milk-solid dumplings in sugar syrup", 100, "dessert", "2 pieces", true},
		},
	},
	{
		Name:        "Napoli Pizzeria",
		Description: "Wood-fired pizzas and Italian classics",
		CuisineType: "Italian",
		Type:        "Both",
		Dishes: []dish{
			{"Margherita Pizza", "Classic pizza with tomato, mozzarella, and basil", 400, "main", "12 inch", true},
			{"Pepperoni Pizza", "Pizza topped with pepperoni and cheese", 450, "main", "12 inch", false},
			{"Garlic Bread", "Toasted bread with garlic butter", 150, "appetizer", "4 slices", true},
			{"Tiramisu", "Italian coffee-flavored dessert", 180, "dessert", "1 slice", true},
		},
	},
	{
		Name:        "Paradise Biryani House",
		Description: "World famous Hyderabadi biryani",
		CuisineType: "South Indian",
		Type:        "Non-Veg",
		Dishes: []dish{
			{"Hyderabadi Chicken Biryani", "Aromatic rice with spicy chicken", 450, "main", "1 plate", false},
			{"Mutton Biryani", "Traditional Hyderabadi mutton biryani", 550, "main", "1 plate", false},
			{"Mirchi Ka Salan", "Spicy chili curry side dish", 120, "side", "1 bowl", true},
			{"Double Ka Meetha", "Hyderabadi bread pudding dessert", 150, "dessert", "1 bowl", true},
		},
	},
}

// Run seeds demo data. Idempotent: does nothing once restaurants exist.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	fake := faker.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()

	for _, dr := range demoRestaurants {
		vendor := models.Vendor{
			OwnerName:             fake.Person().Name(),
			Email:                 fake.Internet().Email(),
			PasswordHash:          string(hash),
			Phone:                 fake.Phone().Number(),
			GSTNumber:             fake.RandomStringWithLength(15),
			FSSAILicense:          fake.RandomStringWithLength(14),
			HasRestaurant:         true,
			RestaurantApproved:    true,
			RestaurantSubmittedAt: &now,
			RestaurantApprovedAt:  &now,
			IsApproved:            true,
			IsActive:              true,
		}
		if err := db.Create(&vendor).Error; err != nil {
			return err
		}

		restaurant := models.Restaurant{
			Name:           dr.Name,
			Description:    dr.Description,
			Image:          "https://via.placeholder.com/400x300?text=Restaurant",
			CuisineType:    dr.CuisineType,
			Rating:         3.5 + fake.Float64(1, 0, 1)*1.5,
			DeliveryTime:   "30-40 min",
			ContactNumber:  fake.Phone().Number(),
			Email:          fake.Internet().CompanyEmail(),
			RestaurantType: dr.Type,
			VendorID:       vendor.ID,
			Address: models.Address{
				Street:  fake.Address().StreetName(),
				City:    fake.Address().City(),
				Pincode: fake.Address().PostCode(),
			},
			OperatingHours: models.OperatingHours{OpeningTime: "10:00", ClosingTime: "23:00"},
			Documents: models.LegalDocuments{
				RestaurantLicense: fake.RandomStringWithLength(12),
				GSTNumber:         vendor.GSTNumber,
				FSSAICertificate:  vendor.FSSAILicense,
				IdentityProof:     fake.RandomStringWithLength(10),
				BankAccountNumber: fake.RandomStringWithLength(12),
				IFSCCode:          fake.RandomStringWithLength(11),
				AccountHolderName: vendor.OwnerName,
			},
			IsApproved:     true,
			ApprovalStatus: models.ApprovalApproved,
			SubmittedAt:    now,
			ApprovedAt:     &now,
			IsActive:       true,
		}
		if err := db.Create(&restaurant).Error; err != nil {
			return err
		}

		for _, d := range dr.Dishes {
			item := models.FoodItem{
				RestaurantID:         restaurant.ID,
				Name:                 d.Name,
				Description:          d.Description,
				Image:                "https://via.placeholder.com/300x200?text=Food",
				Price:                d.Price,
				Category:             d.Category,
				CuisineCategory:      dr.CuisineType,
				PortionSize:          d.PortionSize,
				IsVeg:                d.IsVeg,
				LastNutritionRefresh: now,
				IsAvailable:          true,
			}
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
