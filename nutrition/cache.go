package nutrition

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/Karthikeyagundu12/Nutrikart/metrics"
	"github.com/Karthikeyagundu12/Nutrikart/models"

	"gorm.io/gorm"
)

// RefreshWindow is how long stored nutrition data stays fresh
const RefreshWindow = 7 * 24 * time.Hour

// Gate decides, per food item, whether to serve stored nutrition data or
// refresh it from the provider.
type Gate struct {
	db       *gorm.DB
	provider Provider
	now      func() time.Time
}

func NewGate(db *gorm.DB, provider Provider) *Gate {
	return &Gate{db: db, provider: provider, now: time.Now}
}

// GetNutrition serves stored nutrition when it is younger than RefreshWindow
// (the common path, no network call). Stale data with a provider reference is
// refreshed: the stored record and LastNutritionRefresh are overwritten in a
// single row update, only after the provider response is fully parsed. A
// provider failure propagates rather than silently serving stale data. Items
// without a provider reference always serve stored values.
func (g *Gate) GetNutrition(ctx context.Context, item *models.FoodItem) (models.Nutrition, error) {
	age := g.now().Sub(item.LastNutritionRefresh)
	if age < RefreshWindow {
		metrics.NutritionCacheHits.Inc()
		return item.Nutrition, nil
	}

	if item.SpoonacularID == nil {
		return item.Nutrition, nil
	}

	metrics.NutritionCacheMisses.Inc()
	return g.Refresh(ctx, item, *item.SpoonacularID)
}

// Refresh fetches nutrition for the given provider id and overwrites the
// item's stored nutrition and refresh timestamp atomically.
func (g *Gate) Refresh(ctx context.Context, item *models.FoodItem, spoonacularID int64) (models.Nutrition, error) {
	detail, err := g.provider.GetMenuItem(ctx, spoonacularID)
	if err != nil {
		return models.Nutrition{}, err
	}

	fresh := MapNutrients(detail.Nutrition.Nutrients)
	now := g.now()

	err = g.db.Model(&models.FoodItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"spoonacular_id":         spoonacularID,
			"nutrition_calories":     fresh.Calories,
			"nutrition_protein":      fresh.Protein,
			"nutrition_carbs":        fresh.Carbs,
			"nutrition_fats":         fresh.Fats,
			"nutrition_fiber":        fresh.Fiber,
			"last_nutrition_refresh": now,
		}).Error
	if err != nil {
		return models.Nutrition{}, err
	}

	item.SpoonacularID = &spoonacularID
	item.Nutrition = fresh
	item.LastNutritionRefresh = now
	metrics.NutritionRefreshes.Inc()
	return fresh, nil
}

// Match is the result of a search-and-attach lookup
type Match struct {
	SpoonacularID int64            `json:"spoonacular_id"`
	Nutrition     models.Nutrition `json:"nutrition"`
	Image         string           `json:"image"`
}

// SearchAndAttach searches the provider by name, takes the first match only,
// and resolves its nutrition. Returns nil when the search yields no matches;
// the caller decides what to do with an empty result.
func (g *Gate) SearchAndAttach(ctx context.Context, query string) (*Match, error) {
	results, err := g.provider.SearchMenuItems(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	if len(results.MenuItems) == 0 {
		return nil, nil
	}

	first := results.MenuItems[0]
	detail, err := g.provider.GetMenuItem(ctx, first.ID)
	if err != nil {
		return nil, err
	}

	return &Match{
		SpoonacularID: first.ID,
		Nutrition:     MapNutrients(detail.Nutrition.Nutrients),
		Image:         first.Image,
	}, nil
}

// MapNutrients maps the provider's heterogeneous nutrient list into the fixed
// five-field record. Names are matched case-insensitively against an
// allow-list; unmatched fields default to 0; values are rounded to the
// nearest integer.
func MapNutrients(nutrients []Nutrient) models.Nutrition {
	var n models.Nutrition
	for _, nutrient := range nutrients {
		amount := int(math.Round(nutrient.Amount))
		switch strings.ToLower(nutrient.Name) {
		case "calories":
			n.Calories = amount
		case "protein":
			n.Protein = amount
		case "carbohydrates":
			n.Carbs = amount
		case "fat":
			n.Fats = amount
		case "fiber":
			n.Fiber = amount
		}
	}
	return n
}
