package catalog

import (
	"context"

	"github.com/fitnexus/fitnexus-backend/pkg/db/models"
	"github.com/fitnexus/fitnexus-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seed inserts demo catalog rows when the tables are empty. Dev-mode only,
// gated by the seed feature flag.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{ID: uuid.New(), Name: "Titan Olympic Barbell", Category: "Strength", Price: 289.99, Rating: 4.8, Description: "20kg competition-spec bar with needle bearings."},
		{ID: uuid.New(), Name: "Apex Adjustable Dumbbells", Category: "Strength", Price: 449.00, Rating: 4.6, Description: "2.5-32.5kg per hand, single-dial adjustment."},
		{ID: uuid.New(), Name: "Velocity Air Rower", Category: "Cardio", Price: 899.00, Rating: 4.7, Description: "Air and magnetic dual resistance rower."},
		{ID: uuid.New(), Name: "Pulse Assault Bike", Category: "Cardio", Price: 749.00, Rating: 4.4, Description: "Fan bike with interval programming."},
		{ID: uuid.New(), Name: "Creatine Monohydrate 1kg", Category: "Supplements", Price: 34.99, Rating: 4.9, Description: "Micronized, unflavoured."},
		{ID: uuid.New(), Name: "Whey Isolate 2kg", Category: "Supplements", Price: 64.99, Rating: 4.5, Description: "27g protein per serving."},
	}
	if err := db.WithContext(ctx).Create(&products).Error; err != nil {
		return err
	}

	gyms := []models.Gym{
		{ID: uuid.New(), Name: "Iron Sanctum", Location: "Austin, TX", Type: enums.GymTypeGym, PricePerSession: 18, Rating: 4.7, Features: models.StringList{"24/7 access", "Powerlifting platforms", "Sauna"}},
		{ID: uuid.New(), Name: "Coach Rivera", Location: "Austin, TX", Type: enums.GymTypeTrainer, PricePerSession: 75, Rating: 4.9, Features: models.StringList{"Strength programming", "Nutrition coaching"}},
		{ID: uuid.New(), Name: "Forge HIIT Collective", Location: "Dallas, TX", Type: enums.GymTypeClass, PricePerSession: 22, Rating: 4.5, Features: models.StringList{"Small groups", "Heart-rate tracking"}},
	}
	if err := db.WithContext(ctx).Create(&gyms).Error; err != nil {
		return err
	}

	packages := []models.Package{
		{ID: uuid.New(), Name: "Garage Starter", Tier: "STARTER", Price: 499, Items: models.StringList{"Flat bench", "Adjustable dumbbells", "Resistance bands"}, Description: "Everything a first home gym needs."},
		{ID: uuid.New(), Name: "Home Athlete Pro", Tier: "PRO", Price: 1499, Items: models.StringList{"Power rack", "Olympic barbell", "120kg plate set", "Adjustable bench"}, Description: "A full strength setup in one order."},
		{ID: uuid.New(), Name: "Elite Performance Lab", Tier: "ELITE", Price: 3999, Items: models.StringList{"Competition rack", "Air rower", "Assault bike", "Full bumper set", "Flooring"}, Description: "The complete training facility at home."},
	}
	if err := db.WithContext(ctx).Create(&packages).Error; err != nil {
		return err
	}

	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	calories := []int{520, 430, 0, 610, 480, 700, 350}
	durations := []int{65, 50, 0, 75, 55, 90, 40}
	sessions := make([]models.WorkoutSession, 0, len(days))
	for i, day := range days {
		sessions = append(sessions, models.WorkoutSession{
			ID:       uuid.New(),
			Day:      day,
			Calories: calories[i],
			Duration: durations[i],
		})
	}
	return db.WithContext(ctx).Create(&sessions).Error
}
