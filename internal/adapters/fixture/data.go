package fixture

import (
	"time"

	"canopy/internal/domain"
)

func strptr(s string) *string { return &s }

func defaultCultivars() []domain.Cultivar {
	return []domain.Cultivar{
		{ID: "cult-1", Name: "Northern Lights"},
		{ID: "cult-2", Name: "Blue Dream"},
		{ID: "cult-3", Name: "OG Kush"},
		{ID: "cult-4", Name: "White Widow"},
		{ID: "cult-5", Name: "Sour Diesel"},
		{ID: "cult-6", Name: "Girl Scout Cookies"},
		{ID: "cult-7", Name: "AK-47"},
	}
}

func defaultUser() domain.User {
	return domain.User{
		ID:    "user-1",
		Email: "grower@example.com",
		Name:  "Home Grower",
	}
}

func defaultGrows() []domain.Grow {
	return []domain.Grow{
		{
			ID:          "grow-1",
			Name:        "Main Tent",
			Environment: domain.EnvironmentIndoor,
			Status:      domain.GrowActive,
			PlantCount:  2,
			CreatedAt:   time.Date(2024, 10, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          "grow-2",
			Name:        "Backyard Garden",
			Environment: domain.EnvironmentOutdoor,
			Status:      domain.GrowActive,
			PlantCount:  1,
			CreatedAt:   time.Date(2024, 9, 15, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:          "grow-3",
			Name:        "Winter 2023",
			Environment: domain.EnvironmentIndoor,
			Status:      domain.GrowArchived,
			PlantCount:  4,
			CreatedAt:   time.Date(2023, 11, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func defaultDashboard() []domain.PlantDashboardItem {
	return []domain.PlantDashboardItem{
		{
			ID:                  "plant-1",
			Name:                strptr("Aurora"),
			Cultivar:            domain.Cultivar{ID: "cult-1", Name: "Northern Lights"},
			Stage:               domain.StageFlowering,
			Status:              domain.StatusActive,
			AgeInDays:           52,
			TodayRecommendation: strptr("Check trichomes. Consider flush if cloudy."),
			GrowID:              "grow-1",
			GrowName:            "Main Tent",
		},
		{
			ID:                  "plant-2",
			Cultivar:            domain.Cultivar{ID: "cult-2", Name: "Blue Dream"},
			Stage:               domain.StageVegetative,
			Status:              domain.StatusActive,
			AgeInDays:           28,
			TodayRecommendation: strptr("Top the plant today for better canopy spread."),
			GrowID:              "grow-1",
			GrowName:            "Main Tent",
		},
		{
			ID:                  "plant-4",
			Name:                strptr("Sunny"),
			Cultivar:            domain.Cultivar{ID: "cult-5", Name: "Sour Diesel"},
			Stage:               domain.StageVegetative,
			Status:              domain.StatusActive,
			AgeInDays:           35,
			TodayRecommendation: strptr("Water today. Soil moisture is low."),
			GrowID:              "grow-2",
			GrowName:            "Backyard Garden",
		},
		{
			ID:        "plant-3",
			Name:      strptr("Frosty"),
			Cultivar:  domain.Cultivar{ID: "cult-4", Name: "White Widow"},
			Stage:     domain.StageCuring,
			Status:    domain.StatusCompleted,
			AgeInDays: 120,
			GrowID:    "grow-3",
			GrowName:  "Winter 2023",
		},
	}
}

func defaultPlantDetails() map[string]*domain.PlantDetail {
	return map[string]*domain.PlantDetail{
		"plant-1": {
			Plant: domain.Plant{
				ID:        "plant-1",
				Name:      strptr("Aurora"),
				Cultivar:  domain.Cultivar{ID: "cult-1", Name: "Northern Lights"},
				Stage:     domain.StageFlowering,
				Status:    domain.StatusActive,
				StartDate: "2024-11-01",
				AgeInDays: 52,
				Notes:     strptr("Slight nutrient burn on lower leaves week 3. Adjusted EC down."),
			},
			GrowID:              "grow-1",
			GrowName:            "Main Tent",
			TodayRecommendation: strptr("Check trichomes. Consider flush if cloudy."),
			CreatedAt:           time.Date(2024, 11, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:           time.Date(2024, 12, 23, 8, 30, 0, 0, time.UTC),
			Signals: []domain.PlantSignal{
				{ID: "sig-1", Type: domain.SignalInfo, Message: "Entered flowering stage", Timestamp: time.Date(2024, 12, 10, 10, 0, 0, 0, time.UTC)},
				{ID: "sig-2", Type: domain.SignalWarning, Message: "High humidity detected (78%)", Timestamp: time.Date(2024, 12, 20, 14, 0, 0, 0, time.UTC)},
				{ID: "sig-3", Type: domain.SignalAction, Message: "Recommended: Check trichomes", Timestamp: time.Date(2024, 12, 23, 8, 0, 0, 0, time.UTC)},
			},
			RecentActions: []domain.PlantAction{
				{ID: "act-1", Type: domain.ActionWater, PerformedAt: time.Date(2024, 12, 22, 9, 0, 0, 0, time.UTC), Notes: strptr("2L pH 6.2")},
				{ID: "act-2", Type: domain.ActionFeed, PerformedAt: time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC), Notes: strptr("Bloom nutrients, half strength")},
				{ID: "act-3", Type: domain.ActionWater, PerformedAt: time.Date(2024, 12, 18, 10, 0, 0, 0, time.UTC)},
			},
		},
		"plant-2": {
			Plant: domain.Plant{
				ID:        "plant-2",
				Cultivar:  domain.Cultivar{ID: "cult-2", Name: "Blue Dream"},
				Stage:     domain.StageVegetative,
				Status:    domain.StatusActive,
				StartDate: "2024-11-25",
				AgeInDays: 28,
			},
			GrowID:              "grow-1",
			GrowName:            "Main Tent",
			TodayRecommendation: strptr("Top the plant today for better canopy spread."),
			CreatedAt:           time.Date(2024, 11, 25, 14, 0, 0, 0, time.UTC),
			UpdatedAt:           time.Date(2024, 12, 23, 8, 30, 0, 0, time.UTC),
			Signals: []domain.PlantSignal{
				{ID: "sig-4", Type: domain.SignalAction, Message: "Ready for topping", Timestamp: time.Date(2024, 12, 23, 8, 0, 0, 0, time.UTC)},
			},
			RecentActions: []domain.PlantAction{
				{ID: "act-4", Type: domain.ActionWater, PerformedAt: time.Date(2024, 12, 21, 9, 0, 0, 0, time.UTC)},
				{ID: "act-5", Type: domain.ActionFeed, PerformedAt: time.Date(2024, 12, 19, 9, 0, 0, 0, time.UTC), Notes: strptr("Veg nutrients")},
			},
		},
		"plant-3": {
			Plant: domain.Plant{
				ID:        "plant-3",
				Name:      strptr("Frosty"),
				Cultivar:  domain.Cultivar{ID: "cult-4", Name: "White Widow"},
				Stage:     domain.StageCuring,
				Status:    domain.StatusCompleted,
				StartDate: "2024-08-20",
				AgeInDays: 120,
				Notes:     strptr("Excellent yield. Dense buds. Kept as reference."),
			},
			GrowID:    "grow-3",
			GrowName:  "Winter 2023",
			CreatedAt: time.Date(2024, 8, 20, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 12, 18, 16, 0, 0, 0, time.UTC),
			Signals: []domain.PlantSignal{
				{ID: "sig-5", Type: domain.SignalInfo, Message: "Harvest completed", Timestamp: time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)},
				{ID: "sig-6", Type: domain.SignalInfo, Message: "Curing started", Timestamp: time.Date(2024, 12, 5, 10, 0, 0, 0, time.UTC)},
			},
			RecentActions: []domain.PlantAction{
				{ID: "act-6", Type: domain.ActionComplete, PerformedAt: time.Date(2024, 12, 5, 10, 0, 0, 0, time.UTC), Notes: strptr("Moved to cure jars")},
			},
		},
		"plant-4": {
			Plant: domain.Plant{
				ID:        "plant-4",
				Name:      strptr("Sunny"),
				Cultivar:  domain.Cultivar{ID: "cult-5", Name: "Sour Diesel"},
				Stage:     domain.StageVegetative,
				Status:    domain.StatusActive,
				StartDate: "2024-11-18",
				AgeInDays: 35,
				Notes:     strptr("Outdoor grow. Strong sun exposure."),
			},
			GrowID:              "grow-2",
			GrowName:            "Backyard Garden",
			TodayRecommendation: strptr("Water today. Soil moisture is low."),
			CreatedAt:           time.Date(2024, 11, 18, 8, 0, 0, 0, time.UTC),
			UpdatedAt:           time.Date(2024, 12, 23, 8, 30, 0, 0, time.UTC),
			Signals: []domain.PlantSignal{
				{ID: "sig-7", Type: domain.SignalWarning, Message: "Soil moisture below threshold", Timestamp: time.Date(2024, 12, 23, 7, 0, 0, 0, time.UTC)},
				{ID: "sig-8", Type: domain.SignalAction, Message: "Water needed", Timestamp: time.Date(2024, 12, 23, 8, 0, 0, 0, time.UTC)},
			},
			RecentActions: []domain.PlantAction{
				{ID: "act-7", Type: domain.ActionWater, PerformedAt: time.Date(2024, 12, 20, 8, 0, 0, 0, time.UTC), Notes: strptr("3L")},
				{ID: "act-8", Type: domain.ActionFeed, PerformedAt: time.Date(2024, 12, 17, 8, 0, 0, 0, time.UTC), Notes: strptr("Organic compost tea")},
			},
		},
	}
}
