package client

import (
	"fmt"
	"math"
)

// ActivityLevel grades how energetic a pet currently is. It mirrors the
// energy level recorded in health logs.
type ActivityLevel string

const (
	ActivityHigh   ActivityLevel = "high"
	ActivityMedium ActivityLevel = "medium"
	ActivityLow    ActivityLevel = "low"
)

// Meal is one feeding in a daily plan. Grams assumes standard dry food at
// roughly 4 kcal per gram.
type Meal struct {
	Name     string  `json:"name"`
	Share    float64 `json:"share"` // fraction of daily calories
	Calories int     `json:"calories"`
	Grams    int     `json:"grams"`
}

// FeedingPlan is a daily feeding recommendation for a pet.
type FeedingPlan struct {
	DailyCalories int    `json:"dailyCalories"`
	Meals         []Meal `json:"meals"`
}

// HealthAdvisor produces feeding recommendations. The default
// implementation computes them locally; a future one may defer to a
// backend model.
type HealthAdvisor interface {
	FeedingPlan(weightKg float64, activity ActivityLevel) (*FeedingPlan, error)
}

// StaticAdvisor derives a plan from weight and activity alone:
// 30 kcal per kilogram, scaled 1.4x for high activity and 1.2x for
// medium, split 30/30/40 across breakfast, lunch, and dinner.
type StaticAdvisor struct{}

var _ HealthAdvisor = StaticAdvisor{}

// FeedingPlan computes the daily calorie target and per-meal portions.
func (StaticAdvisor) FeedingPlan(weightKg float64, activity ActivityLevel) (*FeedingPlan, error) {
	if weightKg <= 0 {
		return nil, fmt.Errorf("weight must be positive, got %v", weightKg)
	}

	mult := 1.0
	switch activity {
	case ActivityHigh:
		mult = 1.4
	case ActivityMedium:
		mult = 1.2
	case ActivityLow, "":
		mult = 1.0
	default:
		return nil, fmt.Errorf("unknown activity level %q", activity)
	}

	daily := math.Round(weightKg * 30 * mult)

	plan := &FeedingPlan{DailyCalories: int(daily)}
	for _, m := range []struct {
		name  string
		share float64
	}{
		{"breakfast", 0.3},
		{"lunch", 0.3},
		{"dinner", 0.4},
	} {
		kcal := daily * m.share
		plan.Meals = append(plan.Meals, Meal{
			Name:     m.name,
			Share:    m.share,
			Calories: int(math.Round(kcal)),
			Grams:    int(math.Round(kcal / 4)),
		})
	}
	return plan, nil
}

// FeedingPlan returns the feeding recommendation for a pet's current
// weight and activity level using the built-in advisor.
func (c *Client) FeedingPlan(weightKg float64, activity ActivityLevel) (*FeedingPlan, error) {
	return StaticAdvisor{}.FeedingPlan(weightKg, activity)
}
