package client

import "testing"

func TestFeedingPlan_HighActivity(t *testing.T) {
	t.Parallel()
	plan, err := StaticAdvisor{}.FeedingPlan(10, ActivityHigh)
	if err != nil {
		t.Fatalf("FeedingPlan: %v", err)
	}
	if plan.DailyCalories != 420 {
		t.Fatalf("daily calories = %d, want 420", plan.DailyCalories)
	}
	if len(plan.Meals) != 3 {
		t.Fatalf("expected 3 meals, got %d", len(plan.Meals))
	}
	if plan.Meals[0].Name != "breakfast" || plan.Meals[0].Calories != 126 {
		t.Fatalf("breakfast = %+v", plan.Meals[0])
	}
	if plan.Meals[2].Name != "dinner" || plan.Meals[2].Calories != 168 || plan.Meals[2].Grams != 42 {
		t.Fatalf("dinner = %+v", plan.Meals[2])
	}
}

func TestFeedingPlan_ActivityMultipliers(t *testing.T) {
	t.Parallel()
	cases := []struct {
		activity ActivityLevel
		want     int
	}{
		{ActivityHigh, 420},
		{ActivityMedium, 360},
		{ActivityLow, 300},
		{"", 300},
	}
	for _, tc := range cases {
		plan, err := StaticAdvisor{}.FeedingPlan(10, tc.activity)
		if err != nil {
			t.Fatalf("FeedingPlan(%q): %v", tc.activity, err)
		}
		if plan.DailyCalories != tc.want {
			t.Errorf("FeedingPlan(%q) = %d, want %d", tc.activity, plan.DailyCalories, tc.want)
		}
	}
}

func TestFeedingPlan_Invalid(t *testing.T) {
	t.Parallel()
	if _, err := (StaticAdvisor{}).FeedingPlan(0, ActivityLow); err == nil {
		t.Fatal("expected error for zero weight")
	}
	if _, err := (StaticAdvisor{}).FeedingPlan(-2, ActivityLow); err == nil {
		t.Fatal("expected error for negative weight")
	}
	if _, err := (StaticAdvisor{}).FeedingPlan(5, "hyper"); err == nil {
		t.Fatal("expected error for unknown activity level")
	}
}
