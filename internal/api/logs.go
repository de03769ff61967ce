package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saadjs/fitguide-cli/internal/model"
)

// FoodLogInput carries an AI estimate (or manual macros) plus the chosen
// meal type. The server scopes the entry to its current day.
type FoodLogInput struct {
	FoodName string  `json:"food_name"`
	MealType string  `json:"meal_type"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

func (c *Client) FoodLogs(ctx context.Context) ([]model.FoodLog, error) {
	var out []model.FoodLog
	if err := c.do(ctx, http.MethodGet, "log-food/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LogFood(ctx context.Context, in FoodLogInput) (model.FoodLog, error) {
	var out model.FoodLog
	if err := c.do(ctx, http.MethodPost, "log-food/", in, &out); err != nil {
		return model.FoodLog{}, err
	}
	return out, nil
}

func (c *Client) DeleteFoodLog(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("log-food/%d/", id), nil, nil)
}

// WaterIntake returns today's intake, the fixed goal, and the weekly chart
// series, all computed server-side.
func (c *Client) WaterIntake(ctx context.Context) (model.WaterSummary, error) {
	var out model.WaterSummary
	if err := c.do(ctx, http.MethodGet, "water/", nil, &out); err != nil {
		return model.WaterSummary{}, noProfile(err)
	}
	return out, nil
}

func (c *Client) LogWater(ctx context.Context, amountMl int) (model.WaterLog, error) {
	var out model.WaterLog
	if err := c.do(ctx, http.MethodPost, "water/", map[string]int{"amount_ml": amountMl}, &out); err != nil {
		return model.WaterLog{}, err
	}
	return out, nil
}

func (c *Client) DeleteWaterLog(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("water/%d/", id), nil, nil)
}

func (c *Client) WeightHistory(ctx context.Context) (model.WeightSummary, error) {
	var out model.WeightSummary
	if err := c.do(ctx, http.MethodGet, "weight/", nil, &out); err != nil {
		return model.WeightSummary{}, err
	}
	return out, nil
}

// LogWeight appends to the weight history; the API also syncs the profile's
// current weight.
func (c *Client) LogWeight(ctx context.Context, weightKg float64) (model.WeightLog, error) {
	var out model.WeightLog
	if err := c.do(ctx, http.MethodPost, "weight/", map[string]float64{"weight_kg": weightKg}, &out); err != nil {
		return model.WeightLog{}, err
	}
	return out, nil
}

func (c *Client) DeleteWeightLog(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("weight/%d/", id), nil, nil)
}

// ExerciseInput deliberately omits calories burned: the API estimates it
// from type, duration, and description.
type ExerciseInput struct {
	ExerciseType    string `json:"exercise_type"`
	DurationMinutes int    `json:"duration_minutes"`
	Description     string `json:"description"`
}

func (c *Client) Exercises(ctx context.Context) (model.ExerciseSummary, error) {
	var out model.ExerciseSummary
	if err := c.do(ctx, http.MethodGet, "activity/", nil, &out); err != nil {
		return model.ExerciseSummary{}, err
	}
	return out, nil
}

func (c *Client) LogExercise(ctx context.Context, in ExerciseInput) (model.ExerciseLog, error) {
	var out model.ExerciseLog
	if err := c.do(ctx, http.MethodPost, "activity/", in, &out); err != nil {
		return model.ExerciseLog{}, err
	}
	return out, nil
}

func (c *Client) DeleteExerciseLog(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("activity/%d/", id), nil, nil)
}

// SleepInput includes the client-computed duration; the server stores it
// as submitted rather than recomputing from the same clock strings.
type SleepInput struct {
	Bedtime           string `json:"bedtime"`
	WakeTime          string `json:"wake_time"`
	DurationMinutes   int    `json:"duration_minutes"`
	QualityScore      int    `json:"quality_score"`
	DeepSleepMinutes  int    `json:"deep_sleep_minutes"`
	LightSleepMinutes int    `json:"light_sleep_minutes"`
	RemSleepMinutes   int    `json:"rem_sleep_minutes"`
	AwakeMinutes      int    `json:"awake_minutes"`
}

// SleepLogs returns the last 30 days, newest first.
func (c *Client) SleepLogs(ctx context.Context) ([]model.SleepLog, error) {
	var out []model.SleepLog
	if err := c.do(ctx, http.MethodGet, "sleep/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LogSleep(ctx context.Context, in SleepInput) (model.SleepLog, error) {
	var out model.SleepLog
	if err := c.do(ctx, http.MethodPost, "sleep/", in, &out); err != nil {
		return model.SleepLog{}, err
	}
	return out, nil
}

func (c *Client) DeleteSleepLog(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("sleep/%d/", id), nil, nil)
}
