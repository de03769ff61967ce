package model

// Resources as the Fit Guide API returns them. Field names mirror the wire
// payloads; the client adds no state of its own beyond these.

type Session struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type Profile struct {
	ID                 int64   `json:"id"`
	Username           string  `json:"username"`
	Gender             string  `json:"gender"`
	Age                int     `json:"age"`
	HeightCm           float64 `json:"height_cm"`
	WeightKg           float64 `json:"weight_kg"`
	ActivityLevel      string  `json:"activity_level"`
	Goal               string  `json:"goal"`
	TDEE               float64 `json:"tdee"`
	DailyCalorieTarget float64 `json:"daily_calorie_target"`
	RemindersEnabled   bool    `json:"reminders_enabled"`
}

type FoodLog struct {
	ID        int64   `json:"id"`
	FoodName  string  `json:"food_name"`
	MealType  string  `json:"meal_type"`
	Calories  int     `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fats      float64 `json:"fats"`
	DateEaten string  `json:"date_eaten"`
}

// FoodEstimate is the AI search result for a free-text query.
type FoodEstimate struct {
	FoodName          string  `json:"food_name"`
	EstimatedCalories int     `json:"estimated_calories"`
	ProteinG          float64 `json:"protein_g"`
	CarbsG            float64 `json:"carbs_g"`
	FatsG             float64 `json:"fats_g"`
}

type DietSuggestion struct {
	FoodName string  `json:"food_name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Reason   string  `json:"reason"`
}

type WaterLog struct {
	ID        int64  `json:"id"`
	AmountMl  int    `json:"amount_ml"`
	DateEaten string `json:"date_eaten"`
}

type DayAmount struct {
	DayName  string `json:"day_name"`
	Date     string `json:"date"`
	AmountMl int    `json:"amount_ml"`
}

type WaterSummary struct {
	GoalMl      int         `json:"goal_ml"`
	ConsumedMl  int         `json:"consumed_ml"`
	RemainingMl int         `json:"remaining_ml"`
	Logs        []WaterLog  `json:"logs"`
	WeeklyChart []DayAmount `json:"weekly_chart_data"`
}

type WeightLog struct {
	ID       int64   `json:"id"`
	WeightKg float64 `json:"weight_kg"`
	Date     string  `json:"date"`
}

type WeightSummary struct {
	Logs          []WeightLog `json:"logs"`
	CurrentWeight float64     `json:"current_weight"`
	StartWeight   float64     `json:"start_weight"`
	Change        float64     `json:"change"`
	Plateau       bool        `json:"plateau"`
}

type ExerciseLog struct {
	ID              int64  `json:"id"`
	ExerciseType    string `json:"exercise_type"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  int    `json:"calories_burned"`
	Date            string `json:"date"`
}

type ExerciseSummary struct {
	Logs          []ExerciseLog `json:"logs"`
	TotalCalories int           `json:"total_calories"`
}

type SleepLog struct {
	ID                int64  `json:"id"`
	Date              string `json:"date"`
	Bedtime           string `json:"bedtime"`
	WakeTime          string `json:"wake_time"`
	DurationMinutes   int    `json:"duration_minutes"`
	QualityScore      int    `json:"quality_score"`
	DeepSleepMinutes  int    `json:"deep_sleep_minutes"`
	LightSleepMinutes int    `json:"light_sleep_minutes"`
	RemSleepMinutes   int    `json:"rem_sleep_minutes"`
	AwakeMinutes      int    `json:"awake_minutes"`
}

type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

type DashboardSummary struct {
	TargetCalories    float64   `json:"target_calories"`
	ConsumedCalories  int       `json:"consumed_calories"`
	RemainingCalories float64   `json:"remaining_calories"`
	Macros            Macros    `json:"macros"`
	RecentLogs        []FoodLog `json:"recent_logs"`
}

type DayStat struct {
	Date     string `json:"date"`
	DayName  string `json:"day_name"`
	Calories int    `json:"calories"`
}

type WeeklyStats struct {
	DailyStats []DayStat `json:"daily_stats"`
	Streak     int       `json:"streak"`
}

type MonthlyDayStat struct {
	Date     string   `json:"date"`
	Day      int      `json:"day"`
	Calories int      `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fats     float64  `json:"fats"`
	Weight   *float64 `json:"weight"`
	Target   float64  `json:"target"`
}

type Adherence struct {
	MetTargetDays int     `json:"met_target_days"`
	LoggedDays    int     `json:"logged_days"`
	Percentage    float64 `json:"percentage"`
	Streak        int     `json:"streak"`
}

type MonthlyUserProfile struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height"`
	CurrentWeight float64 `json:"current_weight"`
	StartWeight   float64 `json:"start_weight"`
	EndWeight     float64 `json:"end_weight"`
	Goal          string  `json:"goal"`
	BMI           float64 `json:"bmi"`
	BMICategory   string  `json:"bmi_category"`
}

type MonthlyStats struct {
	DailyStats   []MonthlyDayStat   `json:"daily_stats"`
	Adherence    Adherence          `json:"adherence"`
	WeightChange float64            `json:"weight_change"`
	MonthName    string             `json:"month_name"`
	TodayDate    string             `json:"today_date"`
	UserProfile  MonthlyUserProfile `json:"user_profile"`
	Insights     []string           `json:"insights"`
}
