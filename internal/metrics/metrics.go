// Package metrics holds the client-side derived calculations: BMI, BMR,
// TDEE, macro targets, and the presentation policies for progress displays.
// Everything here is pure arithmetic over values the commands already
// validated; the API owns all other computation.
package metrics

import "math"

const (
	proteinShare = 0.30
	carbsShare   = 0.40
	fatsShare    = 0.30

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// BMI returns weight / height² with height in centimeters. Callers format
// to one decimal for display; category checks always use the raw value.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// BMICategory buckets a raw (unrounded) BMI value. Comparing the raw float
// keeps 18.5 in Normal and 24.9 in Overweight regardless of display rounding.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 24.9:
		return "Normal"
	case bmi < 29.9:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMR applies Mifflin-St Jeor. Any gender other than "Male" uses the
// female constant, matching the API's target calculation.
func BMR(gender string, weightKg, heightCm float64, age int) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "Male" {
		return base + 5
	}
	return base - 161
}

// TDEE prefers the server-computed value and falls back to a sedentary
// multiple of BMR when the profile predates TDEE support.
func TDEE(serverTDEE, bmr float64) float64 {
	if serverTDEE > 0 {
		return serverTDEE
	}
	return bmr * 1.2
}

type MacroTargets struct {
	ProteinG int
	CarbsG   int
	FatsG    int
}

// MacroTargetsFor splits a calorie target 30/40/30 across protein, carbs,
// and fats and converts to grams. The split is policy, not user-facing.
func MacroTargetsFor(targetCalories float64) MacroTargets {
	return MacroTargets{
		ProteinG: int(math.Round(targetCalories * proteinShare / kcalPerGramProtein)),
		CarbsG:   int(math.Round(targetCalories * carbsShare / kcalPerGramCarbs)),
		FatsG:    int(math.Round(targetCalories * fatsShare / kcalPerGramFat)),
	}
}

const (
	minActiveGoal     = 200
	defaultActiveGoal = 500
)

// ActiveCalorieGoal approximates a daily burn goal as TDEE minus BMR,
// floored at 200 kcal. An incomplete profile falls back to 500 kcal.
func ActiveCalorieGoal(gender string, weightKg, heightCm float64, age int, activityMultiplier float64) int {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 || activityMultiplier <= 0 {
		return defaultActiveGoal
	}
	bmr := BMR(gender, weightKg, heightCm, age)
	goal := int(math.Round(bmr*activityMultiplier - bmr))
	if goal < minActiveGoal {
		return minActiveGoal
	}
	return goal
}

// ProgressPercent is the dashboard ring value: consumed over target,
// rounded, capped at 100. A zero target reads as no progress.
func ProgressPercent(consumed int, target float64) int {
	if target <= 0 {
		return 0
	}
	pct := int(math.Round(float64(consumed) / target * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// RemainingCalories never displays negative remaining.
func RemainingCalories(target float64, consumed int) float64 {
	remaining := target - float64(consumed)
	if remaining < 0 {
		return 0
	}
	return remaining
}
