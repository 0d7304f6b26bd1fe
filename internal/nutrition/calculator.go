package nutrition

import "math"

// Gender values accepted by the calorie calculator.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel values map to TDEE multipliers.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// GoalType values adjust the daily calorie target.
type GoalType string

const (
	GoalLoseWeight     GoalType = "lose_weight"
	GoalMaintainWeight GoalType = "maintain_weight"
	GoalGainWeight     GoalType = "gain_weight"
)

// activityMultipliers is the single source of truth for valid activity levels.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
	ActivityExtremelyActive:  1.9,
}

// goalAdjustment is the daily calorie delta applied on top of TDEE for a
// lose or gain goal (roughly 1 lb of body weight per week).
const goalAdjustment = 500

// Subject carries the profile fields the calorie calculator needs. Callers
// pass these explicitly rather than handing over a persistence model.
type Subject struct {
	Age           int
	Gender        Gender
	HeightCM      float64
	WeightKG      float64
	ActivityLevel ActivityLevel
	GoalType      GoalType
}

// BMR computes the Mifflin-St Jeor basal metabolic rate. Male gets the +5
// constant, everyone else -161.
func BMR(s Subject) float64 {
	bmr := 10*s.WeightKG + 6.25*s.HeightCM - 5*float64(s.Age)
	if s.Gender == GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// ActivityMultiplier returns the TDEE multiplier for a level. Unrecognised
// levels fall back to sedentary rather than erroring, matching what the
// settings form allows through.
func ActivityMultiplier(level ActivityLevel) float64 {
	if mult, ok := activityMultipliers[level]; ok {
		return mult
	}
	return activityMultipliers[ActivitySedentary]
}

// CalorieGoal computes the daily calorie target for a subject: Mifflin-St Jeor
// BMR, scaled by the activity multiplier, adjusted -500/+500 for a lose/gain
// goal, rounded to the nearest kcal.
//
// Returns ok=false when any required field is missing (zero), so callers can
// retain a previously stored value instead of overwriting it.
func CalorieGoal(s Subject) (goal int, ok bool) {
	if s.Age <= 0 || s.Gender == "" || s.HeightCM <= 0 || s.WeightKG <= 0 ||
		s.ActivityLevel == "" || s.GoalType == "" {
		return 0, false
	}

	tdee := BMR(s) * ActivityMultiplier(s.ActivityLevel)

	switch s.GoalType {
	case GoalLoseWeight:
		tdee -= goalAdjustment
	case GoalGainWeight:
		tdee += goalAdjustment
	}

	return int(math.Round(tdee)), true
}
